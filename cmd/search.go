package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/optimaxx/eodhd"
	"github.com/etnz/optimaxx/httpcache"
	"github.com/google/subcommands"
)

// searchCmd implements the "search" command.
type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search for instrument symbols on EODHD" }
func (*searchCmd) Usage() string {
	return `optimaxx search <search term>

  Searches for instruments via EOD Historical Data API and prints
  ready-to-use catalog lines for the results.

  Requires the EODHD_API_KEY environment variable to be set or passed as a flag.

`
}

func (*searchCmd) SetFlags(_ *flag.FlagSet) {}

func (*searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	searchTerm := strings.Join(f.Args(), " ")

	key := settings().EODHDAPIKey
	if key == "" {
		fmt.Fprintf(os.Stderr, "Error: EODHD API key is not set. Use -eodhd-api-key flag or EODHD_API_KEY environment variable\n")
		return subcommands.ExitFailure
	}

	results, err := eodhd.New(key, httpcache.NewClient()).Search(ctx, searchTerm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching instruments: %v\n", err)
		return subcommands.ExitFailure
	}

	if len(results) == 0 {
		fmt.Printf("No results found for '%s'.\n", searchTerm)
		return subcommands.ExitSuccess
	}

	fmt.Printf("Found %d results for '%s':\n\n", len(results), searchTerm)
	for _, item := range results {
		fmt.Printf("➡️   Name       : %s (%s)\n", item.Name, item.Code)
		fmt.Printf("    Type        : %s, Country: %s, Currency: %s\n", item.Type, item.Country, item.Currency)
		fmt.Printf("    Prev. Close : %.2f on %s\n", item.PreviousClose, item.PreviousCloseDate)
		fmt.Printf("    Catalog     : {\"nombre\":%q,\"descripcion\":%q,\"simbolo\":%q}\n\n", item.Name, item.Type, item.Symbol())
	}
	return subcommands.ExitSuccess
}
