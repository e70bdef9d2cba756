package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/optimaxx/renderer"
	"github.com/google/subcommands"
)

type catalogCmd struct{}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "list the instruments available for simulation" }
func (*catalogCmd) Usage() string {
	return `optimaxx catalog

  Lists the instruments of the catalog, see -catalog to use your own.

`
}

func (*catalogCmd) SetFlags(_ *flag.FlagSet) {}

func (*catalogCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, err := LoadCatalog(settings())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderCatalog(renderer.NewCatalog(c)))
	return subcommands.ExitSuccess
}
