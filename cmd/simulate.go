package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/optimaxx"
	"github.com/etnz/optimaxx/chart"
	"github.com/etnz/optimaxx/renderer"
	"github.com/google/subcommands"
)

type simulateCmd struct {
	requestFlags
	chart string
	json  bool
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "simulate the return of a portfolio of instruments" }
func (*simulateCmd) Usage() string {
	return `optimaxx simulate [-capital N] [-horizon Y] [-method geometric|arithmetic] [-end DATE] [-chart FILE.png] <name>...

  Computes the annualized return of each instrument from its historical prices,
  their average, and the final capital after the horizon.

  Names are the instrument names listed by 'optimaxx catalog'.
  See 'optimaxx topic methods' for how returns are computed.

`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	c.requestFlags.SetFlags(f)
	f.StringVar(&c.chart, "chart", "", "Write the relative performance chart to this png file")
	f.BoolVar(&c.json, "json", false, "Print the result as JSON instead of a report")
}

func (c *simulateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, status := runSimulation(ctx, &c.requestFlags, f.Args())
	if res == nil {
		return status
	}

	if c.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	report := renderer.NewSimulation(res)
	if c.chart != "" && res.Status == optimaxx.StatusOK {
		if err := writeChart(c.chart, res); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing chart: %v\n", err)
		} else {
			report.Chart = c.chart
		}
	}
	printMarkdown(renderer.RenderSimulation(report))
	return subcommands.ExitSuccess
}

// runSimulation runs the simulation of the instrument names.
// Errors are reported and returned as a nil result.
func runSimulation(ctx context.Context, flags *requestFlags, names []string) (*optimaxx.Result, subcommands.ExitStatus) {
	req, err := flags.request(names)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	sim, err := newSimulator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	res, err := sim.Simulate(ctx, req)
	if errors.Is(err, optimaxx.ErrInvalidRequest) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	for _, w := range res.Warnings {
		log.Printf("skipped %s", w.Message())
	}
	return res, subcommands.ExitSuccess
}

// writeChart writes the trend chart of the result to a png file.
func writeChart(path string, res *optimaxx.Result) error {
	png, err := chart.Trend(res.Returns)
	if err != nil {
		return err
	}
	return os.WriteFile(path, png, 0o644)
}
