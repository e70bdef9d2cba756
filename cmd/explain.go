package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/optimaxx"
	"github.com/etnz/optimaxx/agent"
	"github.com/etnz/optimaxx/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type explainCmd struct {
	requestFlags
}

func (*explainCmd) Name() string     { return "explain" }
func (*explainCmd) Synopsis() string { return "simulate a portfolio and explain the result with Gemini" }
func (*explainCmd) Usage() string {
	return `optimaxx explain [simulate flags] <name>...

  Runs the same simulation as 'optimaxx simulate' and asks Gemini to comment
  the report in plain language.

  Requires the GEMINI_API_KEY (or GOOGLE_API_KEY) environment variable.

`
}

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, status := runSimulation(ctx, &c.requestFlags, f.Args())
	if res == nil {
		return status
	}
	report := renderer.RenderSimulation(renderer.NewSimulation(res))
	if res.Status == optimaxx.StatusEmptySelection {
		printMarkdown(report)
		return subcommands.ExitSuccess
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	explanation, err := agent.Explain(ctx, client, report)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error explaining the report:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(report + "\n## Commentary\n\n" + explanation + "\n")
	return subcommands.ExitSuccess
}
