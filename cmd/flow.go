package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mangoclub/mango"
	"github.com/mangoclub/mango/renderer"
)

type flowCmd struct {
	product string
}

func (*flowCmd) Name() string     { return "flow" }
func (*flowCmd) Synopsis() string { return "reconcile a product's flow from vendors to customers" }
func (*flowCmd) Usage() string {
	return `mango flow -p <product>

  Builds the balanced flow for a product: where stock came from, where
  it went, and what remains. Stock that predates the log shows up as a
  synthetic "Initial / Unknown" source.
`
}

func (c *flowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "p", "", "product to reconcile")
}

func (c *flowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.product == "" {
		fmt.Fprintln(os.Stderr, "Error: -p <product> is required")
		return subcommands.ExitUsageError
	}

	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	g, err := l.BuildFlowGraph(c.product)
	if errors.Is(err, mango.ErrNoHistory) {
		fmt.Printf("No movements recorded for %s yet.\n", c.product)
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.FlowMarkdown(g))
	return subcommands.ExitSuccess
}
