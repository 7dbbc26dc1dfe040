package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mangoclub/mango/renderer"
)

type unitsCmd struct {
	product string
}

func (*unitsCmd) Name() string     { return "units" }
func (*unitsCmd) Synopsis() string { return "show a product's learned container units" }
func (*unitsCmd) Usage() string {
	return `mango units -p <product>

  Shows the container units known for a product and the current weight
  of each, in the order they were first used.
`
}

func (c *unitsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "p", "", "product to report on")
}

func (c *unitsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.product == "" {
		fmt.Fprintln(os.Stderr, "Error: -p <product> is required")
		return subcommands.ExitUsageError
	}

	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	p := l.Products().Get(c.product)
	if p == nil {
		fmt.Fprintf(os.Stderr, "Error: product %q does not exist\n", c.product)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.UnitsMarkdown(p))
	return subcommands.ExitSuccess
}
