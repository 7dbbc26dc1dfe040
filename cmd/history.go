package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mangoclub/mango"
	"github.com/mangoclub/mango/renderer"
)

type historyCmd struct {
	product string
	head    int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list recorded stock movements, newest first" }
func (*historyCmd) Usage() string {
	return `mango history [-p <product>] [-head <n>]

  Lists the movement log, newest first. -p restricts it to one product,
  -head shows only the most recent N entries.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "p", "", "only show movements of this product")
	f.IntVar(&c.head, "head", 0, "show only the first N entries")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.product != "" && l.Products().Get(c.product) == nil {
		fmt.Fprintf(os.Stderr, "Error: product %q does not exist\n", c.product)
		return subcommands.ExitFailure
	}

	entries := make([]mango.Entry, 0, l.History().Len())
	seq := l.History().Entries()
	if c.product != "" {
		seq = l.History().ProductEntries(c.product)
	}
	for e := range seq {
		entries = append(entries, e)
	}
	if c.head > 0 && len(entries) > c.head {
		entries = entries[:c.head]
	}

	printMarkdown(renderer.HistoryMarkdown(c.product, entries))
	return subcommands.ExitSuccess
}
