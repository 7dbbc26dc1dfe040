package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mangoclub/mango"
)

type addProductCmd struct {
	name     string
	category string
}

func (*addProductCmd) Name() string     { return "add-product" }
func (*addProductCmd) Synopsis() string { return "register a new product with an empty pool" }
func (*addProductCmd) Usage() string {
	return `mango add-product -n <name> [-c <category>]

  Registers a product. The name is the product's permanent identity and
  must be unique. The category (Fruit, Vegetable, Dairy, Meat, Other)
  only picks the display icon.
`
}

func (c *addProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "product name, unique and case-sensitive")
	f.StringVar(&c.category, "c", "Other", "product category")
}

func (c *addProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n <name> is required")
		return subcommands.ExitUsageError
	}
	category, err := mango.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	p, err := l.AddProduct(c.name, category)
	if status := reportMutation(err); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Added product %s %s (%s)\n", p.Icon(), p.Name(), p.Category())
	return subcommands.ExitSuccess
}
