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

type productsCmd struct {
	category string
}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list products with their stock pools" }
func (*productsCmd) Usage() string {
	return `mango products [-c <category>]

  Lists every product with its category, live pool and known units,
  sorted by name. -c restricts the listing to one category.
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "only show products of this category")
}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	filtered := false
	var category mango.Category
	if c.category != "" {
		category, err = mango.ParseCategory(c.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filtered = true
	}

	var products []*mango.Product
	for _, name := range l.Products().SortedNames() {
		p := l.Products().Get(name)
		if filtered && p.Category() != category {
			continue
		}
		products = append(products, p)
	}

	printMarkdown(renderer.ProductsMarkdown(products))
	return subcommands.ExitSuccess
}
