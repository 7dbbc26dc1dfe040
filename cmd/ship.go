package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/mangoclub/mango"
)

type shipCmd struct {
	product    string
	quantity   string
	unit       string
	unitWeight float64
	contact    string
}

func (*shipCmd) Name() string     { return "ship" }
func (*shipCmd) Synopsis() string { return "record outgoing stock (sale, shipment)" }
func (*shipCmd) Usage() string {
	return `mango ship -p <product> -q <quantity> -u <unit> [-w <lbs-per-unit>] [-c <contact>]

  Removes stock from a product's pool. A shipment that exceeds the pool
  is rejected and nothing is recorded.
`
}

func (c *shipCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "p", "", "product to ship")
	f.StringVar(&c.quantity, "q", "", "number of units shipped")
	f.StringVar(&c.unit, "u", "", "container unit name, e.g. 'Small Box'")
	f.Float64Var(&c.unitWeight, "w", 0, "weight of one unit in pounds")
	f.StringVar(&c.contact, "c", "", "customer the stock went to")
}

func (c *shipCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return applyMovement(c.product, c.quantity, c.unit, c.unitWeight, c.contact, mango.Out)
}
