package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mangoclub/mango"
	"github.com/shopspring/decimal"
)

type receiveCmd struct {
	product    string
	quantity   string
	unit       string
	unitWeight float64
	contact    string
}

func (*receiveCmd) Name() string     { return "receive" }
func (*receiveCmd) Synopsis() string { return "record incoming stock (harvest, delivery)" }
func (*receiveCmd) Usage() string {
	return `mango receive -p <product> -q <quantity> -u <unit> [-w <lbs-per-unit>] [-c <contact>]

  Adds stock to a product's pool. The unit weight is required the first
  time a unit is used for a product; after that the learned weight is
  reused, and giving -w again redefines it.
`
}

func (c *receiveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "p", "", "product to receive")
	f.StringVar(&c.quantity, "q", "", "number of units received")
	f.StringVar(&c.unit, "u", "", "container unit name, e.g. 'Standard Crate'")
	f.Float64Var(&c.unitWeight, "w", 0, "weight of one unit in pounds")
	f.StringVar(&c.contact, "c", "", "vendor the stock came from")
}

func (c *receiveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return applyMovement(c.product, c.quantity, c.unit, c.unitWeight, c.contact, mango.In)
}

// applyMovement is the shared implementation of receive and ship.
func applyMovement(product, quantity, unit string, unitWeight float64, contact string, action mango.Action) subcommands.ExitStatus {
	if product == "" || quantity == "" || unit == "" {
		fmt.Fprintln(os.Stderr, "Error: -p, -q and -u are required")
		return subcommands.ExitUsageError
	}
	qty, err := decimal.NewFromString(quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid quantity %q: %v\n", quantity, err)
		return subcommands.ExitUsageError
	}

	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	m := mango.Movement{
		Product:  product,
		Action:   action,
		Quantity: qty,
		UnitName: unit,
		Contact:  contact,
	}
	if unitWeight != 0 {
		m.UnitWeight = mango.Lbs(unitWeight)
	}

	receipt, err := l.Apply(m)
	if status := reportMutation(err); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Println(receipt)
	return subcommands.ExitSuccess
}
