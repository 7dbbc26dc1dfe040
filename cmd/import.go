package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mangoclub/mango"
)

type importCmd struct {
	file    string
	from    string
	mapping mango.ManifestMapping
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a JSON delivery manifest as IN movements" }
func (*importCmd) Usage() string {
	return `mango import -f <manifest.json> [-from <vendor>] [path overrides]

  Reads a supplier's delivery manifest and records one incoming movement
  per record. The default layout is
  {"deliveries": [{"product", "quantity", "unit", "unit_weight", "from"}]};
  the path flags adapt the importer to other layouts using jsonpath
  expressions.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	defaults := mango.DefaultManifestMapping()
	f.StringVar(&c.file, "f", "", "manifest file to import")
	f.StringVar(&c.from, "from", "", "vendor for records that name none")
	f.StringVar(&c.mapping.Records, "records", defaults.Records, "jsonpath to the list of delivery records")
	f.StringVar(&c.mapping.Product, "product-path", defaults.Product, "jsonpath to the product name, per record")
	f.StringVar(&c.mapping.Quantity, "quantity-path", defaults.Quantity, "jsonpath to the unit count, per record")
	f.StringVar(&c.mapping.Unit, "unit-path", defaults.Unit, "jsonpath to the unit name, per record")
	f.StringVar(&c.mapping.UnitWeight, "weight-path", defaults.UnitWeight, "jsonpath to the weight per unit, per record")
	f.StringVar(&c.mapping.Contact, "contact-path", defaults.Contact, "jsonpath to the vendor name, per record")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f <manifest.json> is required")
		return subcommands.ExitUsageError
	}

	manifest, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening manifest %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer manifest.Close()

	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	receipts, err := l.ImportManifest(manifest, c.mapping, c.from)
	for _, r := range receipts {
		fmt.Println(r)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: import stopped after %d records: %v\n", len(receipts), err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d deliveries from %s\n", len(receipts), c.file)
	return subcommands.ExitSuccess
}
