package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mangoclub/mango"
	md "github.com/nao1215/markdown"
)

// ProductsMarkdown renders the product listing. The caller picks and
// orders the products; a typical listing is sorted by name.
func ProductsMarkdown(products []*mango.Product) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Products")

	if len(products) == 0 {
		doc.PlainText("No products yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Product", "Category", "Pool", "Known Units"},
		Rows:   [][]string{},
	}
	for _, p := range products {
		var units []string
		for u := range p.Units().Units() {
			units = append(units, fmt.Sprintf("%s (%s)", u.Name, u.Weight.Display()))
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%s %s", p.Icon(), p.Name()),
			p.Category().String(),
			p.Pool().Display(),
			strings.Join(units, ", "),
		})
	}
	doc.Table(table)

	return doc.String()
}
