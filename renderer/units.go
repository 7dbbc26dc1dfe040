package renderer

import (
	"bytes"
	"fmt"

	"github.com/mangoclub/mango"
	md "github.com/nao1215/markdown"
)

// UnitsMarkdown renders one product's unit catalog in insertion order,
// oldest unit first.
func UnitsMarkdown(p *mango.Product) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Units for %s %s", p.Icon(), p.Name()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Unit", "Weight"},
		Rows:   [][]string{},
	}
	for u := range p.Units().Units() {
		table.Rows = append(table.Rows, []string{u.Name, u.Weight.Display()})
	}
	doc.Table(table)

	return doc.String()
}
