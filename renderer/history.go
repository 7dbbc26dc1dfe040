package renderer

import (
	"bytes"
	"fmt"

	"github.com/mangoclub/mango"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders history entries, newest first. An empty product
// name titles the report as store-wide.
func HistoryMarkdown(product string, entries []mango.Entry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if product != "" {
		doc.H1(fmt.Sprintf("History for %s", product))
	} else {
		doc.H1("History")
	}

	if len(entries) == 0 {
		doc.PlainText("No movements recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Product", "Action", "Quantity", "Change", "Pool After", "Contact"},
		Rows:   [][]string{},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.Timestamp.Format(mango.TimestampFormat),
			e.Product,
			actionCell(e.Action),
			e.QtyDisplay,
			signedCell(e),
			e.PoolAfter.Display(),
			e.Contact,
		})
	}
	doc.Table(table)

	return doc.String()
}

func actionCell(a mango.Action) string {
	if a == mango.Out {
		return "🔻 OUT"
	}
	return "🔺 IN"
}

func signedCell(e mango.Entry) string {
	if e.Action == mango.Out {
		return "-" + e.WeightChange.Display()
	}
	return "+" + e.WeightChange.Display()
}
