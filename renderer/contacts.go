package renderer

import (
	"bytes"

	"github.com/mangoclub/mango"
	md "github.com/nao1215/markdown"
)

// ContactsMarkdown renders the contact directory in insertion order.
func ContactsMarkdown(contacts []mango.Contact) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Contacts")

	if len(contacts) == 0 {
		doc.PlainText("No contacts yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Name", "Type"},
		Rows:   [][]string{},
	}
	for _, c := range contacts {
		table.Rows = append(table.Rows, []string{c.Name, string(c.Role)})
	}
	doc.Table(table)

	return doc.String()
}
