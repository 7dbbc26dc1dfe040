package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mangoclub/mango"
	md "github.com/nao1215/markdown"
)

// FlowMarkdown renders a reconciliation graph as a summary table followed
// by a mermaid flowchart, left to right: sources into the farm, the farm
// into destinations and remaining stock.
func FlowMarkdown(g *mango.FlowGraph) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Flow for %s", g.Product))

	summary := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Metric", "Weight"},
		Rows: [][]string{
			{"Total In", g.TotalIn.Display()},
			{"Total Out", g.TotalOut.Display()},
			{"Current Stock", g.CurrentStock.Display()},
			{"Balance Gap", g.Gap.Display()},
		},
	}
	doc.Table(summary)

	doc.CodeBlocks(md.SyntaxHighlightMermaid, mermaidFlowchart(g))

	return doc.String()
}

// mermaidFlowchart builds the chart body. Node IDs from the graph are
// namespaced with characters mermaid rejects, so each node gets a short
// positional alias instead.
func mermaidFlowchart(g *mango.FlowGraph) string {
	alias := make(map[string]string, len(g.Nodes))
	var b strings.Builder
	b.WriteString("flowchart LR")
	for i, n := range g.Nodes {
		a := fmt.Sprintf("n%d", i)
		alias[n.ID] = a
		fmt.Fprintf(&b, "\n    %s[%q]", a, n.Label)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "\n    %s -->|%s| %s", alias[e.From], e.Weight.Display(), alias[e.To])
	}
	return b.String()
}
