package mango

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InitialUnknown is the synthetic vendor bucket that absorbs stock which
// entered the pool before logging began (or any unaccounted drift).
const InitialUnknown = "Initial / Unknown"

// balanceTolerance absorbs floating-point noise in the balance gap. It is
// a fixed property of the reconciliation, not a business threshold.
var balanceTolerance = decimal.New(1, -1) // 0.1 lbs

// FlowNode is a labeled node of the reconciliation graph. IDs are
// namespaced ("in:", "out:", "farm", "stock") because the same contact can
// appear on both sides of the farm.
type FlowNode struct {
	ID    string
	Label string
}

// FlowEdge is a directed, weighted edge between two node IDs.
type FlowEdge struct {
	From   string
	To     string
	Weight Weight
}

// FlowGraph is the balanced vendor→farm→customer flow derived from one
// product's history. It is a pure data structure: rendering is someone
// else's job.
type FlowGraph struct {
	Product      string
	Nodes        []FlowNode
	Edges        []FlowEdge
	TotalIn      Weight
	TotalOut     Weight
	CurrentStock Weight
	// Gap is the signed balance gap (totalOut + currentStock) - totalIn.
	// Positive beyond tolerance it becomes the Initial / Unknown inflow;
	// negative beyond tolerance it is recorded here and nothing else.
	Gap Weight
}

// flowBuckets aggregates weights per contact in first-seen order, which
// keeps the graph deterministic across calls.
type flowBuckets struct {
	names  []string
	totals map[string]Weight
}

func newFlowBuckets() *flowBuckets {
	return &flowBuckets{totals: make(map[string]Weight)}
}

func (b *flowBuckets) add(name string, w Weight) {
	if _, ok := b.totals[name]; !ok {
		b.names = append(b.names, name)
	}
	b.totals[name] = b.totals[name].Add(w)
}

// BuildFlowGraph derives the flow graph for one product from the history
// log and the live pool.
//
// A product with no recorded movements yields ErrNoHistory, which is a
// valid empty state rather than a failure. The current stock is read from
// the pool, not re-derived from the log: the log may predate the product
// or have been truncated, and the difference surfaces as the balance gap.
func (l *Ledger) BuildFlowGraph(product string) (*FlowGraph, error) {
	p := l.products.Get(product)
	if p == nil {
		return nil, NewDomainError(ErrCodeUnknownProduct,
			fmt.Sprintf("product %q does not exist", product))
	}

	inFlows := newFlowBuckets()
	outFlows := newFlowBuckets()
	var totalIn, totalOut Weight
	var seen bool

	// Running totals accumulate over every entry, not over the buckets,
	// so both sums see the entries in the same order.
	for e := range l.history.Chronological(product) {
		seen = true
		switch e.Action {
		case In:
			inFlows.add(e.Contact, e.WeightChange)
			totalIn = totalIn.Add(e.WeightChange)
		case Out:
			outFlows.add(e.Contact, e.WeightChange)
			totalOut = totalOut.Add(e.WeightChange)
		}
	}
	if !seen {
		return nil, fmt.Errorf("%w for %s", ErrNoHistory, product)
	}

	stock := p.Pool()
	gap := totalOut.Add(stock).Sub(totalIn)
	if gap.IsPositive() && gap.value.GreaterThan(balanceTolerance) {
		inFlows.add(InitialUnknown, gap)
		totalIn = totalIn.Add(gap)
	}

	g := &FlowGraph{
		Product:      product,
		TotalIn:      totalIn,
		TotalOut:     totalOut,
		CurrentStock: stock,
		Gap:          gap,
	}

	for _, name := range inFlows.names {
		g.Nodes = append(g.Nodes, FlowNode{ID: "in:" + name, Label: name})
	}
	g.Nodes = append(g.Nodes, FlowNode{ID: "farm", Label: "Farm"})
	for _, name := range outFlows.names {
		g.Nodes = append(g.Nodes, FlowNode{ID: "out:" + name, Label: name})
	}
	g.Nodes = append(g.Nodes, FlowNode{ID: "stock", Label: fmt.Sprintf("Current Stock (%s)", stock.Display())})

	for _, name := range inFlows.names {
		g.Edges = append(g.Edges, FlowEdge{From: "in:" + name, To: "farm", Weight: inFlows.totals[name]})
	}
	for _, name := range outFlows.names {
		g.Edges = append(g.Edges, FlowEdge{From: "farm", To: "out:" + name, Weight: outFlows.totals[name]})
	}
	if stock.IsPositive() {
		g.Edges = append(g.Edges, FlowEdge{From: "farm", To: "stock", Weight: stock})
	}
	return g, nil
}
