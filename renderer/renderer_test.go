package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/mangoclub/mango"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// farmLedger builds an in-memory ledger with a little activity:
// 2 crates of tomatoes in from Green Valley, 1 crate out to City Market.
func farmLedger(t *testing.T) *mango.Ledger {
	t.Helper()
	l := mango.NewLedger()
	if _, err := l.AddProduct("Heirloom Tomato", mango.Vegetable); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddContact("Green Valley", mango.Vendor); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddContact("City Market", mango.Customer); err != nil {
		t.Fatal(err)
	}

	day := time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)
	in := mango.NewReceive("Heirloom Tomato", decimal.NewFromInt(2), "Standard Crate", mango.Weight{}, "Green Valley")
	in.Timestamp = day
	if _, err := l.Apply(in); err != nil {
		t.Fatal(err)
	}
	out := mango.NewShip("Heirloom Tomato", decimal.NewFromInt(1), "Standard Crate", mango.Weight{}, "City Market")
	out.Timestamp = day.Add(2 * time.Hour)
	if _, err := l.Apply(out); err != nil {
		t.Fatal(err)
	}
	return l
}

// mustRenderMarkdown parses the rendered report and fails the test if it
// is not well-formed markdown with exactly one top-level heading.
func mustRenderMarkdown(t *testing.T, report string) ast.Node {
	t.Helper()
	source := []byte(report)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	h1 := 0
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			h1++
		}
		return ast.WalkContinue, nil
	})
	if h1 != 1 {
		t.Fatalf("report has %d top-level headings, want 1:\n%s", h1, report)
	}
	return root
}

func TestProductsMarkdown(t *testing.T) {
	l := farmLedger(t)
	var products []*mango.Product
	for p := range l.Products().Products() {
		products = append(products, p)
	}

	report := ProductsMarkdown(products)
	mustRenderMarkdown(t, report)

	for _, want := range []string{
		"🥦 Heirloom Tomato",
		"Vegetable",
		"20 lbs", // pool after 2 crates in, 1 crate out
		"Standard Crate (20 lbs)",
		"Small Box (10 lbs)",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report is missing %q:\n%s", want, report)
		}
	}
}

func TestProductsMarkdownEmpty(t *testing.T) {
	report := ProductsMarkdown(nil)
	mustRenderMarkdown(t, report)
	if !strings.Contains(report, "No products yet.") {
		t.Errorf("empty report should say so:\n%s", report)
	}
}

func TestUnitsMarkdown(t *testing.T) {
	l := farmLedger(t)

	report := UnitsMarkdown(l.Products().Get("Heirloom Tomato"))
	mustRenderMarkdown(t, report)

	if !strings.Contains(report, "Units for 🥦 Heirloom Tomato") {
		t.Errorf("report is missing the title:\n%s", report)
	}
	if !strings.Contains(report, "Standard Crate") || !strings.Contains(report, "20 lbs") {
		t.Errorf("report is missing the learned unit:\n%s", report)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	l := farmLedger(t)
	var entries []mango.Entry
	for e := range l.History().Entries() {
		entries = append(entries, e)
	}

	report := HistoryMarkdown("Heirloom Tomato", entries)
	mustRenderMarkdown(t, report)

	if !strings.Contains(report, "History for Heirloom Tomato") {
		t.Errorf("report is missing the title:\n%s", report)
	}
	// Newest first: the OUT movement comes before the IN movement.
	outAt := strings.Index(report, "🔻 OUT")
	inAt := strings.Index(report, "🔺 IN")
	if outAt < 0 || inAt < 0 || outAt > inAt {
		t.Errorf("entries are not newest-first (OUT at %d, IN at %d):\n%s", outAt, inAt, report)
	}
	for _, want := range []string{"+40 lbs", "-20 lbs", "2 Standard Crate", "Green Valley", "City Market"} {
		if !strings.Contains(report, want) {
			t.Errorf("report is missing %q:\n%s", want, report)
		}
	}
}

func TestContactsMarkdown(t *testing.T) {
	l := farmLedger(t)
	var contacts []mango.Contact
	for c := range l.Contacts().Contacts() {
		contacts = append(contacts, c)
	}

	report := ContactsMarkdown(contacts)
	mustRenderMarkdown(t, report)

	for _, want := range []string{"Green Valley", "Vendor", "City Market", "Customer"} {
		if !strings.Contains(report, want) {
			t.Errorf("report is missing %q:\n%s", want, report)
		}
	}
}

func TestFlowMarkdown(t *testing.T) {
	l := farmLedger(t)
	g, err := l.BuildFlowGraph("Heirloom Tomato")
	if err != nil {
		t.Fatal(err)
	}

	report := FlowMarkdown(g)
	root := mustRenderMarkdown(t, report)

	// The chart must be a fenced mermaid block.
	source := []byte(report)
	var mermaid int
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if fcb, ok := n.(*ast.FencedCodeBlock); ok && fcb.Info != nil {
			if string(fcb.Info.Segment.Value(source)) == "mermaid" {
				mermaid++
			}
		}
		return ast.WalkContinue, nil
	})
	if mermaid != 1 {
		t.Fatalf("report has %d mermaid blocks, want 1:\n%s", mermaid, report)
	}

	for _, want := range []string{
		"Flow for Heirloom Tomato",
		"flowchart LR",
		`"Green Valley"`,
		`"Farm"`,
		`"City Market"`,
		`"Current Stock (20 lbs)"`,
		"|40 lbs|",
		"|20 lbs|",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report is missing %q:\n%s", want, report)
		}
	}
}
