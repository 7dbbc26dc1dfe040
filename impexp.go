package mango

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// ManifestMapping tells the importer where to find each field inside a
// supplier's delivery manifest. Suppliers never agree on a schema, so the
// mapping is a set of jsonpath expressions instead of a fixed struct.
//
// Records is evaluated against the whole document and must yield a list;
// the field paths are evaluated against each record. UnitWeight and
// Contact are optional: a missing unit weight falls back to the product's
// catalog, a missing contact falls back to the manifest-level default.
type ManifestMapping struct {
	Records    string
	Product    string
	Quantity   string
	Unit       string
	UnitWeight string
	Contact    string
}

// DefaultManifestMapping matches the plain manifest layout:
//
//	{"deliveries": [{"product": ..., "quantity": ..., "unit": ..., "unit_weight": ..., "from": ...}]}
func DefaultManifestMapping() ManifestMapping {
	return ManifestMapping{
		Records:    "$.deliveries[*]",
		Product:    "$.product",
		Quantity:   "$.quantity",
		Unit:       "$.unit",
		UnitWeight: "$.unit_weight",
		Contact:    "$.from",
	}
}

// ImportManifest reads a JSON delivery manifest and applies one IN
// movement per record, in document order. Contact names every movement's
// source when the record has none.
//
// The import is not atomic across records: each movement commits (and
// persists) independently, and the first failing record stops the run.
// Receipts for the records already applied are returned alongside the
// error so the caller can report how far the import got.
func (l *Ledger) ImportManifest(r io.Reader, mapping ManifestMapping, contact string) ([]*Receipt, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("manifest is not valid JSON: %w", err)
	}

	jval, err := jsonpath.Get(mapping.Records, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating records path %q: %w", mapping.Records, err)
	}
	records, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("records path %q did not yield a list", mapping.Records)
	}

	var receipts []*Receipt
	for i, record := range records {
		m, err := decodeManifestRecord(record, mapping, contact)
		if err != nil {
			return receipts, fmt.Errorf("record %d: %w", i, err)
		}
		receipt, err := l.Apply(m)
		if err != nil {
			return receipts, fmt.Errorf("record %d (%s): %w", i, m.Product, err)
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}

func decodeManifestRecord(record any, mapping ManifestMapping, fallbackContact string) (Movement, error) {
	product, err := manifestString(record, mapping.Product)
	if err != nil {
		return Movement{}, fmt.Errorf("product: %w", err)
	}
	unit, err := manifestString(record, mapping.Unit)
	if err != nil {
		return Movement{}, fmt.Errorf("unit: %w", err)
	}
	qty, err := manifestNumber(record, mapping.Quantity)
	if err != nil {
		return Movement{}, fmt.Errorf("quantity: %w", err)
	}

	m := NewReceive(product, qty, unit, Weight{}, fallbackContact)

	if mapping.UnitWeight != "" {
		if w, err := manifestNumber(record, mapping.UnitWeight); err == nil {
			m.UnitWeight = Lbs(w)
		}
	}
	if mapping.Contact != "" {
		if c, err := manifestString(record, mapping.Contact); err == nil && c != "" {
			m.Contact = c
		}
	}
	return m, nil
}

func manifestGet(record any, path string) (any, error) {
	jval, err := jsonpath.Get(path, record)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer
	// or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return nil, fmt.Errorf("%q yielded nothing", path)
		}
		jval = jlist[0]
	}
	return jval, nil
}

func manifestString(record any, path string) (string, error) {
	jval, err := manifestGet(record, path)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%q is not a string: %v", path, jval)
	}
	return s, nil
}

func manifestNumber(record any, path string) (decimal.Decimal, error) {
	jval, err := manifestGet(record, path)
	if err != nil {
		return decimal.Decimal{}, err
	}
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		// Some exports quote their numbers, and some use a decimal comma.
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return decimal.Decimal{}, fmt.Errorf("%q is an invalid number %q", path, v)
		}
		return decimal.NewFromString(s)
	default:
		return decimal.Decimal{}, fmt.Errorf("%q is not a number: %v", path, jval)
	}
}
