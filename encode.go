package mango

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// This file persists the whole ledger as a single human-readable JSON
// snapshot. The write is whole-file: there are no incremental updates, so
// a loaded snapshot is always exactly what was last saved, including the
// insertion order of every object.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeLedger writes the canonical snapshot of the ledger to w.
func EncodeLedger(w io.Writer, l *Ledger) error {
	var root jsonObjectWriter

	var products jsonObjectWriter
	for p := range l.products.Products() {
		raw, err := encodeProduct(p)
		if err != nil {
			return fmt.Errorf("cannot encode product %q: %w", p.Name(), err)
		}
		products.AppendRaw(p.Name(), raw)
	}
	productsRaw, err := products.MarshalJSON()
	if err != nil {
		return err
	}
	root.AppendRaw("products", productsRaw)

	var history bytes.Buffer
	history.WriteString("[")
	first := true
	for e := range l.history.Entries() {
		raw, err := encodeEntry(e)
		if err != nil {
			return fmt.Errorf("cannot encode history entry %d: %w", e.Seq, err)
		}
		if !first {
			history.WriteString(",")
		}
		first = false
		history.Write(raw)
	}
	history.WriteString("]")
	root.AppendRaw("history", history.Bytes())

	var contacts jsonObjectWriter
	for c := range l.contacts.Contacts() {
		var jc jsonObjectWriter
		jc.Append("type", c.Role)
		raw, err := jc.MarshalJSON()
		if err != nil {
			return err
		}
		contacts.AppendRaw(c.Name, raw)
	}
	contactsRaw, err := contacts.MarshalJSON()
	if err != nil {
		return err
	}
	root.AppendRaw("contacts", contactsRaw)

	data, err := root.MarshalJSON()
	if err != nil {
		return err
	}

	// Indented output keeps the snapshot diffable by hand.
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "    "); err != nil {
		return fmt.Errorf("cannot indent snapshot: %w", err)
	}
	pretty.WriteString("\n")
	_, err = w.Write(pretty.Bytes())
	return err
}

func encodeProduct(p *Product) ([]byte, error) {
	var units jsonObjectWriter
	for u := range p.Units().Units() {
		units.Append(u.Name, u.Weight)
	}
	unitsRaw, err := units.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var jp jsonObjectWriter
	jp.Append("category", p.Category())
	jp.Append("icon", p.Icon())
	jp.Append("pool", p.Pool())
	jp.AppendRaw("known_units", unitsRaw)
	return jp.MarshalJSON()
}

func encodeEntry(e Entry) ([]byte, error) {
	var je jsonObjectWriter
	je.Append("timestamp", e.Timestamp.Format(TimestampFormat))
	je.Append("product", e.Product)
	je.Append("action", e.Action)
	je.Append("quantity", e.Quantity)
	je.Append("unit", e.UnitName)
	je.Append("qty_display", e.QtyDisplay)
	je.Append("weight_change", e.WeightChange)
	je.Append("pool_after", e.PoolAfter)
	je.Append("contact", e.Contact)
	return je.MarshalJSON()
}

// DecodeLedger reads a snapshot produced by EncodeLedger and rebuilds the
// ledger, preserving the insertion order of products, units and contacts.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot: %w", err)
	}

	l := NewLedger()
	root, err := decodeOrderedObject(data)
	if err != nil {
		return nil, fmt.Errorf("snapshot is not a JSON object: %w", err)
	}

	for _, field := range root {
		switch field.key {
		case "products":
			if err := decodeProducts(l.products, field.raw); err != nil {
				return nil, err
			}
		case "history":
			if err := decodeHistory(l.history, field.raw); err != nil {
				return nil, err
			}
		case "contacts":
			if err := decodeContacts(l.contacts, field.raw); err != nil {
				return nil, err
			}
		default:
			// Unknown top-level sections are tolerated for forward
			// compatibility, but dropped on the next save.
		}
	}
	return l, nil
}

func decodeProducts(s *Store, raw json.RawMessage) error {
	fields, err := decodeOrderedObject(raw)
	if err != nil {
		return fmt.Errorf("invalid products section: %w", err)
	}
	for _, f := range fields {
		// The icon is not read back: it is derived from the category.
		var jp struct {
			Category Category        `json:"category"`
			Pool     Weight          `json:"pool"`
			Units    json.RawMessage `json:"known_units"`
		}
		if err := json.Unmarshal(f.raw, &jp); err != nil {
			return fmt.Errorf("invalid product %q: %w", f.key, err)
		}

		units := NewUnitCatalog()
		if len(jp.Units) > 0 {
			unitFields, err := decodeOrderedObject(jp.Units)
			if err != nil {
				return fmt.Errorf("invalid unit catalog for %q: %w", f.key, err)
			}
			for _, uf := range unitFields {
				var w Weight
				if err := json.Unmarshal(uf.raw, &w); err != nil {
					return fmt.Errorf("invalid weight for unit %q of %q: %w", uf.key, f.key, err)
				}
				units.Learn(uf.key, w)
			}
		}
		if s.Get(f.key) != nil {
			return fmt.Errorf("product %q is defined twice in the snapshot", f.key)
		}
		s.restore(f.key, jp.Category, jp.Pool, units)
	}
	return nil
}

func decodeHistory(h *History, raw json.RawMessage) error {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("invalid history section: %w", err)
	}
	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		var je struct {
			Timestamp    string          `json:"timestamp"`
			Product      string          `json:"product"`
			Action       Action          `json:"action"`
			Quantity     decimal.Decimal `json:"quantity"`
			Unit         string          `json:"unit"`
			QtyDisplay   string          `json:"qty_display"`
			WeightChange Weight          `json:"weight_change"`
			PoolAfter    Weight          `json:"pool_after"`
			Contact      string          `json:"contact"`
		}
		if err := json.Unmarshal(item, &je); err != nil {
			return fmt.Errorf("invalid history entry %d: %w", i, err)
		}
		ts, err := time.ParseInLocation(TimestampFormat, je.Timestamp, time.Local)
		if err != nil {
			// Older snapshots recorded minutes only.
			ts, err = time.ParseInLocation("2006-01-02 15:04", je.Timestamp, time.Local)
			if err != nil {
				return fmt.Errorf("invalid timestamp in history entry %d: %w", i, err)
			}
		}
		contact := je.Contact
		if contact == "" {
			contact = Unspecified
		}
		entries = append(entries, Entry{
			Timestamp:    ts,
			Product:      je.Product,
			Action:       je.Action,
			Quantity:     je.Quantity,
			UnitName:     je.Unit,
			QtyDisplay:   je.QtyDisplay,
			WeightChange: je.WeightChange,
			PoolAfter:    je.PoolAfter,
			Contact:      contact,
		})
	}
	h.restore(entries)
	return nil
}

func decodeContacts(d *Directory, raw json.RawMessage) error {
	fields, err := decodeOrderedObject(raw)
	if err != nil {
		return fmt.Errorf("invalid contacts section: %w", err)
	}
	for _, f := range fields {
		var jc struct {
			Type Role `json:"type"`
		}
		if err := json.Unmarshal(f.raw, &jc); err != nil {
			return fmt.Errorf("invalid contact %q: %w", f.key, err)
		}
		if _, err := d.AddContact(f.key, jc.Type); err != nil {
			return fmt.Errorf("cannot restore contact %q: %w", f.key, err)
		}
	}
	return nil
}
