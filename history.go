package mango

import (
	"fmt"
	"iter"
	"time"

	"github.com/shopspring/decimal"
)

// TimestampFormat is the wall-clock format of history entries. Second
// resolution is enough for a single-writer ledger; the sequence number
// breaks ties.
const TimestampFormat = "2006-01-02 15:04:05"

// Entry is one committed stock movement. Entries are immutable once
// appended; the log always yields copies.
//
// WeightChange is always positive, the direction lives in Action.
// Quantity and UnitName are the verbatim user input; QtyDisplay is their
// composite and is never re-derived, because unit weights are mutable
// after the fact.
type Entry struct {
	Seq          int64 // monotonic, assigned by the log, not persisted
	Timestamp    time.Time
	Product      string
	Action       Action
	Quantity     decimal.Decimal
	UnitName     string
	QtyDisplay   string
	WeightChange Weight
	PoolAfter    Weight
	Contact      string
}

// SignedChange returns the weight change with the action's sign applied.
func (e Entry) SignedChange() Weight {
	if e.Action == Out {
		return e.WeightChange.Neg()
	}
	return e.WeightChange
}

// History is the append-only movement log for the whole store. It is held
// newest-first, the order it is presented and persisted in.
type History struct {
	entries []Entry // entries[0] is the newest
	nextSeq int64
}

// NewHistory creates an empty log.
func NewHistory() *History {
	return &History{}
}

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// append commits an entry at the head of the log and assigns its sequence
// number. Only the ledger calls this.
func (h *History) append(e Entry) Entry {
	e.Seq = h.nextSeq
	h.nextSeq++
	h.entries = append([]Entry{e}, h.entries...)
	return e
}

// restore rebuilds the log from decoded entries, given newest-first.
func (h *History) restore(newestFirst []Entry) {
	h.entries = newestFirst
	n := int64(len(newestFirst))
	for i := range h.entries {
		h.entries[i].Seq = n - 1 - int64(i)
	}
	h.nextSeq = n
}

// Entries yields all entries newest-first.
func (h *History) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range h.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// ProductEntries yields the entries for one product, newest-first.
func (h *History) ProductEntries(product string) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range h.entries {
			if e.Product != product {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Chronological yields the entries for one product oldest-first, the order
// a replay runs in.
func (h *History) Chronological(product string) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for i := len(h.entries) - 1; i >= 0; i-- {
			e := h.entries[i]
			if e.Product != product {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Replay re-applies the product's movements from a zero pool and checks
// that every recorded pool snapshot is reproduced exactly. It returns the
// final pool, or an error naming the first diverging entry.
//
// This is the core audit: if it fails, the log was tampered with or a
// writer bypassed the ledger.
func (h *History) Replay(product string) (Weight, error) {
	pool := Lbs(decimal.Zero)
	for e := range h.Chronological(product) {
		pool = pool.Add(e.SignedChange())
		if !pool.Equal(e.PoolAfter) {
			return pool, fmt.Errorf("history replay diverged at %s %s %s: computed pool %s, recorded %s",
				e.Timestamp.Format(TimestampFormat), e.Action, e.QtyDisplay, pool, e.PoolAfter)
		}
	}
	return pool, nil
}
