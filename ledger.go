package mango

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Movement is a request to move stock in or out of a product's pool,
// denominated in an arbitrary container unit.
//
// UnitWeight is the weight of one container in pounds. A positive value
// defines (or redefines) the unit; a zero value reuses the weight already
// known by the product's catalog.
type Movement struct {
	Product    string
	Action     Action
	Quantity   decimal.Decimal
	UnitName   string
	UnitWeight Weight
	Contact    string    // empty means Unspecified
	Timestamp  time.Time // zero means now
}

// NewReceive creates an IN movement (harvest, delivery).
func NewReceive(product string, qty decimal.Decimal, unitName string, unitWeight Weight, contact string) Movement {
	return Movement{Product: product, Action: In, Quantity: qty, UnitName: unitName, UnitWeight: unitWeight, Contact: contact}
}

// NewShip creates an OUT movement (sale, shipment).
func NewShip(product string, qty decimal.Decimal, unitName string, unitWeight Weight, contact string) Movement {
	return Movement{Product: product, Action: Out, Quantity: qty, UnitName: unitName, UnitWeight: unitWeight, Contact: contact}
}

// Receipt summarizes a committed movement.
type Receipt struct {
	Entry Entry
	Total Weight // weight moved, canonical pounds
	Pool  Weight // pool after the movement
}

func (r *Receipt) String() string {
	return fmt.Sprintf("%s %s of %s, pool is now %s",
		r.Entry.Action, r.Total.Display(), r.Entry.Product, r.Pool.Display())
}

// Persister writes the whole ledger snapshot. From the ledger's point of
// view the write is atomic: a reader never observes a partial snapshot.
type Persister interface {
	Persist(l *Ledger) error
}

// Ledger is the transactional core: the product store, the contact
// directory and the append-only history, mutated only through Apply,
// AddProduct and AddContact, each followed by a snapshot write.
//
// The ledger is a single shared mutable resource with exactly one writer
// process; there is no locking and no version check.
type Ledger struct {
	products  *Store
	contacts  *Directory
	history   *History
	persister Persister
	now       func() time.Time
}

// NewLedger creates an empty ledger with no persister (mutations then
// live only in memory, which the tests rely on).
func NewLedger() *Ledger {
	return &Ledger{
		products: NewStore(),
		contacts: NewDirectory(),
		history:  NewHistory(),
		now:      time.Now,
	}
}

// SetPersister installs the snapshot gateway called after every mutation.
func (l *Ledger) SetPersister(p Persister) { l.persister = p }

func (l *Ledger) Products() *Store     { return l.products }
func (l *Ledger) Contacts() *Directory { return l.contacts }
func (l *Ledger) History() *History    { return l.history }

// AddProduct creates a product and persists the snapshot.
func (l *Ledger) AddProduct(name string, category Category) (*Product, error) {
	p, err := l.products.AddProduct(name, category)
	if err != nil {
		return nil, err
	}
	return p, l.persist()
}

// AddContact registers a contact and persists the snapshot.
func (l *Ledger) AddContact(name string, role Role) (Contact, error) {
	c, err := l.contacts.AddContact(name, role)
	if err != nil {
		return Contact{}, err
	}
	return c, l.persist()
}

// validate checks a movement before any mutation and resolves the unit
// weight. It returns the product and the effective per-unit weight.
func (l *Ledger) validate(m Movement) (*Product, Weight, error) {
	p := l.products.Get(m.Product)
	if p == nil {
		return nil, Weight{}, NewDomainError(ErrCodeUnknownProduct,
			fmt.Sprintf("product %q does not exist", m.Product))
	}
	if !m.Quantity.IsPositive() {
		return nil, Weight{}, NewDomainError(ErrCodeInvalidQuantity,
			fmt.Sprintf("quantity must be positive, got %s", m.Quantity))
	}
	if m.UnitName == "" {
		return nil, Weight{}, NewDomainError(ErrCodeInvalidUnitWeight, "unit name is missing")
	}
	if m.UnitWeight.IsNegative() {
		return nil, Weight{}, NewDomainError(ErrCodeInvalidUnitWeight,
			fmt.Sprintf("unit weight must be positive, got %s", m.UnitWeight))
	}
	unitWeight, err := p.ResolveUnitWeight(m.UnitName, m.UnitWeight)
	if err != nil {
		return nil, Weight{}, err
	}
	return p, unitWeight, nil
}

// Apply commits a movement: validates, mutates the pool, learns the unit,
// appends the history entry and persists the snapshot.
//
// Validation failures leave the ledger untouched. Once mutation starts
// there is no rollback: a failed snapshot write returns an error wrapping
// ErrPersistence while the in-memory commit stands for the process
// lifetime.
func (l *Ledger) Apply(m Movement) (*Receipt, error) {
	p, unitWeight, err := l.validate(m)
	if err != nil {
		return nil, err
	}

	total := unitWeight.MulQty(m.Quantity)
	if m.Action == Out && p.pool.LessThan(total) {
		return nil, &InsufficientStockError{Product: p.name, Required: total, Available: p.pool}
	}

	// Last early-exit point above. The mutations below commit together.
	if m.Action == Out {
		p.pool = p.pool.Sub(total)
	} else {
		p.pool = p.pool.Add(total)
	}
	p.units.Learn(m.UnitName, unitWeight)

	when := m.Timestamp
	if when.IsZero() {
		when = l.now()
	}
	contact := m.Contact
	if contact == "" {
		contact = Unspecified
	}
	entry := l.history.append(Entry{
		Timestamp:    when.Truncate(time.Second),
		Product:      p.name,
		Action:       m.Action,
		Quantity:     m.Quantity,
		UnitName:     m.UnitName,
		QtyDisplay:   fmt.Sprintf("%s %s", m.Quantity, m.UnitName),
		WeightChange: total,
		PoolAfter:    p.pool,
		Contact:      contact,
	})

	receipt := &Receipt{Entry: entry, Total: total, Pool: p.pool}
	return receipt, l.persist()
}

func (l *Ledger) persist() error {
	if l.persister == nil {
		return nil
	}
	if err := l.persister.Persist(l); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
