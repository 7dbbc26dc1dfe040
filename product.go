package mango

import (
	"fmt"
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// Unit is a named container with the weight of one container in pounds.
type Unit struct {
	Name   string
	Weight Weight
}

// UnitCatalog maps unit names to their weight-per-unit for one product.
// It preserves first-seen insertion order so that encoding a snapshot and
// decoding it back yields the identical catalog.
//
// The catalog is owned exclusively by its Product and mutates only through
// transactions (Learn).
type UnitCatalog struct {
	names   []string
	weights map[string]Weight
}

// NewUnitCatalog creates an empty catalog.
func NewUnitCatalog() *UnitCatalog {
	return &UnitCatalog{weights: make(map[string]Weight)}
}

// Lookup returns the weight of one unit, and whether the unit is known.
func (c *UnitCatalog) Lookup(name string) (Weight, bool) {
	w, ok := c.weights[name]
	return w, ok
}

// Learn upserts a unit. The weight is last-write-wins: a known unit gets
// its weight overwritten by the value used in the latest transaction.
func (c *UnitCatalog) Learn(name string, weight Weight) {
	if _, ok := c.weights[name]; !ok {
		c.names = append(c.names, name)
	}
	c.weights[name] = weight
}

// Len returns the number of known units.
func (c *UnitCatalog) Len() int { return len(c.names) }

// Units yields the catalog in insertion order.
func (c *UnitCatalog) Units() iter.Seq[Unit] {
	return func(yield func(Unit) bool) {
		for _, name := range c.names {
			if !yield(Unit{Name: name, Weight: c.weights[name]}) {
				return
			}
		}
	}
}

// Product is a farm product tracked in the canonical weight unit.
//
// The pool never goes negative: a transaction that would overdraw it is
// rejected before any mutation. Pool and catalog mutate only through the
// ledger.
type Product struct {
	name     string
	category Category
	pool     Weight
	units    *UnitCatalog
}

func (p *Product) Name() string        { return p.name }
func (p *Product) Category() Category  { return p.category }
func (p *Product) Icon() string        { return p.category.Icon() }
func (p *Product) Pool() Weight        { return p.pool }
func (p *Product) Units() *UnitCatalog { return p.units }

// ResolveUnitWeight picks the weight of one unit for a movement. A positive
// given weight wins (and will be learned); otherwise the catalog answers.
func (p *Product) ResolveUnitWeight(unitName string, given Weight) (Weight, error) {
	if given.IsPositive() {
		return given, nil
	}
	if w, ok := p.units.Lookup(unitName); ok {
		return w, nil
	}
	return Weight{}, NewDomainError(ErrCodeInvalidUnitWeight,
		fmt.Sprintf("unit %q is not known for %s and no positive weight was given", unitName, p.name))
}

// Store holds all products, keyed by exact name. Insertion order is
// preserved for snapshot round-trips; listings sort on demand.
type Store struct {
	names    []string
	products map[string]*Product
	defaults []Unit
}

// DefaultUnits returns the conventional catalog seed for new products.
func DefaultUnits() []Unit {
	return []Unit{
		{Name: "Standard Crate", Weight: Lbs(20.0)},
		{Name: "Small Box", Weight: Lbs(10.0)},
	}
}

// NewStore creates an empty product store seeded with the default units.
func NewStore() *Store {
	return NewStoreWithDefaults(DefaultUnits())
}

// NewStoreWithDefaults creates an empty store with a custom unit seed for
// new products. The defaults are a convention, not part of the format.
func NewStoreWithDefaults(defaults []Unit) *Store {
	return &Store{
		products: make(map[string]*Product),
		defaults: defaults,
	}
}

// AddProduct creates a product with a zero pool and the seeded catalog.
// The name is a case-sensitive primary key; adding it twice fails.
func (s *Store) AddProduct(name string, category Category) (*Product, error) {
	if name == "" {
		return nil, NewDomainError(ErrCodeUnknownProduct, "product name is missing")
	}
	if _, ok := s.products[name]; ok {
		return nil, NewDomainError(ErrCodeDuplicateProduct,
			fmt.Sprintf("product %q already exists", name))
	}
	p := &Product{
		name:     name,
		category: category,
		pool:     Lbs(decimal.Zero),
		units:    NewUnitCatalog(),
	}
	for _, u := range s.defaults {
		p.units.Learn(u.Name, u.Weight)
	}
	s.names = append(s.names, name)
	s.products[name] = p
	return p, nil
}

// Get returns the product with this exact name, or nil if unknown.
func (s *Store) Get(name string) *Product {
	return s.products[name]
}

// Len returns the number of products.
func (s *Store) Len() int { return len(s.names) }

// Products yields products in insertion order.
func (s *Store) Products() iter.Seq[*Product] {
	return func(yield func(*Product) bool) {
		for _, name := range s.names {
			if !yield(s.products[name]) {
				return
			}
		}
	}
}

// SortedNames returns product names in lexical order, for display.
func (s *Store) SortedNames() []string {
	names := slices.Clone(s.names)
	slices.Sort(names)
	return names
}

// restore recreates a product exactly as decoded from a snapshot,
// bypassing the default-unit seeding.
func (s *Store) restore(name string, category Category, pool Weight, units *UnitCatalog) *Product {
	p := &Product{name: name, category: category, pool: pool, units: units}
	s.names = append(s.names, name)
	s.products[name] = p
	return p
}
