package mango

import (
	"encoding/json"
	"fmt"
	"iter"
)

// Role tags a contact as a supplier or a buyer.
type Role string

const (
	Vendor   Role = "Vendor"
	Customer Role = "Customer"
)

// ParseRole parses a string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case Vendor:
		return Vendor, nil
	case Customer:
		return Customer, nil
	default:
		return "", fmt.Errorf("unknown contact role: %q", s)
	}
}

func (r Role) String() string { return string(r) }

// MarshalJSON implements the json.Marshaler interface for Role.
func (r Role) MarshalJSON() ([]byte, error) { return json.Marshal(string(r)) }

// UnmarshalJSON implements the json.Unmarshaler interface for Role.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Contact is a counterparty. Immutable once created; history entries refer
// to it by name only, and a name absent from the directory is still a valid
// opaque label there.
type Contact struct {
	Name string
	Role Role
}

// Unspecified is the contact label used when a movement names nobody.
const Unspecified = "Unspecified"

// Directory holds all contacts in insertion order, keyed by exact name.
type Directory struct {
	names    []string
	contacts map[string]Contact
}

// NewDirectory creates an empty contact directory.
func NewDirectory() *Directory {
	return &Directory{contacts: make(map[string]Contact)}
}

// AddContact registers a contact. Adding the same name twice fails,
// regardless of role: identity is append-only.
func (d *Directory) AddContact(name string, role Role) (Contact, error) {
	if name == "" {
		return Contact{}, NewDomainError(ErrCodeDuplicateContact, "contact name is missing")
	}
	if _, ok := d.contacts[name]; ok {
		return Contact{}, NewDomainError(ErrCodeDuplicateContact,
			fmt.Sprintf("contact %q already exists", name))
	}
	c := Contact{Name: name, Role: role}
	d.names = append(d.names, name)
	d.contacts[name] = c
	return c, nil
}

// Get returns the contact and whether it exists.
func (d *Directory) Get(name string) (Contact, bool) {
	c, ok := d.contacts[name]
	return c, ok
}

// Len returns the number of contacts.
func (d *Directory) Len() int { return len(d.names) }

// Contacts yields all contacts in insertion order.
func (d *Directory) Contacts() iter.Seq[Contact] {
	return func(yield func(Contact) bool) {
		for _, name := range d.names {
			if !yield(d.contacts[name]) {
				return
			}
		}
	}
}

// ListByRole returns contact names with the given role, insertion order.
func (d *Directory) ListByRole(role Role) []string {
	var names []string
	for _, name := range d.names {
		if d.contacts[name].Role == role {
			names = append(names, name)
		}
	}
	return names
}
