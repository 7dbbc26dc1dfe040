package mango

import (
	"encoding/json"
	"fmt"
)

// Category classifies a product. The display icon is derived from the
// category and is never set independently.
type Category int

const (
	Other Category = iota
	Fruit
	Vegetable
	Dairy
	Meat
)

func (c Category) String() string {
	switch c {
	case Fruit:
		return "Fruit"
	case Vegetable:
		return "Vegetable"
	case Dairy:
		return "Dairy"
	case Meat:
		return "Meat"
	default:
		return "Other"
	}
}

// Icon returns the fixed icon for the category.
func (c Category) Icon() string {
	switch c {
	case Fruit:
		return "🍎"
	case Vegetable:
		return "🥦"
	case Dairy:
		return "🥛"
	case Meat:
		return "🥩"
	default:
		return "📦"
	}
}

// ParseCategory parses a string into a Category. Unknown values map to
// Other, mirroring the icon fallback; only the empty string is an error.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "Fruit":
		return Fruit, nil
	case "Vegetable":
		return Vegetable, nil
	case "Dairy":
		return Dairy, nil
	case "Meat":
		return Meat, nil
	case "Other":
		return Other, nil
	case "":
		return Other, fmt.Errorf("category is missing")
	default:
		return Other, nil
	}
}

// MarshalJSON implements the json.Marshaler interface for Category.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Category.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
