package mango

import (
	"reflect"
	"testing"
)

func TestStore_NewProductGetsDefaultUnits(t *testing.T) {
	s := NewStore()
	p, err := s.AddProduct("Heirloom Tomato", Vegetable)
	if err != nil {
		t.Fatal(err)
	}

	var units []Unit
	for u := range p.Units().Units() {
		units = append(units, u)
	}
	want := DefaultUnits()
	if !reflect.DeepEqual(units, want) {
		t.Errorf("units = %v, want %v", units, want)
	}
}

func TestStore_InsertionOrderAndSortedNames(t *testing.T) {
	s := NewStore()
	for _, name := range []string{"Zucchini", "Gala Apple", "Raw Milk"} {
		if _, err := s.AddProduct(name, Other); err != nil {
			t.Fatal(err)
		}
	}

	var inserted []string
	for p := range s.Products() {
		inserted = append(inserted, p.Name())
	}
	if want := []string{"Zucchini", "Gala Apple", "Raw Milk"}; !reflect.DeepEqual(inserted, want) {
		t.Errorf("insertion order = %v, want %v", inserted, want)
	}
	if want := []string{"Gala Apple", "Raw Milk", "Zucchini"}; !reflect.DeepEqual(s.SortedNames(), want) {
		t.Errorf("sorted names = %v, want %v", s.SortedNames(), want)
	}
}

func TestStore_NamesAreCaseSensitive(t *testing.T) {
	s := NewStore()
	if _, err := s.AddProduct("Tomato", Vegetable); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddProduct("tomato", Vegetable); err != nil {
		t.Errorf("%q and %q are distinct products, got %v", "Tomato", "tomato", err)
	}
	if s.Get("TOMATO") != nil {
		t.Error("lookup must be exact")
	}
}

func TestProduct_ResolveUnitWeight(t *testing.T) {
	s := NewStore()
	p, err := s.AddProduct("Heirloom Tomato", Vegetable)
	if err != nil {
		t.Fatal(err)
	}

	// A given positive weight wins over the catalog.
	w, err := p.ResolveUnitWeight("Standard Crate", Lbs(22))
	if err != nil || !w.Equal(Lbs(22)) {
		t.Errorf("ResolveUnitWeight with override = %s, %v; want 22 lbs", w, err)
	}
	// Zero falls back to the catalog.
	w, err = p.ResolveUnitWeight("Standard Crate", Weight{})
	if err != nil || !w.Equal(Lbs(20)) {
		t.Errorf("ResolveUnitWeight from catalog = %s, %v; want 20 lbs", w, err)
	}
	// Unknown unit with no weight fails.
	if _, err := p.ResolveUnitWeight("Giant Barrel", Weight{}); err == nil {
		t.Error("ResolveUnitWeight accepted an unknown unit without a weight")
	}
}

func TestCategory_Icons(t *testing.T) {
	testCases := []struct {
		category Category
		icon     string
	}{
		{Fruit, "🍎"},
		{Vegetable, "🥦"},
		{Dairy, "🥛"},
		{Meat, "🥩"},
		{Other, "📦"},
	}
	for _, tc := range testCases {
		if got := tc.category.Icon(); got != tc.icon {
			t.Errorf("%s icon = %q, want %q", tc.category, got, tc.icon)
		}
	}
}

func TestParseCategory_UnknownMapsToOther(t *testing.T) {
	c, err := ParseCategory("Grain")
	if err != nil || c != Other {
		t.Errorf("ParseCategory(Grain) = %v, %v; want Other, nil", c, err)
	}
	if _, err := ParseCategory(""); err == nil {
		t.Error("ParseCategory(\"\") should fail")
	}
}
