package mango

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImportManifest_DefaultLayout(t *testing.T) {
	l := NewLedger()
	_, err := l.AddProduct("Heirloom Tomato", Vegetable)
	require.NoError(t, err)
	_, err = l.AddProduct("Gala Apple", Fruit)
	require.NoError(t, err)

	manifest := `{
		"supplier": "Green Valley",
		"deliveries": [
			{"product": "Heirloom Tomato", "quantity": 2, "unit": "Standard Crate", "from": "Green Valley"},
			{"product": "Gala Apple", "quantity": 3, "unit": "Bushel", "unit_weight": 42}
		]
	}`

	receipts, err := l.ImportManifest(strings.NewReader(manifest), DefaultManifestMapping(), "Hilltop Farm")
	require.NoError(t, err)
	require.Len(t, receipts, 2)

	require.True(t, l.Products().Get("Heirloom Tomato").Pool().Equal(Lbs(40)))
	require.True(t, l.Products().Get("Gala Apple").Pool().Equal(Lbs(126)))

	// The first record names its vendor, the second falls back.
	require.Equal(t, "Green Valley", receipts[0].Entry.Contact)
	require.Equal(t, "Hilltop Farm", receipts[1].Entry.Contact)

	// The manifest's unit is learned like any other movement.
	w, ok := l.Products().Get("Gala Apple").Units().Lookup("Bushel")
	require.True(t, ok)
	require.True(t, w.Equal(Lbs(42)))
}

func TestImportManifest_CustomMapping(t *testing.T) {
	l := NewLedger()
	_, err := l.AddProduct("Zucchini", Vegetable)
	require.NoError(t, err)

	// A supplier with its own layout, quantities quoted with a decimal comma.
	manifest := `{
		"shipment": {
			"lines": [
				{"item": {"name": "Zucchini"}, "count": "1,5", "packaging": "Standard Crate"}
			]
		}
	}`
	mapping := ManifestMapping{
		Records:  "$.shipment.lines[*]",
		Product:  "$.item.name",
		Quantity: "$.count",
		Unit:     "$.packaging",
	}

	receipts, err := l.ImportManifest(strings.NewReader(manifest), mapping, "")
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	require.True(t, l.Products().Get("Zucchini").Pool().Equal(Lbs(30)))
	require.Equal(t, Unspecified, receipts[0].Entry.Contact)
}

func TestImportManifest_StopsOnFirstBadRecord(t *testing.T) {
	l := NewLedger()
	_, err := l.AddProduct("Heirloom Tomato", Vegetable)
	require.NoError(t, err)

	manifest := `{
		"deliveries": [
			{"product": "Heirloom Tomato", "quantity": 1, "unit": "Standard Crate"},
			{"product": "Mystery Fruit", "quantity": 1, "unit": "Standard Crate"},
			{"product": "Heirloom Tomato", "quantity": 1, "unit": "Standard Crate"}
		]
	}`

	receipts, err := l.ImportManifest(strings.NewReader(manifest), DefaultManifestMapping(), "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Mystery Fruit")
	require.Len(t, receipts, 1, "records before the bad one stay applied")
	require.True(t, l.Products().Get("Heirloom Tomato").Pool().Equal(Lbs(20)))
}

func TestImportManifest_NotJSON(t *testing.T) {
	l := NewLedger()
	_, err := l.ImportManifest(strings.NewReader("product,quantity\nTomato,2"), DefaultManifestMapping(), "")
	require.Error(t, err)
}
