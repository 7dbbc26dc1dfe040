package mango

import (
	"encoding/json"
	"testing"
)

func TestJSONObjectWriter(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", 1).Append("a", "two")
	w.AppendRaw("nested", []byte(`{"x":3}`))
	w.Optional("skipped", "")
	w.Optional("kept", 4)

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"b":1,"a":"two","nested":{"x":3},"kept":4}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if !json.Valid(got) {
		t.Errorf("invalid JSON: %s", got)
	}
}

func TestJSONObjectWriter_Empty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "{}" {
		t.Errorf("got %s, want {}", got)
	}
}

func TestJSONObjectWriter_Embed(t *testing.T) {
	var w jsonObjectWriter
	w.Embed([]byte(`{"a":1,"b":2}`)).Append("c", 3)
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"a":1,"b":2,"c":3}`; string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDecodeOrderedObject(t *testing.T) {
	// Keys deliberately out of lexical order; the decoder must not sort.
	data := []byte(`{"zebra": 1, "apple": {"deep": true}, "mango": [1,2]}`)
	fields, err := decodeOrderedObject(data)
	if err != nil {
		t.Fatal(err)
	}
	var keys []string
	for _, f := range fields {
		keys = append(keys, f.key)
	}
	if len(keys) != 3 || keys[0] != "zebra" || keys[1] != "apple" || keys[2] != "mango" {
		t.Errorf("keys = %v, want [zebra apple mango]", keys)
	}
	if string(fields[1].raw) != `{"deep": true}` {
		t.Errorf("raw value = %s", fields[1].raw)
	}
}

func TestDecodeOrderedObject_RoundTripsWriter(t *testing.T) {
	var w jsonObjectWriter
	w.Append("z", 26).Append("a", 1).Append("m", 13)
	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	fields, err := decodeOrderedObject(data)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	for i, f := range fields {
		if f.key != want[i] {
			t.Errorf("field %d = %q, want %q", i, f.key, want[i])
		}
	}
}

func TestDecodeOrderedObject_Rejects(t *testing.T) {
	for _, data := range []string{`[1,2]`, `"str"`, `{`, ``} {
		if _, err := decodeOrderedObject([]byte(data)); err == nil {
			t.Errorf("decodeOrderedObject(%q) should fail", data)
		}
	}
}
