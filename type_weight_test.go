package mango

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestWeight_Arithmetic(t *testing.T) {
	w := Lbs(20).Add(Lbs(10.5)).Sub(Lbs(0.5))
	if !w.Equal(Lbs(30)) {
		t.Errorf("got %s, want 30", w)
	}
	if !Lbs(-3).Neg().Equal(Lbs(3)) {
		t.Error("Neg failed")
	}
	if !Lbs(-3).Abs().Equal(Lbs(3)) {
		t.Error("Abs failed")
	}
	if !Lbs(1).LessThan(Lbs(2)) || !Lbs(2).GreaterThan(Lbs(1)) {
		t.Error("comparison failed")
	}
}

func TestWeight_MulQtyIsExact(t *testing.T) {
	// 0.1 * 3 must be exactly 0.3, not a float approximation.
	w := Lbs(0.1).MulQty(decimal.NewFromInt(3))
	if w.String() != "0.3" {
		t.Errorf("0.1 * 3 = %s, want 0.3", w)
	}
}

func TestWeight_Display(t *testing.T) {
	if got := Lbs(40).Display(); got != "40 lbs" {
		t.Errorf("Display = %q, want %q", got, "40 lbs")
	}
	if got := Lbs(12.5).String(); got != "12.5" {
		t.Errorf("String = %q, want %q", got, "12.5")
	}
}
