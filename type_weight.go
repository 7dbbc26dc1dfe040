package mango

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Weight represents a quantity of product in the canonical unit (pounds).
// All pool and flow arithmetic goes through Weight so that replaying the
// history log reproduces pool snapshots exactly.
type Weight struct {
	value decimal.Decimal
}

// Lbs creates a Weight from any numeric value, interpreted as pounds.
func Lbs[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Weight {
	return Weight{value: newDecimal(value)}
}

func (w Weight) Add(o Weight) Weight     { return Weight{value: w.value.Add(o.value)} }
func (w Weight) Sub(o Weight) Weight     { return Weight{value: w.value.Sub(o.value)} }
func (w Weight) Neg() Weight             { return Weight{value: w.value.Neg()} }
func (w Weight) Abs() Weight             { return Weight{value: w.value.Abs()} }
func (w Weight) Equal(o Weight) bool     { return w.value.Equal(o.value) }
func (w Weight) LessThan(o Weight) bool  { return w.value.LessThan(o.value) }
func (w Weight) GreaterThan(o Weight) bool { return w.value.GreaterThan(o.value) }
func (w Weight) IsZero() bool            { return w.value.IsZero() }
func (w Weight) IsPositive() bool        { return w.value.IsPositive() }
func (w Weight) IsNegative() bool        { return w.value.IsNegative() }

// MulQty scales a per-unit weight by a unit count.
func (w Weight) MulQty(qty decimal.Decimal) Weight { return Weight{value: w.value.Mul(qty)} }

// String renders the bare decimal value, e.g. "40" or "12.5".
func (w Weight) String() string { return w.value.String() }

// Display renders the weight with its canonical unit, e.g. "40 lbs".
func (w Weight) Display() string { return w.value.String() + " lbs" }

// MarshalJSON implements the json.Marshaler interface for Weight.
func (w Weight) MarshalJSON() ([]byte, error) {
	return w.value.MarshalJSON()
}

func (w *Weight) UnmarshalJSON(decimalBytes []byte) error {
	return w.value.UnmarshalJSON(decimalBytes)
}
