package portfolio

import "github.com/shopspring/decimal"

// Percent is an exact percentage. Weight validation compares the sum of a
// weight set to exactly 100, so Percent is decimal-backed rather than a
// float.
type Percent struct {
	value decimal.Decimal
}

// P creates a Percent from any numeric type.
func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

var hundred = decimal.NewFromInt(100)

func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }
func (p Percent) Add(q Percent) Percent {
	return Percent{value: p.value.Add(q.value)}
}
func (p Percent) IsNegative() bool { return p.value.IsNegative() }
func (p Percent) IsZero() bool     { return p.value.IsZero() }
func (p Percent) IsHundred() bool  { return p.value.Equal(hundred) }

// Of returns the given fraction of an amount: m * p / 100.
func (p Percent) Of(m Money) Money {
	return Money{value: m.value.Mul(p.value).Div(hundred), cur: m.cur}
}

func (p Percent) String() string { return p.value.StringFixed(2) + "%" }

// MarshalJSON implements the json.Marshaler interface.
func (p Percent) MarshalJSON() ([]byte, error) { return p.value.MarshalJSON() }

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *Percent) UnmarshalJSON(bytes []byte) error { return p.value.UnmarshalJSON(bytes) }
