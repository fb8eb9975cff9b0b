// Package money provides the fixed-point monetary type used across the
// ledger. Every amount carries exactly two fractional digits; ties round
// half-up (away from zero). All derived values are re-quantized so repeated
// deposit/withdraw/convert cycles cannot drift.
package money

import (
	"github.com/shopspring/decimal"

	"currency-ledger/internal/errors"
)

// Scale is the number of fractional digits every Money value carries.
const Scale = 2

// Money is a quantized decimal amount. The zero value is 0.00.
type Money struct {
	d decimal.Decimal
}

// Zero is the 0.00 amount.
var Zero = Money{}

// quantize rounds to Scale digits. decimal.Round rounds ties away from zero,
// which is the half-up mode the ledger requires (1.005 -> 1.01).
func quantize(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// FromValue normalizes an arbitrary numeric value into Money.
//
// Booleans are rejected explicitly: the contract is that a boolean is never
// accepted as an amount, even in callers that pass amounts as interface
// values. Anything that is not an integer, a float, a decimal or an existing
// Money value fails the same way.
func FromValue(value interface{}) (Money, error) {
	switch v := value.(type) {
	case bool:
		return Zero, errors.ErrAmountNotNumeric
	case int:
		return Money{d: quantize(decimal.NewFromInt(int64(v)))}, nil
	case int32:
		return Money{d: quantize(decimal.NewFromInt32(v))}, nil
	case int64:
		return Money{d: quantize(decimal.NewFromInt(v))}, nil
	case float32:
		return Money{d: quantize(decimal.NewFromFloat32(v))}, nil
	case float64:
		return Money{d: quantize(decimal.NewFromFloat(v))}, nil
	case decimal.Decimal:
		return Money{d: quantize(v)}, nil
	case Money:
		return v.Quantize(), nil
	default:
		return Zero, errors.ErrAmountNotNumeric
	}
}

// FromDecimal quantizes a decimal into Money.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d: quantize(d)}
}

// FromString parses a decimal string ("10.50") into Money.
func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, errors.ErrAmountNotNumeric.WithDetails(err.Error())
	}
	return Money{d: quantize(d)}, nil
}

// MustFromString is FromString for literals in tests and defaults.
func MustFromString(s string) Money {
	m, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Quantize re-rounds defensively; the result always has Scale digits.
func (m Money) Quantize() Money {
	return Money{d: quantize(m.d)}
}

func (m Money) Add(other Money) Money {
	return Money{d: quantize(m.d.Add(other.d))}
}

func (m Money) Sub(other Money) Money {
	return Money{d: quantize(m.d.Sub(other.d))}
}

// MulDecimal multiplies by an unquantized factor (a rate or a fee ratio) and
// quantizes the product.
func (m Money) MulDecimal(factor decimal.Decimal) Money {
	return Money{d: quantize(m.d.Mul(factor))}
}

func (m Money) Neg() Money {
	return Money{d: m.d.Neg()}
}

func (m Money) IsPositive() bool { return m.d.IsPositive() }
func (m Money) IsNegative() bool { return m.d.IsNegative() }
func (m Money) IsZero() bool     { return m.d.IsZero() }

func (m Money) Equal(other Money) bool       { return m.d.Equal(other.d) }
func (m Money) GreaterThan(other Money) bool { return m.d.GreaterThan(other.d) }
func (m Money) LessThan(other Money) bool    { return m.d.LessThan(other.d) }

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.d
}

// String renders with exactly Scale fractional digits, e.g. "10.00".
func (m Money) String() string {
	return m.d.StringFixed(Scale)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	m.d = quantize(d)
	return nil
}
