package dividends

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// statements report amounts in dollars; the currency drives the grapheme
// and the rounding fraction when rendering.
var usd = *money.New(0, money.USD).Currency()

// Amount represents a dollar amount from a statement row.
//
// An Amount is either a decimal value or explicitly missing. A missing
// Amount is what an unparseable "Amount ($)" field coerces to: it is kept
// on the row but fails any sign test and contributes zero to sums.
type Amount struct {
	value   decimal.Decimal
	missing bool
}

// A returns an Amount holding the given value.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// MissingAmount returns the explicit missing Amount.
func MissingAmount() Amount { return Amount{missing: true} }

// ParseAmount coerces a statement field to an Amount. Unparseable values
// (including the empty string) become the missing Amount, never an error.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return MissingAmount()
	}
	return Amount{value: d}
}

// IsMissing reports whether the amount could not be parsed from the source.
func (a Amount) IsMissing() bool { return a.missing }

// NonNegative reports whether the amount is present and >= 0.
// A missing amount is not non-negative.
func (a Amount) NonNegative() bool { return !a.missing && a.value.Sign() >= 0 }

// Add returns the sum of two amounts. A missing operand contributes zero,
// so sums over rows with unparseable amounts stay well defined.
func (a Amount) Add(b Amount) Amount {
	if a.missing {
		a = Amount{}
	}
	if b.missing {
		return a
	}
	return Amount{value: a.value.Add(b.value)}
}

// Equal reports whether two amounts hold the same value. Missing equals
// only missing.
func (a Amount) Equal(b Amount) bool {
	if a.missing || b.missing {
		return a.missing == b.missing
	}
	return a.value.Equal(b.value)
}

// String renders the amount as "$8.00" or "$-10.00", rounded to the
// currency fraction. A missing amount renders as "$-".
func (a Amount) String() string {
	if a.missing {
		return usd.Grapheme + "-"
	}
	return usd.Grapheme + a.value.StringFixed(int32(usd.Fraction))
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
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
	case decimal.Decimal:
		return v
	}
	return decimal.Decimal{}
}
