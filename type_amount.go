package tradebook

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the ledger currency when none is configured.
const DefaultCurrency = "TWD"

// Amount represents a signed monetary value in the ledger currency.
//
// The ledger backend is single-currency, so Amount carries no currency: the
// Currency used to display it is a client setting.
type Amount struct {
	value decimal.Decimal // as major unit value
}

// A returns a new Amount.
func A[T float64 | int | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic(fmt.Sprintf("unsupported amount type %T", value))
	}
}

// ParseAmount parses a decimal amount like "-1200.5".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: d}, nil
}

// leadingNumber matches the longest decimal number at the start of a field.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// parseAmountOrZero reads the number s starts with, ignoring what follows
// it: "100元" is 100 and "1,200" is 1. A field without one is 0.
func parseAmountOrZero(s string) Amount {
	a, err := ParseAmount(leadingNumber.FindString(strings.TrimSpace(s)))
	if err != nil {
		return Amount{}
	}
	return a
}

func (a Amount) Decimal() decimal.Decimal  { return a.value }
func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) IsNegative() bool          { return a.value.IsNegative() }
func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) Add(b Amount) Amount       { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount       { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount               { return Amount{value: a.value.Neg()} }
func (a Amount) String() string            { return a.value.String() }
func (a Amount) InexactFloat64() float64   { return a.value.InexactFloat64() }
func (a Amount) LessThan(b Amount) bool    { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }

// MarshalJSON encodes the amount as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalJSON accepts a JSON number, a quoted number or null (zero).
func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*a = Amount{}
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid amount %s: %w", data, err)
	}
	a.value = d
	return nil
}

// Currency formats amounts for display: local currency symbol, thousands
// separator and no fractional digits.
type Currency struct {
	code string
	f    *money.Formatter
}

// NewCurrency returns the Currency for an ISO 4217 code.
func NewCurrency(code string) (Currency, error) {
	c := money.GetCurrency(strings.ToUpper(strings.TrimSpace(code)))
	if c == nil {
		return Currency{}, fmt.Errorf("unknown currency %q", code)
	}
	return Currency{code: c.Code, f: money.NewFormatter(0, c.Decimal, c.Thousand, c.Grapheme, c.Template)}, nil
}

// MustCurrency is like NewCurrency but panics on error.
func MustCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// Code returns the ISO code, the zero Currency is the DefaultCurrency.
func (c Currency) Code() string {
	if c.f == nil {
		return DefaultCurrency
	}
	return c.code
}

func (c Currency) formatter() *money.Formatter {
	if c.f == nil {
		return MustCurrency(DefaultCurrency).f
	}
	return c.f
}

// Format returns the amount rounded to the unit, e.g. "NT$1,235" or "-NT$30".
func (c Currency) Format(a Amount) string {
	return c.formatter().Format(a.value.Round(0).IntPart())
}

// Signed is like Format but non-negative amounts, zero included, get a leading "+".
func (c Currency) Signed(a Amount) string {
	if a.IsNegative() {
		return c.Format(a)
	}
	return "+" + c.Format(a)
}
