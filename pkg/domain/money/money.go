package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned when a string cannot be parsed as a decimal amount.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrTooManyDecimals is returned when an amount carries more fractional digits than allowed.
	ErrTooManyDecimals = errors.New("amount has too many decimal places")
)

// Money represents an exact decimal monetary amount.
// Invariants:
//   - Arithmetic and comparison are exact; nothing is ever rounded.
//   - The scale (number of fractional digits) of the operands is kept, so
//     100.00 + 50.00 renders as 150.00 and not 150.
//
// The zero value is a valid amount of 0.
type Money struct {
	value decimal.Decimal
}

// Zero is the zero amount with no fractional digits.
var Zero = Money{value: decimal.Zero}

// Parse parses a decimal literal such as "100.00" or "-0.5".
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Money{value: d}, nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// FromDecimal wraps an existing decimal value.
func FromDecimal(d decimal.Decimal) Money {
	return Money{value: d}
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{value: m.value.Add(other.value)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{value: m.value.Sub(other.value)}
}

// Cmp compares m and other and returns -1, 0 or +1.
func (m Money) Cmp(other Money) int {
	return m.value.Cmp(other.value)
}

// Equal reports whether m and other have the same numeric value.
// Scale is ignored: 1.0 equals 1.00.
func (m Money) Equal(other Money) bool {
	return m.value.Equal(other.value)
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.value.LessThan(other.value)
}

// GreaterThanOrEqual reports whether m >= other.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.value.GreaterThanOrEqual(other.value)
}

// IsNegative returns true if the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.value.IsNegative()
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// Scale returns the number of fractional digits the amount carries.
func (m Money) Scale() int {
	if exp := m.value.Exponent(); exp < 0 {
		return int(-exp)
	}
	return 0
}

// ValidateScale returns ErrTooManyDecimals when m carries more than places
// fractional digits. A value of zero or less disables the check.
func (m Money) ValidateScale(places int) error {
	if places <= 0 {
		return nil
	}
	// trailing zeros are harmless: 1.500 passes for places=2
	if !m.value.Equal(m.value.Truncate(int32(places))) {
		return fmt.Errorf("%w: %s allows at most %d", ErrTooManyDecimals, m, places)
	}
	return nil
}

// String renders the amount keeping its scale, e.g. "150.00".
func (m Money) String() string {
	return m.value.StringFixed(int32(m.Scale()))
}

// MarshalText implements encoding.TextMarshaler.
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Money) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
