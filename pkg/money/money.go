// Package money provides fixed-point helpers for monetary values.
//
// Amounts and rates are shopspring decimals, never binary floats.
// Invariants:
//   - Every rounding step names its scale explicitly.
//   - Rounding is half-up (half away from zero), matching banking "HALF_UP".
//   - Division by zero is reported as an error, not a panic.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Scales used by the conversion arithmetic.
const (
	// RateScale is the number of fractional digits kept for rates and gross amounts.
	RateScale int32 = 6
	// MinorScale is the number of fractional digits kept for fees and net amounts.
	MinorScale int32 = 2
)

// ParseAmount parses a decimal amount from its textual form.
// Leading and trailing whitespace is ignored. The sign is not checked here.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return d, nil
}

// Round rounds d half-up to the given number of fractional digits.
func Round(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Round(places)
}

// Mul multiplies a by b and rounds the product half-up to places.
func Mul(a, b decimal.Decimal, places int32) decimal.Decimal {
	return a.Mul(b).Round(places)
}

// Div divides a by b and rounds the quotient half-up to places.
func Div(a, b decimal.Decimal, places int32) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	return a.DivRound(b, places), nil
}

// Clamp bounds d to [lo, hi]. The caller guarantees lo <= hi.
func Clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

// Format renders d with exactly places fractional digits.
func Format(d decimal.Decimal, places int32) string {
	return d.StringFixed(places)
}
