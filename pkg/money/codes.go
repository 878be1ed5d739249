package money

import (
	"fmt"
	"strings"
)

// Code represents a currency code (e.g., "USD", "EUR").
type Code string

// Common currency codes
const (
	USD Code = "USD" // US Dollar
	EUR Code = "EUR" // Euro
	GBP Code = "GBP" // British Pound
	JPY Code = "JPY" // Japanese Yen
	CNY Code = "CNY" // Chinese Yuan
	KRW Code = "KRW" // South Korean Won
	MXN Code = "MXN" // Mexican Peso
	CAD Code = "CAD" // Canadian Dollar
	AUD Code = "AUD" // Australian Dollar
	CHF Code = "CHF" // Swiss Franc
	SGD Code = "SGD" // Singapore Dollar
)

// DefaultCode is the base currency used when none is given.
var DefaultCode = USD

// IsValid checks if the currency code is three uppercase ASCII letters.
func (c Code) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	return c[0] >= 'A' && c[0] <= 'Z' &&
		c[1] >= 'A' && c[1] <= 'Z' &&
		c[2] >= 'A' && c[2] <= 'Z'
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// NormalizeCode trims and uppercases raw input. It does not validate.
func NormalizeCode(raw string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(raw)))
}

// ParseCode normalizes raw input and checks that the result is a valid code.
func ParseCode(raw string) (Code, error) {
	code := NormalizeCode(raw)
	if code == "" {
		return "", ErrMissingCurrency
	}
	if !code.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, raw)
	}
	return code, nil
}
