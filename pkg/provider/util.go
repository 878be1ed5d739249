package provider

import (
	"fmt"

	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/shopspring/decimal"
)

// IsIdentity reports whether the pair converts a currency into itself.
func IsIdentity(from, to money.Code) bool {
	return from == to
}

// PairKey returns the canonical "FROM:TO" key used for caching.
func PairKey(from, to money.Code) string {
	return fmt.Sprintf("%s:%s", from, to)
}

// NameOf returns p's name when it has one.
func NameOf(p any) string {
	if n, ok := p.(Named); ok {
		return n.Name()
	}
	return "unknown"
}

// Unavailable wraps err so that it matches ErrRateUnavailable and names the pair.
func Unavailable(from, to money.Code, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s/%s", ErrRateUnavailable, from, to)
	}
	return fmt.Errorf("%w: %s/%s: %w", ErrRateUnavailable, from, to, err)
}

// CheckRate rejects non-positive rates.
func CheckRate(from, to money.Code, rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return Unavailable(from, to, fmt.Errorf("%w: %s", ErrInvalidRate, rate))
	}
	return nil
}
