// Package provider defines the rate lookup contract consumed by the calculator.
package provider

import (
	"context"
	"errors"
	"time"

	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/shopspring/decimal"
)

// Common errors for provider operations
var (
	// ErrRateUnavailable is the umbrella error for any failed rate lookup.
	ErrRateUnavailable = errors.New("exchange rate unavailable")

	// ErrUnsupportedPair indicates the provider knows nothing about the pair.
	ErrUnsupportedPair = errors.New("unsupported currency pair")

	// ErrInvalidRate indicates a provider produced a zero or negative rate.
	ErrInvalidRate = errors.New("invalid exchange rate")
)

// RateProvider resolves the exchange rate for a currency pair.
//
// Implementations must be safe for concurrent use, must return exactly 1
// when from == to, and must wrap failures with ErrRateUnavailable.
type RateProvider interface {
	GetRate(ctx context.Context, from, to money.Code) (decimal.Decimal, error)
}

// RateFunc adapts an ordinary function to the RateProvider interface.
type RateFunc func(ctx context.Context, from, to money.Code) (decimal.Decimal, error)

// GetRate calls f(ctx, from, to).
func (f RateFunc) GetRate(ctx context.Context, from, to money.Code) (decimal.Decimal, error) {
	return f(ctx, from, to)
}

// RateTable is a snapshot of all rates quoted against one base currency.
type RateTable struct {
	Base      money.Code                     `json:"base" swaggertype:"string"`
	Rates     map[money.Code]decimal.Decimal `json:"rates" swaggertype:"object,string"`
	Source    string                         `json:"source"`
	UpdatedAt time.Time                      `json:"last_updated"`
}

// RateLister lists every rate a provider can quote for a base currency.
type RateLister interface {
	Rates(ctx context.Context, base money.Code) (*RateTable, error)
}

// Named is implemented by providers that can identify themselves in logs
// and responses.
type Named interface {
	Name() string
}

// Quote is a rate together with where and when it was obtained.
type Quote struct {
	From      money.Code      `json:"from" swaggertype:"string"`
	To        money.Code      `json:"to" swaggertype:"string"`
	Rate      decimal.Decimal `json:"rate" swaggertype:"string"`
	Source    string          `json:"source"`
	UpdatedAt time.Time       `json:"last_updated"`
}

// Quoter is implemented by providers that can describe the origin of a rate.
type Quoter interface {
	Quote(ctx context.Context, from, to money.Code) (*Quote, error)
}
