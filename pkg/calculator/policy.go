package calculator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/shopspring/decimal"
)

// FeeMode selects the percentage fee applied to a conversion.
type FeeMode string

const (
	FeeModeStandard FeeMode = "standard"
	FeeModeExpress  FeeMode = "express"
	FeeModeEconomy  FeeMode = "economy"
)

// FeeModes lists the supported modes in display order.
var FeeModes = []FeeMode{FeeModeStandard, FeeModeExpress, FeeModeEconomy}

// ParseFeeMode looks raw up case-insensitively.
// Empty or unrecognised input falls back to FeeModeStandard.
func ParseFeeMode(raw string) FeeMode {
	switch FeeMode(strings.ToLower(strings.TrimSpace(raw))) {
	case FeeModeExpress:
		return FeeModeExpress
	case FeeModeEconomy:
		return FeeModeEconomy
	default:
		return FeeModeStandard
	}
}

func (m FeeMode) String() string {
	return string(m)
}

// Policy holds the tunables of the fee computation.
type Policy struct {
	StandardRate decimal.Decimal `json:"standard_rate" swaggertype:"string"`
	ExpressRate  decimal.Decimal `json:"express_rate" swaggertype:"string"`
	EconomyRate  decimal.Decimal `json:"economy_rate" swaggertype:"string"`

	MinFee    decimal.Decimal `json:"min_fee" swaggertype:"string"`
	MaxFee    decimal.Decimal `json:"max_fee" swaggertype:"string"`
	MaxAmount decimal.Decimal `json:"max_amount" swaggertype:"string"`

	// AmountScale is the most fractional digits an input amount may carry.
	AmountScale int32 `json:"amount_scale"`

	// RateVariation is the relative perturbation used by monitoring scenarios.
	RateVariation decimal.Decimal `json:"rate_variation" swaggertype:"string"`

	// BatchConcurrency bounds the number of pairs computed at once.
	BatchConcurrency int `json:"-"`
}

// DefaultPolicy returns the stock fee schedule.
func DefaultPolicy() Policy {
	return Policy{
		StandardRate:     decimal.RequireFromString("0.010"),
		ExpressRate:      decimal.RequireFromString("0.015"),
		EconomyRate:      decimal.RequireFromString("0.005"),
		MinFee:           decimal.RequireFromString("2.99"),
		MaxFee:           decimal.RequireFromString("50.00"),
		MaxAmount:        decimal.NewFromInt(1_000_000),
		AmountScale:      8,
		RateVariation:    decimal.RequireFromString("0.001"),
		BatchConcurrency: 8,
	}
}

// FeeRate returns the percentage rate for mode. Unknown modes use the standard rate.
func (p Policy) FeeRate(mode FeeMode) decimal.Decimal {
	switch mode {
	case FeeModeExpress:
		return p.ExpressRate
	case FeeModeEconomy:
		return p.EconomyRate
	default:
		return p.StandardRate
	}
}

// Validate reports configuration that would make the arithmetic meaningless.
func (p Policy) Validate() error {
	var errs []error
	one := decimal.NewFromInt(1)
	for _, mode := range FeeModes {
		r := p.FeeRate(mode)
		if r.IsNegative() || r.GreaterThanOrEqual(one) {
			errs = append(errs, fmt.Errorf("%s fee rate %s must be in [0, 1)", mode, r))
		}
	}
	if p.MinFee.IsNegative() {
		errs = append(errs, fmt.Errorf("min fee %s must not be negative", p.MinFee))
	}
	if p.MinFee.GreaterThan(p.MaxFee) {
		errs = append(errs, fmt.Errorf("min fee %s exceeds max fee %s", p.MinFee, p.MaxFee))
	}
	if !p.MaxAmount.IsPositive() {
		errs = append(errs, fmt.Errorf("max amount %s must be positive", p.MaxAmount))
	}
	if p.AmountScale < money.MinorScale {
		errs = append(errs, fmt.Errorf("amount scale %d must be at least %d", p.AmountScale, money.MinorScale))
	}
	if p.RateVariation.IsNegative() || p.RateVariation.GreaterThanOrEqual(one) {
		errs = append(errs, fmt.Errorf("rate variation %s must be in [0, 1)", p.RateVariation))
	}
	if p.BatchConcurrency < 1 {
		errs = append(errs, fmt.Errorf("batch concurrency %d must be at least 1", p.BatchConcurrency))
	}
	return errors.Join(errs...)
}
