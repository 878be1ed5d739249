// Package calculator computes fee-aware currency conversions.
//
// A calculation fetches one rate and then runs pure decimal arithmetic:
//
//	gross     = round(amount × rate, 6)
//	fee       = round(clamp(amount × feeRate, minFee, maxFee), 2)
//	net       = round(gross − fee × rate, 2)
//	totalCost = amount + fee
//	effective = round(net / amount, 6)
//	margin    = rate − effective
//
// All rounding is half-up. The calculator holds no mutable state and is safe
// for concurrent use.
package calculator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/amirasaad/fxcalc/pkg/provider"
	"github.com/shopspring/decimal"
)

var errNilProvider = errors.New("rate provider is required")

// Calculator is the fee-aware conversion engine.
type Calculator struct {
	rates   provider.RateProvider
	policy  Policy
	logger  *slog.Logger
	now     func() time.Time
	metrics *Metrics
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithClock replaces time.Now for result timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		if now != nil {
			c.now = now
		}
	}
}

// WithMetrics records every operation on m.
func WithMetrics(m *Metrics) Option {
	return func(c *Calculator) {
		c.metrics = m
	}
}

// New creates a Calculator over rates using policy.
func New(
	rates provider.RateProvider,
	policy Policy,
	logger *slog.Logger,
	opts ...Option,
) (*Calculator, error) {
	if rates == nil {
		return nil, errNilProvider
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fee policy: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Calculator{
		rates:  rates,
		policy: policy,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Policy returns the fee policy in effect.
func (c *Calculator) Policy() Policy {
	return c.policy
}

// Calculate converts amount from one currency to another and itemises the fee.
func (c *Calculator) Calculate(
	ctx context.Context,
	from, to string,
	amount decimal.Decimal,
	feeMode string,
) (res *Result, err error) {
	defer c.observe(opCalculate, time.Now(), &err)

	src, dst, err := parsePair(from, to)
	if err != nil {
		return nil, err
	}
	if err := c.checkAmount(FieldAmount, amount); err != nil {
		return nil, err
	}
	rate, err := c.fetchRate(ctx, src, dst)
	if err != nil {
		return nil, err
	}
	res, err = c.compute(src, dst, amount, rate, ParseFeeMode(feeMode), c.now())
	if err != nil {
		return nil, err
	}
	c.logger.Debug("conversion calculated",
		"from", src,
		"to", dst,
		"amount", amount,
		"rate", rate,
		"fee", res.FeeAmount,
		"net", res.NetAmount,
	)
	return res, nil
}

// checkAmount rejects amounts outside (0, MaxAmount] or with more than
// AmountScale fractional digits. The exponent checks run before any comparison
// so that values like 1e-2000000 or 1e2000000 never get rescaled.
func (c *Calculator) checkAmount(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &ValidationError{Field: field, Reason: "must be greater than zero"}
	}
	if amount.Exponent() < -c.policy.AmountScale {
		return &ValidationError{Field: field, Reason: "too many decimal places"}
	}
	if (amount.Exponent() > 0 && amount.Exponent() >= magnitude(c.policy.MaxAmount)) ||
		amount.GreaterThan(c.policy.MaxAmount) {
		return &ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("must not exceed %s", c.policy.MaxAmount),
		}
	}
	return nil
}

// magnitude returns the smallest e with d < 10^e for a positive d.
func magnitude(d decimal.Decimal) int32 {
	return int32(d.NumDigits()) + d.Exponent()
}

// fetchRate makes exactly one provider call. It does not retry.
func (c *Calculator) fetchRate(ctx context.Context, from, to money.Code) (decimal.Decimal, error) {
	rate, err := c.rates.GetRate(ctx, from, to)
	if err == nil {
		err = provider.CheckRate(from, to, rate)
	}
	if err != nil {
		c.logger.Warn("exchange rate unavailable", "from", from, "to", to, "error", err)
		return decimal.Zero, &RateUnavailableError{From: from, To: to, Err: err}
	}
	return rate, nil
}

// compute runs the arithmetic for an already validated request.
func (c *Calculator) compute(
	from, to money.Code,
	amount, rate decimal.Decimal,
	mode FeeMode,
	at time.Time,
) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("calculation panicked", "from", from, "to", to, "panic", r)
			res, err = nil, &CalculationError{Op: "compute", Err: fmt.Errorf("%v", r)}
		}
	}()

	gross := money.Mul(amount, rate, money.RateScale)
	feeRate := c.policy.FeeRate(mode)

	rawFee := amount.Mul(feeRate)
	bound := FeeBoundNone
	switch {
	case rawFee.LessThan(c.policy.MinFee):
		bound = FeeBoundMin
	case rawFee.GreaterThan(c.policy.MaxFee):
		bound = FeeBoundMax
	}
	fee := money.Round(money.Clamp(rawFee, c.policy.MinFee, c.policy.MaxFee), money.MinorScale)

	net := money.Round(gross.Sub(fee.Mul(rate)), money.MinorScale)
	effective, err := money.Div(net, amount, money.RateScale)
	if err != nil {
		return nil, &CalculationError{Op: "effective rate", Err: err}
	}

	c.metrics.feeClamped(bound)
	return &Result{
		FromCurrency:   from,
		ToCurrency:     to,
		OriginalAmount: amount,
		ExchangeRate:   rate,
		GrossAmount:    gross,
		FeeMode:        mode,
		FeeRate:        feeRate,
		FeeAmount:      fee,
		FeeBound:       bound,
		NetAmount:      net,
		TotalCost:      amount.Add(fee),
		EffectiveRate:  effective,
		RateMargin:     rate.Sub(effective),
		CalculatedAt:   at,
		Version:        Version,
	}, nil
}
