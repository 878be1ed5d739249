package calculator

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculateWithMonitoring fetches the rate once and prices three scenarios with
// the standard fee: the current rate and the rate moved up and down by the
// policy's RateVariation. It is a static perturbation, not a volatility model.
func (c *Calculator) CalculateWithMonitoring(
	ctx context.Context,
	from, to string,
	amount decimal.Decimal,
) (res *MonitoringResult, err error) {
	defer c.observe(opMonitoring, time.Now(), &err)

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

	one := decimal.NewFromInt(1)
	delta := c.policy.RateVariation
	high := rate.Mul(one.Add(delta))
	low := rate.Mul(one.Sub(delta))
	at := c.now()

	out := &MonitoringResult{
		Spread: RateSpread{
			Current:          rate,
			High:             high,
			Low:              low,
			SpreadPercentage: delta.Mul(hundred),
		},
	}
	if out.Current, err = c.compute(src, dst, amount, rate, FeeModeStandard, at); err != nil {
		return nil, err
	}
	if out.Optimistic, err = c.compute(src, dst, amount, high, FeeModeStandard, at); err != nil {
		return nil, err
	}
	if out.Pessimistic, err = c.compute(src, dst, amount, low, FeeModeStandard, at); err != nil {
		return nil, err
	}
	return out, nil
}
