package calculator

import (
	"context"
	"fmt"
	"time"

	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/shopspring/decimal"
)

// CalculateReverse estimates the amount to send so that roughly target arrives.
//
// The estimate ignores the fee clamp:
//
//	base     = round(target / rate, 6)
//	required = round(base / (1 − feeRate), 2)
//
// A forward calculation with required is attached as verification. When the
// minimum or maximum fee applies, verification.net differs from target and the
// difference is reported rather than corrected.
func (c *Calculator) CalculateReverse(
	ctx context.Context,
	from, to string,
	target decimal.Decimal,
	feeMode string,
) (res *ReverseResult, err error) {
	defer c.observe(opReverse, time.Now(), &err)

	src, dst, err := parsePair(from, to)
	if err != nil {
		return nil, err
	}
	if err := c.checkAmount(FieldTargetAmount, target); err != nil {
		return nil, err
	}

	rate, err := c.fetchRate(ctx, src, dst)
	if err != nil {
		return nil, err
	}

	mode := ParseFeeMode(feeMode)
	base, err := money.Div(target, rate, money.RateScale)
	if err != nil {
		return nil, &CalculationError{Op: "reverse base amount", Err: err}
	}
	keep := decimal.NewFromInt(1).Sub(c.policy.FeeRate(mode))
	required, err := money.Div(base, keep, money.MinorScale)
	if err != nil {
		return nil, &CalculationError{Op: "reverse required amount", Err: err}
	}

	if !required.IsPositive() {
		return nil, &ValidationError{
			Field:  FieldTargetAmount,
			Reason: "too small to convert",
		}
	}
	if required.GreaterThan(c.policy.MaxAmount) {
		return nil, &ValidationError{
			Field:  FieldTargetAmount,
			Reason: fmt.Sprintf("requires sending more than %s", c.policy.MaxAmount),
		}
	}

	at := c.now()
	verification, err := c.compute(src, dst, required, rate, mode, at)
	if err != nil {
		return nil, err
	}

	discrepancy := verification.NetAmount.Sub(target)
	if !discrepancy.IsZero() {
		c.logger.Debug("reverse calculation diverges from target",
			"from", src,
			"to", dst,
			"target", target,
			"net", verification.NetAmount,
			"fee_bound", verification.FeeBound,
		)
	}
	return &ReverseResult{
		RequiredAmount: required,
		TargetAmount:   target,
		FromCurrency:   src,
		ToCurrency:     dst,
		ExchangeRate:   rate,
		Verification:   verification,
		Discrepancy:    discrepancy,
		FeeClamped:     verification.FeeBound != FeeBoundNone,
		CalculatedAt:   at,
	}, nil
}
