package calculator_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/fxcalc/pkg/calculator"
	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/amirasaad/fxcalc/pkg/provider"
	"github.com/shopspring/decimal"
)

// FuzzCalculate checks the arithmetic invariants over random amounts and rates.
func FuzzCalculate(f *testing.F) {
	f.Add(int64(10000), int64(850000), "standard")
	f.Add(int64(1), int64(1), "express")
	f.Add(int64(100000000), int64(1180000000), "economy")
	f.Add(int64(29900), int64(1000000), "bogus")

	policy := calculator.DefaultPolicy()
	f.Fuzz(func(t *testing.T, cents, micros int64, mode string) {
		if cents <= 0 || micros <= 0 {
			t.Skip()
		}
		amount := decimal.New(cents, -2)
		rate := decimal.New(micros, -6)
		if amount.GreaterThan(policy.MaxAmount) {
			t.Skip()
		}

		rates := provider.RateFunc(func(context.Context, money.Code, money.Code) (decimal.Decimal, error) {
			return rate, nil
		})
		calc, err := calculator.New(rates, policy, nil,
			calculator.WithClock(func() time.Time { return time.Unix(0, 0) }))
		if err != nil {
			t.Fatal(err)
		}

		res, err := calc.Calculate(context.Background(), "USD", "EUR", amount, mode)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Net is rounded to cents while gross keeps six digits, so compare at cent scale.
		if res.NetAmount.GreaterThan(money.Round(res.GrossAmount, money.MinorScale)) {
			t.Errorf("net %s exceeds gross %s", res.NetAmount, res.GrossAmount)
		}
		if res.FeeAmount.LessThan(policy.MinFee) || res.FeeAmount.GreaterThan(policy.MaxFee) {
			t.Errorf("fee %s outside [%s, %s]", res.FeeAmount, policy.MinFee, policy.MaxFee)
		}
		if !res.TotalCost.Equal(amount.Add(res.FeeAmount)) {
			t.Errorf("total cost %s != %s + %s", res.TotalCost, amount, res.FeeAmount)
		}
		if !res.RateMargin.Equal(rate.Sub(res.EffectiveRate)) {
			t.Errorf("margin %s != %s - %s", res.RateMargin, rate, res.EffectiveRate)
		}
		if res.FeeAmount.Exponent() < -money.MinorScale || res.NetAmount.Exponent() < -money.MinorScale {
			t.Errorf("fee %s or net %s has more than two decimals", res.FeeAmount, res.NetAmount)
		}
	})
}
