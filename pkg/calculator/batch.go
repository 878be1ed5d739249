package calculator

import (
	"context"
	"time"

	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// CalculateBatch runs Calculate for every pair with the same amount and fee mode.
//
// Only an invalid amount fails the whole batch. Any other failure is recorded
// against its own pair key and the remaining pairs still complete. When two
// pairs normalise to the same key the later one in pairs wins.
func (c *Calculator) CalculateBatch(
	ctx context.Context,
	amount decimal.Decimal,
	pairs []Pair,
	feeMode string,
) (res *BatchResult, err error) {
	defer c.observe(opBatch, time.Now(), &err)

	if err := c.checkAmount(FieldAmount, amount); err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, &ValidationError{Field: FieldPairs, Reason: "at least one currency pair is required"}
	}

	mode := ParseFeeMode(feeMode)
	at := c.now()
	keys := make([]string, len(pairs))
	entries := make([]BatchEntry, len(pairs))

	var g errgroup.Group
	g.SetLimit(c.policy.BatchConcurrency)
	for i, p := range pairs {
		keys[i] = PairKey(money.NormalizeCode(p.From), money.NormalizeCode(p.To))
		g.Go(func() error {
			entries[i] = c.batchEntry(ctx, p, amount, mode, at)
			return nil
		})
	}
	_ = g.Wait()

	out := &BatchResult{
		Results:      make(map[string]BatchEntry, len(pairs)),
		CalculatedAt: at,
	}
	for i, key := range keys {
		out.Results[key] = entries[i]
	}
	if failed := out.Failed(); failed > 0 {
		c.logger.Info("batch completed with failures", "pairs", len(pairs), "failed", failed)
	}
	return out, nil
}

func (c *Calculator) batchEntry(
	ctx context.Context,
	p Pair,
	amount decimal.Decimal,
	mode FeeMode,
	at time.Time,
) BatchEntry {
	src, dst, err := parsePair(p.From, p.To)
	if err != nil {
		return BatchEntry{Err: err}
	}
	rate, err := c.fetchRate(ctx, src, dst)
	if err != nil {
		return BatchEntry{Err: err}
	}
	res, err := c.compute(src, dst, amount, rate, mode, at)
	if err != nil {
		return BatchEntry{Err: err}
	}
	return BatchEntry{Result: res}
}
