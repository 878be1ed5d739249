package provider

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/amirasaad/fxcalc/internal/fixtures/rates"
	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/amirasaad/fxcalc/pkg/provider"
	"github.com/shopspring/decimal"
)

// TableSource is the source name reported for table quotes.
const TableSource = "reference-table"

var one = decimal.NewFromInt(1)

// TableProvider quotes rates from a static table pivoted on one currency.
//
// Pivot to X is read directly, X to pivot is the rounded inverse and any
// other pair is triangulated through the pivot. Pairs that involve a code
// missing from the table fail with provider.ErrUnsupportedPair.
type TableProvider struct {
	pivot    money.Code
	rates    map[money.Code]decimal.Decimal
	loadedAt time.Time
	logger   *slog.Logger
}

// NewTableProvider builds a provider from rows that all share the same base.
func NewTableProvider(rows []rates.Row, logger *slog.Logger) (*TableProvider, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(rows) == 0 {
		return nil, errors.New("rate table has no rows")
	}
	p := &TableProvider{
		pivot:    rows[0].Base,
		rates:    make(map[money.Code]decimal.Decimal, len(rows)),
		loadedAt: time.Now().UTC(),
		logger:   logger,
	}
	for _, r := range rows {
		if r.Base != p.pivot {
			return nil, errors.New("rate table mixes base currencies " +
				p.pivot.String() + " and " + r.Base.String())
		}
		p.rates[r.Quote] = r.Rate
	}
	logger.Info("Rate table loaded", "base", p.pivot, "currencies", len(p.rates))
	return p, nil
}

// NewDefaultTableProvider loads the embedded reference table.
func NewDefaultTableProvider(logger *slog.Logger) (*TableProvider, error) {
	rows, err := rates.Default()
	if err != nil {
		return nil, err
	}
	return NewTableProvider(rows, logger)
}

// Name returns the provider's name.
func (p *TableProvider) Name() string {
	return TableSource
}

// Pivot returns the currency every table row is quoted against.
func (p *TableProvider) Pivot() money.Code {
	return p.pivot
}

// Currencies returns every code the table can price, pivot included, sorted.
func (p *TableProvider) Currencies() []money.Code {
	out := make([]money.Code, 0, len(p.rates)+1)
	out = append(out, p.pivot)
	for c := range p.rates {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GetRate implements provider.RateProvider.
func (p *TableProvider) GetRate(ctx context.Context, from, to money.Code) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, provider.Unavailable(from, to, err)
	}
	if provider.IsIdentity(from, to) {
		return one, nil
	}
	toPivot, ok := p.fromPivot(to)
	if !ok {
		return decimal.Zero, provider.Unavailable(from, to, provider.ErrUnsupportedPair)
	}
	fromPivot, ok := p.fromPivot(from)
	if !ok {
		return decimal.Zero, provider.Unavailable(from, to, provider.ErrUnsupportedPair)
	}
	// fromPivot is never zero: rows are validated positive.
	rate, _ := money.Div(toPivot, fromPivot, money.RateScale)
	return rate, nil
}

// Quote implements provider.Quoter.
func (p *TableProvider) Quote(ctx context.Context, from, to money.Code) (*provider.Quote, error) {
	rate, err := p.GetRate(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &provider.Quote{
		From:      from,
		To:        to,
		Rate:      rate,
		Source:    TableSource,
		UpdatedAt: p.loadedAt,
	}, nil
}

// Rates implements provider.RateLister.
func (p *TableProvider) Rates(ctx context.Context, base money.Code) (*provider.RateTable, error) {
	if _, ok := p.fromPivot(base); !ok {
		return nil, provider.Unavailable(base, base, provider.ErrUnsupportedPair)
	}
	table := &provider.RateTable{
		Base:      base,
		Rates:     make(map[money.Code]decimal.Decimal, len(p.rates)),
		Source:    TableSource,
		UpdatedAt: p.loadedAt,
	}
	for _, code := range p.Currencies() {
		if code == base {
			continue
		}
		rate, err := p.GetRate(ctx, base, code)
		if err != nil {
			return nil, err
		}
		table.Rates[code] = rate
	}
	return table, nil
}

// fromPivot returns how many units of code one pivot unit buys.
func (p *TableProvider) fromPivot(code money.Code) (decimal.Decimal, bool) {
	if code == p.pivot {
		return one, true
	}
	r, ok := p.rates[code]
	return r, ok
}

var (
	_ provider.RateProvider = (*TableProvider)(nil)
	_ provider.Quoter       = (*TableProvider)(nil)
	_ provider.RateLister   = (*TableProvider)(nil)
)
