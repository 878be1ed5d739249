package provider

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/amirasaad/fxcalc/pkg/provider"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// RateCache stores quotes by key. Get returns (nil, nil) on a miss.
type RateCache interface {
	Get(ctx context.Context, key string) (*provider.Quote, error)
	Set(ctx context.Context, key string, quote *provider.Quote, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	GetLastUpdate(ctx context.Context, key string) (time.Time, error)
	SetLastUpdate(ctx context.Context, key string, t time.Time) error
}

// CachedProvider decorates a RateProvider with a RateCache.
//
// Concurrent misses for the same pair share one upstream call. Cache failures
// are logged and the upstream is used instead; lookup failures are never cached.
type CachedProvider struct {
	next     provider.RateProvider
	cache    RateCache
	ttl      time.Duration
	logger   *slog.Logger
	inflight singleflight.Group
	now      func() time.Time
}

// NewCachedProvider creates a new CachedProvider.
func NewCachedProvider(
	next provider.RateProvider,
	cache RateCache,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedProvider{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

func quoteKey(from, to money.Code) string {
	return "rate:" + provider.PairKey(from, to)
}

func tableKey(base money.Code) string {
	return "rates:" + base.String()
}

// Name returns the provider's name.
func (c *CachedProvider) Name() string {
	return fmt.Sprintf("cached(%s)", provider.NameOf(c.next))
}

// GetRate implements provider.RateProvider.
func (c *CachedProvider) GetRate(ctx context.Context, from, to money.Code) (decimal.Decimal, error) {
	q, err := c.Quote(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return q.Rate, nil
}

// Quote implements provider.Quoter.
func (c *CachedProvider) Quote(ctx context.Context, from, to money.Code) (*provider.Quote, error) {
	if provider.IsIdentity(from, to) {
		return &provider.Quote{From: from, To: to, Rate: one, Source: "identity", UpdatedAt: c.now().UTC()}, nil
	}

	key := quoteKey(from, to)
	if q, err := c.cache.Get(ctx, key); err != nil {
		c.logger.Error("Error getting rate from cache", "key", key, "error", err)
	} else if q != nil {
		c.logger.Debug("Cache hit for rate", "key", key)
		return q, nil
	}

	v, err, shared := c.inflight.Do(key, func() (any, error) {
		// Shared by every waiter on key, so one caller's cancellation must not fail the rest.
		fetchCtx := context.WithoutCancel(ctx)
		c.logger.Debug("Cache miss for rate, fetching from next provider", "key", key)
		q, err := c.fetch(fetchCtx, from, to)
		if err != nil {
			return nil, err
		}
		if err := c.cache.Set(fetchCtx, key, q, c.ttl); err != nil {
			c.logger.Error("Error setting rate in cache", "key", key, "error", err)
		}
		return q, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debug("Shared in-flight rate lookup", "key", key)
	}
	return v.(*provider.Quote), nil
}

func (c *CachedProvider) fetch(ctx context.Context, from, to money.Code) (*provider.Quote, error) {
	if quoter, ok := c.next.(provider.Quoter); ok {
		return quoter.Quote(ctx, from, to)
	}
	rate, err := c.next.GetRate(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &provider.Quote{
		From:      from,
		To:        to,
		Rate:      rate,
		Source:    provider.NameOf(c.next),
		UpdatedAt: c.now().UTC(),
	}, nil
}

// Rates implements provider.RateLister when the wrapped provider does.
// The table's UpdatedAt is the last warm-up time when one is recorded.
func (c *CachedProvider) Rates(ctx context.Context, base money.Code) (*provider.RateTable, error) {
	lister, ok := c.next.(provider.RateLister)
	if !ok {
		return nil, provider.Unavailable(base, base, fmt.Errorf("%s cannot list rates", provider.NameOf(c.next)))
	}
	table, err := lister.Rates(ctx, base)
	if err != nil {
		return nil, err
	}
	if ts, err := c.cache.GetLastUpdate(ctx, tableKey(base)); err != nil {
		c.logger.Error("Error getting last update from cache", "base", base, "error", err)
	} else if !ts.IsZero() {
		table.UpdatedAt = ts
	}
	return table, nil
}

// Warm loads every rate quoted against base into the cache and returns how many
// entries were stored.
func (c *CachedProvider) Warm(ctx context.Context, base money.Code) (int, error) {
	table, err := c.Rates(ctx, base)
	if err != nil {
		return 0, err
	}
	now := c.now().UTC()
	stored := 0
	for code, rate := range table.Rates {
		q := &provider.Quote{From: base, To: code, Rate: rate, Source: table.Source, UpdatedAt: now}
		if err := c.cache.Set(ctx, quoteKey(base, code), q, c.ttl); err != nil {
			c.logger.Error("Error warming rate cache", "from", base, "to", code, "error", err)
			continue
		}
		stored++
	}
	if err := c.cache.SetLastUpdate(ctx, tableKey(base), now); err != nil {
		c.logger.Error("Error setting last update in cache", "base", base, "error", err)
	}
	c.logger.Info("Rate cache warmed", "base", base, "stored", stored, "ttl", c.ttl)
	return stored, nil
}

// Invalidate drops the cached quote for a pair.
func (c *CachedProvider) Invalidate(ctx context.Context, from, to money.Code) error {
	return c.cache.Delete(ctx, quoteKey(from, to))
}

var (
	_ provider.RateProvider = (*CachedProvider)(nil)
	_ provider.Quoter       = (*CachedProvider)(nil)
	_ provider.RateLister   = (*CachedProvider)(nil)
)
