package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/fxcalc/infra/cache"
	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/amirasaad/fxcalc/pkg/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuote() *provider.Quote {
	return &provider.Quote{
		From:      money.USD,
		To:        money.EUR,
		Rate:      decimal.RequireFromString("0.85"),
		Source:    "test",
		UpdatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestMemoryCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(time.Minute)

	got, err := c.Get(ctx, "rate:USD:EUR")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, c.Set(ctx, "rate:USD:EUR", sampleQuote(), time.Minute))
	got, err = c.Get(ctx, "rate:USD:EUR")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Rate.Equal(decimal.RequireFromString("0.85")))
	assert.Equal(t, "test", got.Source)

	require.NoError(t, c.Delete(ctx, "rate:USD:EUR"))
	got, err = c.Get(ctx, "rate:USD:EUR")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryCache_StoresCopies(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(time.Minute)
	q := sampleQuote()
	require.NoError(t, c.Set(ctx, "k", q, 0))

	q.Source = "mutated"
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "test", got.Source)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(time.Minute)
	require.NoError(t, c.Set(ctx, "k", sampleQuote(), 10*time.Millisecond))

	assert.Eventually(t, func() bool {
		got, err := c.Get(ctx, "k")
		return err == nil && got == nil
	}, time.Second, 5*time.Millisecond)
}

func TestMemoryCache_LastUpdate(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(time.Minute)

	ts, err := c.GetLastUpdate(ctx, "rates:USD")
	require.NoError(t, err)
	assert.True(t, ts.IsZero())

	now := time.Now().UTC()
	require.NoError(t, c.SetLastUpdate(ctx, "rates:USD", now))
	ts, err = c.GetLastUpdate(ctx, "rates:USD")
	require.NoError(t, err)
	assert.True(t, now.Equal(ts))
	assert.Equal(t, 1, c.Len())
}
