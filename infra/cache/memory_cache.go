package cache

import (
	"context"
	"time"

	"github.com/amirasaad/fxcalc/pkg/provider"
	gocache "github.com/patrickmn/go-cache"
)

const lastUpdatePrefix = "last_update:"

// MemoryCache implements the rate cache in process memory.
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache creates an in-memory cache whose expired entries are purged
// every cleanupInterval.
func NewMemoryCache(cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		items: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

// Get retrieves a quote from cache. A miss returns (nil, nil).
func (c *MemoryCache) Get(_ context.Context, key string) (*provider.Quote, error) {
	v, ok := c.items.Get(key)
	if !ok {
		return nil, nil
	}
	q := v.(provider.Quote)
	return &q, nil
}

// Set stores a copy of quote with ttl. A non-positive ttl never expires.
func (c *MemoryCache) Set(_ context.Context, key string, quote *provider.Quote, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	c.items.Set(key, *quote, ttl)
	return nil
}

// Delete removes a quote from cache.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.items.Delete(key)
	return nil
}

// GetLastUpdate returns the last update timestamp for a key, or the zero time.
func (c *MemoryCache) GetLastUpdate(_ context.Context, key string) (time.Time, error) {
	v, ok := c.items.Get(lastUpdatePrefix + key)
	if !ok {
		return time.Time{}, nil
	}
	return v.(time.Time), nil
}

// SetLastUpdate sets the last update timestamp for a key.
func (c *MemoryCache) SetLastUpdate(_ context.Context, key string, t time.Time) error {
	c.items.Set(lastUpdatePrefix+key, t, gocache.NoExpiration)
	return nil
}

// Len returns the number of stored entries, expired ones included until purged.
func (c *MemoryCache) Len() int {
	return c.items.ItemCount()
}
