package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/fxcalc/pkg/provider"
	"github.com/redis/go-redis/v9"
)

// RedisCache implements the rate cache on Redis.
// Quotes are stored as JSON under prefix+key.
type RedisCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client *redis.Client, prefix string, logger *slog.Logger) *RedisCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisCache{client: client, prefix: prefix, logger: logger}
}

// NewRedisCacheWithOptions creates a new RedisCache from redis.Options.
func NewRedisCacheWithOptions(opt *redis.Options, prefix string, logger *slog.Logger) *RedisCache {
	return NewRedisCache(redis.NewClient(opt), prefix, logger)
}

// NewRedisCacheFromURL parses a redis:// URL and connects lazily.
func NewRedisCacheFromURL(url, prefix string, logger *slog.Logger) (*RedisCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewRedisCacheWithOptions(opt, prefix, logger), nil
}

func (r *RedisCache) key(key string) string {
	return r.prefix + key
}

// Ping checks connectivity.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (r *RedisCache) Close() error {
	return r.client.Close()
}

func (r *RedisCache) Get(ctx context.Context, key string) (*provider.Quote, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Redis cache get error", "key", key, "error", err)
		return nil, err
	}
	var q provider.Quote
	if err := json.Unmarshal(val, &q); err != nil {
		r.logger.Error("Redis cache unmarshal error", "key", key, "error", err)
		return nil, err
	}
	r.logger.Debug("Redis cache hit", "key", key, "rate", q.Rate)
	return &q, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, quote *provider.Quote, ttl time.Duration) error {
	data, err := json.Marshal(quote)
	if err != nil {
		r.logger.Error("Redis cache marshal error", "key", key, "error", err)
		return err
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, r.key(key), data, ttl).Err(); err != nil {
		r.logger.Error("Redis cache set error", "key", key, "error", err)
		return err
	}
	r.logger.Debug("Redis cache set", "key", key, "rate", quote.Rate, "ttl", ttl)
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logger.Error("Redis cache delete error", "key", key, "error", err)
		return err
	}
	return nil
}

func (r *RedisCache) GetLastUpdate(ctx context.Context, key string) (time.Time, error) {
	val, err := r.client.Get(ctx, r.key(lastUpdatePrefix+key)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		r.logger.Error("Redis cache get last update error", "key", key, "error", err)
		return time.Time{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, val)
	if err != nil {
		r.logger.Error("Redis cache parse last update error", "key", key, "error", err)
		return time.Time{}, err
	}
	return ts, nil
}

func (r *RedisCache) SetLastUpdate(ctx context.Context, key string, t time.Time) error {
	err := r.client.Set(ctx, r.key(lastUpdatePrefix+key), t.Format(time.RFC3339Nano), 0).Err()
	if err != nil {
		r.logger.Error("Redis cache set last update error", "key", key, "error", err)
		return err
	}
	return nil
}
