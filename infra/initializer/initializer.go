package initializer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	infracache "github.com/amirasaad/fxcalc/infra/cache"
	infraprovider "github.com/amirasaad/fxcalc/infra/provider"
	"github.com/amirasaad/fxcalc/pkg/app"
	"github.com/amirasaad/fxcalc/pkg/config"
	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	return initialize(os.Stdout, cfg)
}

func initialize(w io.Writer, cfg *config.App) (*app.Deps, error) {
	logger := setupLogger(w, cfg.Log)
	deps := &app.Deps{Logger: logger}

	table, err := infraprovider.NewDefaultTableProvider(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference rate table: %w", err)
	}

	rateCache, closer := newRateCache(cfg, logger)
	if closer != nil {
		deps.Closers = append(deps.Closers, closer)
	}
	cached := infraprovider.NewCachedProvider(table, rateCache, cfg.ExchangeRateCache.TTL, logger)

	if cfg.ExchangeRateCache.WarmOnStart {
		if err := initializeExchangeRates(cached, table.Pivot(), logger); err != nil {
			// Lookups fall through to the table on a cold cache.
			logger.Error("Failed to initialize exchange rates", "error", err)
		}
	}
	deps.RateProvider = cached

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Registry = reg

	return deps, nil
}

// newRateCache returns the Redis cache when REDIS_URL is set and reachable,
// otherwise an in-memory cache.
func newRateCache(cfg *config.App, logger *slog.Logger) (infraprovider.RateCache, io.Closer) {
	memory := func() (infraprovider.RateCache, io.Closer) {
		logger.Info("Using in-memory exchange rate cache")
		return infracache.NewMemoryCache(cfg.ExchangeRateCache.CleanupInterval), nil
	}
	if cfg.Redis.URL == "" {
		return memory()
	}

	opt, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Error("Invalid REDIS_URL, falling back to memory cache", "error", err)
		return memory()
	}
	opt.PoolSize = cfg.Redis.PoolSize
	opt.DialTimeout = cfg.Redis.DialTimeout
	opt.ReadTimeout = cfg.Redis.ReadTimeout
	opt.WriteTimeout = cfg.Redis.WriteTimeout

	rc := infracache.NewRedisCacheWithOptions(
		opt,
		cfg.Redis.KeyPrefix+cfg.ExchangeRateCache.Prefix,
		logger,
	)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		logger.Error("Redis unreachable, falling back to memory cache", "error", err)
		_ = rc.Close()
		return memory()
	}
	logger.Info("Using Redis exchange rate cache", "addr", opt.Addr)
	return rc, rc
}

// initializeExchangeRates loads the pivot rates into the cache during startup
func initializeExchangeRates(
	cached *infraprovider.CachedProvider,
	base money.Code,
	logger *slog.Logger,
) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stored, err := cached.Warm(ctx, base)
	if err != nil {
		return fmt.Errorf("failed to warm exchange rate cache: %w", err)
	}
	logger.Info("Successfully fetched and cached exchange rates",
		"provider", cached.Name(),
		"rates_count", stored,
	)
	return nil
}
