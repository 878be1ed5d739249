package config

import (
	"time"

	"github.com/amirasaad/fxcalc/pkg/calculator"
)

type Redis struct {
	// URL enables the Redis rate cache when set, e.g. redis://localhost:6379/0.
	URL          string        `envconfig:"URL" default:""`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:"fxcalc:"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type ExchangeRateCache struct {
	TTL             time.Duration `envconfig:"TTL" default:"15m"`
	CleanupInterval time.Duration `envconfig:"CLEANUP_INTERVAL" default:"10m"`
	Prefix          string        `envconfig:"CACHE_PREFIX" default:"exr:"`
	WarmOnStart     bool          `envconfig:"WARM_ON_START" default:"true"`
}

// Fee is the fee schedule applied by the calculator.
type Fee struct {
	StandardRate     Decimal `envconfig:"STANDARD_RATE" default:"0.010"`
	ExpressRate      Decimal `envconfig:"EXPRESS_RATE" default:"0.015"`
	EconomyRate      Decimal `envconfig:"ECONOMY_RATE" default:"0.005"`
	MinFee           Decimal `envconfig:"MIN_FEE" default:"2.99"`
	MaxFee           Decimal `envconfig:"MAX_FEE" default:"50.00"`
	MaxAmount        Decimal `envconfig:"MAX_AMOUNT" default:"1000000"`
	AmountScale      int32   `envconfig:"AMOUNT_SCALE" default:"8"`
	RateVariation    Decimal `envconfig:"RATE_VARIATION" default:"0.001"`
	BatchConcurrency int     `envconfig:"BATCH_CONCURRENCY" default:"8"`
}

// Policy converts the fee settings into a calculator policy.
func (f *Fee) Policy() calculator.Policy {
	return calculator.Policy{
		StandardRate:     f.StandardRate.Decimal,
		ExpressRate:      f.ExpressRate.Decimal,
		EconomyRate:      f.EconomyRate.Decimal,
		MinFee:           f.MinFee.Decimal,
		MaxFee:           f.MaxFee.Decimal,
		MaxAmount:        f.MaxAmount.Decimal,
		AmountScale:      f.AmountScale,
		RateVariation:    f.RateVariation.Decimal,
		BatchConcurrency: f.BatchConcurrency,
	}
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[fxcalc]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env               string             `envconfig:"APP_ENV" default:"development"`
	Server            *Server            `envconfig:"SERVER"`
	Log               *Log               `envconfig:"LOG"`
	ExchangeRateCache *ExchangeRateCache `envconfig:"EXCHANGE_RATE_CACHE"`
	Redis             *Redis             `envconfig:"REDIS"`
	RateLimit         *RateLimit         `envconfig:"RATE_LIMIT"`
	Fee               *Fee               `envconfig:"FEE"`
}
