package calculator

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opCalculate  = "calculate"
	opBatch      = "batch"
	opReverse    = "reverse"
	opMonitoring = "monitoring"
)

// Metrics holds the Prometheus collectors of the calculator.
// A nil *Metrics records nothing.
type Metrics struct {
	CalculationsTotal   *prometheus.CounterVec
	CalculationDuration *prometheus.HistogramVec
	FeeClampedTotal     *prometheus.CounterVec
}

// NewMetrics registers the calculator collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CalculationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxcalc_calculations_total",
				Help: "Number of calculator operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		CalculationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fxcalc_calculation_duration_seconds",
				Help:    "Duration of calculator operations including the rate lookup",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
			[]string{"operation"},
		),
		FeeClampedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxcalc_fee_clamped_total",
				Help: "Number of fees raised to the minimum or cut to the maximum",
			},
			[]string{"bound"},
		),
	}
}

// outcome classifies err into a low-cardinality label.
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrRateUnavailable):
		return "rate_unavailable"
	default:
		return "calculation_error"
	}
}

func (c *Calculator) observe(op string, start time.Time, errp *error) {
	m := c.metrics
	if m == nil {
		return
	}
	m.CalculationsTotal.WithLabelValues(op, outcome(*errp)).Inc()
	m.CalculationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) feeClamped(bound FeeBound) {
	if m == nil || bound == FeeBoundNone {
		return
	}
	m.FeeClampedTotal.WithLabelValues(string(bound)).Inc()
}
