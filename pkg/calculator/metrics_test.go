package calculator_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/fxcalc/pkg/calculator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := calculator.NewMetrics(reg)
	calc, err := calculator.New(
		staticRates(map[string]string{"USD:EUR": "0.85"}),
		calculator.DefaultPolicy(),
		nil,
		calculator.WithMetrics(metrics),
		calculator.WithClock(func() time.Time { return fixedNow }),
	)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = calc.Calculate(ctx, "USD", "EUR", dec(t, "100"), "")
	require.NoError(t, err)
	_, err = calc.Calculate(ctx, "USD", "EUR", dec(t, "0"), "")
	require.Error(t, err)
	_, err = calc.Calculate(ctx, "USD", "KRW", dec(t, "10"), "")
	require.Error(t, err)
	_, err = calc.Calculate(ctx, "USD", "EUR", dec(t, "100000"), "")
	require.NoError(t, err)

	assert.InDelta(t, 2, testutil.ToFloat64(metrics.CalculationsTotal.WithLabelValues("calculate", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.CalculationsTotal.WithLabelValues("calculate", "validation_error")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.CalculationsTotal.WithLabelValues("calculate", "rate_unavailable")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.FeeClampedTotal.WithLabelValues("min")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.FeeClampedTotal.WithLabelValues("max")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.CalculationDuration))
}
