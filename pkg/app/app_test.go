package app_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/amirasaad/fxcalc/pkg/app"
	"github.com/amirasaad/fxcalc/pkg/config"
	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/amirasaad/fxcalc/pkg/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.App {
	t.Helper()
	t.Chdir(t.TempDir())
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestNew(t *testing.T) {
	cfg := testConfig(t)
	rates := provider.RateFunc(func(context.Context, money.Code, money.Code) (decimal.Decimal, error) {
		return decimal.RequireFromString("0.85"), nil
	})

	a, err := app.New(&app.Deps{RateProvider: rates}, cfg)
	require.NoError(t, err)
	require.NotNil(t, a.Calculator)
	require.NotNil(t, a.Deps.Registry)

	res, err := a.Calculator.Calculate(context.Background(), "USD", "EUR", decimal.NewFromInt(100), "")
	require.NoError(t, err)
	assert.Equal(t, "82.46", res.NetAmount.StringFixed(2))

	families, err := a.Deps.Registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNew_RequiresProvider(t *testing.T) {
	_, err := app.New(&app.Deps{}, testConfig(t))
	assert.Error(t, err)
}

func TestDeps_Close(t *testing.T) {
	boom := errors.New("boom")
	closed := 0
	deps := &app.Deps{Closers: []io.Closer{
		closerFunc(func() error { closed++; return nil }),
		closerFunc(func() error { closed++; return boom }),
	}}
	assert.ErrorIs(t, deps.Close(), boom)
	assert.Equal(t, 2, closed)
}
