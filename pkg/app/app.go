// Package app wires the calculator to its collaborators.
package app

import (
	"errors"
	"io"
	"log/slog"

	"github.com/amirasaad/fxcalc/pkg/calculator"
	"github.com/amirasaad/fxcalc/pkg/config"
	"github.com/amirasaad/fxcalc/pkg/provider"
	"github.com/prometheus/client_golang/prometheus"
)

// Deps contains the infrastructure the application is built from.
type Deps struct {
	RateProvider provider.RateProvider
	Registry     *prometheus.Registry
	Logger       *slog.Logger
	Closers      []io.Closer
}

// Close releases every resource registered in Closers.
func (d *Deps) Close() error {
	var errs []error
	for _, c := range d.Closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

type App struct {
	Deps       *Deps
	Config     *config.App
	Calculator *calculator.Calculator
	Metrics    *calculator.Metrics
}

func New(deps *Deps, cfg *config.App) (*App, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}
	a := &App{
		Deps:    deps,
		Config:  cfg,
		Metrics: calculator.NewMetrics(deps.Registry),
	}
	calc, err := calculator.New(
		deps.RateProvider,
		cfg.Fee.Policy(),
		deps.Logger.With("component", "calculator"),
		calculator.WithMetrics(a.Metrics),
	)
	if err != nil {
		return nil, err
	}
	a.Calculator = calc
	return a, nil
}
