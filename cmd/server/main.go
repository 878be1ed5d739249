package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/amirasaad/fxcalc/cmd/server/swagger"
	"github.com/amirasaad/fxcalc/infra/initializer"
	"github.com/amirasaad/fxcalc/pkg/app"
	"github.com/amirasaad/fxcalc/pkg/config"
	"github.com/amirasaad/fxcalc/pkg/provider"
	"github.com/amirasaad/fxcalc/webapi"
	log "github.com/charmbracelet/log"
)

//go:generate swag init -g main.go -o swagger --outputTypes go

// @title FX Calculator API
// @version 2.0
// @description Fee-aware currency conversion calculator
// @contact.name API Support
// @license.name MIT
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger
	defer func() {
		if err := deps.Close(); err != nil {
			logger.Warn("failed to release dependencies", "error", err)
		}
	}()

	application, err := app.New(deps, cfg)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	// Setup Fiber app with all routes and middleware
	fiberApp := webapi.SetupApp(application)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		if err := fiberApp.Shutdown(); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
		"provider", provider.NameOf(deps.RateProvider),
	)
	return fiberApp.Listen(addr)
}
