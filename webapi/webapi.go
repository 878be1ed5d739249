// Package webapi provides the HTTP surface of the calculator.
// It is organized into sub-packages per resource:
// - calculate: fee-aware conversion endpoints
// - rates: exchange rate and fee schedule endpoints
package webapi

import (
	"strings"

	"github.com/amirasaad/fxcalc/pkg/app"
	calculateweb "github.com/amirasaad/fxcalc/webapi/calculate"
	"github.com/amirasaad/fxcalc/webapi/common"
	ratesweb "github.com/amirasaad/fxcalc/webapi/rates"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var errRateLimited = fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded")

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ErrorResponseJSON(c, err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	// Uses X-Forwarded-For header when behind a proxy
	fiberApp.Use(limiter.New(limiter.Config{
		Max:          app.Config.RateLimit.MaxRequests,
		Expiration:   app.Config.RateLimit.Window,
		KeyGenerator: clientKey,
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, errRateLimited)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	fiberApp.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("FX calculator is running! 🚀")
	})
	fiberApp.Get("/metrics", adaptor.HTTPHandler(
		promhttp.HandlerFor(app.Deps.Registry, promhttp.HandlerOpts{}),
	))

	calculateweb.Routes(fiberApp, app.Calculator)
	ratesweb.Routes(fiberApp, app.Deps.RateProvider, app.Calculator.Policy())

	fiberApp.Use(func(c *fiber.Ctx) error {
		return common.ErrorResponseJSON(c, fiber.ErrNotFound)
	})
	return fiberApp
}

// clientKey takes the first address of X-Forwarded-For, then X-Real-IP,
// then the peer address.
func clientKey(c *fiber.Ctx) string {
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		if first, _, found := strings.Cut(forwardedFor, ","); found {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(forwardedFor)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
