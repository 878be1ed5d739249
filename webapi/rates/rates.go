// Package rates exposes the exchange rates behind the calculator.
package rates

import (
	"errors"
	"time"

	"github.com/amirasaad/fxcalc/pkg/calculator"
	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/amirasaad/fxcalc/pkg/provider"
	"github.com/amirasaad/fxcalc/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// DefaultBase is used by GET /api/rates when no base is given.
const DefaultBase = money.USD

var errListingUnsupported = errors.New("provider cannot list rates")

// ConnectionStatus is the body of the connectivity probe.
type ConnectionStatus struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Endpoint  string    `json:"endpoint"`
	Provider  string    `json:"provider"`
}

// FeeModes describes the fee schedule the calculator applies.
type FeeModes struct {
	Modes  []calculator.FeeMode `json:"modes" swaggertype:"array,string"`
	Policy calculator.Policy    `json:"policy"`
}

// Routes registers the rate endpoints under /api/rates.
// Static paths are registered before the /:from/:to pattern.
func Routes(app *fiber.App, rates provider.RateProvider, policy calculator.Policy) {
	group := app.Group("/api/rates")
	group.Get("/", ListRates(rates))
	group.Get("/test", TestConnection(rates))
	group.Get("/fee-modes", ListFeeModes(policy))
	group.Get("/:from/:to", GetRate(rates))
}

// ListRates returns a Fiber handler listing every rate for a base currency.
// @Summary List rates
// @Description Lists every rate quoted against the base currency.
// @Tags rates
// @Produce json
// @Param base query string false "Base currency" default(USD)
// @Success 200 {object} provider.RateTable
// @Failure 400 {object} common.ErrorResponse
// @Failure 503 {object} common.ErrorResponse
// @Router /api/rates [get]
func ListRates(rates provider.RateProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		base := DefaultBase
		if raw := c.Query("base"); raw != "" {
			code, err := parseCode("base", raw)
			if err != nil {
				return common.ErrorResponseJSON(c, err)
			}
			base = code
		}
		lister, ok := rates.(provider.RateLister)
		if !ok {
			return common.ErrorResponseJSON(c, provider.Unavailable(base, base, errListingUnsupported))
		}
		table, err := lister.Rates(c.UserContext(), base)
		if err != nil {
			return common.ErrorResponseJSON(c, err)
		}
		return c.JSON(table)
	}
}

// GetRate returns a Fiber handler for the rate of one pair.
// @Summary Get a rate
// @Description Returns the current rate for a currency pair and where it came from.
// @Tags rates
// @Produce json
// @Param from path string true "Source currency (e.g., USD)"
// @Param to path string true "Target currency (e.g., EUR)"
// @Success 200 {object} provider.Quote
// @Failure 400 {object} common.ErrorResponse
// @Failure 503 {object} common.ErrorResponse
// @Router /api/rates/{from}/{to} [get]
func GetRate(rates provider.RateProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, err := parseCode(calculator.FieldFrom, c.Params("from"))
		if err != nil {
			return common.ErrorResponseJSON(c, err)
		}
		to, err := parseCode(calculator.FieldTo, c.Params("to"))
		if err != nil {
			return common.ErrorResponseJSON(c, err)
		}
		quote, err := lookup(c, rates, from, to)
		if err != nil {
			return common.ErrorResponseJSON(c, &calculator.RateUnavailableError{From: from, To: to, Err: err})
		}
		return c.JSON(quote)
	}
}

// TestConnection returns a Fiber handler probing the rate provider.
// @Summary Probe the rate provider
// @Tags rates
// @Produce json
// @Success 200 {object} ConnectionStatus
// @Failure 503 {object} common.ErrorResponse
// @Router /api/rates/test [get]
func TestConnection(rates provider.RateProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		quote, err := lookup(c, rates, money.USD, money.EUR)
		if err != nil {
			return common.ErrorResponseJSON(c, &calculator.RateUnavailableError{From: money.USD, To: money.EUR, Err: err})
		}
		return c.JSON(ConnectionStatus{
			Status:    "success",
			Message:   "USD/EUR rate is " + quote.Rate.String(),
			Timestamp: time.Now().UTC(),
			Endpoint:  c.Path(),
			Provider:  quote.Source,
		})
	}
}

// ListFeeModes returns a Fiber handler describing the fee schedule.
// @Summary List fee modes
// @Tags rates
// @Produce json
// @Success 200 {object} FeeModes
// @Router /api/rates/fee-modes [get]
func ListFeeModes(policy calculator.Policy) fiber.Handler {
	body := FeeModes{Modes: calculator.FeeModes, Policy: policy}
	return func(c *fiber.Ctx) error {
		return c.JSON(body)
	}
}

func lookup(c *fiber.Ctx, rates provider.RateProvider, from, to money.Code) (*provider.Quote, error) {
	if q, ok := rates.(provider.Quoter); ok {
		return q.Quote(c.UserContext(), from, to)
	}
	rate, err := rates.GetRate(c.UserContext(), from, to)
	if err != nil {
		return nil, err
	}
	if err := provider.CheckRate(from, to, rate); err != nil {
		return nil, err
	}
	return &provider.Quote{
		From:      from,
		To:        to,
		Rate:      rate,
		Source:    provider.NameOf(rates),
		UpdatedAt: time.Now().UTC(),
	}, nil
}

func parseCode(field, raw string) (money.Code, error) {
	code, err := money.ParseCode(raw)
	if err != nil {
		return "", &calculator.ValidationError{Field: field, Reason: "currency code must be three letters", Err: err}
	}
	return code, nil
}
