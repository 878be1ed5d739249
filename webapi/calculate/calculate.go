// Package calculate exposes the conversion calculator over HTTP.
package calculate

import (
	"github.com/amirasaad/fxcalc/pkg/calculator"
	"github.com/amirasaad/fxcalc/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the calculation endpoints under /api/rates/calculate.
func Routes(app *fiber.App, calc *calculator.Calculator) {
	group := app.Group("/api/rates/calculate")
	group.Post("/", Calculate(calc))
	group.Post("/batch", CalculateBatch(calc))
	group.Post("/reverse", CalculateReverse(calc))
	group.Post("/monitoring", CalculateWithMonitoring(calc))
}

// Calculate returns a Fiber handler for a single fee-aware conversion.
// @Summary Calculate a conversion
// @Description Converts an amount and itemises the fee, net amount and effective rate.
// @Tags calculate
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Conversion request"
// @Success 200 {object} calculator.Result
// @Failure 400 {object} common.ErrorResponse
// @Failure 429 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Failure 503 {object} common.ErrorResponse
// @Router /api/rates/calculate [post]
func Calculate(calc *calculator.Calculator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CalculateRequest](c)
		if input == nil {
			return err
		}
		amount, err := input.Amount.Parse(calculator.FieldAmount)
		if err != nil {
			return common.ErrorResponseJSON(c, err)
		}
		res, err := calc.Calculate(c.UserContext(), input.From, input.To, amount, input.FeeMode)
		if err != nil {
			return common.ErrorResponseJSON(c, err)
		}
		return c.JSON(res)
	}
}

// CalculateBatch returns a Fiber handler converting one amount into several pairs.
// @Summary Calculate several conversions
// @Description Runs every pair independently; failed pairs carry an error body under their key.
// @Tags calculate
// @Accept json
// @Produce json
// @Param request body BatchRequest true "Batch request"
// @Success 200 {object} BatchResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 429 {object} common.ErrorResponse
// @Router /api/rates/calculate/batch [post]
func CalculateBatch(calc *calculator.Calculator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[BatchRequest](c)
		if input == nil {
			return err
		}
		amount, err := input.Amount.Parse(calculator.FieldAmount)
		if err != nil {
			return common.ErrorResponseJSON(c, err)
		}
		res, err := calc.CalculateBatch(c.UserContext(), amount, input.Pairs(), input.FeeMode)
		if err != nil {
			return common.ErrorResponseJSON(c, err)
		}
		return c.JSON(ToBatchResponse(res))
	}
}

// CalculateReverse returns a Fiber handler estimating the amount to send for a target.
// @Summary Calculate the amount required for a target
// @Description Estimates the source amount and verifies it with a forward calculation. When the minimum or maximum fee applies the verification differs from the target and discrepancy reports by how much.
// @Tags calculate
// @Accept json
// @Produce json
// @Param request body ReverseRequest true "Reverse request"
// @Success 200 {object} calculator.ReverseResult
// @Failure 400 {object} common.ErrorResponse
// @Failure 503 {object} common.ErrorResponse
// @Router /api/rates/calculate/reverse [post]
func CalculateReverse(calc *calculator.Calculator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ReverseRequest](c)
		if input == nil {
			return err
		}
		target, err := input.TargetAmount.Parse(calculator.FieldTargetAmount)
		if err != nil {
			return common.ErrorResponseJSON(c, err)
		}
		res, err := calc.CalculateReverse(c.UserContext(), input.From, input.To, target, input.FeeMode)
		if err != nil {
			return common.ErrorResponseJSON(c, err)
		}
		return c.JSON(res)
	}
}

// CalculateWithMonitoring returns a Fiber handler pricing the current, higher and lower rate.
// @Summary Calculate with rate sensitivity
// @Description Prices the conversion at the current rate and at the rate moved up and down by the configured variation.
// @Tags calculate
// @Accept json
// @Produce json
// @Param request body MonitoringRequest true "Monitoring request"
// @Success 200 {object} calculator.MonitoringResult
// @Failure 400 {object} common.ErrorResponse
// @Failure 503 {object} common.ErrorResponse
// @Router /api/rates/calculate/monitoring [post]
func CalculateWithMonitoring(calc *calculator.Calculator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[MonitoringRequest](c)
		if input == nil {
			return err
		}
		amount, err := input.Amount.Parse(calculator.FieldAmount)
		if err != nil {
			return common.ErrorResponseJSON(c, err)
		}
		res, err := calc.CalculateWithMonitoring(c.UserContext(), input.From, input.To, amount)
		if err != nil {
			return common.ErrorResponseJSON(c, err)
		}
		return c.JSON(res)
	}
}
