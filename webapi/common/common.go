// Package common holds the request binding and error rendering shared by handlers.
package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/amirasaad/fxcalc/pkg/calculator"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/shopspring/decimal"
)

// Error titles rendered in the "error" field.
const (
	TitleValidation      = "Validation failed"
	TitleRateUnavailable = "Rate unavailable"
	TitleCalculation     = "Calculation failed"
	TitleBadRequest      = "Invalid request body"
	TitleInternal        = "Internal Server Error"
)

const genericCalculationMessage = "an unexpected error occurred while calculating; please retry later"

// ErrorResponse is the body of every failed call and of failed batch entries.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Field     string    `json:"field,omitempty"`
	Pair      string    `json:"pair,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Success   bool      `json:"success"`
}

// NewErrorResponse describes err using the calculator error taxonomy.
// Unexpected errors are reported with a generic message.
func NewErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   err.Error(),
		Timestamp: time.Now().UTC(),
	}

	var verr *calculator.ValidationError
	var rerr *calculator.RateUnavailableError
	var fieldErrs validator.ValidationErrors
	var fe *fiber.Error
	switch {
	case errors.As(err, &verr):
		resp.Error = TitleValidation
		resp.Field = verr.Field
	case errors.As(err, &fieldErrs):
		resp.Error = TitleValidation
		resp.Field = fieldErrs[0].Field()
		resp.Message = describeFieldError(fieldErrs[0])
	case errors.As(err, &rerr):
		resp.Error = TitleRateUnavailable
		resp.Pair = rerr.Pair()
	case errors.Is(err, calculator.ErrRateUnavailable):
		resp.Error = TitleRateUnavailable
	case errors.Is(err, errBadBody):
		resp.Error = TitleBadRequest
	case errors.As(err, &fe):
		resp.Error = utils.StatusMessage(fe.Code)
		resp.Message = fe.Message
	case errors.Is(err, calculator.ErrCalculation):
		resp.Error = TitleCalculation
		resp.Message = genericCalculationMessage
	default:
		resp.Error = TitleInternal
		resp.Message = genericCalculationMessage
	}
	return resp
}

// ErrorToStatusCode maps errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fieldErrs validator.ValidationErrors
	var fe *fiber.Error
	switch {
	case errors.Is(err, calculator.ErrValidation), errors.As(err, &fieldErrs), errors.Is(err, errBadBody):
		return fiber.StatusBadRequest
	case errors.Is(err, calculator.ErrRateUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.As(err, &fe):
		return fe.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorResponseJSON writes err with the status derived from its kind.
func ErrorResponseJSON(c *fiber.Ctx, err error) error {
	return c.Status(ErrorToStatusCode(err)).JSON(NewErrorResponse(err))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must contain at least " + fe.Param() + " entry"
	default:
		return fe.Field() + " failed " + fe.Tag() + " validation"
	}
}

var errBadBody = errors.New("malformed request body")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// On failure it writes the error response and returns a nil pointer.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fmt.Errorf("%w: %v", errBadBody, err))
	}
	if err := validate.Struct(input); err != nil {
		return nil, ErrorResponseJSON(c, err)
	}
	return &input, nil
}

// Amount accepts a JSON number or a JSON string and keeps the raw text so that
// malformed input is reported instead of coerced.
type Amount string

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	*a = Amount(data)
	return nil
}

// Parse converts the raw amount for field.
func (a Amount) Parse(field string) (decimal.Decimal, error) {
	return calculator.ParseAmount(field, string(a))
}
