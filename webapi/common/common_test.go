package common_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/fxcalc/pkg/calculator"
	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/amirasaad/fxcalc/pkg/provider"
	"github.com/amirasaad/fxcalc/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &calculator.ValidationError{Field: "amount", Reason: "must be greater than zero"}, fiber.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("outer: %w", &calculator.ValidationError{Field: "from"}), fiber.StatusBadRequest},
		{"rate unavailable", &calculator.RateUnavailableError{From: money.USD, To: money.EUR}, fiber.StatusServiceUnavailable},
		{"provider sentinel", provider.Unavailable(money.USD, money.EUR, nil), fiber.StatusServiceUnavailable},
		{"calculation", &calculator.CalculationError{Op: "calculate", Err: errors.New("overflow")}, fiber.StatusInternalServerError},
		{"fiber error", fiber.ErrTooManyRequests, fiber.StatusTooManyRequests},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, common.ErrorToStatusCode(tc.err))
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	t.Run("validation carries the field", func(t *testing.T) {
		resp := common.NewErrorResponse(&calculator.ValidationError{Field: "amount", Reason: "must be greater than zero"})
		assert.Equal(t, common.TitleValidation, resp.Error)
		assert.Equal(t, "amount", resp.Field)
		assert.Equal(t, "invalid amount: must be greater than zero", resp.Message)
		assert.False(t, resp.Success)
		assert.False(t, resp.Timestamp.IsZero())
	})

	t.Run("rate unavailable carries the pair", func(t *testing.T) {
		resp := common.NewErrorResponse(&calculator.RateUnavailableError{From: money.USD, To: money.JPY})
		assert.Equal(t, common.TitleRateUnavailable, resp.Error)
		assert.Equal(t, "USD_JPY", resp.Pair)
	})

	t.Run("calculation hides the cause", func(t *testing.T) {
		resp := common.NewErrorResponse(&calculator.CalculationError{Op: "calculate", Err: errors.New("secret detail")})
		assert.Equal(t, common.TitleCalculation, resp.Error)
		assert.NotContains(t, resp.Message, "secret detail")
	})

	t.Run("unknown hides the cause", func(t *testing.T) {
		resp := common.NewErrorResponse(errors.New("secret detail"))
		assert.Equal(t, common.TitleInternal, resp.Error)
		assert.NotContains(t, resp.Message, "secret detail")
	})
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"number", `{"amount":100.25}`, "100.25", false},
		{"string", `{"amount":"841.50"}`, "841.5", false},
		{"exponent", `{"amount":1e2}`, "100", false},
		{"malformed string", `{"amount":"12,5"}`, "", true},
		{"null", `{"amount":null}`, "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var body struct {
				Amount common.Amount `json:"amount"`
			}
			require.NoError(t, json.Unmarshal([]byte(tc.input), &body))
			got, err := body.Amount.Parse(calculator.FieldAmount)
			if tc.wantErr {
				var verr *calculator.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, calculator.FieldAmount, verr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}
