package calculate_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/amirasaad/fxcalc/pkg/provider"
	"github.com/amirasaad/fxcalc/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CalculateTestSuite struct {
	testutils.APITestSuite
}

func TestCalculateTestSuite(t *testing.T) {
	suite.Run(t, new(CalculateTestSuite))
}

func (s *CalculateTestSuite) TestCalculate_WorkedExample() {
	resp := s.MakeRequest(fiber.MethodPost, "/api/rates/calculate",
		`{"from":"usd","to":"EUR","amount":100}`)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	body := s.DecodeJSON(resp)
	s.Equal("USD", body["from_currency"])
	s.Equal("EUR", body["to_currency"])
	s.Equal("0.85", body["exchange_rate"])
	s.Equal("85", body["gross_converted_amount"])
	s.Equal("2.99", body["fee_amount"])
	s.Equal("min", body["fee_bound"])
	s.Equal("82.46", body["net_converted_amount"])
	s.Equal("102.99", body["total_cost"])
	s.Equal("0.8246", body["effective_rate"])
	s.Equal("0.0254", body["rate_margin"])
	s.Equal("standard", body["fee_mode"])
	s.Equal("2.0", body["calculation_version"])
}

func (s *CalculateTestSuite) TestCalculate_AmountAsString() {
	resp := s.MakeRequest(fiber.MethodPost, "/api/rates/calculate",
		`{"from":"USD","to":"EUR","amount":"1000.00","fee_mode":"economy"}`)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	body := s.DecodeJSON(resp)
	s.Equal("845.75", body["net_converted_amount"])
	s.Equal("economy", body["fee_mode"])
	s.NotContains(body, "fee_bound")
}

func (s *CalculateTestSuite) TestCalculate_UnknownModeFallsBack() {
	resp := s.MakeRequest(fiber.MethodPost, "/api/rates/calculate",
		`{"from":"USD","to":"EUR","amount":1000,"fee_mode":"bogus"}`)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal("standard", s.DecodeJSON(resp)["fee_mode"])
}

func (s *CalculateTestSuite) TestCalculate_ValidationErrors() {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"negative amount", `{"from":"USD","to":"EUR","amount":-5}`, "amount"},
		{"zero amount", `{"from":"USD","to":"EUR","amount":0}`, "amount"},
		{"too large", `{"from":"USD","to":"EUR","amount":1000001}`, "amount"},
		{"malformed amount", `{"from":"USD","to":"EUR","amount":"12,5"}`, "amount"},
		{"too many decimals", `{"from":"USD","to":"EUR","amount":1e-2000000}`, "amount"},
		{"missing amount", `{"from":"USD","to":"EUR"}`, "amount"},
		{"missing from", `{"to":"EUR","amount":10}`, "from"},
		{"bad code", `{"from":"US","to":"EUR","amount":10}`, "from"},
		{"bad target code", `{"from":"USD","to":"EU1","amount":10}`, "to"},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			resp := s.MakeRequest(fiber.MethodPost, "/api/rates/calculate", tc.body)
			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
			body := s.DecodeJSON(resp)
			s.Equal("Validation failed", body["error"])
			s.Equal(tc.field, body["field"])
			s.Equal(false, body["success"])
			s.NotEmpty(body["timestamp"])
		})
	}
}

func (s *CalculateTestSuite) TestCalculate_MalformedBody() {
	resp := s.MakeRequest(fiber.MethodPost, "/api/rates/calculate", `{"from":`)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal("Invalid request body", s.DecodeJSON(resp)["error"])
}

func (s *CalculateTestSuite) TestCalculate_RateUnavailable() {
	resp := s.MakeRequest(fiber.MethodPost, "/api/rates/calculate",
		`{"from":"USD","to":"XAU","amount":100}`)
	s.Equal(fiber.StatusServiceUnavailable, resp.StatusCode)

	body := s.DecodeJSON(resp)
	s.Equal("Rate unavailable", body["error"])
	s.Equal("USD_XAU", body["pair"])
}

func (s *CalculateTestSuite) TestBatch_PartialFailure() {
	resp := s.MakeRequest(fiber.MethodPost, "/api/rates/calculate/batch",
		`{"amount":100,"currency_pairs":{"USD":"EUR","gbp":"usd","EUR":"XAU"}}`)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	body := s.DecodeJSON(resp)
	s.NotEmpty(body["calculated_at"])
	results, ok := body["batch_results"].(map[string]any)
	s.Require().True(ok)
	s.Len(results, 3)

	usdEur := results["USD_EUR"].(map[string]any)
	s.Equal("82.46", usdEur["net_converted_amount"])

	gbpUsd := results["GBP_USD"].(map[string]any)
	s.Equal("1.333333", gbpUsd["exchange_rate"])

	failed := results["EUR_XAU"].(map[string]any)
	s.Equal("Rate unavailable", failed["error"])
	s.Equal("EUR_XAU", failed["pair"])
	s.Equal(false, failed["success"])
}

func (s *CalculateTestSuite) TestBatch_Validation() {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"no pairs", `{"amount":100,"currency_pairs":{}}`, "currency_pairs"},
		{"missing pairs", `{"amount":100}`, "currency_pairs"},
		{"bad amount", `{"amount":-1,"currency_pairs":{"USD":"EUR"}}`, "amount"},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			resp := s.MakeRequest(fiber.MethodPost, "/api/rates/calculate/batch", tc.body)
			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
			s.Equal(tc.field, s.DecodeJSON(resp)["field"])
		})
	}
}

func (s *CalculateTestSuite) TestReverse() {
	resp := s.MakeRequest(fiber.MethodPost, "/api/rates/calculate/reverse",
		`{"from":"USD","to":"EUR","target_amount":"841.50"}`)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	body := s.DecodeJSON(resp)
	s.Equal("1000", body["required_amount"])
	s.Equal("0", body["discrepancy"])
	s.Equal(false, body["fee_clamped"])
	verification := body["verification"].(map[string]any)
	s.Equal("841.5", verification["net_converted_amount"])
}

func (s *CalculateTestSuite) TestReverse_Clamped() {
	resp := s.MakeRequest(fiber.MethodPost, "/api/rates/calculate/reverse",
		`{"from":"USD","to":"EUR","target_amount":82.46}`)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	body := s.DecodeJSON(resp)
	s.Equal("97.99", body["required_amount"])
	s.Equal("-1.71", body["discrepancy"])
	s.Equal(true, body["fee_clamped"])
}

func (s *CalculateTestSuite) TestReverse_Validation() {
	for _, body := range []string{
		`{"from":"USD","to":"EUR","target_amount":0}`,
		`{"from":"USD","to":"JPY","target_amount":5000000}`,
	} {
		resp := s.MakeRequest(fiber.MethodPost, "/api/rates/calculate/reverse", body)
		s.Equal(fiber.StatusBadRequest, resp.StatusCode, body)
		s.Equal("target_amount", s.DecodeJSON(resp)["field"], body)
	}
}

func (s *CalculateTestSuite) TestMonitoring() {
	resp := s.MakeRequest(fiber.MethodPost, "/api/rates/calculate/monitoring",
		`{"from":"USD","to":"EUR","amount":100}`)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	body := s.DecodeJSON(resp)
	s.Equal("82.46", body["current_calculation"].(map[string]any)["net_converted_amount"])
	s.Equal("82.54", body["optimistic_calculation"].(map[string]any)["net_converted_amount"])
	s.Equal("82.38", body["pessimistic_calculation"].(map[string]any)["net_converted_amount"])
	spread := body["rate_spread"].(map[string]any)
	s.Equal("0.85085", spread["high"])
	s.Equal("0.84915", spread["low"])
	s.Equal("0.1", spread["spread_percentage"])
}

type FailingProviderTestSuite struct {
	testutils.APITestSuite
}

func TestFailingProviderTestSuite(t *testing.T) {
	s := new(FailingProviderTestSuite)
	s.Rates = provider.RateFunc(func(_ context.Context, from, to money.Code) (decimal.Decimal, error) {
		return decimal.Zero, provider.Unavailable(from, to, nil)
	})
	suite.Run(t, s)
}

func (s *FailingProviderTestSuite) TestEveryOperationReports503() {
	paths := map[string]string{
		"/api/rates/calculate":            `{"from":"USD","to":"EUR","amount":100}`,
		"/api/rates/calculate/reverse":    `{"from":"USD","to":"EUR","target_amount":100}`,
		"/api/rates/calculate/monitoring": `{"from":"USD","to":"EUR","amount":100}`,
	}
	for path, body := range paths {
		resp := s.MakeRequest(fiber.MethodPost, path, body)
		s.Equal(http.StatusServiceUnavailable, resp.StatusCode, path)
		s.Equal("USD_EUR", s.DecodeJSON(resp)["pair"], path)
	}
}
