// Package testutils builds a fully wired API for handler tests.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	infraprovider "github.com/amirasaad/fxcalc/infra/provider"
	"github.com/amirasaad/fxcalc/pkg/app"
	"github.com/amirasaad/fxcalc/pkg/config"
	"github.com/amirasaad/fxcalc/pkg/provider"
	"github.com/amirasaad/fxcalc/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

// APITestSuite serves the API from the reference rate table unless Rates is
// set before the suite starts.
type APITestSuite struct {
	suite.Suite
	Rates provider.RateProvider
	Cfg   *config.App
	App   *app.App
	Fiber *fiber.App
}

// SetupSuite loads the default configuration and builds the application.
func (s *APITestSuite) SetupSuite() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg, err := config.Load()
	s.Require().NoError(err)
	cfg.RateLimit.MaxRequests = 10_000
	s.Cfg = cfg

	if s.Rates == nil {
		table, err := infraprovider.NewDefaultTableProvider(logger)
		s.Require().NoError(err)
		s.Rates = table
	}

	s.App, err = app.New(&app.Deps{
		RateProvider: s.Rates,
		Registry:     prometheus.NewRegistry(),
		Logger:       logger,
	}, cfg)
	s.Require().NoError(err)
	s.Fiber = webapi.SetupApp(s.App)
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *APITestSuite) MakeRequest(method, path, body string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := s.Fiber.Test(req, 10_000)
	s.Require().NoError(err)
	return resp
}

// DecodeJSON reads the response body into a generic map.
func (s *APITestSuite) DecodeJSON(resp *http.Response) map[string]any {
	defer resp.Body.Close() //nolint: errcheck
	var out map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	return out
}
