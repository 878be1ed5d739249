package calculate

import (
	"sort"
	"time"

	"github.com/amirasaad/fxcalc/pkg/calculator"
	"github.com/amirasaad/fxcalc/webapi/common"
)

// CalculateRequest represents the request body for a single conversion.
type CalculateRequest struct {
	From    string        `json:"from" validate:"required"`
	To      string        `json:"to" validate:"required"`
	Amount  common.Amount `json:"amount" validate:"required" swaggertype:"string" example:"100.00"`
	FeeMode string        `json:"fee_mode,omitempty" example:"standard"`
}

// BatchRequest represents the request body for converting one amount into several pairs.
type BatchRequest struct {
	Amount        common.Amount     `json:"amount" validate:"required" swaggertype:"string" example:"100.00"`
	CurrencyPairs map[string]string `json:"currency_pairs" validate:"required,min=1"`
	FeeMode       string            `json:"fee_mode,omitempty"`
}

// Pairs returns the requested pairs ordered by source code.
func (r *BatchRequest) Pairs() []calculator.Pair {
	pairs := make([]calculator.Pair, 0, len(r.CurrencyPairs))
	for from, to := range r.CurrencyPairs {
		pairs = append(pairs, calculator.Pair{From: from, To: to})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].From < pairs[j].From })
	return pairs
}

// BatchResponse maps each "FROM_TO" key to a result or an error body.
type BatchResponse struct {
	BatchResults map[string]any `json:"batch_results"`
	CalculatedAt time.Time      `json:"calculated_at"`
}

// ToBatchResponse renders failed entries with the common error shape.
func ToBatchResponse(res *calculator.BatchResult) *BatchResponse {
	out := &BatchResponse{
		BatchResults: make(map[string]any, len(res.Results)),
		CalculatedAt: res.CalculatedAt,
	}
	for key, entry := range res.Results {
		if entry.Err != nil {
			body := common.NewErrorResponse(entry.Err)
			if body.Pair == "" {
				body.Pair = key
			}
			out.BatchResults[key] = body
			continue
		}
		out.BatchResults[key] = entry.Result
	}
	return out
}

// ReverseRequest represents the request body for a reverse calculation.
type ReverseRequest struct {
	From         string        `json:"from" validate:"required"`
	To           string        `json:"to" validate:"required"`
	TargetAmount common.Amount `json:"target_amount" validate:"required" swaggertype:"string" example:"841.50"`
	FeeMode      string        `json:"fee_mode,omitempty"`
}

// MonitoringRequest represents the request body for a rate-sensitivity calculation.
type MonitoringRequest struct {
	From   string        `json:"from" validate:"required"`
	To     string        `json:"to" validate:"required"`
	Amount common.Amount `json:"amount" validate:"required" swaggertype:"string" example:"100.00"`
}
