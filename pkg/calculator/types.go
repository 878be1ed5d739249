package calculator

import (
	"fmt"
	"time"

	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/shopspring/decimal"
)

// Version identifies the arithmetic revision carried by every result.
const Version = "2.0"

// FeeBound tells whether the fee was clamped and to which bound.
type FeeBound string

const (
	FeeBoundNone FeeBound = ""
	FeeBoundMin  FeeBound = "min"
	FeeBoundMax  FeeBound = "max"
)

// Result is the breakdown of one conversion. It is never mutated after creation.
type Result struct {
	FromCurrency   money.Code      `json:"from_currency" swaggertype:"string"`
	ToCurrency     money.Code      `json:"to_currency" swaggertype:"string"`
	OriginalAmount decimal.Decimal `json:"original_amount" swaggertype:"string"`
	ExchangeRate   decimal.Decimal `json:"exchange_rate" swaggertype:"string"`
	GrossAmount    decimal.Decimal `json:"gross_converted_amount" swaggertype:"string"`
	FeeMode        FeeMode         `json:"fee_mode" swaggertype:"string" enums:"standard,express,economy"`
	FeeRate        decimal.Decimal `json:"fee_rate" swaggertype:"string"`
	FeeAmount      decimal.Decimal `json:"fee_amount" swaggertype:"string"`
	FeeBound       FeeBound        `json:"fee_bound,omitempty" swaggertype:"string" enums:"min,max"`
	NetAmount      decimal.Decimal `json:"net_converted_amount" swaggertype:"string"`
	TotalCost      decimal.Decimal `json:"total_cost" swaggertype:"string"`
	EffectiveRate  decimal.Decimal `json:"effective_rate" swaggertype:"string"`
	RateMargin     decimal.Decimal `json:"rate_margin" swaggertype:"string"`
	CalculatedAt   time.Time       `json:"calculated_at"`
	Version        string          `json:"calculation_version"`
}

// Pair is one requested conversion in a batch, as supplied by the caller.
type Pair struct {
	From string
	To   string
}

// PairKey formats the batch key of a pair as "FROM_TO".
func PairKey(from, to money.Code) string {
	return fmt.Sprintf("%s_%s", from, to)
}

// BatchEntry holds either the result or the error of one pair.
type BatchEntry struct {
	Result *Result
	Err    error
}

// BatchResult maps pair keys to their outcome.
type BatchResult struct {
	Results      map[string]BatchEntry
	CalculatedAt time.Time
}

// Failed counts the entries that carry an error.
func (b *BatchResult) Failed() int {
	n := 0
	for _, e := range b.Results {
		if e.Err != nil {
			n++
		}
	}
	return n
}

// ReverseResult answers "how much must I send for the recipient to get target".
//
// Verification is a forward run with RequiredAmount. When the fee was clamped
// its net differs from the target; Discrepancy carries the difference.
type ReverseResult struct {
	RequiredAmount decimal.Decimal `json:"required_amount" swaggertype:"string"`
	TargetAmount   decimal.Decimal `json:"target_amount" swaggertype:"string"`
	FromCurrency   money.Code      `json:"from_currency" swaggertype:"string"`
	ToCurrency     money.Code      `json:"to_currency" swaggertype:"string"`
	ExchangeRate   decimal.Decimal `json:"exchange_rate" swaggertype:"string"`
	Verification   *Result         `json:"verification"`
	Discrepancy    decimal.Decimal `json:"discrepancy" swaggertype:"string"`
	FeeClamped     bool            `json:"fee_clamped"`
	CalculatedAt   time.Time       `json:"calculated_at"`
}

// RateSpread describes the perturbation applied by monitoring.
type RateSpread struct {
	Current          decimal.Decimal `json:"current" swaggertype:"string"`
	High             decimal.Decimal `json:"high" swaggertype:"string"`
	Low              decimal.Decimal `json:"low" swaggertype:"string"`
	SpreadPercentage decimal.Decimal `json:"spread_percentage" swaggertype:"string"`
}

// MonitoringResult compares the current rate with a slightly better and worse one.
type MonitoringResult struct {
	Current     *Result    `json:"current_calculation"`
	Optimistic  *Result    `json:"optimistic_calculation"`
	Pessimistic *Result    `json:"pessimistic_calculation"`
	Spread      RateSpread `json:"rate_spread"`
}
