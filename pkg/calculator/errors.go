package calculator

import (
	"errors"
	"fmt"

	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/amirasaad/fxcalc/pkg/provider"
	"github.com/shopspring/decimal"
)

// Error kinds. Every error returned by the calculator matches exactly one of them.
var (
	ErrValidation = errors.New("validation error")

	// ErrRateUnavailable is shared with the provider package so either can be matched.
	ErrRateUnavailable = provider.ErrRateUnavailable

	ErrCalculation = errors.New("calculation error")
)

// Field names reported by ValidationError.
const (
	FieldFrom         = "from"
	FieldTo           = "to"
	FieldAmount       = "amount"
	FieldTargetAmount = "target_amount"
	FieldPairs        = "currency_pairs"
)

// ValidationError reports bad, missing or out-of-range input.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Err}
}

// RateUnavailableError reports a failed rate lookup for one pair.
type RateUnavailableError struct {
	From money.Code
	To   money.Code
	Err  error
}

func (e *RateUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("rate unavailable for %s/%s", e.From, e.To)
	}
	return fmt.Sprintf("rate unavailable for %s/%s: %v", e.From, e.To, e.Err)
}

func (e *RateUnavailableError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRateUnavailable}
	}
	return []error{ErrRateUnavailable, e.Err}
}

// Pair returns the batch key of the failed pair.
func (e *RateUnavailableError) Pair() string {
	return PairKey(e.From, e.To)
}

// CalculationError wraps an unexpected arithmetic failure.
type CalculationError struct {
	Op  string
	Err error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculation failed during %s: %v", e.Op, e.Err)
}

func (e *CalculationError) Unwrap() []error {
	return []error{ErrCalculation, e.Err}
}

// ParseAmount parses a user supplied amount for field.
// Malformed numbers fail with a ValidationError; the sign is checked later.
func ParseAmount(field, raw string) (decimal.Decimal, error) {
	d, err := money.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: field, Reason: "malformed number", Err: err}
	}
	return d, nil
}

func parseCode(field, raw string) (money.Code, error) {
	code, err := money.ParseCode(raw)
	switch {
	case errors.Is(err, money.ErrMissingCurrency):
		return "", &ValidationError{Field: field, Reason: "currency code is required", Err: err}
	case err != nil:
		return "", &ValidationError{Field: field, Reason: "currency code must be three letters", Err: err}
	}
	return code, nil
}

func parsePair(from, to string) (money.Code, money.Code, error) {
	src, err := parseCode(FieldFrom, from)
	if err != nil {
		return "", "", err
	}
	dst, err := parseCode(FieldTo, to)
	if err != nil {
		return "", "", err
	}
	return src, dst, nil
}
