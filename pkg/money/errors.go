package money

import "errors"

// Common money package errors
var (
	// ErrInvalidAmount is returned when a string is not a finite decimal number.
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrMissingCurrency is returned when a currency code is empty after trimming.
	ErrMissingCurrency = errors.New("missing currency code")

	// ErrInvalidCurrency is returned when a currency code is not three letters.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrDivisionByZero is returned by Div when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
)
