package config

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimal is a decimal.Decimal that envconfig can decode.
type Decimal struct {
	decimal.Decimal
}

// Decode implements envconfig.Decoder.
func (d *Decimal) Decode(value string) error {
	v, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("invalid decimal %q: %w", value, err)
	}
	d.Decimal = v
	return nil
}
