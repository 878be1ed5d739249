// Package rates ships the reference rate table used when no live source is configured.
package rates

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/shopspring/decimal"
)

//go:embed usd.csv
var usdCSV string

// Row is one line of a rate table.
type Row struct {
	Base  money.Code
	Quote money.Code
	Rate  decimal.Decimal
}

// Default returns the embedded USD table.
func Default() ([]Row, error) {
	return Parse(strings.NewReader(usdCSV))
}

// Parse reads "base,quote,rate" rows. Lines starting with '#' are ignored and
// the first record is treated as a header.
func Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("rate table is empty")
		}
		return nil, fmt.Errorf("read rate table header: %w", err)
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read rate table: %w", err)
		}
		line, _ := cr.FieldPos(0)

		base, err := money.ParseCode(rec[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: base: %w", line, err)
		}
		quote, err := money.ParseCode(rec[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: quote: %w", line, err)
		}
		rate, err := money.ParseAmount(rec[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: rate: %w", line, err)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("line %d: rate %s must be positive", line, rate)
		}
		rows = append(rows, Row{Base: base, Quote: quote, Rate: rate})
	}
	return rows, nil
}
