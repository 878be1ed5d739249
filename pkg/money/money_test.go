package money_test

import (
	"testing"

	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err, "failed to parse decimal for test")
	return d
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"integer", "100", "100", false},
		{"fraction", "99.99", "99.99", false},
		{"surrounding spaces", "  12.5 ", "12.5", false},
		{"negative parses", "-3", "-3", false},
		{"exponent", "1e3", "1000", false},
		{"empty", "", "", true},
		{"blank", "   ", "", true},
		{"letters", "abc", "", true},
		{"trailing garbage", "12.5x", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.ParseAmount(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.True(t, dec(t, tt.want).Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestRound_HalfUp(t *testing.T) {
	tests := []struct {
		in     string
		places int32
		want   string
	}{
		{"82.4585", 2, "82.46"},
		{"82.4549", 2, "82.45"},
		{"0.0000005", 6, "0.000001"},
		{"1.005", 2, "1.01"},
		{"2.5", 0, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := money.Round(dec(t, tt.in), tt.places)
			assert.Equal(t, tt.want, money.Format(got, tt.places))
		})
	}
}

func TestDiv(t *testing.T) {
	got, err := money.Div(dec(t, "82.46"), dec(t, "100"), money.RateScale)
	require.NoError(t, err)
	assert.Equal(t, "0.824600", money.Format(got, money.RateScale))

	got, err = money.Div(dec(t, "1"), dec(t, "3"), money.RateScale)
	require.NoError(t, err)
	assert.Equal(t, "0.333333", money.Format(got, money.RateScale))

	_, err = money.Div(dec(t, "1"), decimal.Zero, money.RateScale)
	assert.ErrorIs(t, err, money.ErrDivisionByZero)
}

func TestClamp(t *testing.T) {
	lo, hi := dec(t, "2.99"), dec(t, "50")

	assert.True(t, lo.Equal(money.Clamp(dec(t, "1"), lo, hi)))
	assert.True(t, hi.Equal(money.Clamp(dec(t, "75"), lo, hi)))
	assert.True(t, dec(t, "10").Equal(money.Clamp(dec(t, "10"), lo, hi)))
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		raw     string
		want    money.Code
		wantErr error
	}{
		{"usd", money.USD, nil},
		{" eur ", money.EUR, nil},
		{"GBP", money.GBP, nil},
		{"", "", money.ErrMissingCurrency},
		{"   ", "", money.ErrMissingCurrency},
		{"US", "", money.ErrInvalidCurrency},
		{"US1", "", money.ErrInvalidCurrency},
		{"EURO", "", money.ErrInvalidCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := money.ParseCode(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
