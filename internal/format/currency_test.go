package format

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "thousands", amount: 1000, want: "Rs\u00a01,000.00"},
		{name: "zero", amount: 0, want: "Rs\u00a00.00"},
		{name: "small fraction", amount: 0.5, want: "Rs\u00a00.50"},
		{name: "millions", amount: 1234567.89, want: "Rs\u00a01,234,567.89"},
		{name: "below grouping", amount: 999.99, want: "Rs\u00a0999.99"},
		{name: "negative", amount: -1500.5, want: "-Rs\u00a01,500.50"},
		{name: "rounds half away from zero", amount: 1.005, want: "Rs\u00a01.01"},
		{name: "rounds negative half away from zero", amount: -2.675, want: "-Rs\u00a02.68"},
		{name: "rounds up into next group", amount: 999.999, want: "Rs\u00a01,000.00"},
		{name: "negative rounding to zero has no sign", amount: -0.001, want: "Rs\u00a00.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount))
		})
	}
}

func TestFormatCurrency_NonFinite(t *testing.T) {
	assert.Equal(t, "Rs\u00a0NaN", FormatCurrency(math.NaN()))
	assert.Equal(t, "Rs\u00a0∞", FormatCurrency(math.Inf(1)))
	assert.Equal(t, "-Rs\u00a0∞", FormatCurrency(math.Inf(-1)))
}

func TestFormatCurrency_AlwaysTwoFractionDigits(t *testing.T) {
	for _, amount := range []float64{0, 1, 10.1, 12345.678, 1e9} {
		got := FormatCurrency(amount)

		dot := strings.LastIndex(got, ".")
		if assert.NotEqual(t, -1, dot, got) {
			assert.Len(t, got[dot+1:], 2, got)
		}
		assert.True(t, strings.HasPrefix(got, CurrencySymbol), got)
	}
}
