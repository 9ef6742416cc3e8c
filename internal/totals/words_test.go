package totals

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "ZERO ONLY"},
		{"7", "SEVEN ONLY"},
		{"15", "FIFTEEN ONLY"},
		{"42", "FORTY TWO ONLY"},
		{"100", "ONE HUNDRED ONLY"},
		{"115", "ONE HUNDRED FIFTEEN ONLY"},
		{"999", "NINE HUNDRED NINETY NINE ONLY"},
		{"1000", "ONE THOUSAND ONLY"},
		{"62000", "SIXTY TWO THOUSAND ONLY"},
		{"100000", "ONE HUNDRED THOUSAND ONLY"},
		{"1234567", "ONE MILLION TWO HUNDRED THIRTY FOUR THOUSAND FIVE HUNDRED SIXTY SEVEN ONLY"},
		{"1000000000", "ONE BILLION ONLY"},
		{"1000000000000", "ONE THOUSAND BILLION ONLY"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountInWords(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestAmountInWordsRoundsToWholeUnits(t *testing.T) {
	assert.Equal(t, "SIXTY TWO THOUSAND ONLY", AmountInWords(decimal.RequireFromString("61999.60")))
	assert.Equal(t, "SIXTY ONE THOUSAND NINE HUNDRED NINETY NINE ONLY",
		AmountInWords(decimal.RequireFromString("61999.40")))
}
