// =============================================================================
// Export Document Generator - Amount In Words
// =============================================================================
//
// Deterministic integer-to-words conversion for the grand total. Uses the
// fixed thousand/million/billion scale table with no locale variation, and
// appends the fixed "ONLY" suffix the documents require.
//
// =============================================================================

package totals

import (
	"strings"

	"github.com/shopspring/decimal"
)

var onesWords = []string{
	"ZERO", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT",
	"NINE", "TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN", "FIFTEEN",
	"SIXTEEN", "SEVENTEEN", "EIGHTEEN", "NINETEEN",
}

var tensWords = []string{
	"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY", "SIXTY", "SEVENTY",
	"EIGHTY", "NINETY",
}

// scales is ordered largest-first so the largest applicable scale is
// consumed first. Values up to 10^12 resolve through it ("ONE THOUSAND
// BILLION" at the top end).
var scales = []struct {
	value int64
	word  string
}{
	{1_000_000_000, "BILLION"},
	{1_000_000, "MILLION"},
	{1_000, "THOUSAND"},
}

// AmountInWords renders the amount, rounded to the nearest whole unit, as
// uppercase words with the fixed "ONLY" suffix.
func AmountInWords(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	if n < 0 {
		n = -n
	}
	return words(n) + " ONLY"
}

// words converts a non-negative integer to words.
func words(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	if n < 100 {
		s := tensWords[n/10]
		if n%10 != 0 {
			s += " " + onesWords[n%10]
		}
		return s
	}
	if n < 1000 {
		s := onesWords[n/100] + " HUNDRED"
		if n%100 != 0 {
			s += " " + words(n%100)
		}
		return s
	}
	for _, scale := range scales {
		if n >= scale.value {
			s := words(n/scale.value) + " " + scale.word
			if n%scale.value != 0 {
				s += " " + words(n%scale.value)
			}
			return s
		}
	}
	return strings.TrimSpace(onesWords[0])
}
