package reconcile

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborline/export-docs/internal/shipment"
)

// countLine builds a line billed by count quantity.
func countLine(qty int64, price string) shipment.Line {
	return shipment.Line{
		Quantity:  decimal.NewFromInt(qty),
		UnitPrice: decimal.RequireFromString(price),
	}
}

// areaLine builds a line billed by its area quantity.
func areaLine(boxes int64, area, price string) shipment.Line {
	return shipment.Line{
		Quantity:  decimal.NewFromInt(boxes),
		UnitPrice: decimal.RequireFromString(price),
		TotalArea: shipment.Optional{Value: decimal.RequireFromString(area), Present: true},
	}
}

func TestApportionLandsExactlyOnGrandTarget(t *testing.T) {
	// Six lines of 1000 units at 10.00: base extended total 60000, CIF
	// declared 62000, surcharge 2000. Flat share floor(2000/6) = 333.
	lines := []shipment.Line{
		countLine(1000, "10"), countLine(1000, "10"), countLine(1000, "10"),
		countLine(1000, "10"), countLine(1000, "10"), countLine(1000, "10"),
	}
	surcharge := decimal.NewFromInt(2000)
	target := decimal.NewFromInt(62000)

	out, err := Apportion(lines, surcharge, target)
	require.NoError(t, err)
	require.Len(t, out, 6)

	// First five lines carry the flat share: 10 + 333/1000.
	for i := 0; i < 5; i++ {
		assert.True(t, out[i].AdjustedUnitPrice.Equal(decimal.RequireFromString("10.333")),
			"line %d adjusted price %s", i, out[i].AdjustedUnitPrice)
	}

	// The last line absorbs the residual: 62000 - 51665 - 10000 = 335.
	assert.True(t, out[5].AdjustedUnitPrice.Equal(decimal.RequireFromString("10.335")),
		"last adjusted price %s", out[5].AdjustedUnitPrice)

	assert.True(t, ExtendedSum(out).Equal(target),
		"extended sum %s != target %s", ExtendedSum(out), target)
}

func TestApportionUnevenLinesStillReconcile(t *testing.T) {
	lines := []shipment.Line{
		areaLine(120, "1724.16", "4.25"),
		areaLine(80, "1149.44", "4.4"),
		countLine(1, "6375"),
	}
	surcharge := decimal.RequireFromString("1450")
	base := decimal.Zero
	for i := range lines {
		qty, ok := lines[i].BillingQuantity()
		require.True(t, ok)
		base = base.Add(lines[i].UnitPrice.Mul(qty))
	}
	target := base.Add(surcharge).Round(4)

	out, err := Apportion(lines, surcharge, target)
	require.NoError(t, err)
	assert.True(t, ExtendedSum(out).Equal(target),
		"extended sum %s != target %s", ExtendedSum(out), target)
}

func TestApportionSingleLineAbsorbsFullSurcharge(t *testing.T) {
	lines := []shipment.Line{countLine(250, "8")}
	target := decimal.NewFromInt(2300) // base 2000 + surcharge 300

	out, err := Apportion(lines, decimal.NewFromInt(300), target)
	require.NoError(t, err)
	require.Len(t, out, 1)

	// 8 + round4(300/250) = 9.2; 9.2 * 250 = 2300.
	assert.True(t, out[0].AdjustedUnitPrice.Equal(decimal.RequireFromString("9.2")))
	assert.True(t, out[0].ExtendedAmount.Equal(target))
}

func TestApportionZeroSurchargeMatchingTarget(t *testing.T) {
	// Target equals the base line sums: nothing to absorb, prices unchanged.
	lines := []shipment.Line{countLine(100, "5.5"), countLine(40, "7.25")}

	out, err := Apportion(lines, decimal.Zero, decimal.NewFromInt(840))
	require.NoError(t, err)
	for i, rl := range out {
		assert.True(t, rl.AdjustedUnitPrice.Equal(rl.BaseUnitPrice), "line %d adjusted", i)
	}
	assert.True(t, ExtendedSum(out).Equal(decimal.NewFromInt(840)))
}

func TestApportionZeroSurchargeAbsorbsDeclaredDrift(t *testing.T) {
	// The declared aggregate is authoritative and may disagree with the line
	// sums due to upstream rounding. Even with nothing to distribute, the
	// last line must absorb the drift so the books land on the target.
	lines := []shipment.Line{countLine(100, "5.5"), countLine(40, "7.25")}
	target := decimal.RequireFromString("840.5") // base sums give 840

	out, err := Apportion(lines, decimal.Zero, target)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.True(t, out[0].AdjustedUnitPrice.Equal(decimal.RequireFromString("5.5")))

	// 7.25 + round4(0.5/40) = 7.2625; 7.2625 * 40 = 290.5.
	assert.True(t, out[1].AdjustedUnitPrice.Equal(decimal.RequireFromString("7.2625")),
		"last adjusted price %s", out[1].AdjustedUnitPrice)
	assert.True(t, ExtendedSum(out).Equal(target),
		"extended sum %s != target %s", ExtendedSum(out), target)
}

func TestApportionRejectsNonPositiveBillingQuantity(t *testing.T) {
	tests := []struct {
		name      string
		lines     []shipment.Line
		wantIndex int
	}{
		{
			name:      "zero count quantity",
			lines:     []shipment.Line{countLine(100, "5"), countLine(0, "5")},
			wantIndex: 1,
		},
		{
			name: "zero area quantity overrides positive count",
			lines: []shipment.Line{
				areaLine(50, "0", "5"),
				countLine(100, "5"),
			},
			wantIndex: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apportion(tt.lines, decimal.NewFromInt(100), decimal.NewFromInt(1000))
			require.Error(t, err)

			var rerr *ReconciliationError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tt.wantIndex, rerr.LineIndex)
		})
	}
}

func TestApportionEmptyLines(t *testing.T) {
	out, err := Apportion(nil, decimal.NewFromInt(100), decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestApportionUsesAreaQuantityWhenPresent(t *testing.T) {
	// One area line, one count line; surcharge share divides by the billing
	// quantity each line is actually priced against.
	lines := []shipment.Line{
		areaLine(10, "200", "3"), // billed over 200 SQM
		countLine(50, "4"),       // billed over 50 pieces
	}
	surcharge := decimal.NewFromInt(100)
	target := decimal.NewFromInt(900) // 600 + 200 + 100

	out, err := Apportion(lines, surcharge, target)
	require.NoError(t, err)

	// Flat share floor(100/2) = 50; first line: 3 + round4(50/200) = 3.25.
	assert.True(t, out[0].AdjustedUnitPrice.Equal(decimal.RequireFromString("3.25")))
	assert.True(t, ExtendedSum(out).Equal(target))
}
