// =============================================================================
// Export Document Generator - Price Reconciliation Engine
// =============================================================================
//
// Redistributes the shipment surcharge (insurance + freight) across product
// lines so that the worksheet copy's line-level amounts reconcile exactly to
// the independently-known grand total.
//
// ALGORITHM (flat rate with final remainder):
//   1. Divide the surcharge by the line count with integer floor division to
//      get a flat per-line share.
//   2. Every line except the last adds round4(share / billing quantity) to
//      its base unit price.
//   3. The last line ignores the flat share. It takes the residual between
//      the grand target and everything accumulated so far, so the cumulative
//      sum lands exactly on the target. All floor-division drift is absorbed
//      there instead of accumulating invisibly across lines.
//   4. Extended amounts are rounded to four decimal places and accumulated
//      in line order. "Last" is positional, not value-selected.
//
// Naive equal division drifts from the authoritative grand total once each
// per-line share is independently rounded; this is the one place where the
// rounding policy is load-bearing.
//
// =============================================================================

package reconcile

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/harborline/export-docs/internal/shipment"
)

// displayPrecision is the number of decimal places carried by worksheet
// unit prices and extended amounts.
const displayPrecision = 4

// ReconciledLine is the per-line output consumed by the worksheet copy.
type ReconciledLine struct {
	BaseUnitPrice     decimal.Decimal
	AdjustedUnitPrice decimal.Decimal
	ExtendedAmount    decimal.Decimal
}

// ReconciliationError reports a line whose billing quantity cannot divide
// the surcharge. It aborts worksheet-copy generation only; the other
// documents remain producible.
type ReconciliationError struct {
	// LineIndex is the zero-based position of the offending line in
	// document order.
	LineIndex int

	// Quantity is the rejected billing quantity.
	Quantity decimal.Decimal
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("reconciliation: line %d has non-positive billing quantity %s",
		e.LineIndex, e.Quantity)
}

// Apportion distributes surchargeTotal across the lines and returns one
// reconciled line per input line, in order, such that the rounded extended
// amounts sum exactly to grandTarget.
//
// A zero surcharge still runs the full algorithm: the flat share is zero,
// and the last line absorbs whatever residual separates the declared grand
// target from the base line sums (which may disagree due to upstream
// rounding). Plain-FOB shipments skip reconciliation entirely by never
// calling Apportion.
func Apportion(lines []shipment.Line, surchargeTotal, grandTarget decimal.Decimal) ([]ReconciledLine, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	// Flat per-line share, floored to a whole currency unit. The last line
	// never uses it; the residual step below makes the books land exactly.
	flatShare := surchargeTotal.Div(decimal.NewFromInt(int64(len(lines)))).Floor()

	out := make([]ReconciledLine, 0, len(lines))
	runningTotal := decimal.Zero

	for i := range lines {
		line := &lines[i]

		qty, ok := line.BillingQuantity()
		if !ok {
			return nil, &ReconciliationError{LineIndex: i, Quantity: qty}
		}

		var adjusted decimal.Decimal
		if i == len(lines)-1 {
			// Residual absorption. With a single line this is the whole
			// surcharge; otherwise it is whatever the flat shares left over.
			baseExtended := line.UnitPrice.Mul(qty)
			residual := grandTarget.Sub(runningTotal).Sub(baseExtended)
			adjusted = line.UnitPrice.Add(round4(residual.Div(qty)))
		} else {
			adjusted = line.UnitPrice.Add(round4(flatShare.Div(qty)))
		}

		extended := round4(adjusted.Mul(qty))
		runningTotal = runningTotal.Add(extended)

		out = append(out, ReconciledLine{
			BaseUnitPrice:     line.UnitPrice,
			AdjustedUnitPrice: adjusted,
			ExtendedAmount:    extended,
		})
	}

	return out, nil
}

// round4 rounds to the display precision using round-half-away-from-zero.
func round4(d decimal.Decimal) decimal.Decimal {
	return d.Round(displayPrecision)
}

// ExtendedSum returns the cumulative extended amount of reconciled lines.
// For any successful Apportion this equals the grand target exactly.
func ExtendedSum(lines []ReconciledLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.ExtendedAmount)
	}
	return sum
}
