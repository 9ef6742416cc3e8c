// =============================================================================
// Export Document Generator - Totals Aggregator
// =============================================================================
//
// Computes the one set of aggregate figures threaded through every document.
// All figures come from the package-level declared aggregates, which are
// authoritative: lines may disagree with them due to upstream rounding and
// are never summed to "fix" a declared figure.
//
// =============================================================================

package totals

import (
	"github.com/shopspring/decimal"

	"github.com/harborline/export-docs/internal/schema"
	"github.com/harborline/export-docs/internal/shipment"
)

// Totals is the aggregate figure set for one shipment. Produced fresh per
// invocation; nothing here is retained between shipments.
type Totals struct {
	// TotalArea is the declared aggregate area. Absent for shipments of
	// non-area-based goods.
	TotalArea shipment.Optional

	NetWeight   decimal.Decimal
	GrossWeight decimal.Decimal

	// FOBTotal is the figure the primary invoice displays. Under CIF -> FOB
	// terms it is the declared CIF-equivalent minus insurance and freight;
	// under every other term it equals the declared amount.
	FOBTotal decimal.Decimal

	// SurchargeTotal is insurance + freight, the amount the reconciliation
	// engine redistributes across lines. Zero under plain FOB terms.
	SurchargeTotal decimal.Decimal

	// GrandTotal is the independently-known aggregate the worksheet copy
	// must reconcile to exactly. Always the declared amount.
	GrandTotal decimal.Decimal

	// AmountInWords is the words rendering of the rounded grand total.
	AmountInWords string
}

// Compute derives the totals for a normalized shipment under the given
// incoterm.
func Compute(n *shipment.Normalized, incoterm schema.Incoterm) Totals {
	pkg := n.Package

	t := Totals{
		TotalArea:   pkg.TotalArea,
		NetWeight:   pkg.NetWeight,
		GrossWeight: pkg.GrossWeight,
		GrandTotal:  pkg.Amount,
	}

	switch incoterm {
	case schema.CIFtoFOB:
		// Declared amount is the CIF-equivalent figure; the invoice shows
		// the FOB value backed out of it.
		t.SurchargeTotal = pkg.Insurance.Add(pkg.Freight)
		t.FOBTotal = pkg.Amount.Sub(t.SurchargeTotal)
	case schema.CIF, schema.CNF:
		t.SurchargeTotal = pkg.Insurance.Add(pkg.Freight)
		t.FOBTotal = pkg.Amount
	default:
		// Plain FOB carries no surcharge and no reconciliation.
		t.SurchargeTotal = decimal.Zero
		t.FOBTotal = pkg.Amount
	}

	t.AmountInWords = AmountInWords(t.GrandTotal)

	return t
}
