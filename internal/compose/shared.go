// =============================================================================
// Export Document Generator - Shared Figures
// =============================================================================
//
// Figures that appear in more than one document are computed exactly once
// here and passed by value into each builder. In particular the net and
// gross weight strings on the packing list and the annexure must match
// bit-for-bit, which holds trivially because both receive the same
// pre-formatted string.
//
// =============================================================================

package compose

import (
	"fmt"
	"strings"

	"github.com/harborline/export-docs/internal/shipment"
	"github.com/harborline/export-docs/internal/totals"
)

// sharedFigures is the cross-document figure set.
type sharedFigures struct {
	invoiceNumber string
	invoiceDate   string

	// packages is the declared count+unit composite, e.g. "1200 BOX".
	packages string

	// packagingLabel is the deduplicated unit-type label, e.g. "BOX/PALLET".
	packagingLabel string

	// netWeight and grossWeight are the formatted declared aggregates.
	netWeight   string
	grossWeight string

	// amountInWords is the words rendering of the grand total.
	amountInWords string
}

func buildShared(n *shipment.Normalized, tot totals.Totals) sharedFigures {
	return sharedFigures{
		invoiceNumber:  n.InvoiceNumber,
		invoiceDate:    n.InvoiceDate,
		packages:       fmt.Sprintf("%d %s", n.Package.PackageCount, n.Package.PackageUnit),
		packagingLabel: packagingLabel(n.Lines()),
		netWeight:      tot.NetWeight.StringFixed(2),
		grossWeight:    tot.GrossWeight.StringFixed(2),
		amountInWords:  tot.AmountInWords,
	}
}

// packagingLabel builds the packaging-type label by walking billable lines
// in order: start from the first line's unit token and append "/" + token
// for each unit not already present in the accumulated label.
//
// The presence check is substring containment on the whole label, not a
// token-set membership test. That can suppress a distinct token that happens
// to be a substring of one already included ("BOX" after "BIGBOX"); the
// behavior is kept as the documents have always shown it.
func packagingLabel(lines []shipment.Line) string {
	label := ""
	for _, line := range lines {
		unit := strings.TrimSpace(line.Unit)
		if unit == "" {
			continue
		}
		if label == "" {
			label = unit
			continue
		}
		if !strings.Contains(label, unit) {
			label += "/" + unit
		}
	}
	return label
}
