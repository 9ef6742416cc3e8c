// =============================================================================
// Export Document Generator - Container / VGM Cross-Referencer
// =============================================================================
//
// Joins the shipment's container records with their weighbridge verification
// records. The two arrays share no key: they are companions by position, and
// equal length in the same order is a hard precondition. A length mismatch
// is unrecoverable here and suppresses every container-derived document.
//
// =============================================================================

package vgm

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/harborline/export-docs/internal/shipment"
)

// CombinedContainer is one container joined with its weighbridge entry.
type CombinedContainer struct {
	shipment.ContainerLine

	BookingNumber string
	TareWeight    decimal.Decimal

	// VerifiedMass is the combined verified gross mass:
	// container gross weight + tare weight.
	VerifiedMass decimal.Decimal
}

// MisalignedContainerDataError reports a container/weighbridge array length
// mismatch. Packing list, annexure and VGM sheet generation abort on it; the
// primary invoice is still producible.
type MisalignedContainerDataError struct {
	Containers  int
	TareEntries int
}

func (e *MisalignedContainerDataError) Error() string {
	return fmt.Sprintf("misaligned container data: %d containers vs %d weighbridge entries",
		e.Containers, e.TareEntries)
}

// CrossReference joins containers with tare entries by index and computes
// the verified mass per container.
func CrossReference(containers []shipment.ContainerLine, tares []shipment.TareLine) ([]CombinedContainer, error) {
	if len(containers) != len(tares) {
		return nil, &MisalignedContainerDataError{
			Containers:  len(containers),
			TareEntries: len(tares),
		}
	}

	out := make([]CombinedContainer, 0, len(containers))
	for i, c := range containers {
		tare := tares[i]
		out = append(out, CombinedContainer{
			ContainerLine: c,
			BookingNumber: tare.BookingNumber,
			TareWeight:    tare.TareWeight,
			VerifiedMass:  c.GrossWeight.Add(tare.TareWeight),
		})
	}
	return out, nil
}

// TotalBoxes sums the box quantities across combined containers.
func TotalBoxes(containers []CombinedContainer) int {
	total := 0
	for _, c := range containers {
		total += c.BoxQuantity
	}
	return total
}
