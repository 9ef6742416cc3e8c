// =============================================================================
// Export Document Generator - Packing List Builder
// =============================================================================
//
// The packing list replaces price rows with container-level rows: one per
// container record, plus aggregate box counts and weights. Its weight totals
// come pre-formatted from the shared figure set so the annexure's copies
// match bit-for-bit.
//
// =============================================================================

package compose

import (
	"fmt"

	"github.com/harborline/export-docs/internal/document"
)

var packingListHeaders = []string{
	"SR NO", "CONTAINER NO", "LINE SEAL", "CUSTOM SEAL", "DESCRIPTION",
	"PACKAGES", "NET WT (KGS)", "GROSS WT (KGS)",
}

func buildPackingList(ctx *buildContext) *document.Document {
	b := document.NewBuilder("", len(packingListHeaders))
	rec := ctx.normalized.Record

	b.BannerRow(1, "PACKING LIST")
	b.BannerRow(1, rec.Exporter.Name)
	b.BannerRow(2, rec.Exporter.Address)

	half := len(packingListHeaders) / 2
	row := b.Cursor().Advance(1)
	b.PutSpan(row, 1, 1, half, "INVOICE NO: "+ctx.shared.invoiceNumber, document.FormatText)
	b.PutSpan(row, half+1, 1, len(packingListHeaders)-half, "DATE: "+ctx.shared.invoiceDate, document.FormatDate)

	b.BannerRow(2, "CONSIGNEE:\n"+rec.Buyer.Consignee)
	b.BannerRow(1, "PORT OF LOADING: "+rec.Shipping.PortOfLoading+
		"    FINAL DESTINATION: "+rec.Shipping.FinalDestination)

	headerCells := make([]document.Cell, len(packingListHeaders))
	for i, h := range packingListHeaders {
		headerCells[i] = document.Cell{Col: i + 1, Value: h, Format: document.FormatText}
	}
	b.Row(headerCells...)

	totalBoxes := 0
	for i, c := range ctx.containers {
		totalBoxes += c.BoxQuantity
		b.Row(
			document.Cell{Col: 1, Value: fmt.Sprintf("%d", i+1), Format: document.FormatInteger},
			document.Cell{Col: 2, Value: c.ContainerNumber, Format: document.FormatText},
			document.Cell{Col: 3, Value: c.LineSeal, Format: document.FormatText},
			document.Cell{Col: 4, Value: c.CustomSeal, Format: document.FormatText},
			document.Cell{Col: 5, Value: c.Description, Format: document.FormatText},
			document.Cell{Col: 6, Value: fmt.Sprintf("%d", c.BoxQuantity), Format: document.FormatInteger},
			document.Cell{Col: 7, Value: document.Weight(c.NetWeight), Format: document.FormatNumber2},
			document.Cell{Col: 8, Value: document.Weight(c.GrossWeight), Format: document.FormatNumber2},
		)
	}

	// Aggregate row: box total from the join, weight totals from the shared
	// declared aggregates.
	b.Row(
		document.Cell{Col: 1, ColSpan: 5, Value: "TOTAL", Format: document.FormatText},
		document.Cell{Col: 6, Value: fmt.Sprintf("%d", totalBoxes), Format: document.FormatInteger},
		document.Cell{Col: 7, Value: ctx.shared.netWeight, Format: document.FormatNumber2},
		document.Cell{Col: 8, Value: ctx.shared.grossWeight, Format: document.FormatNumber2},
	)

	b.BannerRow(1, "TOTAL PACKAGES: "+ctx.shared.packages+" ("+ctx.shared.packagingLabel+")")
	b.BannerRow(3, "FOR "+rec.Exporter.Name+"\n\nAUTHORISED SIGNATORY")

	return b.Document()
}
