// =============================================================================
// Export Document Generator - Annexure Builder
// =============================================================================
//
// The annexure is the regulatory declaration form. It repeats the container
// rows in its own column layout and embeds the same net/gross weight totals
// as the packing list; both copies come from the shared pre-formatted
// strings, so they are bit-identical by construction.
//
// =============================================================================

package compose

import (
	"fmt"

	"github.com/harborline/export-docs/internal/document"
	"github.com/harborline/export-docs/internal/schema"
)

var annexureHeaders = []string{
	"SR NO", "CONTAINER NO", "PACKAGES", "NET WT (KGS)", "GROSS WT (KGS)", "SEAL NO",
}

func buildAnnexure(ctx *buildContext) *document.Document {
	b := document.NewBuilder("", len(annexureHeaders))
	rec := ctx.normalized.Record
	ax := &rec.Annexure

	b.BannerRow(1, "ANNEXURE")
	b.BannerRow(1, "EXAMINATION REPORT FOR FACTORY SEALED CONTAINER")

	b.BannerRow(1, "1. NAME OF EXPORTER: "+rec.Exporter.Name)
	b.BannerRow(1, "2. IEC: "+rec.Exporter.IEC+"    GSTIN: "+rec.Exporter.GSTIN)
	b.BannerRow(1, "3. INVOICE NO: "+ctx.shared.invoiceNumber+"    DATE: "+ctx.shared.invoiceDate)
	b.BannerRow(1, "4. RANGE: "+ax.RangeOffice+"    DIVISION: "+ax.Division+
		"    COMMISSIONERATE: "+ax.Commissionerate)
	b.BannerRow(1, "5. DATE OF EXAMINATION: "+ax.ExaminationDate)
	b.BannerRow(1, "6. EXAMINING OFFICER: "+ax.OfficerName+", "+ax.OfficerDesignation)
	b.BannerRow(1, "7. SUPERVISION BY: "+ax.SupervisionName+", "+ax.SupervisionRole)
	b.BannerRow(1, "8. SAMPLE DRAWN: "+ax.SampleDrawn+"    SEAL TYPE: "+ax.SealType)
	b.BannerRow(1, "9. DESCRIPTION OF GOODS: "+goodsDescription(ctx))

	headerCells := make([]document.Cell, len(annexureHeaders))
	for i, h := range annexureHeaders {
		headerCells[i] = document.Cell{Col: i + 1, Value: h, Format: document.FormatText}
	}
	b.Row(headerCells...)

	for i, c := range ctx.containers {
		b.Row(
			document.Cell{Col: 1, Value: fmt.Sprintf("%d", i+1), Format: document.FormatInteger},
			document.Cell{Col: 2, Value: c.ContainerNumber, Format: document.FormatText},
			document.Cell{Col: 3, Value: fmt.Sprintf("%d", c.BoxQuantity), Format: document.FormatInteger},
			document.Cell{Col: 4, Value: document.Weight(c.NetWeight), Format: document.FormatNumber2},
			document.Cell{Col: 5, Value: document.Weight(c.GrossWeight), Format: document.FormatNumber2},
			document.Cell{Col: 6, Value: c.LineSeal+" / "+c.CustomSeal, Format: document.FormatText},
		)
	}

	// Weight totals: same shared strings the packing list embeds.
	b.Row(
		document.Cell{Col: 1, ColSpan: 3, Value: "TOTAL", Format: document.FormatText},
		document.Cell{Col: 4, Value: ctx.shared.netWeight, Format: document.FormatNumber2},
		document.Cell{Col: 5, Value: ctx.shared.grossWeight, Format: document.FormatNumber2},
	)

	b.BannerRow(1, "TOTAL PACKAGES: "+ctx.shared.packages+" ("+ctx.shared.packagingLabel+")")
	b.BannerRow(2, "CERTIFIED THAT THE DESCRIPTION AND VALUE OF THE GOODS COVERED BY THIS "+
		"INVOICE HAVE BEEN CHECKED BY ME AND THE GOODS HAVE BEEN PACKED AND SEALED "+
		"WITH LEAD SEAL/ONE TIME LOCK SEAL IN MY PRESENCE.")
	b.BannerRow(3, "SIGNATURE OF EXAMINING OFFICER\n\nSIGNATURE OF SUPERVISING OFFICER")

	return b.Document()
}

// goodsDescription summarizes the shipment's category names for the
// annexure's goods field.
func goodsDescription(ctx *buildContext) string {
	label := ""
	for _, cat := range ctx.normalized.Categories {
		if label != "" {
			label += ", "
		}
		label += cat.Name
	}
	if ctx.variant == schema.Tiles && ctx.totals.TotalArea.Present {
		label += fmt.Sprintf(" (TOTAL %s SQM)", ctx.totals.TotalArea.Value.StringFixed(2))
	}
	return label
}
