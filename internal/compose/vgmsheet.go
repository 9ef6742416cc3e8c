// =============================================================================
// Export Document Generator - VGM Sheet Builder
// =============================================================================
//
// The verified-gross-mass sheet emits one row per container, each joining
// the container record with its positional weighbridge entry. The combined
// mass comes from the cross-referencer, never recomputed here.
//
// =============================================================================

package compose

import (
	"fmt"

	"github.com/harborline/export-docs/internal/document"
)

var vgmHeaders = []string{
	"SR NO", "BOOKING NO", "CONTAINER NO", "GROSS WT (KGS)", "TARE WT (KGS)",
	"VGM (KGS)", "METHOD",
}

func buildVGMSheet(ctx *buildContext) *document.Document {
	b := document.NewBuilder("", len(vgmHeaders))
	rec := ctx.normalized.Record
	info := &rec.Vgm

	b.BannerRow(1, "INFORMATION ABOUT VERIFIED GROSS MASS OF CONTAINER")

	b.BannerRow(1, "NAME OF SHIPPER: "+info.ShipperName)
	b.BannerRow(1, "SHIPPER REGISTRATION/LICENSE NO: "+info.ShipperRegistration)
	b.BannerRow(1, "NAME OF AUTHORISED OFFICIAL: "+info.OfficialName+
		", "+info.OfficialDesignation)
	b.BannerRow(1, "CONTACT DETAILS: "+info.OfficialContact)
	b.BannerRow(1, "INVOICE NO: "+ctx.shared.invoiceNumber+"    DATE: "+ctx.shared.invoiceDate)
	b.BannerRow(1, "WEIGHBRIDGE: "+info.WeighbridgeName+
		"    SLIP NO: "+info.WeighbridgeSlipNo+
		"    DATE OF WEIGHING: "+info.WeighingDate)

	headerCells := make([]document.Cell, len(vgmHeaders))
	for i, h := range vgmHeaders {
		headerCells[i] = document.Cell{Col: i + 1, Value: h, Format: document.FormatText}
	}
	b.Row(headerCells...)

	for i, c := range ctx.containers {
		b.Row(
			document.Cell{Col: 1, Value: fmt.Sprintf("%d", i+1), Format: document.FormatInteger},
			document.Cell{Col: 2, Value: c.BookingNumber, Format: document.FormatText},
			document.Cell{Col: 3, Value: c.ContainerNumber, Format: document.FormatText},
			document.Cell{Col: 4, Value: document.Weight(c.GrossWeight), Format: document.FormatNumber2},
			document.Cell{Col: 5, Value: document.Weight(c.TareWeight), Format: document.FormatNumber2},
			document.Cell{Col: 6, Value: document.Weight(c.VerifiedMass), Format: document.FormatNumber2},
			document.Cell{Col: 7, Value: "METHOD-1", Format: document.FormatText},
		)
	}

	b.BannerRow(3, "SIGNATURE OF AUTHORISED PERSON\n"+info.OfficialName)

	return b.Document()
}
