// =============================================================================
// Export Document Generator - Invoice Builders
// =============================================================================
//
// Builds the primary customs invoice and its worksheet copy. The two are
// structurally identical; the worksheet substitutes reconciled unit prices
// and extended amounts for the base prices, and displays the grand total
// (the CIF-equivalent under CIF -> FOB terms) where the primary invoice
// displays the FOB total.
//
// COLUMN LAYOUTS:
//   Tiles            : SR | DESCRIPTION | HSN | SIZE | QTY | SQM/UNIT |
//                      TOTAL SQM | RATE | AMOUNT           (9 columns)
//   Sanitary / other : SR | DESCRIPTION | HSN | QTY | UNIT | RATE |
//                      AMOUNT                              (7 columns)
//
// =============================================================================

package compose

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/harborline/export-docs/internal/document"
	"github.com/harborline/export-docs/internal/schema"
	"github.com/harborline/export-docs/internal/shipment"
)

// invoiceVariant selects which price set and displayed total an invoice
// build uses.
type invoiceVariant int

const (
	invoiceVariantPrimary invoiceVariant = iota
	invoiceVariantWorksheet
)

var tilesHeaders = []string{
	"SR NO", "DESCRIPTION OF GOODS", "HSN CODE", "SIZE", "QUANTITY",
	"SQM/UNIT", "TOTAL SQM", "RATE PER SQM", "AMOUNT",
}

var sanitaryHeaders = []string{
	"SR NO", "DESCRIPTION OF GOODS", "HSN CODE", "QUANTITY", "UNIT",
	"RATE", "AMOUNT",
}

func invoiceHeaders(v schema.Variant) []string {
	if v == schema.Tiles {
		return tilesHeaders
	}
	return sanitaryHeaders
}

// buildInvoice projects the shipment into the invoice layout.
func buildInvoice(ctx *buildContext, iv invoiceVariant) *document.Document {
	headers := invoiceHeaders(ctx.variant)
	b := document.NewBuilder("", len(headers))

	rec := ctx.normalized.Record

	// Header block.
	b.BannerRow(1, "CUSTOM INVOICE")
	b.BannerRow(1, rec.Exporter.Name)
	b.BannerRow(2, rec.Exporter.Address)
	b.BannerRow(1, "EMAIL: "+rec.Exporter.Email)
	b.BannerRow(1, fmt.Sprintf("GSTIN: %s    IEC: %s", rec.Exporter.GSTIN, rec.Exporter.IEC))

	// Invoice and order identification.
	half := len(headers) / 2
	row := b.Cursor().Advance(1)
	b.PutSpan(row, 1, 1, half, "INVOICE NO: "+ctx.shared.invoiceNumber, document.FormatText)
	b.PutSpan(row, half+1, 1, len(headers)-half, "DATE: "+ctx.shared.invoiceDate, document.FormatDate)

	row = b.Cursor().Advance(1)
	b.PutSpan(row, 1, 1, half, "BUYER ORDER NO: "+rec.Buyer.OrderNumber, document.FormatText)
	b.PutSpan(row, half+1, 1, len(headers)-half, "ORDER DATE: "+ctx.normalized.OrderDate, document.FormatDate)

	// Party blocks.
	b.BannerRow(2, "CONSIGNEE:\n"+rec.Buyer.Consignee)
	b.BannerRow(2, "NOTIFY PARTY:\n"+rec.Buyer.NotifyParty)

	// Shipping route block.
	routeRows := [][2]string{
		{"PRE-CARRIAGE BY: " + rec.Shipping.PreCarriageBy, "PLACE OF RECEIPT: " + rec.Shipping.PlaceOfReceipt},
		{"VESSEL/FLIGHT NO: " + rec.Shipping.VesselFlightNo, "PORT OF LOADING: " + rec.Shipping.PortOfLoading},
		{"PORT OF DISCHARGE: " + rec.Shipping.PortOfDischarge, "FINAL DESTINATION: " + rec.Shipping.FinalDestination},
		{"COUNTRY OF ORIGIN: " + rec.Shipping.CountryOfOrigin, "COUNTRY OF DELIVERY: " + rec.Shipping.CountryOfDelivery},
		{"TERMS OF PAYMENT: " + rec.Shipping.PaymentTerm, "TERMS OF DELIVERY: " + rec.Shipping.DeliveryTerm},
	}
	for _, pair := range routeRows {
		row = b.Cursor().Advance(1)
		b.PutSpan(row, 1, 1, half, pair[0], document.FormatText)
		b.PutSpan(row, half+1, 1, len(headers)-half, pair[1], document.FormatText)
	}

	// Column header row.
	headerCells := make([]document.Cell, len(headers))
	for i, h := range headers {
		headerCells[i] = document.Cell{Col: i + 1, Value: h, Format: document.FormatText}
	}
	b.Row(headerCells...)

	// Product rows grouped under category header rows.
	emitProductRows(b, ctx, iv)

	// Aggregate row. The primary invoice shows the FOB total; the worksheet
	// shows the grand total its line amounts reconcile to.
	displayTotal := ctx.totals.FOBTotal
	if iv == invoiceVariantWorksheet {
		displayTotal = ctx.totals.GrandTotal
	}
	emitAggregateRow(b, ctx, displayTotal)

	b.BannerRow(1, "TOTAL PACKAGES: "+ctx.shared.packages+" ("+ctx.shared.packagingLabel+")")
	b.BannerRow(1, "AMOUNT IN WORDS: "+ctx.shared.amountInWords)

	// Tax declaration block.
	emitTaxBlock(b, ctx)

	// Supplier details appear only on shipments invoiced without
	// integrated tax.
	if ctx.taxStatus == schema.WithoutTax {
		emitSupplierBlock(b, rec.Suppliers)
	}

	// Declaration and signature block spans the variant's full width.
	b.BannerRow(2, "DECLARATION: WE DECLARE THAT THIS INVOICE SHOWS THE ACTUAL "+
		"PRICE OF THE GOODS DESCRIBED AND THAT ALL PARTICULARS ARE TRUE AND CORRECT.")
	b.BannerRow(3, "FOR "+rec.Exporter.Name+"\n\nAUTHORISED SIGNATORY")

	return b.Document()
}

// emitProductRows writes one category header row per category followed by
// its product rows. Serial numbers run across categories.
func emitProductRows(b *document.Builder, ctx *buildContext, iv invoiceVariant) {
	serial := 0
	lineIndex := 0

	for _, cat := range ctx.normalized.Categories {
		// Category header row: name merged over the description span, HSN in
		// its own column.
		row := b.Cursor().Advance(1)
		b.PutSpan(row, 1, 1, 2, cat.Name, document.FormatText)
		b.Put(row, 3, cat.HSNCode, document.FormatText)

		for i := range cat.Lines {
			line := &cat.Lines[i]
			serial++

			rate, amount := linePrice(ctx, iv, lineIndex, line)

			if ctx.variant == schema.Tiles {
				b.Row(
					document.Cell{Col: 1, Value: fmt.Sprintf("%d", serial), Format: document.FormatInteger},
					document.Cell{Col: 2, Value: line.Name, Format: document.FormatText},
					document.Cell{Col: 3, Value: cat.HSNCode, Format: document.FormatText},
					document.Cell{Col: 4, Value: line.Size, Format: document.FormatText},
					document.Cell{Col: 5, Value: line.Quantity.String(), Format: document.FormatInteger},
					document.Cell{Col: 6, Value: optionalString(line.AreaPerUnit), Format: document.FormatNumber2},
					document.Cell{Col: 7, Value: optionalString(line.TotalArea), Format: document.FormatNumber2},
					document.Cell{Col: 8, Value: rate, Format: rateFormat(iv)},
					document.Cell{Col: 9, Value: amount, Format: amountFormat(iv)},
				)
			} else {
				b.Row(
					document.Cell{Col: 1, Value: fmt.Sprintf("%d", serial), Format: document.FormatInteger},
					document.Cell{Col: 2, Value: line.Name, Format: document.FormatText},
					document.Cell{Col: 3, Value: cat.HSNCode, Format: document.FormatText},
					document.Cell{Col: 4, Value: line.Quantity.String(), Format: document.FormatInteger},
					document.Cell{Col: 5, Value: line.Unit, Format: document.FormatText},
					document.Cell{Col: 6, Value: rate, Format: rateFormat(iv)},
					document.Cell{Col: 7, Value: amount, Format: amountFormat(iv)},
				)
			}
			lineIndex++
		}
	}
}

// linePrice returns the formatted rate and amount for a line under the
// given invoice variant.
func linePrice(ctx *buildContext, iv invoiceVariant, lineIndex int, line *shipment.Line) (string, string) {
	if iv == invoiceVariantWorksheet && lineIndex < len(ctx.reconciled) {
		rl := ctx.reconciled[lineIndex]
		return document.Rate(rl.AdjustedUnitPrice), document.Rate(rl.ExtendedAmount)
	}

	rate := document.Money(line.UnitPrice)
	if line.LineTotal.Present {
		return rate, document.Money(line.LineTotal.Value)
	}
	qty, ok := line.BillingQuantity()
	if !ok {
		return rate, shipment.Sentinel
	}
	return rate, document.Money(line.UnitPrice.Mul(qty).Round(2))
}

func rateFormat(iv invoiceVariant) document.Format {
	if iv == invoiceVariantWorksheet {
		return document.FormatNumber4
	}
	return document.FormatNumber2
}

func amountFormat(iv invoiceVariant) document.Format {
	if iv == invoiceVariantWorksheet {
		return document.FormatNumber4
	}
	return document.FormatNumber2
}

// emitAggregateRow writes the totals row beneath the product table.
func emitAggregateRow(b *document.Builder, ctx *buildContext, displayTotal decimal.Decimal) {
	if ctx.variant == schema.Tiles {
		b.Row(
			document.Cell{Col: 1, ColSpan: 6, Value: "TOTAL", Format: document.FormatText},
			document.Cell{Col: 7, Value: optionalString(ctx.totals.TotalArea), Format: document.FormatNumber2},
			document.Cell{Col: 9, Value: document.Money(displayTotal), Format: document.FormatNumber2},
		)
		return
	}
	b.Row(
		document.Cell{Col: 1, ColSpan: 6, Value: "TOTAL", Format: document.FormatText},
		document.Cell{Col: 7, Value: document.Money(displayTotal), Format: document.FormatNumber2},
	)
}

// emitTaxBlock writes the GST/LUT declaration rows.
func emitTaxBlock(b *document.Builder, ctx *buildContext) {
	pkg := &ctx.normalized.Record.Package
	b.BannerRow(1, fmt.Sprintf("GST INVOICE NO: %s    DATE: %s", pkg.GSTInvoiceNumber, pkg.GSTInvoiceDate))
	b.BannerRow(1, fmt.Sprintf("LUT NO: %s    DATE: %s    ARN: %s", pkg.LUTNumber, pkg.LUTDate, pkg.ARN))
	b.BannerRow(1, "SUPPLY MEANT FOR EXPORT UNDER LETTER OF UNDERTAKING WITHOUT PAYMENT OF INTEGRATED TAX (IGST)")
}

// emitSupplierBlock writes one row per upstream supplier.
func emitSupplierBlock(b *document.Builder, suppliers []shipment.Supplier) {
	b.BannerRow(1, "SUPPLIER DETAILS")
	b.Row(
		document.Cell{Col: 1, Value: "SR NO", Format: document.FormatText},
		document.Cell{Col: 2, Value: "SUPPLIER NAME", Format: document.FormatText},
		document.Cell{Col: 3, Value: "GSTIN", Format: document.FormatText},
		document.Cell{Col: 4, Value: "TAX INVOICE NO", Format: document.FormatText},
		document.Cell{Col: 5, Value: "DATE", Format: document.FormatText},
	)
	for i, s := range suppliers {
		b.Row(
			document.Cell{Col: 1, Value: fmt.Sprintf("%d", i+1), Format: document.FormatInteger},
			document.Cell{Col: 2, Value: s.Name, Format: document.FormatText},
			document.Cell{Col: 3, Value: s.GSTIN, Format: document.FormatText},
			document.Cell{Col: 4, Value: s.InvoiceNumber, Format: document.FormatText},
			document.Cell{Col: 5, Value: s.Date, Format: document.FormatDate},
		)
	}
}

// optionalString renders an optional figure, using the upstream sentinel
// for absent values.
func optionalString(o shipment.Optional) string {
	if !o.Present {
		return shipment.Sentinel
	}
	return o.Value.StringFixed(2)
}
