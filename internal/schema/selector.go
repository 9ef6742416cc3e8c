// =============================================================================
// Export Document Generator - Schema Selection
// =============================================================================
//
// Three enumerations jointly select every structural branch in the composer:
//
//   Variant   - column layout and grouping rules (tiles vs sanitary/other)
//   Incoterm  - which monetary aggregate each document displays, and whether
//               a reconciled worksheet copy exists at all
//   TaxStatus - whether supplier-detail blocks appear on the invoice
//
// Each is resolved exactly once per shipment and threaded as data into the
// builders. No builder re-derives a selection from raw strings.
//
// =============================================================================

package schema

import "strings"

// Variant selects the document column layout.
type Variant string

const (
	// Tiles uses the two-column size+quantity layout with SQM rate columns.
	Tiles Variant = "tiles"

	// SanitaryOrOther uses the merged quantity+unit-type+rate layout for
	// goods that are not priced by area.
	SanitaryOrOther Variant = "sanitary_or_other"
)

// Incoterm is the commercial term governing the shipment's pricing basis.
type Incoterm string

const (
	FOB      Incoterm = "FOB"
	CIF      Incoterm = "CIF"
	CNF      Incoterm = "CNF"
	CIFtoFOB Incoterm = "CIF_TO_FOB"
)

// TaxStatus records whether the shipment is invoiced with integrated tax.
type TaxStatus string

const (
	WithTax    TaxStatus = "with"
	WithoutTax TaxStatus = "without"
)

// Select resolves the layout variant from the product type and the validity
// of the declared aggregate area.
//
// Mixed shipments resolve by whether the aggregate-area field parsed as a
// number: the field is structurally absent for non-area-based goods, so a
// valid area means the shipment behaves like tiles, an invalid one like
// sanitary. Pure product types ignore area validity entirely.
func Select(productType string, totalAreaValid bool) Variant {
	switch strings.ToLower(strings.TrimSpace(productType)) {
	case "tiles":
		return Tiles
	case "sanitary":
		return SanitaryOrOther
	case "mix":
		if totalAreaValid {
			return Tiles
		}
		return SanitaryOrOther
	default:
		return SanitaryOrOther
	}
}

// ParseIncoterm maps the payment-term free text onto an Incoterm. The
// literal "CIF -> FOB" is its own variant, distinct from plain CIF: the
// declared aggregate is then a CIF-equivalent figure and the invoice shows
// the FOB value derived from it.
func ParseIncoterm(paymentTerm string) Incoterm {
	term := strings.ToUpper(strings.TrimSpace(paymentTerm))
	term = strings.Join(strings.Fields(term), " ")
	switch term {
	case "CIF -> FOB", "CIF->FOB":
		return CIFtoFOB
	case "CIF":
		return CIF
	case "CNF", "C&F", "CFR":
		return CNF
	default:
		return FOB
	}
}

// ParseTaxStatus maps the integrated-tax flag onto a TaxStatus. Anything
// other than an explicit "without" is treated as invoiced with tax.
func ParseTaxStatus(integratedTax string) TaxStatus {
	if strings.EqualFold(strings.TrimSpace(integratedTax), "without") {
		return WithoutTax
	}
	return WithTax
}
