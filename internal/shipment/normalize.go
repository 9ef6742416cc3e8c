// =============================================================================
// Export Document Generator - Field Normalizer
// =============================================================================
//
// This file turns the raw, string-typed shipment record into typed values:
//   - dates are parsed and reformatted to the display form (DD.MM.YYYY)
//   - "-" sentinels become absent optional values
//   - composite strings like "1200 BOX" are split into count + unit token
//   - monetary, weight and area figures become decimals
//
// Normalization is the only place raw field shapes are interpreted. Every
// downstream stage works on the Normalized form; nothing re-sniffs strings.
//
// ERROR HANDLING:
//   Errors are collected, not thrown at the first failure. Each error carries
//   the record path and the offending value so the caller can report all
//   problems in one pass. Any collected error aborts generation.
//
// =============================================================================

package shipment

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Sentinel is the upstream placeholder for "no value" in numeric fields.
const Sentinel = "-"

// DisplayDateFormat is the date form used across all generated documents.
const DisplayDateFormat = "02.01.2006"

// acceptedDateFormats are the input date layouts the normalizer tolerates.
var acceptedDateFormats = []string{
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
}

// =============================================================================
// NORMALIZED MODEL
// =============================================================================

// Optional is a decimal value that may be absent (sentinel or empty input).
type Optional struct {
	Value   decimal.Decimal
	Present bool
}

// Line is one normalized billable product line.
type Line struct {
	// Category is the index of the owning category group.
	Category int

	Name string
	Size string
	Unit string

	Quantity    decimal.Decimal
	AreaPerUnit Optional
	TotalArea   Optional
	UnitPrice   decimal.Decimal
	LineTotal   Optional
	NetWeight   decimal.Decimal
	GrossWeight decimal.Decimal
}

// BillingQuantity returns the quantity a line is billed against: the area
// quantity when present, the count quantity otherwise. This is a per-line
// fallback, not a fixed column; area-priced and count-priced lines coexist
// on one shipment. The second return is false when the chosen quantity is
// zero or negative, which no line may be billed against.
func (l *Line) BillingQuantity() (decimal.Decimal, bool) {
	qty := l.Quantity
	if l.TotalArea.Present {
		qty = l.TotalArea.Value
	}
	if qty.Sign() <= 0 {
		return qty, false
	}
	return qty, true
}

// CategoryGroup is a normalized category with its lines.
type CategoryGroup struct {
	Name    string
	HSNCode string
	Lines   []Line
}

// Aggregates holds the normalized package-level declared figures. Declared
// aggregates are authoritative; they are never re-derived by summing lines.
type Aggregates struct {
	PackageCount int
	PackageUnit  string

	// TotalArea is absent when the field is non-numeric, which is the normal
	// state for non-area-based goods and feeds schema selection.
	TotalArea Optional

	NetWeight   decimal.Decimal
	GrossWeight decimal.Decimal

	Amount    decimal.Decimal
	Insurance decimal.Decimal
	Freight   decimal.Decimal
}

// ContainerLine is one normalized container record.
type ContainerLine struct {
	ContainerNumber string
	LineSeal        string
	CustomSeal      string
	Description     string
	BoxQuantity     int
	NetWeight       decimal.Decimal
	GrossWeight     decimal.Decimal
}

// TareLine is one normalized weighbridge verification record.
type TareLine struct {
	BookingNumber string
	TareWeight    decimal.Decimal
}

// Normalized is the typed form of a shipment record consumed by the rest of
// the pipeline. It retains the raw record for free-text passthrough fields.
type Normalized struct {
	Record *Record

	InvoiceNumber string
	InvoiceDate   string
	OrderDate     string

	Categories []CategoryGroup
	Package    Aggregates
	Containers []ContainerLine
	Tares      []TareLine
}

// Lines returns the billable product lines flattened in document order.
// Category grouping never changes line order.
func (n *Normalized) Lines() []Line {
	var lines []Line
	for _, cat := range n.Categories {
		lines = append(lines, cat.Lines...)
	}
	return lines
}

// =============================================================================
// NORMALIZATION
// =============================================================================

// Normalize converts a raw record into the typed form, collecting every
// malformed-field error rather than stopping at the first. A non-empty error
// slice means the record is unusable and generation must not proceed.
func Normalize(rec *Record) (*Normalized, []*MalformedFieldError) {
	n := &normalizer{}

	out := &Normalized{Record: rec}

	out.InvoiceNumber = strings.TrimSpace(rec.Shipping.InvoiceNumber)
	if out.InvoiceNumber == "" {
		n.fail("shipping.invoice_number", "", "required")
	}

	out.InvoiceDate = n.date("shipping.invoice_date", rec.Shipping.InvoiceDate, true)
	out.OrderDate = n.date("buyer.order_date", rec.Buyer.OrderDate, false)

	out.Categories = n.categories(rec.Categories)
	out.Package = n.aggregates(&rec.Package)
	out.Containers = n.containers(rec.Containers)
	out.Tares = n.tares(rec.Vgm.Containers)

	if len(n.errs) > 0 {
		return nil, n.errs
	}
	return out, nil
}

// normalizer accumulates field errors across one Normalize pass.
type normalizer struct {
	errs []*MalformedFieldError
}

func (n *normalizer) fail(field, value, reason string) {
	n.errs = append(n.errs, &MalformedFieldError{Field: field, Value: value, Reason: reason})
}

// date parses and reformats a date field. Optional empty dates pass through
// as empty strings.
func (n *normalizer) date(field, raw string, required bool) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			n.fail(field, raw, "required date")
		}
		return ""
	}
	t, err := ParseDate(raw)
	if err != nil {
		n.fail(field, raw, "unrecognized date format")
		return ""
	}
	return t.Format(DisplayDateFormat)
}

// amount parses a required decimal field, tolerating thousands separators.
func (n *normalizer) amount(field, raw string) decimal.Decimal {
	d, err := ParseAmount(raw)
	if err != nil {
		n.fail(field, raw, "not a number")
		return decimal.Zero
	}
	return d
}

// optionalAmount parses a decimal field where "-" or empty means absent.
func (n *normalizer) optionalAmount(field, raw string) Optional {
	if IsSentinel(raw) {
		return Optional{}
	}
	d, err := ParseAmount(raw)
	if err != nil {
		n.fail(field, raw, "not a number")
		return Optional{}
	}
	return Optional{Value: d, Present: true}
}

// surcharge parses an insurance/freight field where absence means zero.
func (n *normalizer) surcharge(field, raw string) decimal.Decimal {
	if IsSentinel(raw) {
		return decimal.Zero
	}
	return n.amount(field, raw)
}

func (n *normalizer) categories(cats []Category) []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(cats))
	for i, cat := range cats {
		group := CategoryGroup{
			Name:    cat.Name,
			HSNCode: cat.HSNCode,
		}
		for j, p := range cat.Products {
			prefix := fmt.Sprintf("product_categories[%d].products[%d]", i, j)
			line := Line{
				Category:    i,
				Name:        p.Name,
				Size:        p.Size,
				Unit:        strings.TrimSpace(p.Unit),
				Quantity:    n.amount(prefix+".quantity", p.Quantity),
				AreaPerUnit: n.optionalAmount(prefix+".area_per_unit", p.AreaPerUnit),
				TotalArea:   n.optionalAmount(prefix+".total_area", p.TotalArea),
				UnitPrice:   n.amount(prefix+".unit_price", p.UnitPrice),
				LineTotal:   n.optionalAmount(prefix+".line_total", p.LineTotal),
				NetWeight:   n.amount(prefix+".net_weight", p.NetWeight),
				GrossWeight: n.amount(prefix+".gross_weight", p.GrossWeight),
			}
			group.Lines = append(group.Lines, line)
		}
		groups = append(groups, group)
	}
	return groups
}

func (n *normalizer) aggregates(pkg *PackageInfo) Aggregates {
	agg := Aggregates{}

	count, unit, err := SplitComposite(pkg.Packages)
	if err != nil {
		n.fail("package_info.packages", pkg.Packages, "expected \"<count> <unit>\"")
	}
	agg.PackageCount = count
	agg.PackageUnit = unit

	// The declared total area legitimately fails to parse for non-area-based
	// goods; absence is recorded, not reported, and later drives schema
	// selection for mixed shipments.
	if d, err := ParseAmount(pkg.TotalArea); err == nil {
		agg.TotalArea = Optional{Value: d, Present: true}
	}

	agg.NetWeight = n.amount("package_info.net_weight", pkg.NetWeight)
	agg.GrossWeight = n.amount("package_info.gross_weight", pkg.GrossWeight)
	agg.Amount = n.amount("package_info.amount", pkg.Amount)
	agg.Insurance = n.surcharge("package_info.insurance", pkg.Insurance)
	agg.Freight = n.surcharge("package_info.freight", pkg.Freight)

	return agg
}

func (n *normalizer) containers(containers []Container) []ContainerLine {
	out := make([]ContainerLine, 0, len(containers))
	for i, c := range containers {
		prefix := fmt.Sprintf("containers[%d]", i)
		boxes, err := strconv.Atoi(strings.TrimSpace(c.BoxQuantity))
		if err != nil {
			n.fail(prefix+".box_quantity", c.BoxQuantity, "not an integer")
		}
		out = append(out, ContainerLine{
			ContainerNumber: c.ContainerNumber,
			LineSeal:        c.LineSeal,
			CustomSeal:      c.CustomSeal,
			Description:     c.Description,
			BoxQuantity:     boxes,
			NetWeight:       n.amount(prefix+".net_weight", c.NetWeight),
			GrossWeight:     n.amount(prefix+".gross_weight", c.GrossWeight),
		})
	}
	return out
}

func (n *normalizer) tares(entries []TareEntry) []TareLine {
	out := make([]TareLine, 0, len(entries))
	for i, e := range entries {
		prefix := fmt.Sprintf("vgm_info.containers[%d]", i)
		out = append(out, TareLine{
			BookingNumber: e.BookingNumber,
			TareWeight:    n.amount(prefix+".tare_weight", e.TareWeight),
		})
	}
	return out
}

// =============================================================================
// PARSING PRIMITIVES
// =============================================================================

// IsSentinel reports whether a raw field value means "no value".
func IsSentinel(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == Sentinel
}

// ParseDate parses a date in any of the accepted input layouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range acceptedDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ParseAmount parses a decimal figure, tolerating surrounding whitespace and
// thousands separators ("1,20,000.50" and "1,200.50" both parse).
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" || s == Sentinel {
		return decimal.Zero, fmt.Errorf("no numeric value")
	}
	return decimal.NewFromString(s)
}

// SplitComposite splits a count+unit composite like "1200 BOX" into its
// parts. The unit token may itself contain spaces ("1200 WOODEN PALLET").
func SplitComposite(s string) (int, string, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return 0, "", fmt.Errorf("composite %q missing count or unit", s)
	}
	count, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, "", fmt.Errorf("composite %q has non-numeric count", s)
	}
	return count, strings.Join(fields[1:], " "), nil
}
