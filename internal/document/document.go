// =============================================================================
// Export Document Generator - Structured Document Model
// =============================================================================
//
// This package contains the renderer-agnostic document model shared across
// the composer and the renderer. A document is an ordered list of cell-region
// assignments: position, merged span, value, and a numeric-format hint.
//
// The actual spreadsheet encoding (fonts, colors, borders, column widths) is
// the renderer's responsibility and is deliberately absent from this model.
//
// =============================================================================

package document

import "github.com/shopspring/decimal"

// =============================================================================
// FORMAT HINTS
// =============================================================================

// Format is a numeric-format hint attached to a cell. Renderers map these to
// their own number-format encodings; the composer never emits styling beyond
// these hints.
type Format int

const (
	// FormatText renders the value as-is.
	FormatText Format = iota

	// FormatNumber2 renders a number with two decimal places.
	FormatNumber2

	// FormatNumber4 renders a number with four decimal places.
	// Used for reconciled unit prices, where the fourth decimal carries
	// the remainder-absorption adjustment.
	FormatNumber4

	// FormatInteger renders a number with no decimal places.
	FormatInteger

	// FormatDate renders a date in DD.MM.YYYY form.
	FormatDate
)

// =============================================================================
// CELL AND DOCUMENT STRUCTURES
// =============================================================================

// Cell is a single cell-region assignment within a document.
type Cell struct {
	// Row and Col are 1-indexed coordinates of the region's top-left corner.
	Row int
	Col int

	// RowSpan and ColSpan give the merged extent of the region.
	// A value of 0 or 1 means the region occupies a single row/column.
	RowSpan int
	ColSpan int

	// Value is the cell content. Strings stay strings; numeric values are
	// formatted by the composer according to Format before assignment, so a
	// renderer may treat Value as opaque.
	Value string

	// Format is the numeric-format hint for this region.
	Format Format
}

// Document is one structured output document: an ordered list of cell
// assignments plus the sheet name the renderer should use.
type Document struct {
	// Name identifies the document (CUSTOM_INVOICE, PACKING_LIST, ...).
	Name string

	// Cells are the ordered cell-region assignments. Order follows emission
	// order, top to bottom, and renderers must preserve it.
	Cells []Cell

	// Columns is the number of columns the document's grid occupies. Layout
	// blocks that span the full document width (headers, declarations) merge
	// across this many columns.
	Columns int
}

// NamedDocument pairs an output name with its document. The composer returns
// these in a fixed order; suppressed documents are absent, never partial.
type NamedDocument struct {
	Name     string
	Document *Document
}

// =============================================================================
// CURSOR
// =============================================================================

// Cursor is a function-local row position used while building one document.
// Each builder owns its own cursor; cursors are never shared across documents
// or invocations. Row layout depends on the cumulative row count of everything
// emitted before, so cursor advancement is strictly sequential.
type Cursor struct {
	row int
}

// NewCursor returns a cursor positioned at the given 1-indexed row.
func NewCursor(startRow int) *Cursor {
	return &Cursor{row: startRow}
}

// Row returns the current 1-indexed row.
func (c *Cursor) Row() int {
	return c.row
}

// Advance moves the cursor down by n rows and returns the row it was on
// before advancing.
func (c *Cursor) Advance(n int) int {
	row := c.row
	c.row += n
	return row
}

// =============================================================================
// BUILDER
// =============================================================================

// Builder accumulates cells for one document. It pairs a document with its
// own cursor so row bookkeeping cannot leak between documents.
type Builder struct {
	doc    *Document
	cursor *Cursor
}

// NewBuilder creates a builder for a document with the given name and width.
func NewBuilder(name string, columns int) *Builder {
	return &Builder{
		doc:    &Document{Name: name, Columns: columns},
		cursor: NewCursor(1),
	}
}

// Cursor returns the builder's cursor.
func (b *Builder) Cursor() *Cursor {
	return b.cursor
}

// Put places a value at an explicit position without touching the cursor.
func (b *Builder) Put(row, col int, value string, format Format) {
	b.doc.Cells = append(b.doc.Cells, Cell{Row: row, Col: col, Value: value, Format: format})
}

// PutSpan places a merged region at an explicit position.
func (b *Builder) PutSpan(row, col, rowSpan, colSpan int, value string, format Format) {
	b.doc.Cells = append(b.doc.Cells, Cell{
		Row:     row,
		Col:     col,
		RowSpan: rowSpan,
		ColSpan: colSpan,
		Value:   value,
		Format:  format,
	})
}

// Row emits one full-width row of values at the cursor and advances it.
// Values are placed in consecutive columns starting at column 1.
func (b *Builder) Row(values ...Cell) {
	row := b.cursor.Advance(1)
	for _, c := range values {
		c.Row = row
		b.doc.Cells = append(b.doc.Cells, c)
	}
}

// BannerRow emits a single region merged across the document width and
// advances the cursor by rowSpan rows.
func (b *Builder) BannerRow(rowSpan int, value string) {
	row := b.cursor.Advance(rowSpan)
	b.PutSpan(row, 1, rowSpan, b.doc.Columns, value, FormatText)
}

// Document returns the built document.
func (b *Builder) Document() *Document {
	return b.doc
}

// =============================================================================
// VALUE FORMATTING HELPERS
// =============================================================================

// Money formats a decimal with two fixed decimal places.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Rate formats a decimal with four fixed decimal places.
func Rate(d decimal.Decimal) string {
	return d.StringFixed(4)
}

// Weight formats a weight with two fixed decimal places.
func Weight(d decimal.Decimal) string {
	return d.StringFixed(2)
}
