// =============================================================================
// Export Document Generator - Document Composer
// =============================================================================
//
// The composer orchestrates the full derivation pipeline for one shipment:
//
//   1. Normalize the raw record into typed values
//   2. Resolve the schema selections (variant, incoterm, tax status) once
//   3. Aggregate totals from the declared package figures
//   4. Reconcile worksheet prices against the grand total
//   5. Cross-reference containers with weighbridge entries
//   6. Project the same underlying facts into five structured documents
//
// Every figure that appears in more than one document (weights, packaging
// label, HSN groupings, invoice number/date) is computed exactly once and
// passed by value into each builder; no document re-derives a shared figure.
//
// ERROR HANDLING:
//   Malformed fields abort the whole shipment: no partial set is returned.
//   A reconciliation failure suppresses only the worksheet copy. Misaligned
//   container data suppresses the packing list, annexure and VGM sheet. A
//   suppressed document is entirely absent, never partial.
//
// CONCURRENCY:
//   Compose is a synchronous transform with no retained state; invocations
//   for different shipments are independent and safely parallelizable.
//
// =============================================================================

package compose

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/harborline/export-docs/internal/document"
	"github.com/harborline/export-docs/internal/reconcile"
	"github.com/harborline/export-docs/internal/schema"
	"github.com/harborline/export-docs/internal/shipment"
	"github.com/harborline/export-docs/internal/totals"
	"github.com/harborline/export-docs/internal/vgm"
)

// Output document names, in emission order.
const (
	DocCustomInvoice = "CUSTOM_INVOICE"
	DocWorksheetCopy = "WORKSHEET_COPY"
	DocPackingList   = "PACKING_LIST"
	DocAnnexure      = "ANNEXURE"
	DocVGM           = "VGM"
)

// Logger is the minimal logging surface the composer needs.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// Result is the outcome of composing one shipment.
type Result struct {
	// Documents are the produced documents in fixed order. Suppressed
	// documents are absent.
	Documents []document.NamedDocument

	// Suppressed maps a document name to the error that suppressed it.
	Suppressed map[string]error

	// Stats carries processing statistics.
	Stats Stats
}

// Stats contains statistics about one composition.
type Stats struct {
	// Lines is the number of billable product lines processed.
	Lines int

	// Containers is the number of container records processed.
	Containers int

	// Produced and SuppressedCount partition the five-document output set.
	Produced        int
	SuppressedCount int

	// ProcessingTime is the time taken to compose the shipment.
	ProcessingTime time.Duration
}

// Document returns the named document, or nil if it was suppressed.
func (r *Result) Document(name string) *document.Document {
	for _, nd := range r.Documents {
		if nd.Name == name {
			return nd.Document
		}
	}
	return nil
}

// RecordError aggregates the malformed-field errors that made a record
// unusable.
type RecordError struct {
	Fields []*shipment.MalformedFieldError
}

func (e *RecordError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("record has %d malformed field(s): %s",
		len(e.Fields), strings.Join(msgs, "; "))
}

// Composer produces document sets from shipment records. A Composer holds no
// per-shipment state and may be shared across goroutines.
type Composer struct {
	logger Logger
}

// New creates a Composer with the default stderr logger.
func New() *Composer {
	return &Composer{logger: &defaultLogger{}}
}

// NewWithLogger creates a Composer with the given logger.
func NewWithLogger(logger Logger) *Composer {
	return &Composer{logger: logger}
}

// Compose runs the pipeline for one shipment record.
func (c *Composer) Compose(rec *shipment.Record) (*Result, error) {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: NORMALIZE
	// =========================================================================

	n, fieldErrs := shipment.Normalize(rec)
	if len(fieldErrs) > 0 {
		for _, fe := range fieldErrs {
			c.logger.Error("field error: %v", fe)
		}
		return nil, &RecordError{Fields: fieldErrs}
	}

	// =========================================================================
	// STEP 2: RESOLVE SCHEMA SELECTIONS
	// =========================================================================
	// Resolved once here and threaded as data. Builders never re-derive
	// these from raw strings, so all five documents agree by construction.

	incoterm := schema.ParseIncoterm(rec.Shipping.PaymentTerm)
	taxStatus := schema.ParseTaxStatus(rec.Shipping.IntegratedTax)
	variant := schema.Select(rec.Shipping.ProductType, n.Package.TotalArea.Present)

	c.logger.Debug("schema: variant=%s incoterm=%s tax=%s", variant, incoterm, taxStatus)

	// =========================================================================
	// STEP 3: AGGREGATE TOTALS
	// =========================================================================

	tot := totals.Compute(n, incoterm)

	// =========================================================================
	// STEP 4: SHARED FIGURES
	// =========================================================================

	shared := buildShared(n, tot)
	lines := n.Lines()

	// =========================================================================
	// STEP 5: RECONCILE WORKSHEET PRICES
	// =========================================================================
	// Skipped only under plain FOB terms, where no worksheet copy exists.
	// Every other term reconciles, even with a zero surcharge: the declared
	// grand total is authoritative and the lines must land on it.

	suppressed := make(map[string]error)

	var reconciled []reconcile.ReconciledLine
	if incoterm != schema.FOB {
		var err error
		reconciled, err = reconcile.Apportion(lines, tot.SurchargeTotal, tot.GrandTotal)
		if err != nil {
			var rerr *reconcile.ReconciliationError
			if !errors.As(err, &rerr) {
				return nil, err
			}
			c.logger.Warn("worksheet suppressed: %v", err)
			suppressed[DocWorksheetCopy] = err
		}
	}

	// =========================================================================
	// STEP 6: CROSS-REFERENCE CONTAINERS
	// =========================================================================

	combined, joinErr := vgm.CrossReference(n.Containers, n.Tares)
	if joinErr != nil {
		var merr *vgm.MisalignedContainerDataError
		if !errors.As(joinErr, &merr) {
			return nil, joinErr
		}
		c.logger.Warn("container documents suppressed: %v", joinErr)
		suppressed[DocPackingList] = joinErr
		suppressed[DocAnnexure] = joinErr
		suppressed[DocVGM] = joinErr
	}

	// =========================================================================
	// STEP 7: BUILD DOCUMENTS
	// =========================================================================
	// Fixed order. Each builder owns its cursor; nothing row-related is
	// shared between documents.

	ctx := &buildContext{
		normalized: n,
		totals:     tot,
		shared:     shared,
		variant:    variant,
		incoterm:   incoterm,
		taxStatus:  taxStatus,
		lines:      lines,
		reconciled: reconciled,
		containers: combined,
	}

	result := &Result{Suppressed: suppressed}

	result.add(DocCustomInvoice, buildInvoice(ctx, invoiceVariantPrimary))

	if incoterm != schema.FOB {
		if _, bad := suppressed[DocWorksheetCopy]; !bad {
			result.add(DocWorksheetCopy, buildInvoice(ctx, invoiceVariantWorksheet))
		}
	}

	if joinErr == nil {
		result.add(DocPackingList, buildPackingList(ctx))
		result.add(DocAnnexure, buildAnnexure(ctx))
		result.add(DocVGM, buildVGMSheet(ctx))
	}

	// =========================================================================
	// COMPLETE
	// =========================================================================

	result.Stats = Stats{
		Lines:           len(lines),
		Containers:      len(n.Containers),
		Produced:        len(result.Documents),
		SuppressedCount: len(suppressed),
		ProcessingTime:  time.Since(startTime),
	}

	c.logger.Info("composed %d document(s), %d suppressed, in %s",
		result.Stats.Produced, result.Stats.SuppressedCount, result.Stats.ProcessingTime)

	return result, nil
}

func (r *Result) add(name string, doc *document.Document) {
	doc.Name = name
	r.Documents = append(r.Documents, document.NamedDocument{Name: name, Document: doc})
}

// buildContext is the read-only tuple every builder consumes. Constructed
// once per Compose call and never mutated by builders.
type buildContext struct {
	normalized *shipment.Normalized
	totals     totals.Totals
	shared     sharedFigures
	variant    schema.Variant
	incoterm   schema.Incoterm
	taxStatus  schema.TaxStatus
	lines      []shipment.Line
	reconciled []reconcile.ReconciledLine
	containers []vgm.CombinedContainer
}

// =============================================================================
// DEFAULT LOGGER
// =============================================================================

// defaultLogger prints to stderr. Replaceable via NewWithLogger.
type defaultLogger struct{}

func (l *defaultLogger) Debug(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[DEBUG] "+msg+"\n", args...)
}

func (l *defaultLogger) Info(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[INFO] "+msg+"\n", args...)
}

func (l *defaultLogger) Warn(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[WARN] "+msg+"\n", args...)
}

func (l *defaultLogger) Error(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+msg+"\n", args...)
}
