package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborline/export-docs/internal/document"
)

func twoSheetDocs() []document.NamedDocument {
	invoice := &document.Document{Columns: 3}
	invoice.Cells = append(invoice.Cells,
		document.Cell{Row: 1, Col: 1, RowSpan: 1, ColSpan: 3, Value: "CUSTOM INVOICE", Format: document.FormatText},
		document.Cell{Row: 2, Col: 1, Value: "1", Format: document.FormatInteger},
		document.Cell{Row: 2, Col: 2, Value: "GVT MATT 600X600", Format: document.FormatText},
		document.Cell{Row: 2, Col: 3, Value: "10333.0000", Format: document.FormatNumber4},
	)

	packing := &document.Document{Columns: 2}
	packing.Cells = append(packing.Cells,
		document.Cell{Row: 1, Col: 1, Value: "TOTAL", Format: document.FormatText},
		document.Cell{Row: 1, Col: 2, Value: "90000.00", Format: document.FormatNumber2},
	)

	return []document.NamedDocument{
		{Name: "CUSTOM_INVOICE", Document: invoice},
		{Name: "PACKING_LIST", Document: packing},
	}
}

func TestRenderOneSheetPerDocument(t *testing.T) {
	f, err := NewRenderer().Render(twoSheetDocs(), nil)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"CUSTOM_INVOICE", "PACKING_LIST"}, f.GetSheetList())

	v, err := f.GetCellValue("CUSTOM_INVOICE", "A1")
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM INVOICE", v)

	// The banner region is merged across the document width.
	merges, err := f.GetMergeCells("CUSTOM_INVOICE")
	require.NoError(t, err)
	require.Len(t, merges, 1)
	assert.Equal(t, "A1", merges[0].GetStartAxis())
	assert.Equal(t, "C1", merges[0].GetEndAxis())
}

func TestRenderPreservesNumericTyping(t *testing.T) {
	f, err := NewRenderer().Render(twoSheetDocs(), nil)
	require.NoError(t, err)
	defer f.Close()

	// Numeric hints become real cell numbers with the hinted format applied.
	v, err := f.GetCellValue("CUSTOM_INVOICE", "C2")
	require.NoError(t, err)
	assert.Equal(t, "10333.0000", v)

	v, err = f.GetCellValue("PACKING_LIST", "B1")
	require.NoError(t, err)
	assert.Equal(t, "90000.00", v)
}

func TestRenderNonNumericValueInNumericCellFallsBackToText(t *testing.T) {
	doc := &document.Document{Columns: 1}
	doc.Cells = append(doc.Cells,
		document.Cell{Row: 1, Col: 1, Value: "-", Format: document.FormatNumber2},
	)

	f, err := NewRenderer().Render([]document.NamedDocument{{Name: "ANNEXURE", Document: doc}}, nil)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("ANNEXURE", "A1")
	require.NoError(t, err)
	assert.Equal(t, "-", v)
}

func TestRenderEmptySetFails(t *testing.T) {
	_, err := NewRenderer().Render(nil, nil)
	assert.Error(t, err)
}
