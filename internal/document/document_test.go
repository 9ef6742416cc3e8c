package document

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderRowAdvancesSequentially(t *testing.T) {
	b := NewBuilder("PACKING_LIST", 3)

	b.BannerRow(2, "PACKING LIST")
	b.Row(
		Cell{Col: 1, Value: "SR NO"},
		Cell{Col: 2, Value: "CONTAINER NO"},
		Cell{Col: 3, Value: "PACKAGES"},
	)
	b.Row(Cell{Col: 1, Value: "1"})

	doc := b.Document()
	assert.Equal(t, "PACKING_LIST", doc.Name)
	assert.Equal(t, 3, doc.Columns)

	// Banner occupies rows 1-2 and spans the full width.
	banner := doc.Cells[0]
	assert.Equal(t, 1, banner.Row)
	assert.Equal(t, 2, banner.RowSpan)
	assert.Equal(t, 3, banner.ColSpan)

	// Header row lands on row 3, the data row on row 4.
	require.Len(t, doc.Cells, 5)
	assert.Equal(t, 3, doc.Cells[1].Row)
	assert.Equal(t, 3, doc.Cells[3].Row)
	assert.Equal(t, 4, doc.Cells[4].Row)
}

func TestCursorAdvanceReturnsPriorRow(t *testing.T) {
	c := NewCursor(1)
	assert.Equal(t, 1, c.Advance(3))
	assert.Equal(t, 4, c.Row())
	assert.Equal(t, 4, c.Advance(1))
	assert.Equal(t, 5, c.Row())
}

func TestValueFormatting(t *testing.T) {
	d := decimal.RequireFromString("10333.3")
	assert.Equal(t, "10333.30", Money(d))
	assert.Equal(t, "10333.3000", Rate(d))
	assert.Equal(t, "10333.30", Weight(d))
}
