// =============================================================================
// Export Document Generator - XLSX Renderer
// =============================================================================
//
// Projects structured documents onto an excelize workbook: one sheet per
// document, cell values, merged regions and number formats only. All other
// styling (fonts, colors, borders, widths) is outside this module's scope.
//
// The renderer treats the documents as complete and final; it performs no
// computation over their values.
//
// =============================================================================

package render

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/harborline/export-docs/internal/document"
	"github.com/harborline/export-docs/internal/images"
)

// number format strings per format hint.
var numFmts = map[document.Format]string{
	document.FormatNumber2: "0.00",
	document.FormatNumber4: "0.0000",
	document.FormatInteger: "0",
}

// Renderer writes document sets to xlsx workbooks.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render builds a workbook with one sheet per document, in order. Branding
// images, when present, are placed at the top of each sheet and after its
// last row.
func (r *Renderer) Render(docs []document.NamedDocument, imgs images.Set) (*excelize.File, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents to render")
	}

	f := excelize.NewFile()

	styles, err := buildStyles(f)
	if err != nil {
		return nil, err
	}

	for i, nd := range docs {
		sheet := nd.Name
		if i == 0 {
			// Rename the default sheet instead of leaving it dangling.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("failed to name sheet %s: %w", sheet, err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("failed to create sheet %s: %w", sheet, err)
			}
		}

		if err := renderSheet(f, sheet, nd.Document, styles); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", sheet, err)
		}

		if err := placeImages(f, sheet, nd.Document, imgs); err != nil {
			return nil, fmt.Errorf("failed to place images on %s: %w", sheet, err)
		}
	}

	return f, nil
}

// WriteFile renders the documents and saves the workbook at path.
func (r *Renderer) WriteFile(path string, docs []document.NamedDocument, imgs images.Set) error {
	f, err := r.Render(docs, imgs)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// buildStyles registers one style per numeric format hint.
func buildStyles(f *excelize.File) (map[document.Format]int, error) {
	styles := make(map[document.Format]int)
	for format, numFmt := range numFmts {
		fmtStr := numFmt
		id, err := f.NewStyle(&excelize.Style{CustomNumFmt: &fmtStr})
		if err != nil {
			return nil, fmt.Errorf("failed to register style: %w", err)
		}
		styles[format] = id
	}
	return styles, nil
}

func renderSheet(f *excelize.File, sheet string, doc *document.Document, styles map[document.Format]int) error {
	for _, cell := range doc.Cells {
		name, err := excelize.CoordinatesToCellName(cell.Col, cell.Row)
		if err != nil {
			return err
		}

		// Merged region, when the cell spans more than a single row/column.
		rowSpan, colSpan := cell.RowSpan, cell.ColSpan
		if rowSpan > 1 || colSpan > 1 {
			if rowSpan < 1 {
				rowSpan = 1
			}
			if colSpan < 1 {
				colSpan = 1
			}
			end, err := excelize.CoordinatesToCellName(cell.Col+colSpan-1, cell.Row+rowSpan-1)
			if err != nil {
				return err
			}
			if err := f.MergeCell(sheet, name, end); err != nil {
				return err
			}
		}

		if err := setValue(f, sheet, name, cell, styles); err != nil {
			return err
		}
	}
	return nil
}

// setValue writes a cell value, preserving numeric typing for cells that
// carry a numeric format hint and parse cleanly.
func setValue(f *excelize.File, sheet, name string, cell document.Cell, styles map[document.Format]int) error {
	styleID, numeric := styles[cell.Format]
	if numeric {
		if v, err := strconv.ParseFloat(cell.Value, 64); err == nil {
			if err := f.SetCellValue(sheet, name, v); err != nil {
				return err
			}
			return f.SetCellStyle(sheet, name, name, styleID)
		}
	}
	return f.SetCellValue(sheet, name, cell.Value)
}

// placeImages drops the header image above the sheet content and the
// signature image below it. The footer image goes beneath the signature.
func placeImages(f *excelize.File, sheet string, doc *document.Document, imgs images.Set) error {
	if img, ok := imgs[images.Header]; ok {
		if err := addPicture(f, sheet, "A1", img); err != nil {
			return err
		}
	}

	lastRow := 0
	for _, cell := range doc.Cells {
		bottom := cell.Row
		if cell.RowSpan > 1 {
			bottom += cell.RowSpan - 1
		}
		if bottom > lastRow {
			lastRow = bottom
		}
	}

	if img, ok := imgs[images.Signature]; ok {
		name, err := excelize.CoordinatesToCellName(1, lastRow+1)
		if err != nil {
			return err
		}
		if err := addPicture(f, sheet, name, img); err != nil {
			return err
		}
	}
	if img, ok := imgs[images.Footer]; ok {
		name, err := excelize.CoordinatesToCellName(1, lastRow+4)
		if err != nil {
			return err
		}
		if err := addPicture(f, sheet, name, img); err != nil {
			return err
		}
	}
	return nil
}

func addPicture(f *excelize.File, sheet, cell string, img images.Image) error {
	ext := filepath.Ext(img.Path)
	if ext == "" {
		ext = ".png"
	}
	return f.AddPictureFromBytes(sheet, cell, &excelize.Picture{
		Extension: ext,
		File:      img.Data,
	})
}
