package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders a Dataset as a single-table A4 portrait document.
type PDFExporter struct{}

func NewPDFExporter() *PDFExporter { return &PDFExporter{} }

// Render draws the title, a bordered header row, then one bordered row per
// record. Columns share the printable width equally.
func (e *PDFExporter) Render(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("pdf export: no headers")
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(10, 15, 10)
	doc.AddPage()

	if title != "" {
		doc.SetFont("Arial", "B", 14)
		doc.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
		doc.Ln(4)
	}

	colW := 190.0 / float64(len(data.Headers))

	doc.SetFont("Arial", "B", 10)
	doc.SetFillColor(230, 230, 230)
	for _, h := range data.Headers {
		doc.CellFormat(colW, 8, h, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Arial", "", 9)
	for _, row := range data.Rows {
		for _, h := range data.Headers {
			doc.CellFormat(colW, 7, row[h], "1", 0, "", false, 0, "")
		}
		doc.Ln(-1)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf export: %w", err)
	}
	return buf.Bytes(), nil
}
