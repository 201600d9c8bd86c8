// Package render — PDF renderer.
// Renders the announcement exactly as mailed: the converted plain
// text, monospaced, so the archived PDF shows the wrapping and
// reference numbering the recipients saw.
package render

import (
	"bytes"
	"strings"

	"github.com/gaurav-prasanna/newsmail/core"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders the mailed text as an archival PDF.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render lays out the announcement text line by line.
func (r *PDFRenderer) Render(a core.Announcement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	if a.Page.Title != "" {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.MultiCell(0, 7, a.Page.Title, "", "L", false)
		pdf.Ln(4)
	}

	// The text is already wrapped to 80 columns; render it verbatim
	// in a monospace face rather than reflowing it.
	pdf.SetFont("Courier", "", 9)
	for _, line := range strings.Split(a.Text, "\n") {
		if strings.TrimSpace(line) == "" {
			pdf.Ln(4)
			continue
		}
		pdf.MultiCell(0, 4.5, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}
