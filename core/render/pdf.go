// Package render — PDF renderer.
// Lays the listing out as a printable catalog using gofpdf: one block per
// card with the name as a heading, the byline, the detail link and the
// description. Official entries get a marker after the heading.
package render

import (
	"bytes"
	"fmt"

	"github.com/gaurav-prasanna/extdir/core"
	"github.com/gaurav-prasanna/extdir/core/listing"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders a listing as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the listing into PDF bytes.
func (r *PDFRenderer) Render(l core.Listing) ([]byte, error) {
	cards, err := listing.Cards(l.Extensions)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	title := l.Title
	if title == "" {
		title = listing.DefaultTitle
	}
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, tr(title), "", "L", false)
	if l.Pages > 1 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, fmt.Sprintf("Page %d of %d", l.Page, l.Pages), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(6)

	for _, c := range cards {
		renderCard(pdf, tr, c)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderCard writes one card block.
func renderCard(pdf *gofpdf.Fpdf, tr func(string) string, c core.Card) {
	heading := c.Heading
	if c.Official {
		heading += "  [official]"
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 7, tr(heading), "", "L", false)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.MultiCell(0, 5, tr("by "+c.BylineText+" ("+c.BylineHref+")"), "", "L", false)
	pdf.SetFont("Courier", "", 9)
	pdf.MultiCell(0, 4.5, tr(c.Href), "", "L", false)
	pdf.SetTextColor(0, 0, 0)

	if c.Description != "" {
		pdf.Ln(1)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(c.Description), "", "L", false)
	}
	pdf.Ln(5)
}
