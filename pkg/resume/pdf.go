package resume

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"resume-builder-backend/internal/domain"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const fontFamily = "body"

// PDFOptions tunes RenderPDF.
type PDFOptions struct {
	// FontPath is a TrueType font used for both weights. Empty uses the
	// embedded Go fonts, which cover Latin, Greek and Cyrillic.
	FontPath string
}

// loadFonts registers the UTF-8 body font. Text is passed to fpdf as-is,
// so no cp1252 translation happens anywhere.
func loadFonts(pdf *fpdf.Fpdf, opts PDFOptions) error {
	if opts.FontPath != "" {
		ttf, err := os.ReadFile(opts.FontPath)
		if err != nil {
			return fmt.Errorf("load pdf font: %w", err)
		}
		pdf.AddUTF8FontFromBytes(fontFamily, "", ttf)
		pdf.AddUTF8FontFromBytes(fontFamily, "B", ttf)
	} else {
		pdf.AddUTF8FontFromBytes(fontFamily, "", goregular.TTF)
		pdf.AddUTF8FontFromBytes(fontFamily, "B", gobold.TTF)
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("load pdf font: %w", err)
	}
	return nil
}

// RenderPDF lays out the generated prose followed by the structured sections.
// The document is built in memory; only a configured font is read from disk.
func RenderPDF(doc *domain.ProfileDocument, prose string, now time.Time, opts PDFOptions) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	if err := loadFonts(pdf, opts); err != nil {
		return nil, err
	}
	h := headerOf(doc.User)

	pdf.SetTitle("Resume", true)
	pdf.SetAuthor(h.Name, true)
	pdf.SetCreationDate(now)
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, "Resume", "", 1, "C", false, 0, "")

	pdf.SetFont(fontFamily, "B", 13)
	pdf.CellFormat(0, 7, h.Name, "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("@%s | %s | %s", h.Username, h.Mobile, h.Location), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if strings.TrimSpace(prose) != "" {
		pdf.SetFont(fontFamily, "", 12)
		pdf.MultiCell(0, 6, prose, "", "L", false)
		pdf.Ln(2)
	}

	for _, s := range Sections(doc) {
		pdf.Ln(3)
		pdf.SetFont(fontFamily, "B", 13)
		pdf.SetTextColor(30, 58, 95)
		pdf.CellFormat(0, 8, s.Title, "B", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)

		for _, e := range s.Entries {
			pdf.SetFont(fontFamily, "B", 11)
			pdf.MultiCell(0, 6, e.Heading, "", "L", false)
			pdf.SetFont(fontFamily, "", 10)
			if e.Meta != "" {
				pdf.MultiCell(0, 5, e.Meta, "", "L", false)
			}
			if e.Body != "" {
				pdf.MultiCell(0, 5, e.Body, "", "L", false)
			}
			if e.Link != "" {
				pdf.SetTextColor(0, 0, 180)
				pdf.CellFormat(0, 5, e.Link, "", 1, "L", false, 0, e.Link)
				pdf.SetTextColor(0, 0, 0)
			}
			pdf.Ln(1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
