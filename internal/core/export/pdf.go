package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/cannedit/seller-api/internal/core/analytics"
)

// PDFExporter writes the report as a single-font, single-column document:
// section titles, subtitles and wrapped "label: value" lines, paginated
// once the cursor nears the bottom margin.
type PDFExporter struct{}

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

const (
	pdfLineWidth  = 100 // characters per wrapped line
	pdfPageBottom = 270 // mm, below this a new page starts
)

func (p *PDFExporter) Export(r *analytics.Report, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Analytics Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	writeLine(pdf, fmt.Sprintf("Store: %s (%s)", r.StoreInfo.StoreName, r.StoreInfo.StoreID))
	writeLine(pdf, fmt.Sprintf("Period: %s (%s - %s)", r.Period.Period, r.Period.Start, r.Period.End))
	writeLine(pdf, fmt.Sprintf("Generated: %s", r.GeneratedAt))
	pdf.Ln(4)

	for _, sec := range sections(r)[1:] {
		breakPage(pdf)
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, sec.Title)
		pdf.Ln(9)
		pdf.SetFont("Arial", "", 10)

		if len(sec.Rows) == 1 && len(sec.Rows[0]) == len(sec.Headers) {
			// Single-row summary sections render one label: value per column.
			for i, header := range sec.Headers {
				writeLine(pdf, fmt.Sprintf("%s: %s", header, formatValue(sec.Rows[0][i])))
			}
		} else {
			for _, row := range sec.Rows {
				parts := make([]string, 0, len(row)-1)
				for i := 1; i < len(row) && i < len(sec.Headers); i++ {
					parts = append(parts, fmt.Sprintf("%s %s", sec.Headers[i], formatValue(row[i])))
				}
				writeLine(pdf, fmt.Sprintf("%s: %s", formatValue(row[0]), strings.Join(parts, ", ")))
			}
			if len(sec.Rows) == 0 {
				writeLine(pdf, "No data for this period")
			}
		}
		pdf.Ln(4)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

func (p *PDFExporter) ContentType() string {
	return "application/pdf"
}

func (p *PDFExporter) FileExtension() string {
	return ".pdf"
}

// writeLine emits one logical line, wrapped at pdfLineWidth characters.
func writeLine(pdf *gofpdf.Fpdf, line string) {
	for _, chunk := range wrapText(line, pdfLineWidth) {
		breakPage(pdf)
		pdf.Cell(0, 6, chunk)
		pdf.Ln(6)
	}
}

func breakPage(pdf *gofpdf.Fpdf) {
	if pdf.GetY() > pdfPageBottom {
		pdf.AddPage()
	}
}

// wrapText splits s into chunks of at most width characters, breaking on
// spaces where possible.
func wrapText(s string, width int) []string {
	if len(s) <= width {
		return []string{s}
	}

	var chunks []string
	for len(s) > width {
		cut := strings.LastIndex(s[:width], " ")
		if cut <= 0 {
			cut = width
		}
		chunks = append(chunks, strings.TrimRight(s[:cut], " "))
		s = strings.TrimLeft(s[cut:], " ")
	}
	if s != "" {
		chunks = append(chunks, s)
	}
	return chunks
}
