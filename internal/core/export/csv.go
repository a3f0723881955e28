package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cannedit/seller-api/internal/core/analytics"
)

// CSVExporter writes the report as one flat text document: a section title
// row, a header row and data rows per section, sections separated by a
// blank line. Quoting follows RFC 4180 (fields holding comma, quote or
// newline are quoted, internal quotes doubled).
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Export(r *analytics.Report, w io.Writer) error {
	cw := csv.NewWriter(w)

	for _, sec := range sections(r) {
		if err := cw.Write([]string{sec.Title}); err != nil {
			return fmt.Errorf("failed to write csv section: %w", err)
		}
		if err := cw.Write(sec.Headers); err != nil {
			return fmt.Errorf("failed to write csv header: %w", err)
		}
		for _, row := range sec.Rows {
			cells := make([]string, len(row))
			for i, v := range row {
				cells[i] = formatValue(v)
			}
			if err := cw.Write(cells); err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}
		if err := cw.Write([]string{""}); err != nil {
			return fmt.Errorf("failed to write csv separator: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func (e *CSVExporter) ContentType() string {
	return "text/csv"
}

func (e *CSVExporter) FileExtension() string {
	return ".csv"
}
