package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/cannedit/seller-api/internal/core/analytics"
)

// Service dispatches a report to the exporter for the requested format.
type Service struct {
	exporters map[Format]Exporter
}

func NewService() *Service {
	return &Service{
		exporters: map[Format]Exporter{
			FormatCSV:  NewCSVExporter(),
			FormatXLSX: NewExcelExporter(),
			FormatPDF:  NewPDFExporter(),
		},
	}
}

// Export serializes the report, returning the body and its content type.
func (s *Service) Export(r *analytics.Report, format Format) ([]byte, string, error) {
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	var buf bytes.Buffer
	if err := exporter.Export(r, &buf); err != nil {
		return nil, "", fmt.Errorf("export failed: %w", err)
	}
	return buf.Bytes(), exporter.ContentType(), nil
}

// Filename builds the attachment name: analytics_report_<period>_<date><ext>.
func (s *Service) Filename(format Format, period string, now time.Time) string {
	ext := ".bin"
	if exporter, ok := s.exporters[format]; ok {
		ext = exporter.FileExtension()
	}
	return fmt.Sprintf("analytics_report_%s_%s%s", period, now.Format("2006-01-02"), ext)
}
