package export

import (
	"errors"
	"io"

	"github.com/cannedit/seller-api/internal/core/analytics"
)

// Format is the export file format requested by the caller.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ErrUnsupportedFormat is returned for a format value outside the three
// accepted ones.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Exporter serializes an assembled report into one output format.
type Exporter interface {
	Export(r *analytics.Report, w io.Writer) error
	ContentType() string
	FileExtension() string
}
