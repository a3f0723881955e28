package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/cannedit/seller-api/internal/core/analytics"
)

// ExcelExporter writes the report as a workbook, one sheet per section,
// each sheet a header row plus data rows.
type ExcelExporter struct{}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

func (e *ExcelExporter) Export(r *analytics.Report, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	secs := sections(r)

	// The default sheet becomes the first section's sheet.
	f.SetSheetName("Sheet1", secs[0].Sheet)

	for i, sec := range secs {
		if i > 0 {
			if _, err := f.NewSheet(sec.Sheet); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", sec.Sheet, err)
			}
		}

		for col, header := range sec.Headers {
			cell := columnNumberToName(col+1) + "1"
			f.SetCellValue(sec.Sheet, cell, header)
		}
		for rowIdx, row := range sec.Rows {
			for col, value := range row {
				cell := columnNumberToName(col+1) + strconv.Itoa(rowIdx+2)
				f.SetCellValue(sec.Sheet, cell, value)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (e *ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *ExcelExporter) FileExtension() string {
	return ".xlsx"
}

// columnNumberToName converts column number to Excel column name (1 -> A, 27 -> AA)
func columnNumberToName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+(col%26))) + name
		col /= 26
	}
	return name
}
