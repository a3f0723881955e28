package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceExportDispatch(t *testing.T) {
	svc := NewService()
	report := fixtureReport()

	body, contentType, err := svc.Export(report, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.NotEmpty(t, body)

	body, contentType, err = svc.Export(report, FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)
	// xlsx is a zip container
	assert.True(t, bytes.HasPrefix(body, []byte("PK")))

	body, contentType, err = svc.Export(report, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestServiceExportUnsupportedFormat(t *testing.T) {
	svc := NewService()

	_, _, err := svc.Export(fixtureReport(), Format("docx"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestServiceFilename(t *testing.T) {
	svc := NewService()
	now := time.Date(2025, 11, 10, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, "analytics_report_last_7_days_2025-11-10.csv", svc.Filename(FormatCSV, "last_7_days", now))
	assert.Equal(t, "analytics_report_this_month_2025-11-10.xlsx", svc.Filename(FormatXLSX, "this_month", now))
	assert.Equal(t, "analytics_report_custom_2025-11-10.pdf", svc.Filename(FormatPDF, "custom", now))
}
