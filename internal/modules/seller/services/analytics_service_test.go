package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cannedit/seller-api/internal/core/analytics"
	"github.com/cannedit/seller-api/internal/core/export"
	"github.com/cannedit/seller-api/internal/modules/seller/models"
)

type fakeDatasetRepo struct {
	datasets *analytics.Datasets
	err      error
}

func (f *fakeDatasetRepo) FetchAll(_ context.Context, _ string) (*analytics.Datasets, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.datasets, nil
}

func newTestAnalyticsService(datasets *fakeDatasetRepo, activities *fakeActivityRepo) *AnalyticsService {
	stores := &fakeStoreRepo{stores: map[string]*models.Store{
		"store-1": {ID: "store-1", Name: "Canned It"},
	}}
	return NewAnalyticsService(stores, datasets, activities, export.NewService(), fixedClock)
}

func TestBuildReportAttachesRecentActivities(t *testing.T) {
	created := time.Date(2025, 11, 8, 10, 0, 0, 0, time.UTC)
	datasets := &fakeDatasetRepo{datasets: &analytics.Datasets{
		Orders: []models.Order{
			{ID: "o1", Status: "completed", Total: 5000, CreatedAt: &created},
		},
	}}

	activities := &fakeActivityRepo{}
	for i := 0; i < 15; i++ {
		activities.activities = append(activities.activities, models.Activity{
			ID:      fmt.Sprintf("a%d", i),
			StoreID: "store-1",
			Type:    "order_placed",
		})
	}

	svc := newTestAnalyticsService(datasets, activities)
	report, err := svc.BuildReport(context.Background(), "store-1", "last_7_days", "", "")
	require.NoError(t, err)

	assert.Equal(t, "last_7_days", report.Period.Period)
	assert.Equal(t, 1, report.SalesOverview.TotalOrders)
	assert.Len(t, report.ActivityLog, 10)
}

func TestBuildReportDefaultsPeriod(t *testing.T) {
	svc := newTestAnalyticsService(&fakeDatasetRepo{datasets: &analytics.Datasets{}}, &fakeActivityRepo{})

	report, err := svc.BuildReport(context.Background(), "store-1", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, analytics.PeriodLast30Days, report.Period.Period)
}

func TestBuildReportEmptyActivityLogSerializesAsArray(t *testing.T) {
	svc := newTestAnalyticsService(&fakeDatasetRepo{datasets: &analytics.Datasets{}}, &fakeActivityRepo{})

	report, err := svc.BuildReport(context.Background(), "store-1", "last_7_days", "", "")
	require.NoError(t, err)
	require.NotNil(t, report.ActivityLog)

	body, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"activity_log":[]`)
}

func TestBuildReportStoreNotFound(t *testing.T) {
	svc := newTestAnalyticsService(&fakeDatasetRepo{datasets: &analytics.Datasets{}}, &fakeActivityRepo{})

	_, err := svc.BuildReport(context.Background(), "ghost", "last_7_days", "", "")
	assert.ErrorIs(t, err, models.ErrStoreNotFound)
}

func TestExportReportFilenameAndBody(t *testing.T) {
	svc := newTestAnalyticsService(&fakeDatasetRepo{datasets: &analytics.Datasets{}}, &fakeActivityRepo{})

	body, contentType, filename, err := svc.ExportReport(context.Background(), "store-1", "last_7_days", "", "", export.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Equal(t, "analytics_report_last_7_days_2025-11-10.csv", filename)
	assert.NotEmpty(t, body)
}

func TestExportReportUnsupportedFormat(t *testing.T) {
	svc := newTestAnalyticsService(&fakeDatasetRepo{datasets: &analytics.Datasets{}}, &fakeActivityRepo{})

	_, _, _, err := svc.ExportReport(context.Background(), "store-1", "last_7_days", "", "", export.Format("docx"))
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

func TestExportReportAggregationRunsBeforeFormatCheck(t *testing.T) {
	// A failed fetch surfaces as its own error even for a bad format request.
	datasets := &fakeDatasetRepo{err: fmt.Errorf("orders query failed")}
	svc := newTestAnalyticsService(datasets, &fakeActivityRepo{})

	_, _, _, err := svc.ExportReport(context.Background(), "store-1", "last_7_days", "", "", export.Format("docx"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, export.ErrUnsupportedFormat)
}
