package services

import (
	"context"
	"time"

	"github.com/cannedit/seller-api/internal/core/analytics"
	"github.com/cannedit/seller-api/internal/core/export"
	"github.com/cannedit/seller-api/internal/modules/seller/models"
	"github.com/cannedit/seller-api/internal/modules/seller/repositories"
	"github.com/cannedit/seller-api/internal/shared/utils"
)

// AnalyticsService runs the report pipeline: resolve period, fetch the
// store's collections, reduce, assemble. The clock is injected so period
// resolution is deterministic under test.
type AnalyticsService struct {
	stores     repositories.StoreRepo
	datasets   repositories.DatasetRepo
	activities repositories.ActivityRepo
	exporter   *export.Service
	clock      func() time.Time
}

func NewAnalyticsService(
	stores repositories.StoreRepo,
	datasets repositories.DatasetRepo,
	activities repositories.ActivityRepo,
	exporter *export.Service,
	clock func() time.Time,
) *AnalyticsService {
	if clock == nil {
		clock = time.Now
	}
	return &AnalyticsService{
		stores:     stores,
		datasets:   datasets,
		activities: activities,
		exporter:   exporter,
		clock:      clock,
	}
}

// BuildReport computes the full report plus the 10 most recent activity-log
// entries for the JSON route.
func (s *AnalyticsService) BuildReport(ctx context.Context, storeID, periodKey, startRaw, endRaw string) (*analytics.Report, error) {
	report, err := s.compute(ctx, storeID, periodKey, startRaw, endRaw)
	if err != nil {
		return nil, err
	}

	activities, err := s.activities.Recent(ctx, storeID, 10)
	if err != nil {
		return nil, err
	}
	if activities == nil {
		// activity_log always serializes as an array, never null.
		activities = []models.Activity{}
	}
	report.ActivityLog = activities
	return report, nil
}

// ExportReport recomputes the report through the same pipeline and
// serializes it. Returns body, content type and attachment filename.
func (s *AnalyticsService) ExportReport(ctx context.Context, storeID, periodKey, startRaw, endRaw string, format export.Format) ([]byte, string, string, error) {
	report, err := s.compute(ctx, storeID, periodKey, startRaw, endRaw)
	if err != nil {
		return nil, "", "", err
	}

	body, contentType, err := s.exporter.Export(report, format)
	if err != nil {
		return nil, "", "", err
	}

	filename := s.exporter.Filename(format, report.Period.Period, s.clock())
	return body, contentType, filename, nil
}

func (s *AnalyticsService) compute(ctx context.Context, storeID, periodKey, startRaw, endRaw string) (*analytics.Report, error) {
	store, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if periodKey == "" {
		periodKey = analytics.PeriodLast30Days
	}
	now := s.clock()
	period := analytics.ResolvePeriod(periodKey, startRaw, endRaw, now)

	datasets, err := s.datasets.FetchAll(ctx, storeID)
	if err != nil {
		utils.LogError("dataset fetch failed", err, map[string]interface{}{"store_id": storeID})
		return nil, err
	}

	return analytics.ComputeReport(*store, *datasets, period, now), nil
}
