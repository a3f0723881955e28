package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/cannedit/seller-api/internal/core/export"
	"github.com/cannedit/seller-api/internal/modules/seller/models"
	"github.com/cannedit/seller-api/internal/modules/seller/services"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetAnalytics godoc
// @Summary Get the seller analytics report
// @Description Compute the analytics report for the authenticated seller's store
// @Tags Analytics
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param period query string false "today | last_7_days | last_30_days | this_month | last_month | custom"
// @Param start query string false "Custom period start (ISO date)"
// @Param end query string false "Custom period end (ISO date)"
// @Success 200 {object} analytics.Report
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/seller/analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	storeID, ok := c.Locals("storeID").(string)
	if !ok || storeID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	report, err := h.analyticsService.BuildReport(
		c.Context(),
		storeID,
		c.Query("period"),
		c.Query("start"),
		c.Query("end"),
	)
	if err != nil {
		if errors.Is(err, models.ErrStoreNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Store not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build analytics report",
		})
	}

	return c.JSON(report)
}

// ExportAnalytics godoc
// @Summary Export the seller analytics report
// @Description Serialize the analytics report as csv, xlsx or pdf
// @Tags Analytics
// @Produce octet-stream
// @Param Authorization header string true "Bearer token"
// @Param period query string false "Period key"
// @Param start query string false "Custom period start (ISO date)"
// @Param end query string false "Custom period end (ISO date)"
// @Param format query string true "csv | xlsx | pdf"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/seller/analytics/export [get]
func (h *AnalyticsHandler) ExportAnalytics(c *fiber.Ctx) error {
	storeID, ok := c.Locals("storeID").(string)
	if !ok || storeID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	format := export.Format(c.Query("format", string(export.FormatCSV)))

	body, contentType, filename, err := h.analyticsService.ExportReport(
		c.Context(),
		storeID,
		c.Query("period"),
		c.Query("start"),
		c.Query("end"),
		format,
	)
	if err != nil {
		if errors.Is(err, models.ErrStoreNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Store not found",
			})
		}
		if errors.Is(err, export.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Unsupported format %q. Accepted values: csv, xlsx, pdf", format),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export analytics report",
		})
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(body)
}
