package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cannedit/seller-api/internal/modules/seller/models"
	"github.com/cannedit/seller-api/internal/modules/seller/services"
)

type ShipmentHandler struct {
	shipmentService *services.ShipmentService
}

func NewShipmentHandler(shipmentService *services.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{
		shipmentService: shipmentService,
	}
}

// ListShipments godoc
// @Summary List shipments with summary and tracking overview
// @Tags Shipments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} services.ShipmentOverview
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/seller/shipments [get]
func (h *ShipmentHandler) ListShipments(c *fiber.Ctx) error {
	storeID, ok := c.Locals("storeID").(string)
	if !ok || storeID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	overview, err := h.shipmentService.Overview(c.Context(), storeID)
	if err != nil {
		if errors.Is(err, models.ErrStoreNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Store not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list shipments",
		})
	}

	return c.JSON(overview)
}

// CreateShipment godoc
// @Summary Create a shipment
// @Description Insert a shipment and append an activity-log entry
// @Tags Shipments
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param shipment body services.CreateShipmentRequest true "Shipment data"
// @Success 200 {object} models.Shipment
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/seller/shipments [post]
func (h *ShipmentHandler) CreateShipment(c *fiber.Ctx) error {
	storeID, ok := c.Locals("storeID").(string)
	if !ok || storeID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req services.CreateShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	shipment, err := h.shipmentService.Create(c.Context(), storeID, &req)
	if err != nil {
		if errors.Is(err, models.ErrStoreNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Store not found",
			})
		}
		if errors.Is(err, services.ErrMissingField) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create shipment",
		})
	}

	return c.JSON(shipment)
}
