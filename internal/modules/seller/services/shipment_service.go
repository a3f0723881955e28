package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/cannedit/seller-api/internal/core/analytics"
	"github.com/cannedit/seller-api/internal/modules/seller/models"
	"github.com/cannedit/seller-api/internal/modules/seller/repositories"
	"github.com/cannedit/seller-api/internal/shared/utils"
)

// ErrMissingField wraps the first missing required field of a create
// request; the handler names it in the 400 body.
var ErrMissingField = errors.New("missing required field")

// CreateShipmentRequest is the POST body for shipment creation. Field order
// fixes which missing field is reported first.
type CreateShipmentRequest struct {
	OrderID        string  `json:"order_id" validate:"required"`
	Carrier        string  `json:"carrier" validate:"required"`
	TrackingNumber string  `json:"tracking_number" validate:"required"`
	Status         string  `json:"status"`
	Cost           float64 `json:"cost"`
}

// ShipmentOverview is the GET /shipments response: the raw list plus the
// same status/carrier heuristics the report's shipping section uses,
// computed over all of the store's shipments.
type ShipmentOverview struct {
	Shipments        []models.Shipment         `json:"shipments"`
	Summary          analytics.ShippingSummary `json:"summary"`
	TrackingOverview []analytics.CarrierStats  `json:"tracking_overview"`
}

type ShipmentService struct {
	stores     repositories.StoreRepo
	shipments  repositories.ShipmentRepo
	activities repositories.ActivityRepo
	validate   *validator.Validate
	clock      func() time.Time
}

func NewShipmentService(
	stores repositories.StoreRepo,
	shipments repositories.ShipmentRepo,
	activities repositories.ActivityRepo,
	clock func() time.Time,
) *ShipmentService {
	if clock == nil {
		clock = time.Now
	}
	return &ShipmentService{
		stores:     stores,
		shipments:  shipments,
		activities: activities,
		validate:   validator.New(),
		clock:      clock,
	}
}

func (s *ShipmentService) Overview(ctx context.Context, storeID string) (*ShipmentOverview, error) {
	if _, err := s.stores.GetByID(ctx, storeID); err != nil {
		return nil, err
	}

	shipments, err := s.shipments.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	summary := analytics.SummarizeShipments(shipments)
	return &ShipmentOverview{
		Shipments:        shipments,
		Summary:          summary,
		TrackingOverview: summary.TopCarriers,
	}, nil
}

// Create inserts the shipment, then appends an activity-log entry. There is
// no compensating delete if the append fails; the created shipment is still
// returned.
func (s *ShipmentService) Create(ctx context.Context, storeID string, req *CreateShipmentRequest) (*models.Shipment, error) {
	if _, err := s.stores.GetByID(ctx, storeID); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, verrs[0].Field())
		}
		return nil, err
	}

	now := s.clock()
	status := req.Status
	if status == "" {
		status = models.ShipmentStatusProcessing
	}

	shipment := &models.Shipment{
		ID:             uuid.NewString(),
		StoreID:        storeID,
		OrderID:        req.OrderID,
		Carrier:        req.Carrier,
		TrackingNumber: req.TrackingNumber,
		Status:         status,
		Cost:           req.Cost,
		CreatedAt:      &now,
	}
	if err := s.shipments.Insert(ctx, shipment); err != nil {
		return nil, err
	}

	activity := &models.Activity{
		ID:        uuid.NewString(),
		StoreID:   storeID,
		Type:      "shipment_created",
		Message:   fmt.Sprintf("Shipment %s created for order %s via %s", shipment.TrackingNumber, shipment.OrderID, shipment.Carrier),
		CreatedAt: now,
	}
	if err := s.activities.Append(ctx, activity); err != nil {
		utils.LogWarn("activity append failed after shipment insert", map[string]interface{}{
			"store_id":    storeID,
			"shipment_id": shipment.ID,
			"error":       err.Error(),
		})
	}

	return shipment, nil
}
