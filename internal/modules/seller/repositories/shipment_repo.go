package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cannedit/seller-api/internal/modules/seller/models"
)

type ShipmentRepo interface {
	ListByStore(ctx context.Context, storeID string) ([]models.Shipment, error)
	Insert(ctx context.Context, shipment *models.Shipment) error
}

type shipmentRepo struct {
	col *mongo.Collection
}

func NewShipmentRepo(db *mongo.Database) ShipmentRepo {
	return &shipmentRepo{col: db.Collection("shipments")}
}

func (r *shipmentRepo) ListByStore(ctx context.Context, storeID string) ([]models.Shipment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"store_id": storeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query shipments: %w", err)
	}

	var shipments []models.Shipment
	if err := cur.All(ctx, &shipments); err != nil {
		return nil, fmt.Errorf("failed to decode shipments: %w", err)
	}
	return shipments, nil
}

func (r *shipmentRepo) Insert(ctx context.Context, shipment *models.Shipment) error {
	if _, err := r.col.InsertOne(ctx, shipment); err != nil {
		return fmt.Errorf("failed to insert shipment: %w", err)
	}
	return nil
}
