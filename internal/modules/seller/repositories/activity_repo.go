package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cannedit/seller-api/internal/modules/seller/models"
)

type ActivityRepo interface {
	Recent(ctx context.Context, storeID string, limit int) ([]models.Activity, error)
	Append(ctx context.Context, activity *models.Activity) error
}

type activityRepo struct {
	col *mongo.Collection
}

func NewActivityRepo(db *mongo.Database) ActivityRepo {
	return &activityRepo{col: db.Collection("activities")}
}

func (r *activityRepo) Recent(ctx context.Context, storeID string, limit int) ([]models.Activity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{"store_id": storeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}

	var activities []models.Activity
	if err := cur.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return activities, nil
}

func (r *activityRepo) Append(ctx context.Context, activity *models.Activity) error {
	if _, err := r.col.InsertOne(ctx, activity); err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}
	return nil
}
