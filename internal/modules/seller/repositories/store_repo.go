package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cannedit/seller-api/internal/modules/seller/models"
)

type StoreRepo interface {
	GetByID(ctx context.Context, id string) (*models.Store, error)
}

type storeRepo struct {
	col *mongo.Collection
}

func NewStoreRepo(db *mongo.Database) StoreRepo {
	return &storeRepo{col: db.Collection("stores")}
}

func (r *storeRepo) GetByID(ctx context.Context, id string) (*models.Store, error) {
	var store models.Store
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&store)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrStoreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch store: %w", err)
	}
	return &store, nil
}
