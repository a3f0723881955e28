package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/cannedit/seller-api/internal/core/analytics"
)

// DatasetRepo fetches the five collections a report is computed from.
type DatasetRepo interface {
	FetchAll(ctx context.Context, storeID string) (*analytics.Datasets, error)
}

type datasetRepo struct {
	db *mongo.Database
}

func NewDatasetRepo(db *mongo.Database) DatasetRepo {
	return &datasetRepo{db: db}
}

// FetchAll reads all five collections concurrently, each scoped to the
// store. A failed sub-fetch aborts the whole request; empty collections
// are fine and land as empty slices.
func (r *datasetRepo) FetchAll(ctx context.Context, storeID string) (*analytics.Datasets, error) {
	ds := &analytics.Datasets{}
	filter := bson.M{"store_id": storeID}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return fetchInto(gctx, r.db.Collection("orders"), filter, nil, &ds.Orders)
	})
	g.Go(func() error {
		return fetchInto(gctx, r.db.Collection("products"), filter, nil, &ds.Products)
	})
	g.Go(func() error {
		return fetchInto(gctx, r.db.Collection("shipments"), filter, nil, &ds.Shipments)
	})
	g.Go(func() error {
		// Reviews are consumed newest-first by the recent-reviews slice.
		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
		return fetchInto(gctx, r.db.Collection("reviews"), filter, opts, &ds.Reviews)
	})
	g.Go(func() error {
		return fetchInto(gctx, r.db.Collection("coupon_redemptions"), filter, nil, &ds.Redemptions)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ds, nil
}

func fetchInto[T any](ctx context.Context, col *mongo.Collection, filter bson.M, opts *options.FindOptions, out *[]T) error {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = col.Find(ctx, filter, opts)
	} else {
		cur, err = col.Find(ctx, filter)
	}
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", col.Name(), err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", col.Name(), err)
	}
	return nil
}
