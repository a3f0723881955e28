package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB wraps the mongo client and the application database handle.
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect opens a MongoDB connection and verifies it with a ping.
func Connect(uri, dbName string) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &DB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

// Close disconnects the underlying client.
func (d *DB) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}
