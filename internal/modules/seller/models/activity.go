package models

import (
	"errors"
	"time"
)

// Activity is an entry in the store's `activities` log collection.
type Activity struct {
	ID        string    `bson:"_id" json:"id"`
	StoreID   string    `bson:"store_id" json:"store_id"`
	Type      string    `bson:"type" json:"type"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ErrStoreNotFound is returned when the store document for the
// authenticated identity does not exist.
var ErrStoreNotFound = errors.New("store not found")
