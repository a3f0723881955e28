package models

import "time"

// Store is a seller storefront. One store per authenticated identity, so
// the store id doubles as the token subject.
type Store struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
