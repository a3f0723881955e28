package models

// Product is a catalog entry in the `products` collection. The catalog is
// never period-filtered: it enriches top-product rows and serves as the
// fallback source of "sold" quantities for orders without line items.
type Product struct {
	ID         string   `bson:"_id" json:"id"`
	StoreID    string   `bson:"store_id" json:"store_id"`
	Name       string   `bson:"name,omitempty" json:"name,omitempty"`
	Title      string   `bson:"title,omitempty" json:"title,omitempty"`
	Price      float64  `bson:"price,omitempty" json:"price,omitempty"`
	SoldCount  int      `bson:"sold_count,omitempty" json:"sold_count,omitempty"`
	Stock      int      `bson:"stock,omitempty" json:"stock,omitempty"`
	RatingAvg  float64  `bson:"rating_avg,omitempty" json:"rating_avg,omitempty"`
	Categories []string `bson:"categories,omitempty" json:"categories,omitempty"`
}

// DisplayName resolves the product label: name, then title.
func (p Product) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Title
}
