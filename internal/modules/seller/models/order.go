package models

import "time"

// OrderItem is a single line item in an order. Documents written by older
// storefront builds use `quantity` where newer ones use `qty`, and identify
// the product by any of product_id, id, sku or name; both spellings are
// kept and resolved by the accessors below.
type OrderItem struct {
	ProductID string  `bson:"product_id,omitempty" json:"product_id,omitempty"`
	ItemID    string  `bson:"id,omitempty" json:"id,omitempty"`
	SKU       string  `bson:"sku,omitempty" json:"sku,omitempty"`
	Name      string  `bson:"name,omitempty" json:"name,omitempty"`
	Qty       int     `bson:"qty,omitempty" json:"qty,omitempty"`
	Quantity  int     `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Price     float64 `bson:"price,omitempty" json:"price,omitempty"`
}

// UnitCount resolves the item quantity: qty, then quantity, first non-zero wins.
func (it OrderItem) UnitCount() int {
	if it.Qty != 0 {
		return it.Qty
	}
	return it.Quantity
}

// ProductKey resolves the product identity for grouping:
// product_id → id → sku → name, first non-empty wins.
func (it OrderItem) ProductKey() string {
	for _, k := range []string{it.ProductID, it.ItemID, it.SKU, it.Name} {
		if k != "" {
			return k
		}
	}
	return ""
}

// Order is a customer order as stored in the `orders` collection.
type Order struct {
	ID            string      `bson:"_id" json:"id"`
	StoreID       string      `bson:"store_id" json:"store_id"`
	OrderDate     *time.Time  `bson:"order_date,omitempty" json:"order_date,omitempty"`
	CreatedAt     *time.Time  `bson:"created_at,omitempty" json:"created_at,omitempty"`
	Status        string      `bson:"status,omitempty" json:"status,omitempty"`
	Total         float64     `bson:"total,omitempty" json:"total,omitempty"`
	PaymentMethod string      `bson:"payment_method,omitempty" json:"payment_method,omitempty"`
	PaymentStatus string      `bson:"payment_status,omitempty" json:"payment_status,omitempty"`
	CustomerID    string      `bson:"customer_id,omitempty" json:"customer_id,omitempty"`
	UserID        string      `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Items         []OrderItem `bson:"items,omitempty" json:"items,omitempty"`
}

// PlacedAt resolves the order timestamp: order_date, then created_at.
func (o Order) PlacedAt() *time.Time {
	if o.OrderDate != nil {
		return o.OrderDate
	}
	return o.CreatedAt
}

// BuyerID resolves the buyer identity: customer_id, then user_id.
func (o Order) BuyerID() string {
	if o.CustomerID != "" {
		return o.CustomerID
	}
	return o.UserID
}

// Order status constants
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusDelivered  = "delivered"
	OrderStatusCanceled   = "canceled"
	OrderStatusReturned   = "returned"
)

// Payment status constants
const (
	PaymentStatusPaid       = "paid"
	PaymentStatusSettlement = "settlement"
	PaymentStatusSuccess    = "success"
	PaymentStatusFailed     = "failed"
	PaymentStatusCanceled   = "canceled"
	PaymentStatusExpired    = "expired"
)
