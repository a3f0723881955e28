package models

import "time"

// Shipment is a record in the `shipments` collection.
type Shipment struct {
	ID             string     `bson:"_id" json:"id"`
	StoreID        string     `bson:"store_id" json:"store_id"`
	OrderID        string     `bson:"order_id,omitempty" json:"order_id,omitempty"`
	TrackingNumber string     `bson:"tracking_number,omitempty" json:"tracking_number,omitempty"`
	Carrier        string     `bson:"carrier,omitempty" json:"carrier,omitempty"`
	Status         string     `bson:"status,omitempty" json:"status,omitempty"`
	Cost           float64    `bson:"cost,omitempty" json:"cost,omitempty"`
	CreatedAt      *time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	DeliveredAt    *time.Time `bson:"delivered_at,omitempty" json:"delivered_at,omitempty"`
}

// Shipment status constants
const (
	ShipmentStatusProcessing = "processing"
	ShipmentStatusShipped    = "shipped"
	ShipmentStatusInTransit  = "in_transit"
	ShipmentStatusDelivered  = "delivered"
	ShipmentStatusReturned   = "returned"
)

// CarrierName resolves the carrier label, defaulting to "Lainnya" when the
// document carries none.
func (s Shipment) CarrierName() string {
	if s.Carrier != "" {
		return s.Carrier
	}
	return "Lainnya"
}
