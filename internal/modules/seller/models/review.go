package models

import "time"

// Review is a record in the `reviews` collection. Ratings run 0–5.
type Review struct {
	ID          string     `bson:"_id" json:"id"`
	StoreID     string     `bson:"store_id" json:"store_id"`
	ProductID   string     `bson:"product_id,omitempty" json:"product_id,omitempty"`
	ProductName string     `bson:"product_name,omitempty" json:"product_name,omitempty"`
	Rating      float64    `bson:"rating,omitempty" json:"rating,omitempty"`
	Title       string     `bson:"title,omitempty" json:"title,omitempty"`
	Body        string     `bson:"body,omitempty" json:"body,omitempty"`
	CreatedAt   *time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// CouponRedemption is a record in the `coupon_redemptions` collection.
type CouponRedemption struct {
	ID             string     `bson:"_id" json:"id"`
	StoreID        string     `bson:"store_id" json:"store_id"`
	CouponCode     string     `bson:"coupon_code,omitempty" json:"coupon_code,omitempty"`
	DiscountAmount float64    `bson:"discount_amount,omitempty" json:"discount_amount,omitempty"`
	RedeemedAt     *time.Time `bson:"redeemed_at,omitempty" json:"redeemed_at,omitempty"`
}
