package analytics

import (
	"time"

	"github.com/cannedit/seller-api/internal/modules/seller/models"
)

// filterInPeriod keeps records whose resolved timestamp is present and falls
// inside the period. Records with no timestamp are never in-period.
func filterInPeriod[T any](records []T, at func(T) *time.Time, p Period) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		ts := at(r)
		if ts == nil {
			continue
		}
		if p.Contains(*ts) {
			out = append(out, r)
		}
	}
	return out
}

func ordersInPeriod(orders []models.Order, p Period) []models.Order {
	return filterInPeriod(orders, models.Order.PlacedAt, p)
}

func shipmentsInPeriod(shipments []models.Shipment, p Period) []models.Shipment {
	return filterInPeriod(shipments, func(s models.Shipment) *time.Time { return s.CreatedAt }, p)
}

func reviewsInPeriod(reviews []models.Review, p Period) []models.Review {
	return filterInPeriod(reviews, func(r models.Review) *time.Time { return r.CreatedAt }, p)
}

func redemptionsInPeriod(redemptions []models.CouponRedemption, p Period) []models.CouponRedemption {
	return filterInPeriod(redemptions, func(c models.CouponRedemption) *time.Time { return c.RedeemedAt }, p)
}
