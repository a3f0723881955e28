package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/cannedit/seller-api/internal/modules/seller/models"
)

// TimeISO renders instants the way report consumers expect them,
// millisecond precision with zone offset.
const TimeISO = "2006-01-02T15:04:05.000Z07:00"

// onTimeThreshold is the fixed heuristic for a carrier's on-time rate:
// delivered within 3 days of shipment creation.
const onTimeThreshold = 72 * time.Hour

// ComputeReport reduces the datasets into a full analytics report for the
// given period. It is the single implementation behind both the JSON route
// and every exporter. The product catalog is used unfiltered; everything
// else is narrowed to the period first.
func ComputeReport(store models.Store, ds Datasets, p Period, generatedAt time.Time) *Report {
	orders := ordersInPeriod(ds.Orders, p)
	shipments := shipmentsInPeriod(ds.Shipments, p)
	reviews := reviewsInPeriod(ds.Reviews, p)
	redemptions := redemptionsInPeriod(ds.Redemptions, p)

	return &Report{
		StoreInfo: StoreInfo{StoreID: store.ID, StoreName: store.Name},
		Period: ReportPeriod{
			Period: p.Key,
			Start:  p.Start.Format(TimeISO),
			End:    p.End.Format(TimeISO),
		},
		GeneratedAt:         generatedAt.Format(TimeISO),
		SalesOverview:       salesOverview(orders, ds.Products),
		SalesTrend:          salesTrend(orders, generatedAt.Location()),
		TopProducts:         topProducts(orders, ds.Products),
		CategoryPerformance: categoryPerformance(ds.Products),
		PaymentSummary:      paymentSummary(orders),
		ShippingSummary:     SummarizeShipments(shipments),
		CustomerFeedback:    customerFeedback(reviews, ds.Reviews, p),
		FinancialReport:     financialReport(orders, redemptions, p),
	}
}

// anyOrderHasItems selects between the two mutually exclusive sold-count
// strategies: items-based when at least one in-period order carries line
// items, catalog-based otherwise.
func anyOrderHasItems(orders []models.Order) bool {
	for _, o := range orders {
		if len(o.Items) > 0 {
			return true
		}
	}
	return false
}

func salesOverview(orders []models.Order, catalog []models.Product) SalesOverview {
	ov := SalesOverview{TotalOrders: len(orders)}

	buyers := map[string]struct{}{}
	for _, o := range orders {
		switch o.Status {
		case models.OrderStatusCompleted, models.OrderStatusDelivered:
			ov.CompletedOrders++
		case models.OrderStatusCanceled:
			ov.CanceledOrders++
		case models.OrderStatusReturned:
			ov.ReturnedOrders++
		}
		ov.TotalRevenue += o.Total
		if id := o.BuyerID(); id != "" {
			buyers[id] = struct{}{}
		}
	}
	ov.TotalBuyers = len(buyers)

	if ov.TotalOrders > 0 {
		ov.AverageOrderValue = ov.TotalRevenue / float64(ov.TotalOrders)
	}

	if anyOrderHasItems(orders) {
		for _, o := range orders {
			for _, it := range o.Items {
				ov.TotalProductsSold += it.UnitCount()
			}
		}
	} else {
		for _, prod := range catalog {
			ov.TotalProductsSold += prod.SoldCount
		}
	}

	return ov
}

// salesTrend buckets orders by calendar day in loc, the clock's location.
// Stored timestamps decode in UTC, so formatting them as-is would shift
// orders near midnight into a neighboring bucket on non-UTC deployments.
func salesTrend(orders []models.Order, loc *time.Location) []TrendPoint {
	buckets := map[string]*TrendPoint{}
	for _, o := range orders {
		day := o.PlacedAt().In(loc).Format("2006-01-02")
		b, ok := buckets[day]
		if !ok {
			b = &TrendPoint{Date: day}
			buckets[day] = b
		}
		b.Orders++
		b.Revenue += o.Total
	}

	trend := make([]TrendPoint, 0, len(buckets))
	for _, b := range buckets {
		trend = append(trend, *b)
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })
	return trend
}

func topProducts(orders []models.Order, catalog []models.Product) []TopProduct {
	byID := make(map[string]models.Product, len(catalog))
	for _, prod := range catalog {
		byID[prod.ID] = prod
	}

	var rows []TopProduct

	if anyOrderHasItems(orders) {
		grouped := map[string]*TopProduct{}
		for _, o := range orders {
			for _, it := range o.Items {
				key := it.ProductKey()
				if key == "" {
					continue
				}
				row, ok := grouped[key]
				if !ok {
					row = &TopProduct{ProductID: key, Name: it.Name}
					grouped[key] = row
				}
				row.TotalSold += it.UnitCount()
				row.Revenue += it.Price * float64(it.UnitCount())
			}
		}
		for _, row := range grouped {
			if prod, ok := byID[row.ProductID]; ok {
				row.AverageRating = prod.RatingAvg
				row.StockRemaining = prod.Stock
				if row.Name == "" {
					row.Name = prod.DisplayName()
				}
			}
			rows = append(rows, *row)
		}
	} else {
		for _, prod := range catalog {
			rows = append(rows, TopProduct{
				ProductID:      prod.ID,
				Name:           prod.DisplayName(),
				TotalSold:      prod.SoldCount,
				Revenue:        prod.Price * float64(prod.SoldCount),
				AverageRating:  prod.RatingAvg,
				StockRemaining: prod.Stock,
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].TotalSold > rows[j].TotalSold })
	if len(rows) > 10 {
		rows = rows[:10]
	}
	return rows
}

func categoryPerformance(catalog []models.Product) []CategoryPerformance {
	buckets := map[string]*CategoryPerformance{}
	for _, prod := range catalog {
		categories := prod.Categories
		if len(categories) == 0 {
			categories = []string{"Uncategorized"}
		}
		for _, cat := range categories {
			b, ok := buckets[cat]
			if !ok {
				b = &CategoryPerformance{Category: cat}
				buckets[cat] = b
			}
			b.ProductsSold += prod.SoldCount
			b.Revenue += prod.Price * float64(prod.SoldCount)
		}
	}

	rows := make([]CategoryPerformance, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, *b)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Revenue > rows[j].Revenue })
	if len(rows) > 10 {
		rows = rows[:10]
	}
	return rows
}

func paymentSummary(orders []models.Order) PaymentSummary {
	sum := PaymentSummary{TotalTransactions: len(orders)}

	methods := map[string]*PaymentMethodSummary{}
	for _, o := range orders {
		method := o.PaymentMethod
		if method == "" {
			method = "Unknown"
		}
		m, ok := methods[method]
		if !ok {
			m = &PaymentMethodSummary{Method: method}
			methods[method] = m
		}
		m.Transactions++
		m.TotalAmount += o.Total

		// Independent tallies: an order may count toward neither.
		switch o.PaymentStatus {
		case models.PaymentStatusPaid, models.PaymentStatusSettlement, models.PaymentStatusSuccess:
			sum.SuccessfulPayments++
		}
		switch o.PaymentStatus {
		case models.PaymentStatusFailed, models.PaymentStatusCanceled, models.PaymentStatusExpired:
			sum.FailedPayments++
		}
	}

	sum.Methods = make([]PaymentMethodSummary, 0, len(methods))
	for _, m := range methods {
		sum.Methods = append(sum.Methods, *m)
	}
	sort.Slice(sum.Methods, func(i, j int) bool {
		return sum.Methods[i].TotalAmount > sum.Methods[j].TotalAmount
	})
	return sum
}

// SummarizeShipments reduces shipments into status counts, average delivery
// time and a per-carrier breakdown. Exported because the shipments endpoint
// reuses the same heuristics outside a report.
func SummarizeShipments(shipments []models.Shipment) ShippingSummary {
	sum := ShippingSummary{TotalShipments: len(shipments)}

	type carrierAcc struct {
		shipments int
		timed     int
		onTime    int
	}
	carriers := map[string]*carrierAcc{}

	var deliveryDays float64
	var timed int

	for _, s := range shipments {
		switch s.Status {
		case models.ShipmentStatusDelivered:
			sum.Delivered++
		case models.ShipmentStatusInTransit, models.ShipmentStatusShipped, models.ShipmentStatusProcessing:
			sum.InTransit++
		case models.ShipmentStatusReturned:
			sum.Returned++
		}

		name := s.CarrierName()
		c, ok := carriers[name]
		if !ok {
			c = &carrierAcc{}
			carriers[name] = c
		}
		c.shipments++

		if s.DeliveredAt == nil || s.CreatedAt == nil {
			continue
		}
		// Both timestamps present: the shipment counts toward its
		// carrier's on-time denominator. Only a positive duration feeds
		// the delivery-time average and the on-time numerator.
		c.timed++
		dur := s.DeliveredAt.Sub(*s.CreatedAt)
		if dur <= 0 {
			continue
		}
		timed++
		deliveryDays += dur.Hours() / 24
		if dur <= onTimeThreshold {
			c.onTime++
		}
	}

	if timed > 0 {
		sum.AverageDeliveryDays = round1(deliveryDays / float64(timed))
	}

	sum.TopCarriers = make([]CarrierStats, 0, len(carriers))
	for name, c := range carriers {
		stats := CarrierStats{Carrier: name, Shipments: c.shipments}
		if c.timed > 0 {
			stats.OnTimeRate = round1(100 * float64(c.onTime) / float64(c.timed))
		}
		sum.TopCarriers = append(sum.TopCarriers, stats)
	}
	sort.Slice(sum.TopCarriers, func(i, j int) bool {
		return sum.TopCarriers[i].Shipments > sum.TopCarriers[j].Shipments
	})
	if len(sum.TopCarriers) > 5 {
		sum.TopCarriers = sum.TopCarriers[:5]
	}
	return sum
}

// customerFeedback takes both the in-period slice and the full newest-first
// review list: recent_reviews re-filters the full list so its ordering is
// the fetch ordering, capped at 5.
func customerFeedback(inPeriod, all []models.Review, p Period) CustomerFeedback {
	fb := CustomerFeedback{TotalReviews: len(inPeriod)}

	var ratingSum float64
	for _, r := range inPeriod {
		ratingSum += r.Rating
		switch {
		case r.Rating >= 4:
			fb.Positive++
		case r.Rating == 3:
			fb.Neutral++
		case r.Rating <= 2:
			fb.Negative++
		}
	}
	if fb.TotalReviews > 0 {
		fb.AverageRating = round1(ratingSum / float64(fb.TotalReviews))
	}

	fb.RecentReviews = []RecentReview{}
	for _, r := range all {
		if r.CreatedAt == nil || !p.Contains(*r.CreatedAt) {
			continue
		}
		fb.RecentReviews = append(fb.RecentReviews, RecentReview{
			ReviewID:    r.ID,
			ProductName: r.ProductName,
			Rating:      r.Rating,
			Title:       r.Title,
			Body:        r.Body,
			CreatedAt:   r.CreatedAt.Format(TimeISO),
		})
		if len(fb.RecentReviews) == 5 {
			break
		}
	}
	return fb
}

func financialReport(orders []models.Order, redemptions []models.CouponRedemption, p Period) FinancialReport {
	fin := FinancialReport{LastPayoutDate: p.End.Format(TimeISO)}

	for _, o := range orders {
		// Inclusive OR: a paid-but-pending order counts, and so does a
		// delivered order whose payment record never settled.
		paid := o.PaymentStatus == models.PaymentStatusPaid ||
			o.PaymentStatus == models.PaymentStatusSettlement ||
			o.PaymentStatus == models.PaymentStatusSuccess
		fulfilled := o.Status == models.OrderStatusCompleted ||
			o.Status == models.OrderStatusDelivered
		if paid || fulfilled {
			fin.GrossRevenue += o.Total
		}
	}
	for _, c := range redemptions {
		fin.TotalDiscounts += c.DiscountAmount
	}

	fin.NetRevenue = fin.GrossRevenue - fin.TotalDiscounts - fin.TotalFees
	fin.EstimatedPayout = fin.NetRevenue
	return fin
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
