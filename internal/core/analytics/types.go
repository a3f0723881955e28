package analytics

import "github.com/cannedit/seller-api/internal/modules/seller/models"

// Datasets holds the five store-scoped collections a report is computed
// from. Reviews are expected newest-first, as fetched.
type Datasets struct {
	Orders      []models.Order
	Products    []models.Product
	Shipments   []models.Shipment
	Reviews     []models.Review
	Redemptions []models.CouponRedemption
}

// StoreInfo identifies the store a report belongs to.
type StoreInfo struct {
	StoreID   string `json:"store_id"`
	StoreName string `json:"store_name"`
}

// ReportPeriod is the resolved range echoed back in the report.
type ReportPeriod struct {
	Period string `json:"period"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// SalesOverview summarizes in-period order activity.
type SalesOverview struct {
	TotalOrders       int     `json:"total_orders"`
	CompletedOrders   int     `json:"completed_orders"`
	CanceledOrders    int     `json:"canceled_orders"`
	ReturnedOrders    int     `json:"returned_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
	TotalProductsSold int     `json:"total_products_sold"`
	TotalBuyers       int     `json:"total_buyers"`
}

// TrendPoint is one calendar-day bucket of the sales trend.
type TrendPoint struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// TopProduct is one row of the top-products ranking.
type TopProduct struct {
	ProductID      string  `json:"product_id"`
	Name           string  `json:"name"`
	TotalSold      int     `json:"total_sold"`
	Revenue        float64 `json:"revenue"`
	AverageRating  float64 `json:"average_rating"`
	StockRemaining int     `json:"stock_remaining"`
}

// CategoryPerformance attributes catalog sales to one category bucket.
type CategoryPerformance struct {
	Category     string  `json:"category"`
	ProductsSold int     `json:"products_sold"`
	Revenue      float64 `json:"revenue"`
}

// PaymentMethodSummary is one payment-method group.
type PaymentMethodSummary struct {
	Method       string  `json:"method"`
	Transactions int     `json:"transactions"`
	TotalAmount  float64 `json:"total_amount"`
}

// PaymentSummary summarizes in-period payments. Successful and failed
// counts are independent set-membership tallies, not a partition of
// total_transactions.
type PaymentSummary struct {
	TotalTransactions  int                    `json:"total_transactions"`
	SuccessfulPayments int                    `json:"successful_payments"`
	FailedPayments     int                    `json:"failed_payments"`
	Methods            []PaymentMethodSummary `json:"methods"`
}

// CarrierStats is one carrier group of the shipping summary.
type CarrierStats struct {
	Carrier    string  `json:"carrier"`
	Shipments  int     `json:"shipments"`
	OnTimeRate float64 `json:"on_time_rate"`
}

// ShippingSummary summarizes shipments by status and carrier.
type ShippingSummary struct {
	TotalShipments      int            `json:"total_shipments"`
	Delivered           int            `json:"delivered"`
	InTransit           int            `json:"in_transit"`
	Returned            int            `json:"returned"`
	AverageDeliveryDays float64        `json:"average_delivery_days"`
	TopCarriers         []CarrierStats `json:"top_carriers"`
}

// RecentReview is a projected review row for the feedback section.
type RecentReview struct {
	ReviewID    string  `json:"review_id"`
	ProductName string  `json:"product_name"`
	Rating      float64 `json:"rating"`
	Title       string  `json:"title"`
	Body        string  `json:"body"`
	CreatedAt   string  `json:"created_at"`
}

// CustomerFeedback summarizes in-period reviews.
type CustomerFeedback struct {
	TotalReviews  int            `json:"total_reviews"`
	AverageRating float64        `json:"average_rating"`
	Positive      int            `json:"positive"`
	Neutral       int            `json:"neutral"`
	Negative      int            `json:"negative"`
	RecentReviews []RecentReview `json:"recent_reviews"`
}

// FinancialReport derives payout figures from in-period orders and coupon
// redemptions. Fees are not tracked and payout is 1:1 with net revenue.
type FinancialReport struct {
	GrossRevenue    float64 `json:"gross_revenue"`
	TotalDiscounts  float64 `json:"total_discounts"`
	TotalFees       float64 `json:"total_fees"`
	NetRevenue      float64 `json:"net_revenue"`
	EstimatedPayout float64 `json:"estimated_payout"`
	LastPayoutDate  string  `json:"last_payout_date"`
}

// Report is the assembled analytics report, rebuilt per request.
type Report struct {
	StoreInfo           StoreInfo             `json:"store_info"`
	Period              ReportPeriod          `json:"period"`
	GeneratedAt         string                `json:"generated_at"`
	SalesOverview       SalesOverview         `json:"sales_overview"`
	SalesTrend          []TrendPoint          `json:"sales_trend"`
	TopProducts         []TopProduct          `json:"top_products"`
	CategoryPerformance []CategoryPerformance `json:"category_performance"`
	PaymentSummary      PaymentSummary        `json:"payment_summary"`
	ShippingSummary     ShippingSummary       `json:"shipping_summary"`
	CustomerFeedback    CustomerFeedback      `json:"customer_feedback"`
	FinancialReport     FinancialReport       `json:"financial_report"`
	ActivityLog         []models.Activity     `json:"activity_log"`
}
