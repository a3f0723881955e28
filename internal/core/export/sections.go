package export

import (
	"math"
	"strconv"

	"github.com/cannedit/seller-api/internal/core/analytics"
)

// section is one tabular slice of the report, shared by the CSV and
// workbook exporters. Sheet names are the underscored variants.
type section struct {
	Title   string
	Sheet   string
	Headers []string
	Rows    [][]interface{}
}

// sections flattens the report into its twelve export sections.
// average_order_value and average_rating are the only two values rounded
// (two decimals); everything else is rendered as-is.
func sections(r *analytics.Report) []section {
	ov := r.SalesOverview
	pay := r.PaymentSummary
	ship := r.ShippingSummary
	fb := r.CustomerFeedback
	fin := r.FinancialReport

	trend := make([][]interface{}, 0, len(r.SalesTrend))
	for _, t := range r.SalesTrend {
		trend = append(trend, []interface{}{t.Date, t.Orders, t.Revenue})
	}

	products := make([][]interface{}, 0, len(r.TopProducts))
	for _, p := range r.TopProducts {
		products = append(products, []interface{}{
			p.ProductID, p.Name, p.TotalSold, p.Revenue, p.AverageRating, p.StockRemaining,
		})
	}

	categories := make([][]interface{}, 0, len(r.CategoryPerformance))
	for _, c := range r.CategoryPerformance {
		categories = append(categories, []interface{}{c.Category, c.ProductsSold, c.Revenue})
	}

	methods := make([][]interface{}, 0, len(pay.Methods))
	for _, m := range pay.Methods {
		methods = append(methods, []interface{}{m.Method, m.Transactions, m.TotalAmount})
	}

	carriers := make([][]interface{}, 0, len(ship.TopCarriers))
	for _, c := range ship.TopCarriers {
		carriers = append(carriers, []interface{}{c.Carrier, c.Shipments, c.OnTimeRate})
	}

	reviews := make([][]interface{}, 0, len(fb.RecentReviews))
	for _, rv := range fb.RecentReviews {
		reviews = append(reviews, []interface{}{
			rv.ReviewID, rv.ProductName, rv.Rating, rv.Title, rv.Body, rv.CreatedAt,
		})
	}

	return []section{
		{
			Title: "Report", Sheet: "Meta",
			Headers: []string{"Field", "Value"},
			Rows: [][]interface{}{
				{"Store ID", r.StoreInfo.StoreID},
				{"Store Name", r.StoreInfo.StoreName},
				{"Period", r.Period.Period},
				{"Start", r.Period.Start},
				{"End", r.Period.End},
				{"Generated At", r.GeneratedAt},
			},
		},
		{
			Title: "Sales Overview", Sheet: "Sales_Overview",
			Headers: []string{
				"Total Orders", "Completed Orders", "Canceled Orders", "Returned Orders",
				"Total Revenue", "Average Order Value", "Total Products Sold", "Total Buyers",
			},
			Rows: [][]interface{}{{
				ov.TotalOrders, ov.CompletedOrders, ov.CanceledOrders, ov.ReturnedOrders,
				ov.TotalRevenue, round2(ov.AverageOrderValue), ov.TotalProductsSold, ov.TotalBuyers,
			}},
		},
		{
			Title: "Sales Trend", Sheet: "Sales_Trend",
			Headers: []string{"Date", "Orders", "Revenue"},
			Rows:    trend,
		},
		{
			Title: "Top Products", Sheet: "Top_Products",
			Headers: []string{"Product ID", "Name", "Total Sold", "Revenue", "Average Rating", "Stock Remaining"},
			Rows:    products,
		},
		{
			Title: "Category Performance", Sheet: "Categories",
			Headers: []string{"Category", "Products Sold", "Revenue"},
			Rows:    categories,
		},
		{
			Title: "Payment Summary", Sheet: "Payment_Summary",
			Headers: []string{"Total Transactions", "Successful Payments", "Failed Payments"},
			Rows: [][]interface{}{{
				pay.TotalTransactions, pay.SuccessfulPayments, pay.FailedPayments,
			}},
		},
		{
			Title: "Payment Methods", Sheet: "Payment_Methods",
			Headers: []string{"Method", "Transactions", "Total Amount"},
			Rows:    methods,
		},
		{
			Title: "Shipping Summary", Sheet: "Shipping_Summary",
			Headers: []string{"Total Shipments", "Delivered", "In Transit", "Returned", "Average Delivery Days"},
			Rows: [][]interface{}{{
				ship.TotalShipments, ship.Delivered, ship.InTransit, ship.Returned, ship.AverageDeliveryDays,
			}},
		},
		{
			Title: "Top Carriers", Sheet: "Top_Carriers",
			Headers: []string{"Carrier", "Shipments", "On Time Rate (%)"},
			Rows:    carriers,
		},
		{
			Title: "Customer Feedback", Sheet: "Feedback_Summary",
			Headers: []string{"Total Reviews", "Average Rating", "Positive", "Neutral", "Negative"},
			Rows: [][]interface{}{{
				fb.TotalReviews, round2(fb.AverageRating), fb.Positive, fb.Neutral, fb.Negative,
			}},
		},
		{
			Title: "Recent Reviews", Sheet: "Recent_Reviews",
			Headers: []string{"Review ID", "Product", "Rating", "Title", "Body", "Created At"},
			Rows:    reviews,
		},
		{
			Title: "Financial Report", Sheet: "Financial_Report",
			Headers: []string{"Gross Revenue", "Total Discounts", "Total Fees", "Net Revenue", "Estimated Payout", "Last Payout Date"},
			Rows: [][]interface{}{{
				fin.GrossRevenue, fin.TotalDiscounts, fin.TotalFees,
				fin.NetRevenue, fin.EstimatedPayout, fin.LastPayoutDate,
			}},
		},
	}
}

// formatValue renders a cell as plain text, numbers without padding zeros.
func formatValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return ""
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
