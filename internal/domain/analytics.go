package domain

import "time"

// StockLevel is the per-product result of the daily stock depletion report.
type StockLevel struct {
	ProductID int64 `json:"product_id"`
	Initial   int64 `json:"initial_stock"`
	Sold      int64 `json:"quantity_sold"`
	Remaining int64 `json:"remaining_stock"`
}

// NewCustomerDay is one day's entry in the new-customer report.
type NewCustomerDay struct {
	Date         time.Time `json:"date"`
	NewCustomers int       `json:"new_customers"`
	Revenue      float64   `json:"new_customer_revenue"`
}

// NewCustomerReport covers an inclusive date range. The per-day entries are
// strictly chronological; a customer is counted on the first day it appears
// within the range and never again.
type NewCustomerReport struct {
	Start             time.Time        `json:"start"`
	End               time.Time        `json:"end"`
	Days              []NewCustomerDay `json:"days"`
	TotalNewCustomers int              `json:"total_new_customers"`
	TotalRevenue      float64          `json:"total_new_customer_revenue"`
}

// DayRevenue is one calendar day's contribution to the monthly rollup.
type DayRevenue struct {
	Day        int     `json:"day"`
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"order_count"`
}

// MonthlyRevenue aggregates revenue over every calendar day of one month.
// Days without an order partition contribute zero revenue and zero orders.
type MonthlyRevenue struct {
	Year             int          `json:"year"`
	Month            int          `json:"month"`
	Days             []DayRevenue `json:"days"`
	TotalRevenue     float64      `json:"total_revenue"`
	TotalOrders      int          `json:"total_orders"`
	AvgRevenuePerDay float64      `json:"avg_revenue_per_day"`
	AvgBasket        float64      `json:"avg_basket"`
	BestDay          DayRevenue   `json:"best_day"`
	WorstDay         DayRevenue   `json:"worst_day"`
}

// DailySummary condenses one day's enriched order table into a single record.
type DailySummary struct {
	Date             time.Time `json:"date"`
	TotalOrders      int       `json:"total_orders"`
	TotalRevenue     float64   `json:"total_revenue"`
	AvgOrderValue    float64   `json:"avg_order_value"`
	UniqueCustomers  int       `json:"unique_customers"`
	UniqueProducts   int       `json:"unique_products"`
	WeekendOrdersPct float64   `json:"weekend_orders_pct"`
	BulkOrdersPct    float64   `json:"bulk_orders_pct"`
}
