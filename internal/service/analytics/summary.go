package analytics

import (
	"context"
	"time"

	"commerce-lake/internal/domain"
)

// DailySummary condenses one day's enriched order table into a single
// record. The boolean result is false when no enriched partition exists for
// the date, which is a "no data" outcome rather than an error.
func (s *Service) DailySummary(ctx context.Context, day time.Time) (domain.DailySummary, bool, error) {
	t, err := s.store.Read(ctx, domain.EntityOrders, day)
	if isNotFound(err) {
		s.logger.Info("no enriched orders for date", "date", day.Format("2006-01-02"))
		return domain.DailySummary{}, false, nil
	}
	if err != nil {
		return domain.DailySummary{}, false, err
	}

	summary := domain.DailySummary{Date: midnight(day), TotalOrders: t.Len()}

	var revenue float64
	var weekendOrders, bulkOrders int
	customers := make(map[any]struct{})
	products := make(map[any]struct{})
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		if amt, ok := domain.AsFloat(row["total_amount"]); ok {
			revenue += amt
		}
		if row["customer_id"] != nil {
			customers[domain.Key(row["customer_id"])] = struct{}{}
		}
		if row["product_id"] != nil {
			products[domain.Key(row["product_id"])] = struct{}{}
		}
		if b, ok := domain.AsBool(row["is_weekend"]); ok && b {
			weekendOrders++
		}
		if b, ok := domain.AsBool(row["is_bulk_order"]); ok && b {
			bulkOrders++
		}
	}

	summary.TotalRevenue = round2(revenue)
	summary.UniqueCustomers = len(customers)
	summary.UniqueProducts = len(products)
	if t.Len() > 0 {
		n := float64(t.Len())
		summary.AvgOrderValue = round2(revenue / n)
		summary.WeekendOrdersPct = round2(float64(weekendOrders) / n * 100)
		summary.BulkOrdersPct = round2(float64(bulkOrders) / n * 100)
	}
	return summary, true, nil
}

// WriteDailySummary builds the daily summary and persists it as a one-row
// partition under the summaries pseudo-entity. The boolean result mirrors
// DailySummary.
func (s *Service) WriteDailySummary(ctx context.Context, day time.Time) (domain.DailySummary, bool, error) {
	summary, found, err := s.DailySummary(ctx, day)
	if err != nil || !found {
		return summary, found, err
	}

	t := domain.NewTable(
		"date", "total_orders", "total_revenue", "avg_order_value",
		"unique_customers", "unique_products", "weekend_orders_pct", "bulk_orders_pct",
	)
	t.AppendRow(domain.Row{
		"date":               summary.Date,
		"total_orders":       int64(summary.TotalOrders),
		"total_revenue":      summary.TotalRevenue,
		"avg_order_value":    summary.AvgOrderValue,
		"unique_customers":   int64(summary.UniqueCustomers),
		"unique_products":    int64(summary.UniqueProducts),
		"weekend_orders_pct": summary.WeekendOrdersPct,
		"bulk_orders_pct":    summary.BulkOrdersPct,
	})
	if err := s.store.Write(ctx, domain.EntitySummaries, day, t); err != nil {
		return summary, true, err
	}
	return summary, true, nil
}
