package enrich

import (
	"commerce-lake/internal/domain"
)

// Customer segment thresholds: total_spent above the day's 80th percentile
// is Premium, below the 20th is Economic.
const (
	segmentHighPct = 0.8
	segmentLowPct  = 0.2
)

type customerAgg struct {
	orderCount int64
	totalSpent float64
	avgOrder   float64
	totalItems int64
}

// segmentFor evaluates the prioritized segment rules and returns the label
// of the first match.
func segmentFor(totalSpent, p20, p80 float64) string {
	switch {
	case totalSpent > p80:
		return "Premium"
	case totalSpent < p20:
		return "Economic"
	default:
		return "Standard"
	}
}

// customerTypeFor evaluates the prioritized type rules: a single-order
// customer is always New regardless of spend.
func customerTypeFor(orderCount int64) string {
	switch {
	case orderCount == 1:
		return "New"
	case orderCount <= 2:
		return "Occasional"
	default:
		return "Loyal"
	}
}

// AddCustomerInsights computes per-customer aggregates over the day's order
// table, classifies each customer, and joins the result back onto every
// order row. The join is a left join on customer_id, so the row count never
// changes. A table without customer_id passes through unchanged.
func AddCustomerInsights(t *domain.Table) (*domain.Table, error) {
	if !t.HasColumn("customer_id") {
		return t, nil
	}

	out := t.Clone()
	aggs := make(map[any]*customerAgg)
	sums := make(map[any]float64) // raw spend sums, for the mean
	for i := 0; i < out.Len(); i++ {
		row := out.Row(i)
		id := row["customer_id"]
		if id == nil {
			continue
		}
		key := domain.Key(id)
		a := aggs[key]
		if a == nil {
			a = &customerAgg{}
			aggs[key] = a
		}
		a.orderCount++
		if amt, ok := domain.AsFloat(row["total_amount"]); ok {
			sums[key] += amt
		} else if row["total_amount"] != nil {
			return nil, domain.ErrComputation("column \"total_amount\" row %d: expected numeric amount, got %T", i, row["total_amount"])
		}
		if qty, ok := domain.AsInt(row["quantity"]); ok {
			a.totalItems += qty
		}
	}

	spends := make([]float64, 0, len(aggs))
	for key, a := range aggs {
		a.totalSpent = round2(sums[key])
		a.avgOrder = round2(sums[key] / float64(a.orderCount))
		spends = append(spends, a.totalSpent)
	}
	p80 := percentile(spends, segmentHighPct)
	p20 := percentile(spends, segmentLowPct)

	for i := 0; i < out.Len(); i++ {
		row := out.Row(i)
		if row["customer_id"] == nil {
			continue
		}
		a := aggs[domain.Key(row["customer_id"])]
		row["order_count"] = a.orderCount
		row["total_spent"] = a.totalSpent
		row["avg_order_value"] = a.avgOrder
		row["total_items"] = a.totalItems
		row["customer_segment"] = segmentFor(a.totalSpent, p20, p80)
		row["customer_type"] = customerTypeFor(a.orderCount)
	}
	out.AddColumns("order_count", "total_spent", "avg_order_value", "total_items",
		"customer_segment", "customer_type")
	return out, nil
}
