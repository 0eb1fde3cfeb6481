package enrich

import (
	"commerce-lake/internal/domain"
)

type productAgg struct {
	orderCount int64
	totalQty   int64
	revenue    float64
	avgPrice   float64

	popularity  string
	performance string
}

// AddProductInsights computes per-product aggregates over the day's order
// table, assigns popularity/performance terciles (constant "Standard" when
// the day's distribution is too flat to cut), and joins the result back
// onto every order row by product_id. Row count is preserved.
func AddProductInsights(t *domain.Table) (*domain.Table, error) {
	if !t.HasColumn("product_id") {
		return t, nil
	}

	out := t.Clone()
	aggs := make(map[any]*productAgg)
	order := make([]any, 0)
	revSums := make(map[any]float64)
	priceSums := make(map[any]float64)
	priceCounts := make(map[any]int64)
	for i := 0; i < out.Len(); i++ {
		row := out.Row(i)
		id := row["product_id"]
		if id == nil {
			continue
		}
		key := domain.Key(id)
		a := aggs[key]
		if a == nil {
			a = &productAgg{}
			aggs[key] = a
			order = append(order, key)
		}
		a.orderCount++
		if qty, ok := domain.AsInt(row["quantity"]); ok {
			a.totalQty += qty
		}
		if amt, ok := domain.AsFloat(row["total_amount"]); ok {
			revSums[key] += amt
		} else if row["total_amount"] != nil {
			return nil, domain.ErrComputation("column \"total_amount\" row %d: expected numeric amount, got %T", i, row["total_amount"])
		}
		if p, ok := domain.AsFloat(row["price"]); ok {
			priceSums[key] += p
			priceCounts[key]++
		}
	}

	counts := make([]float64, 0, len(order))
	revenues := make([]float64, 0, len(order))
	for _, key := range order {
		a := aggs[key]
		a.revenue = round2(revSums[key])
		if priceCounts[key] > 0 {
			a.avgPrice = round2(priceSums[key] / float64(priceCounts[key]))
		}
		counts = append(counts, float64(a.orderCount))
		revenues = append(revenues, a.revenue)
	}

	countEdges, countOK := quantileEdges(counts, 3)
	revEdges, revOK := quantileEdges(revenues, 3)
	for _, key := range order {
		a := aggs[key]
		if countOK {
			a.popularity = tercileLabels[bucketIndex(countEdges, float64(a.orderCount))]
		} else {
			a.popularity = fallbackLabel
		}
		if revOK {
			a.performance = tercileLabels[bucketIndex(revEdges, a.revenue)]
		} else {
			a.performance = fallbackLabel
		}
	}

	for i := 0; i < out.Len(); i++ {
		row := out.Row(i)
		if row["product_id"] == nil {
			continue
		}
		a := aggs[domain.Key(row["product_id"])]
		row["product_order_count"] = a.orderCount
		row["product_total_qty"] = a.totalQty
		row["product_revenue"] = a.revenue
		row["product_avg_price"] = a.avgPrice
		row["product_popularity"] = a.popularity
		row["product_performance"] = a.performance
	}
	out.AddColumns("product_order_count", "product_total_qty", "product_revenue",
		"product_avg_price", "product_popularity", "product_performance")
	return out, nil
}
