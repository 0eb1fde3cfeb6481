package enrich

import (
	"commerce-lake/internal/domain"
)

// addOrderRevenueFeatures derives the order-specific revenue features:
//
//   - total_amount = quantity * price, when missing from the clean table
//   - revenue_category: tercile label on total_amount with the constant
//     "Standard" fallback on degenerate distributions
//   - avg_unit_price = total_amount / quantity and discount_indicator =
//     price < 0.9 * avg_unit_price, when both price and quantity exist
func addOrderRevenueFeatures(t *domain.Table) (*domain.Table, error) {
	out := t.Clone()

	hasPrice := out.HasColumn("price")
	hasQty := out.HasColumn("quantity")

	if !out.HasColumn("total_amount") && hasPrice && hasQty {
		for i := 0; i < out.Len(); i++ {
			row := out.Row(i)
			q, qok := domain.AsFloat(row["quantity"])
			p, pok := domain.AsFloat(row["price"])
			if qok && pok {
				row["total_amount"] = q * p
			}
		}
		out.AddColumns("total_amount")
	}

	if out.HasColumn("total_amount") {
		values := make([]float64, 0, out.Len())
		for i := 0; i < out.Len(); i++ {
			v := out.Row(i)["total_amount"]
			if v == nil {
				continue
			}
			f, ok := domain.AsFloat(v)
			if !ok {
				return nil, domain.ErrComputation("column \"total_amount\" row %d: expected numeric amount, got %T", i, v)
			}
			values = append(values, f)
		}
		edges, ok := quantileEdges(values, 3)
		for i := 0; i < out.Len(); i++ {
			row := out.Row(i)
			if !ok {
				row["revenue_category"] = fallbackLabel
				continue
			}
			if f, isNum := domain.AsFloat(row["total_amount"]); isNum {
				row["revenue_category"] = tercileLabels[bucketIndex(edges, f)]
			}
		}
		out.AddColumns("revenue_category")
	}

	if hasPrice && hasQty && out.HasColumn("total_amount") {
		for i := 0; i < out.Len(); i++ {
			row := out.Row(i)
			total, tok := domain.AsFloat(row["total_amount"])
			q, qok := domain.AsFloat(row["quantity"])
			p, pok := domain.AsFloat(row["price"])
			if !tok || !qok || !pok {
				continue
			}
			avg := 0.0
			if q != 0 {
				avg = total / q
			}
			row["avg_unit_price"] = avg
			row["discount_indicator"] = p < avg*0.9
		}
		out.AddColumns("avg_unit_price", "discount_indicator")
	}

	return out, nil
}
