package enrich

import (
	"commerce-lake/internal/domain"
)

// Fixed quantity bucket boundaries: (0,1] Unit, (1,3] Small, (3,5] Medium,
// (5,inf) Bulk.
var quantityLabels = []string{"Unit", "Small", "Medium", "Bulk"}

const bulkThreshold = 5

// AddQuantityMetrics buckets the quantity column into fixed bands and flags
// bulk orders (quantity >= 5). A table without the column passes through
// unchanged.
func AddQuantityMetrics(t *domain.Table) (*domain.Table, error) {
	if !t.HasColumn("quantity") {
		return t, nil
	}

	out := t.Clone()
	for i := 0; i < out.Len(); i++ {
		row := out.Row(i)
		v := row["quantity"]
		if v == nil {
			continue
		}
		q, ok := domain.AsFloat(v)
		if !ok {
			return nil, domain.ErrComputation("column \"quantity\" row %d: expected numeric quantity, got %T", i, v)
		}
		switch {
		case q <= 0:
			// Violates the base invariant; upstream cleaning filters these.
		case q <= 1:
			row["quantity_category"] = quantityLabels[0]
		case q <= 3:
			row["quantity_category"] = quantityLabels[1]
		case q <= 5:
			row["quantity_category"] = quantityLabels[2]
		default:
			row["quantity_category"] = quantityLabels[3]
		}
		row["is_bulk_order"] = q >= bulkThreshold
	}
	out.AddColumns("quantity_category", "is_bulk_order")
	return out, nil
}
