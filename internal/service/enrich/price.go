package enrich

import (
	"commerce-lake/internal/domain"
)

// AddPriceCategories derives two independent categorical features from the
// named price column:
//
//   - price_quartile: equal-frequency quartile labels (Low, Mid-, Mid+,
//     High); when the distribution cannot form four distinct quantile bins
//     every row gets the constant "Standard" label instead of an error.
//   - price_category: a fixed band around mean ± 1 standard deviation
//     (Economic below, Premium above, Normal otherwise).
//
// A table without the column passes through unchanged.
func AddPriceCategories(t *domain.Table, priceCol string) (*domain.Table, error) {
	if !t.HasColumn(priceCol) {
		return t, nil
	}

	out := t.Clone()
	values := make([]float64, 0, out.Len())
	for i := 0; i < out.Len(); i++ {
		v := out.Row(i)[priceCol]
		if v == nil {
			continue
		}
		f, ok := domain.AsFloat(v)
		if !ok {
			return nil, domain.ErrComputation("column %q row %d: expected numeric price, got %T", priceCol, i, v)
		}
		values = append(values, f)
	}

	edges, ok := quantileEdges(values, 4)
	for i := 0; i < out.Len(); i++ {
		row := out.Row(i)
		if !ok {
			row["price_quartile"] = fallbackLabel
			continue
		}
		if f, isNum := domain.AsFloat(row[priceCol]); isNum {
			row["price_quartile"] = quartileLabels[bucketIndex(edges, f)]
		}
	}

	m := mean(values)
	sd, sdOK := stddev(values)
	for i := 0; i < out.Len(); i++ {
		row := out.Row(i)
		row["price_category"] = "Normal"
		if !sdOK {
			continue
		}
		f, isNum := domain.AsFloat(row[priceCol])
		if !isNum {
			continue
		}
		switch {
		case f < m-sd:
			row["price_category"] = "Economic"
		case f > m+sd:
			row["price_category"] = "Premium"
		}
	}

	out.AddColumns("price_quartile", "price_category")
	return out, nil
}
