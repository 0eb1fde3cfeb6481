package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commerce-lake/internal/domain"
)

func priceTable(prices ...float64) *domain.Table {
	t := domain.NewTable("price")
	for _, p := range prices {
		t.AppendRow(domain.Row{"price": p})
	}
	return t
}

func TestAddPriceCategoriesQuartiles(t *testing.T) {
	out, err := AddPriceCategories(priceTable(1, 2, 3, 4, 5, 6, 7, 8), "price")
	require.NoError(t, err)

	assert.Equal(t, "Low", out.Row(0)["price_quartile"])
	assert.Equal(t, "High", out.Row(7)["price_quartile"])

	// Every quartile label appears over an evenly spread distribution.
	seen := make(map[any]bool)
	for i := 0; i < out.Len(); i++ {
		seen[out.Row(i)["price_quartile"]] = true
	}
	for _, label := range quartileLabels {
		assert.True(t, seen[label], "missing quartile %s", label)
	}
}

func TestAddPriceCategoriesDegenerateDistribution(t *testing.T) {
	out, err := AddPriceCategories(priceTable(10, 10, 10, 10), "price")
	require.NoError(t, err)

	for i := 0; i < out.Len(); i++ {
		assert.Equal(t, "Standard", out.Row(i)["price_quartile"], "row %d", i)
		assert.Equal(t, "Normal", out.Row(i)["price_category"], "row %d", i)
	}
}

func TestAddPriceCategoriesBands(t *testing.T) {
	// mean = 30, sample sd ~ 15.81: 10 < mean-sd, 50 > mean+sd.
	out, err := AddPriceCategories(priceTable(10, 20, 30, 40, 50), "price")
	require.NoError(t, err)

	assert.Equal(t, "Economic", out.Row(0)["price_category"])
	assert.Equal(t, "Normal", out.Row(1)["price_category"])
	assert.Equal(t, "Normal", out.Row(2)["price_category"])
	assert.Equal(t, "Normal", out.Row(3)["price_category"])
	assert.Equal(t, "Premium", out.Row(4)["price_category"])
}

func TestAddPriceCategoriesSingleRow(t *testing.T) {
	out, err := AddPriceCategories(priceTable(99.5), "price")
	require.NoError(t, err)

	assert.Equal(t, "Standard", out.Row(0)["price_quartile"])
	assert.Equal(t, "Normal", out.Row(0)["price_category"])
}

func TestAddPriceCategoriesMissingColumn(t *testing.T) {
	in := domain.NewTable("name")
	in.AppendRow(domain.Row{"name": "x"})

	out, err := AddPriceCategories(in, "price")
	require.NoError(t, err)
	assert.False(t, out.HasColumn("price_quartile"))
}

func TestAddPriceCategoriesBadType(t *testing.T) {
	in := domain.NewTable("price")
	in.AppendRow(domain.Row{"price": "cheap"})

	_, err := AddPriceCategories(in, "price")
	var compErr *domain.ComputationError
	assert.ErrorAs(t, err, &compErr)
}
