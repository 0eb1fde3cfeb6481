package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commerce-lake/internal/domain"
)

func TestAddCustomerInsights(t *testing.T) {
	in := domain.NewTable("customer_id", "quantity", "total_amount")
	in.AppendRow(domain.Row{"customer_id": int64(1), "quantity": int64(1), "total_amount": 10.0})
	in.AppendRow(domain.Row{"customer_id": int64(1), "quantity": int64(1), "total_amount": 10.0})
	in.AppendRow(domain.Row{"customer_id": int64(2), "quantity": int64(1), "total_amount": 50.0})

	out, err := AddCustomerInsights(in)
	require.NoError(t, err)
	require.Equal(t, 3, out.Len(), "join-back must preserve the row count")

	c1 := out.Row(0)
	assert.Equal(t, int64(2), c1["order_count"])
	assert.Equal(t, 20.0, c1["total_spent"])
	assert.Equal(t, 10.0, c1["avg_order_value"])
	assert.Equal(t, int64(2), c1["total_items"])
	assert.Equal(t, "Occasional", c1["customer_type"])

	c2 := out.Row(2)
	assert.Equal(t, int64(1), c2["order_count"])
	assert.Equal(t, 50.0, c2["total_spent"])
	assert.Equal(t, "New", c2["customer_type"], "a single-order customer is New regardless of spend")

	// p80 over {20, 50} is 44, p20 is 26.
	assert.Equal(t, "Premium", c2["customer_segment"])
	assert.Equal(t, "Economic", c1["customer_segment"])
}

func TestCustomerTypeFor(t *testing.T) {
	assert.Equal(t, "New", customerTypeFor(1))
	assert.Equal(t, "Occasional", customerTypeFor(2))
	assert.Equal(t, "Loyal", customerTypeFor(3))
	assert.Equal(t, "Loyal", customerTypeFor(10))
}

func TestSegmentFor(t *testing.T) {
	assert.Equal(t, "Premium", segmentFor(100, 20, 80))
	assert.Equal(t, "Economic", segmentFor(10, 20, 80))
	assert.Equal(t, "Standard", segmentFor(50, 20, 80))
	// Thresholds themselves are Standard: the comparisons are strict.
	assert.Equal(t, "Standard", segmentFor(80, 20, 80))
	assert.Equal(t, "Standard", segmentFor(20, 20, 80))
}

func TestAddCustomerInsightsSingleCustomer(t *testing.T) {
	in := domain.NewTable("customer_id", "quantity", "total_amount")
	in.AppendRow(domain.Row{"customer_id": int64(7), "quantity": int64(2), "total_amount": 30.0})

	out, err := AddCustomerInsights(in)
	require.NoError(t, err)

	// A single spend value equals both thresholds, so neither strict
	// comparison fires.
	assert.Equal(t, "Standard", out.Row(0)["customer_segment"])
	assert.Equal(t, "New", out.Row(0)["customer_type"])
}

func TestAddCustomerInsightsMixedIDWidths(t *testing.T) {
	in := domain.NewTable("customer_id", "total_amount")
	in.AppendRow(domain.Row{"customer_id": int64(1), "total_amount": 10.0})
	in.AppendRow(domain.Row{"customer_id": int32(1), "total_amount": 15.0})

	out, err := AddCustomerInsights(in)
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Row(0)["order_count"], "ids of different integer widths join as one customer")
	assert.Equal(t, 25.0, out.Row(1)["total_spent"])
}

func TestAddCustomerInsightsMissingColumn(t *testing.T) {
	in := domain.NewTable("product_id")
	in.AppendRow(domain.Row{"product_id": int64(1)})

	out, err := AddCustomerInsights(in)
	require.NoError(t, err)
	assert.False(t, out.HasColumn("customer_segment"))
}
