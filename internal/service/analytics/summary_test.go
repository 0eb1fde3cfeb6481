package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commerce-lake/internal/domain"
	"commerce-lake/internal/store"
)

func TestDailySummary(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	enriched := store.NewMemoryStore()
	writeOrders(t, enriched, day,
		domain.Row{"customer_id": int64(1), "product_id": int64(10), "total_amount": 100.0, "is_weekend": true, "is_bulk_order": false},
		domain.Row{"customer_id": int64(1), "product_id": int64(11), "total_amount": 50.0, "is_weekend": true, "is_bulk_order": true},
		domain.Row{"customer_id": int64(2), "product_id": int64(10), "total_amount": 25.0, "is_weekend": true, "is_bulk_order": false},
		domain.Row{"customer_id": int64(3), "product_id": int64(12), "total_amount": 25.0, "is_weekend": true, "is_bulk_order": false},
	)

	svc := NewService(enriched, testLogger())
	summary, found, err := svc.DailySummary(ctx, day)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, day, summary.Date)
	assert.Equal(t, 4, summary.TotalOrders)
	assert.Equal(t, 200.0, summary.TotalRevenue)
	assert.Equal(t, 50.0, summary.AvgOrderValue)
	assert.Equal(t, 3, summary.UniqueCustomers)
	assert.Equal(t, 3, summary.UniqueProducts)
	assert.Equal(t, 100.0, summary.WeekendOrdersPct)
	assert.Equal(t, 25.0, summary.BulkOrdersPct)
}

func TestDailySummaryNoData(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemoryStore(), testLogger())

	_, found, err := svc.DailySummary(ctx, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err, "a missing partition is a no-data result, not an error")
	assert.False(t, found)
}

func TestWriteDailySummaryPersists(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	enriched := store.NewMemoryStore()
	writeOrders(t, enriched, day,
		domain.Row{"customer_id": int64(1), "product_id": int64(10), "total_amount": 60.0, "is_weekend": false, "is_bulk_order": false},
	)

	svc := NewService(enriched, testLogger())
	summary, found, err := svc.WriteDailySummary(ctx, day)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 60.0, summary.TotalRevenue)

	stored, err := enriched.Read(ctx, domain.EntitySummaries, day)
	require.NoError(t, err)
	require.Equal(t, 1, stored.Len())
	assert.Equal(t, 60.0, stored.Row(0)["total_revenue"])
	assert.Equal(t, int64(1), stored.Row(0)["total_orders"])
}

func TestWriteDailySummaryNoData(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	enriched := store.NewMemoryStore()

	svc := NewService(enriched, testLogger())
	_, found, err := svc.WriteDailySummary(ctx, day)
	require.NoError(t, err)
	assert.False(t, found)

	exists, err := enriched.Exists(ctx, domain.EntitySummaries, day)
	require.NoError(t, err)
	assert.False(t, exists, "nothing is written for a no-data day")
}
