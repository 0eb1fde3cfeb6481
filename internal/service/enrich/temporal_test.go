package enrich

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commerce-lake/internal/domain"
)

func TestAddTemporalFeatures(t *testing.T) {
	in := domain.NewTable("order_id", "order_date")
	in.AppendRow(domain.Row{
		"order_id":   int64(1),
		"order_date": time.Date(2024, 1, 6, 14, 30, 0, 0, time.UTC), // Saturday
	})
	in.AppendRow(domain.Row{
		"order_id":   int64(2),
		"order_date": time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), // Monday
	})

	out, err := AddTemporalFeatures(in, "order_date")
	require.NoError(t, err)
	require.Equal(t, 2, out.Len())

	sat := out.Row(0)
	assert.Equal(t, int64(2024), sat["order_date_year"])
	assert.Equal(t, int64(1), sat["order_date_month"])
	assert.Equal(t, int64(6), sat["order_date_day"])
	assert.Equal(t, int64(5), sat["order_date_weekday"])
	assert.Equal(t, int64(1), sat["order_date_week"])
	assert.Equal(t, int64(1), sat["order_date_quarter"])
	assert.Equal(t, true, sat["is_weekend"])
	assert.Equal(t, "Saturday", sat["day_name"])
	assert.Equal(t, "Jan", sat["month_name"])

	mon := out.Row(1)
	assert.Equal(t, int64(0), mon["order_date_weekday"])
	assert.Equal(t, int64(2), mon["order_date_quarter"])
	assert.Equal(t, false, mon["is_weekend"])
	assert.Equal(t, "Monday", mon["day_name"])
	assert.Equal(t, "Apr", mon["month_name"])
}

func TestAddTemporalFeaturesMissingColumn(t *testing.T) {
	in := domain.NewTable("order_id")
	in.AppendRow(domain.Row{"order_id": int64(1)})

	out, err := AddTemporalFeatures(in, "order_date")
	require.NoError(t, err)
	assert.False(t, out.HasColumn("is_weekend"))
	assert.Equal(t, 1, out.Len())
}

func TestAddTemporalFeaturesNilValueSkipped(t *testing.T) {
	in := domain.NewTable("order_date")
	in.AppendRow(domain.Row{"order_date": nil})

	out, err := AddTemporalFeatures(in, "order_date")
	require.NoError(t, err)
	assert.Nil(t, out.Row(0)["day_name"])
}

func TestAddTemporalFeaturesBadType(t *testing.T) {
	in := domain.NewTable("order_date")
	in.AppendRow(domain.Row{"order_date": "2024-01-06"})

	_, err := AddTemporalFeatures(in, "order_date")
	var compErr *domain.ComputationError
	assert.ErrorAs(t, err, &compErr)
}

func TestAddTemporalFeaturesDoesNotMutateInput(t *testing.T) {
	in := domain.NewTable("order_date")
	in.AppendRow(domain.Row{"order_date": time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)})

	_, err := AddTemporalFeatures(in, "order_date")
	require.NoError(t, err)
	assert.False(t, in.HasColumn("day_name"))
	assert.Nil(t, in.Row(0)["day_name"])
}
