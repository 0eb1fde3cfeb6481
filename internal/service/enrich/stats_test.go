package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantileLinearInterpolation(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}

	assert.InDelta(t, 10.0, quantile(sorted, 0), 1e-9)
	assert.InDelta(t, 40.0, quantile(sorted, 1), 1e-9)
	assert.InDelta(t, 25.0, quantile(sorted, 0.5), 1e-9)
	assert.InDelta(t, 17.5, quantile(sorted, 0.25), 1e-9)
}

func TestQuantileSingleValue(t *testing.T) {
	assert.InDelta(t, 7.0, quantile([]float64{7}, 0.5), 1e-9)
}

func TestPercentileUnsorted(t *testing.T) {
	assert.InDelta(t, 25.0, percentile([]float64{40, 10, 30, 20}, 0.5), 1e-9)
}

func TestQuantileEdges(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		q      int
		wantOK bool
	}{
		{name: "distinct quartiles", values: []float64{1, 2, 3, 4, 5, 6, 7, 8}, q: 4, wantOK: true},
		{name: "constant values collapse", values: []float64{5, 5, 5, 5}, q: 4, wantOK: false},
		{name: "two distinct values cannot form quartiles", values: []float64{1, 1, 1, 2}, q: 4, wantOK: false},
		{name: "empty", values: nil, q: 4, wantOK: false},
		{name: "terciles over spread values", values: []float64{1, 10, 100}, q: 3, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edges, ok := quantileEdges(tt.values, tt.q)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.Len(t, edges, tt.q+1)
			}
		})
	}
}

func TestBucketIndexRightClosed(t *testing.T) {
	edges := []float64{0, 10, 20, 30}

	assert.Equal(t, 0, bucketIndex(edges, 0))
	assert.Equal(t, 0, bucketIndex(edges, 10)) // boundary belongs to the lower bucket
	assert.Equal(t, 1, bucketIndex(edges, 10.5))
	assert.Equal(t, 1, bucketIndex(edges, 20))
	assert.Equal(t, 2, bucketIndex(edges, 25))
	assert.Equal(t, 2, bucketIndex(edges, 99)) // values past the last edge land in the top bucket
}

func TestStddev(t *testing.T) {
	sd, ok := stddev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.True(t, ok)
	assert.InDelta(t, 2.138, sd, 0.001)

	_, ok = stddev([]float64{42})
	assert.False(t, ok)

	_, ok = stddev(nil)
	assert.False(t, ok)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, round2(1.2345))
	assert.Equal(t, 1.24, round2(1.235))
	assert.Equal(t, 0.0, round2(0))
}
