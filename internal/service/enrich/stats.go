// Package enrich derives analytical features over per-day tables and
// composes them into the enrichment pipeline.
package enrich

import (
	"math"
	"sort"
)

// fallbackLabel replaces quantile bucket labels when a distribution has too
// few distinct values to form the requested number of bins.
const fallbackLabel = "Standard"

var (
	quartileLabels = []string{"Low", "Mid-", "Mid+", "High"}
	tercileLabels  = []string{"Low", "Mid", "High"}
)

// quantile returns the q-th quantile (0..1) of sorted values using linear
// interpolation between closest ranks.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// percentile returns the q-th quantile of unsorted values.
func percentile(values []float64, q float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return quantile(sorted, q)
}

// quantileEdges computes q+1 equal-frequency bin edges over values. It
// returns ok=false when collapsed edges leave fewer than q distinct bins,
// the degenerate condition callers must replace with a constant label.
func quantileEdges(values []float64, q int) ([]float64, bool) {
	if len(values) == 0 {
		return nil, false
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	edges := make([]float64, 0, q+1)
	for i := 0; i <= q; i++ {
		e := quantile(sorted, float64(i)/float64(q))
		if len(edges) > 0 && e == edges[len(edges)-1] {
			continue // collapsed edge
		}
		edges = append(edges, e)
	}
	if len(edges) != q+1 {
		return nil, false
	}
	return edges, true
}

// bucketIndex places v into one of len(edges)-1 right-closed intervals.
// Values at or below the first edge land in bucket 0.
func bucketIndex(edges []float64, v float64) int {
	for i := 1; i < len(edges)-1; i++ {
		if v <= edges[i] {
			return i - 1
		}
	}
	return len(edges) - 2
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev returns the sample standard deviation. ok is false when fewer than
// two values are present and no meaningful deviation exists.
func stddev(values []float64) (float64, bool) {
	if len(values) < 2 {
		return 0, false
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1)), true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
