// Package analytics implements read-side computations over the enriched
// partition store: stock depletion, new-customer tracking, monthly revenue,
// and the daily summary.
package analytics

import (
	"errors"
	"log/slog"
	"math"

	"commerce-lake/internal/domain"
)

// Service reads enriched partitions and computes the summary metrics. All
// computations are synchronous and hold no state across calls.
type Service struct {
	store  domain.PartitionStore
	logger *slog.Logger
}

// NewService creates an analytics service over the enriched store.
func NewService(store domain.PartitionStore, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// isNotFound reports whether err is the store's "partition absent" error,
// which analytics treats as zero data rather than a failure.
func isNotFound(err error) bool {
	var notFound *domain.NotFoundError
	return errors.As(err, &notFound)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
