package analytics

import (
	"context"
	"sort"
	"time"

	"commerce-lake/internal/domain"
)

// StockDepletion computes remaining stock per product for one day:
// remaining = initial - quantity sold. A missing order partition, or a
// product with no orders that day, is a valid "no sales" result, not an
// error.
func (s *Service) StockDepletion(ctx context.Context, day time.Time, initial map[int64]int64) ([]domain.StockLevel, error) {
	sold := make(map[int64]int64)

	t, err := s.store.Read(ctx, domain.EntityOrders, day)
	switch {
	case isNotFound(err):
		s.logger.Info("no orders for date", "date", day.Format("2006-01-02"))
	case err != nil:
		return nil, err
	default:
		for i := 0; i < t.Len(); i++ {
			row := t.Row(i)
			pid, ok := domain.AsInt(row["product_id"])
			if !ok {
				continue
			}
			if qty, ok := domain.AsInt(row["quantity"]); ok {
				sold[pid] += qty
			}
		}
	}

	ids := make([]int64, 0, len(initial))
	for id := range initial {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]domain.StockLevel, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.StockLevel{
			ProductID: id,
			Initial:   initial[id],
			Sold:      sold[id],
			Remaining: initial[id] - sold[id],
		})
	}
	return out, nil
}
