package analytics

import (
	"context"
	"time"

	"commerce-lake/internal/domain"
)

// MonthlyRevenue aggregates order revenue over every calendar day of one
// month, including the correct final day across the December year rollover.
// Days without an order partition contribute zero revenue and zero orders
// and still count toward the per-day average. The mean basket value is 0
// when the month has no orders at all. Best and worst day are the earliest
// days reaching the extreme values.
func (s *Service) MonthlyRevenue(ctx context.Context, year, month int) (domain.MonthlyRevenue, error) {
	if month < 1 || month > 12 {
		return domain.MonthlyRevenue{}, domain.ErrValidation("invalid month %d (want 1-12)", month)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	out := domain.MonthlyRevenue{Year: year, Month: month}
	var totalRevenue float64

	for day := first; day.Before(next); day = day.AddDate(0, 0, 1) {
		entry := domain.DayRevenue{Day: day.Day()}

		t, err := s.store.Read(ctx, domain.EntityOrders, day)
		switch {
		case isNotFound(err):
			// zero-order day
		case err != nil:
			return domain.MonthlyRevenue{}, err
		default:
			var revenue float64
			for i := 0; i < t.Len(); i++ {
				if amt, ok := domain.AsFloat(t.Row(i)["total_amount"]); ok {
					revenue += amt
				}
			}
			entry.Revenue = round2(revenue)
			entry.OrderCount = t.Len()
		}

		out.Days = append(out.Days, entry)
		totalRevenue += entry.Revenue
		out.TotalOrders += entry.OrderCount
	}

	out.TotalRevenue = round2(totalRevenue)
	out.AvgRevenuePerDay = round2(totalRevenue / float64(len(out.Days)))
	if out.TotalOrders > 0 {
		out.AvgBasket = round2(totalRevenue / float64(out.TotalOrders))
	}

	// Earliest day wins ties for both extremes.
	out.BestDay = out.Days[0]
	out.WorstDay = out.Days[0]
	for _, d := range out.Days[1:] {
		if d.Revenue > out.BestDay.Revenue {
			out.BestDay = d
		}
		if d.Revenue < out.WorstDay.Revenue {
			out.WorstDay = d
		}
	}
	return out, nil
}
