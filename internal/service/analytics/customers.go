package analytics

import (
	"context"
	"time"

	"commerce-lake/internal/domain"
)

// NewCustomers tracks first-time customers over an inclusive date range.
// The running set of seen customers is local to this call and threaded
// day-by-day as an explicit fold, so a customer appearing on two days of
// the range is counted as new exactly once, on the first day. Day order is
// strictly chronological; the fold must not be parallelized.
func (s *Service) NewCustomers(ctx context.Context, start, end time.Time) (domain.NewCustomerReport, error) {
	start = midnight(start)
	end = midnight(end)
	if end.Before(start) {
		return domain.NewCustomerReport{}, domain.ErrValidation(
			"invalid range: end %s before start %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	report := domain.NewCustomerReport{Start: start, End: end}
	seen := make(map[any]struct{})

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		entry := domain.NewCustomerDay{Date: day}

		t, err := s.store.Read(ctx, domain.EntityOrders, day)
		switch {
		case isNotFound(err):
			// no orders that day
		case err != nil:
			return domain.NewCustomerReport{}, err
		default:
			newCustomers := make(map[any]struct{})
			dayCustomers := make(map[any]struct{})
			var revenue float64
			for i := 0; i < t.Len(); i++ {
				row := t.Row(i)
				if row["customer_id"] == nil {
					continue
				}
				key := domain.Key(row["customer_id"])
				dayCustomers[key] = struct{}{}
				if _, ok := seen[key]; !ok {
					newCustomers[key] = struct{}{}
				}
			}
			for i := 0; i < t.Len(); i++ {
				row := t.Row(i)
				if row["customer_id"] == nil {
					continue
				}
				if _, ok := newCustomers[domain.Key(row["customer_id"])]; !ok {
					continue
				}
				if amt, ok := domain.AsFloat(row["total_amount"]); ok {
					revenue += amt
				}
			}
			for key := range dayCustomers {
				seen[key] = struct{}{}
			}
			entry.NewCustomers = len(newCustomers)
			entry.Revenue = round2(revenue)
		}

		report.Days = append(report.Days, entry)
		report.TotalNewCustomers += entry.NewCustomers
		report.TotalRevenue += entry.Revenue
	}

	report.TotalRevenue = round2(report.TotalRevenue)
	return report, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
