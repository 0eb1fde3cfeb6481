package enrich

import (
	"time"

	"commerce-lake/internal/domain"
)

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// AddTemporalFeatures derives calendar features from the named date column:
// {col}_year/month/day/weekday/week/quarter, is_weekend, day_name, and
// month_name. Weekdays are 0-indexed with Monday=0; the weekend is {5,6}.
// A table without the column passes through unchanged.
func AddTemporalFeatures(t *domain.Table, dateCol string) (*domain.Table, error) {
	if !t.HasColumn(dateCol) {
		return t, nil
	}

	out := t.Clone()
	for i := 0; i < out.Len(); i++ {
		row := out.Row(i)
		v := row[dateCol]
		if v == nil {
			continue
		}
		ts, ok := domain.AsTime(v)
		if !ok {
			return nil, domain.ErrComputation("column %q row %d: expected date, got %T", dateCol, i, v)
		}

		weekday := (int(ts.Weekday()) + 6) % 7 // Monday=0
		_, week := ts.ISOWeek()

		row[dateCol+"_year"] = int64(ts.Year())
		row[dateCol+"_month"] = int64(ts.Month())
		row[dateCol+"_day"] = int64(ts.Day())
		row[dateCol+"_weekday"] = int64(weekday)
		row[dateCol+"_week"] = int64(week)
		row[dateCol+"_quarter"] = int64((int(ts.Month())-1)/3 + 1)
		row["is_weekend"] = weekday == 5 || weekday == 6
		row["day_name"] = dayNames[weekday]
		row["month_name"] = monthNames[int(ts.Month())-1]
	}
	out.AddColumns(
		dateCol+"_year", dateCol+"_month", dateCol+"_day",
		dateCol+"_weekday", dateCol+"_week", dateCol+"_quarter",
		"is_weekend", "day_name", "month_name",
	)
	return out, nil
}

// yesterday returns the previous calendar day at midnight UTC.
func yesterday(now time.Time) time.Time {
	y := now.UTC().AddDate(0, 0, -1)
	return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, time.UTC)
}
