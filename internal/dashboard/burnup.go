package dashboard

import (
	"time"

	"pulseboard/internal/notion"
)

// Range is a caller-selected burn-up lookback window.
type Range string

// Supported lookback windows, measured backward from now.
const (
	RangeWeek       Range = "7d"
	RangeTwoWeeks   Range = "15d"
	RangeMonth      Range = "30d"
	RangeQuarter    Range = "3m"
	RangeHalfYear   Range = "6m"
	RangeYear       Range = "1y"
	DefaultRange          = RangeMonth
)

// Valid reports whether r names a supported window.
func (r Range) Valid() bool {
	switch r {
	case RangeWeek, RangeTwoWeeks, RangeMonth, RangeQuarter, RangeHalfYear, RangeYear:
		return true
	}
	return false
}

func (r Range) start(now time.Time) time.Time {
	switch r {
	case RangeWeek:
		return now.AddDate(0, 0, -7)
	case RangeTwoWeeks:
		return now.AddDate(0, 0, -14)
	case RangeQuarter:
		return monthsAgo(now, 3)
	case RangeHalfYear:
		return monthsAgo(now, 6)
	case RangeYear:
		return monthsAgo(now, 12)
	default:
		return monthsAgo(now, 1)
	}
}

// monthsAgo steps back whole months. AddDate normalizes a nonexistent
// day-of-month forward (Mar 31 minus one month lands on Mar 3); clamp
// to the last day of the target month instead, so month-based windows
// never shrink at month ends.
func monthsAgo(now time.Time, months int) time.Time {
	t := now.AddDate(0, -months, 0)
	if t.Day() != now.Day() {
		t = t.AddDate(0, 0, -t.Day())
	}
	return t
}

// BurnUpPoint is one calendar day of the trend: the cumulative count of
// done tasks created on or before that day, against the constant total.
type BurnUpPoint struct {
	Date      time.Time `json:"date"`
	Completed int       `json:"completed"`
	Total     int       `json:"total"`
}

// BurnUpSeries is the burn-up trend panel.
type BurnUpSeries struct {
	Range  Range         `json:"range"`
	Points []BurnUpPoint `json:"points"`
}

// BurnUp produces one data point per calendar day of the window, both
// endpoints inclusive. Tasks with an unparseable creation timestamp are
// excluded from the cumulative count for every day but still appear in
// the total.
func BurnUp(tasks []notion.Task, r Range, now time.Time) BurnUpSeries {
	if !r.Valid() {
		r = DefaultRange
	}

	series := BurnUpSeries{Range: r}
	last := StartOfDay(now)

	for day := StartOfDay(r.start(now)); !day.After(last); day = day.AddDate(0, 0, 1) {
		cutoff := EndOfDay(day)
		completed := 0
		for _, t := range tasks {
			if t.Status != notion.StatusDone || t.CreatedAt.IsZero() {
				continue
			}
			if !t.CreatedAt.After(cutoff) {
				completed++
			}
		}
		series.Points = append(series.Points, BurnUpPoint{
			Date:      day,
			Completed: completed,
			Total:     len(tasks),
		})
	}

	return series
}
