package scheduler

import (
	"time"

	"github.com/mvestberg/phaseplan/internal/domain"
)

// Metrics and redistribution use a plain five-day work week, independent of
// the work-day preferences that drive generation. Preferences say when the
// student wants to work; required-pace math assumes the conventional week.

// CountWorkDays counts weekdays in [start, end), weekends excluded.
func CountWorkDays(start, end time.Time) int {
	count := 0
	for d := domain.DateOnly(start); d.Before(domain.DateOnly(end)); d = d.AddDate(0, 0, 1) {
		if isWeekday(d) {
			count++
		}
	}
	return count
}

// WorkDays lists weekdays in [start, end], both endpoints inclusive.
func WorkDays(start, end time.Time) []time.Time {
	var days []time.Time
	for d := domain.DateOnly(start); !d.After(domain.DateOnly(end)); d = d.AddDate(0, 0, 1) {
		if isWeekday(d) {
			days = append(days, d)
		}
	}
	return days
}

func isWeekday(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
