package scheduler

import (
	"time"

	"github.com/mvestberg/phaseplan/internal/domain"
)

// AvailableDay is one entry in the capacity calendar: a date the student has
// agreed to work on, with the capacity implied by its intensity.
type AvailableDay struct {
	Date      time.Time
	Intensity domain.Intensity
	Capacity  int
}

// BuildCalendar converts weekly work-day preferences plus a date range into
// the ordered sequence of available days. Both endpoints are inclusive; days
// with no capacity are excluded. An inverted range or all-none preferences
// yield an empty calendar, not an error.
func BuildCalendar(prefs domain.WorkDayPreferences, start, end time.Time) []AvailableDay {
	var days []AvailableDay
	for d := domain.DateOnly(start); !d.After(domain.DateOnly(end)); d = d.AddDate(0, 0, 1) {
		intensity := prefs.IntensityOn(d)
		if intensity.Capacity() == 0 {
			continue
		}
		days = append(days, AvailableDay{
			Date:      d,
			Intensity: intensity,
			Capacity:  intensity.Capacity(),
		})
	}
	return days
}
