package domain

import (
	"strings"
	"time"
)

// WorkDayPreferences maps lowercase weekday names ("monday".."sunday") to the
// intensity the student wants to work at on that day. Days absent from the map
// are treated as IntensityNone.
type WorkDayPreferences map[string]Intensity

// WeekdayName returns the lowercase English name for a weekday, matching the
// keys used in WorkDayPreferences.
func WeekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// IntensityOn returns the configured intensity for the given date.
func (w WorkDayPreferences) IntensityOn(date time.Time) Intensity {
	if w == nil {
		return IntensityNone
	}
	intensity, ok := w[WeekdayName(date.Weekday())]
	if !ok {
		return IntensityNone
	}
	return intensity
}

// HasCapacity reports whether any day of the week has positive capacity.
func (w WorkDayPreferences) HasCapacity() bool {
	for _, intensity := range w {
		if intensity.Capacity() > 0 {
			return true
		}
	}
	return false
}
