package domain

import "time"

const DateLayout = "2006-01-02"

// DateOnly truncates a timestamp to midnight UTC. The whole domain operates
// at day granularity; every stored or compared date goes through this.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of days from a to b, negative when b
// precedes a. Both arguments are truncated to day granularity first.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// SameDate reports whether two timestamps fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}
