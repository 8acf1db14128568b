package domain

import "time"

type Student struct {
	ID             string
	Name           string
	Preferences    WorkDayPreferences
	ThesisDeadline *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
