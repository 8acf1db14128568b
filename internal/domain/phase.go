package domain

import "time"

type Phase struct {
	ID         string
	StudentID  string
	Type       PhaseType
	Name       string
	Deadline   time.Time
	OrderIndex int
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// StartDate is the date the phase is considered to have begun. The schema
// carries no explicit start column; creation day stands in for it, matching
// how on-track expectations are computed.
func (p *Phase) StartDate() time.Time {
	return DateOnly(p.CreatedAt)
}

// DaysRemaining counts whole days from today until the deadline. Negative
// once the deadline has passed.
func (p *Phase) DaysRemaining(today time.Time) int {
	return DaysBetween(today, p.Deadline)
}
