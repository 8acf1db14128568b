package domain

import "time"

type Task struct {
	ID           string
	PhaseID      string
	Date         time.Time
	Description  string
	Type         TaskType
	DayIntensity Intensity
	Priority     Priority
	Completed    bool
	CreatedAt    time.Time
}
