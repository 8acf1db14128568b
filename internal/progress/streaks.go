package progress

import (
	"sort"
	"time"

	"github.com/mvestberg/phaseplan/internal/domain"
)

// Streaks computes the current and longest runs of consecutive logging dates.
// The longest streak is the maximum run anywhere in the history; the current
// streak is the length of the most recent run, but only while it is still
// alive (last entry today or yesterday), otherwise zero.
func Streaks(entries []*domain.ProgressEntry, today time.Time) (current, longest int) {
	if len(entries) == 0 {
		return 0, 0
	}

	dates := make([]time.Time, len(entries))
	for i, e := range entries {
		dates[i] = domain.DateOnly(e.Date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	run := 1
	for i := 1; i < len(dates); i++ {
		if domain.DaysBetween(dates[i-1], dates[i]) == 1 {
			run++
		} else {
			if run > longest {
				longest = run
			}
			run = 1
		}
	}
	if run > longest {
		longest = run
	}

	today = domain.DateOnly(today)
	if gap := domain.DaysBetween(dates[len(dates)-1], today); gap >= 0 && gap <= 1 {
		current = run
	}
	return current, longest
}
