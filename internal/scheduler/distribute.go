package scheduler

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mvestberg/phaseplan/internal/classify"
	"github.com/mvestberg/phaseplan/internal/domain"
)

// dayPlan pairs an available day with the number of tasks assigned to it.
type dayPlan struct {
	day   AvailableDay
	count int
}

// Distribute assigns an ordered list of task templates to dates between today
// and the deadline, respecting per-day capacity preferences. Templates are
// consumed strictly in input order, so earlier templates always land on
// earlier or equal dates. Empty templates or an empty calendar produce an
// empty result.
func Distribute(templates []string, prefs domain.WorkDayPreferences, today, deadline time.Time, phaseID string) []domain.Task {
	if len(templates) == 0 {
		return nil
	}
	days := BuildCalendar(prefs, today, deadline)
	if len(days) == 0 {
		return nil
	}

	plans := planDistribution(len(templates), days)

	now := time.Now().UTC()
	var tasks []domain.Task
	index := 0
	total := len(templates)
	for _, plan := range plans {
		for i := 0; i < plan.count && index < total; i++ {
			description := templates[index]
			tasks = append(tasks, domain.Task{
				ID:           uuid.New().String(),
				PhaseID:      phaseID,
				Date:         plan.day.Date,
				Description:  description,
				Type:         classify.Type(description),
				DayIntensity: plan.day.Intensity,
				Priority:     classify.Priority(description, index, total),
				Completed:    false,
				CreatedAt:    now,
			})
			index++
		}
	}
	return tasks
}

// planDistribution decides how many tasks each available day receives.
//
// With capacity to spare (tasks <= days) the load is spread evenly: a base of
// tasks/days per day, with the first tasks%days days taking one extra. When
// demand exceeds the day count, shares are weighted by capacity (light 1.0,
// heavy 2.0) and any rounding deficit is handed out one task at a time in
// calendar order, preferring heavy days.
func planDistribution(totalTasks int, days []AvailableDay) []dayPlan {
	totalDays := len(days)

	plans := make([]dayPlan, 0, totalDays)

	if totalTasks > totalDays {
		heavyCount := 0
		for _, day := range days {
			if day.Intensity == domain.IntensityHeavy {
				heavyCount++
			}
		}
		lightCount := totalDays - heavyCount

		const lightWeight, heavyWeight = 1.0, 2.0
		totalWeight := float64(lightCount)*lightWeight + float64(heavyCount)*heavyWeight

		assigned := 0
		for _, day := range days {
			weight := lightWeight
			if day.Intensity == domain.IntensityHeavy {
				weight = heavyWeight
			}
			count := int(float64(totalTasks) * weight / totalWeight)
			if count < 1 {
				count = 1
			}
			plans = append(plans, dayPlan{day: day, count: count})
			assigned += count
		}

		// Hand out the rounding deficit cycling through the days, skipping
		// light days while any heavy day exists.
		remaining := totalTasks - assigned
		for i := 0; remaining > 0; i = (i + 1) % len(plans) {
			if plans[i].day.Intensity == domain.IntensityHeavy || heavyCount == 0 {
				plans[i].count++
				remaining--
			}
		}
	} else {
		base := totalTasks / totalDays
		extra := totalTasks % totalDays
		for i, day := range days {
			count := base
			if i < extra {
				count++
			}
			plans = append(plans, dayPlan{day: day, count: count})
		}
	}

	// Drop zero-count days and re-sort by date. Shares are computed per the
	// original day order, so this is defensive rather than load-bearing.
	filtered := plans[:0]
	for _, plan := range plans {
		if plan.count > 0 {
			filtered = append(filtered, plan)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].day.Date.Before(filtered[j].day.Date)
	})
	return filtered
}
