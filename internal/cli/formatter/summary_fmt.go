package formatter

import (
	"fmt"
	"strings"

	"github.com/mvestberg/phaseplan/internal/progress"
)

// FormatPhaseSummary renders the detailed progress picture of one phase.
func FormatPhaseSummary(s *progress.PhaseSummary) string {
	var lines []string

	lines = append(lines,
		fmt.Sprintf("%s  %s", Bold(s.PhaseName), RenderProgress(s.ProgressPct, 16)),
		fmt.Sprintf("Tasks      %d/%d done", s.CompletedTasks, s.TotalTasks),
		fmt.Sprintf("Deadline   %s  %s", FullDate(s.Deadline), DaysLabel(s.DaysRemaining)),
		fmt.Sprintf("Pace       %.1f tasks/day over %d active days", s.AvgTasksPerDay, s.DaysActive),
		fmt.Sprintf("Streak     %s current, %d longest", streakLabel(s.CurrentStreak), s.LongestStreak),
		fmt.Sprintf("Track      %s", OnTrackPill(s.OnTrack)),
	)

	if s.CompletionPrediction != nil {
		lines = append(lines, fmt.Sprintf("Forecast   done around %s", FullDate(*s.CompletionPrediction)))
	}
	if len(s.MilestonesAchieved) > 0 {
		labels := make([]string, len(s.MilestonesAchieved))
		for i, m := range s.MilestonesAchieved {
			labels[i] = strings.ReplaceAll(string(m), "_", " ")
		}
		lines = append(lines, fmt.Sprintf("Milestones %s", StylePurple.Render(strings.Join(labels, ", "))))
	}

	return RenderBox("Phase Summary", strings.Join(lines, "\n"))
}

func streakLabel(current int) string {
	text := fmt.Sprintf("%dd", current)
	if current >= 7 {
		return StyleGreen.Render(text + " 🔥")
	}
	if current > 0 {
		return StyleGreen.Render(text)
	}
	return StyleDim.Render(text)
}

// FormatOverallSummary renders the cross-phase roll-up.
func FormatOverallSummary(s *progress.OverallSummary) string {
	var b strings.Builder

	b.WriteString(Header("Overall Progress"))
	b.WriteString("\n\n")

	if s.TotalPhases == 0 {
		b.WriteString(Dim("No phases yet.") + "\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%s  %s across %d phases\n",
		Bold("Progress:"), RenderProgress(s.OverallProgressPct, 20), s.TotalPhases))
	b.WriteString(fmt.Sprintf("%s  %d/%d tasks, %d milestones, %d phases on track\n",
		Bold("Totals:"), s.TotalCompleted, s.TotalTasks, s.MilestonesAchieved, s.PhasesOnTrack))
	if s.MostActivePhaseName != "" {
		b.WriteString(fmt.Sprintf("%s  %s (%.0f%%)\n",
			Bold("Most active:"), s.MostActivePhaseName, s.MostActivePhasePct))
	}
	if s.NextMilestone != nil {
		nm := s.NextMilestone
		b.WriteString(fmt.Sprintf("%s  %.0f%% in %s — %d more tasks\n",
			Bold("Next milestone:"), nm.ThresholdPct, nm.PhaseName, nm.TasksNeeded))
	}

	if len(s.Phases) > 0 {
		b.WriteString("\n")
		rows := make([][]string, 0, len(s.Phases))
		for _, p := range s.Phases {
			rows = append(rows, []string{
				p.PhaseName,
				RenderProgress(p.ProgressPct, 12),
				fmt.Sprintf("%d/%d", p.CompletedTasks, p.TotalTasks),
				DaysLabel(p.DaysRemaining),
				OnTrackPill(p.OnTrack),
			})
		}
		b.WriteString(RenderTable([]string{"Phase", "Progress", "Tasks", "Deadline", "Track"}, rows))
	}
	return b.String()
}
