package formatter

import (
	"fmt"
	"strings"

	"github.com/mvestberg/phaseplan/internal/contract"
	"github.com/mvestberg/phaseplan/internal/scheduler"
)

// FormatStatus renders the per-phase status table plus the cross-phase
// summary block.
func FormatStatus(resp *contract.StatusResponse) string {
	var b strings.Builder

	b.WriteString(Header("Phase Status"))
	b.WriteString("\n\n")

	if len(resp.Phases) == 0 {
		b.WriteString(Dim("No phases yet. Run `phaseplan onboard` to set up your plan.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(resp.Phases))
	for _, m := range resp.Phases {
		required := "—"
		if m.RemainingTasks > 0 && m.DaysRemaining > 0 {
			required = fmt.Sprintf("%.1f/day", m.RequiredTasksPerDay)
		}
		rows = append(rows, []string{
			m.PhaseName,
			RenderProgress(m.ProgressPct, 12),
			fmt.Sprintf("%d/%d", m.CompletedTasks, m.TotalTasks),
			DaysLabel(m.DaysRemaining),
			required,
			CriticalityIndicator(m.Criticality),
			OnTrackPill(m.OnTrack),
		})
	}
	b.WriteString(RenderTable(
		[]string{"Phase", "Progress", "Tasks", "Deadline", "Pace", "Urgency", "Track"},
		rows,
	))

	b.WriteString("\n")
	b.WriteString(formatSummary(resp.Summary))
	return b.String()
}

func formatSummary(s scheduler.TimelineSummary) string {
	lines := []string{
		fmt.Sprintf("%s  %d phases, %d on track, %d critical",
			Bold("Overall:"), s.TotalPhases, s.PhasesOnTrack, s.CriticalPhases),
		fmt.Sprintf("%s  %s  %s", Bold("Progress:"),
			RenderProgress(s.OverallProgressPct, 20),
			Dim(fmt.Sprintf("buffer %dd total", s.TotalBufferDays))),
	}
	return strings.Join(lines, "\n") + "\n"
}
