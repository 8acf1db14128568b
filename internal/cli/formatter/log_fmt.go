package formatter

import (
	"fmt"
	"strings"

	"github.com/mvestberg/phaseplan/internal/contract"
	"github.com/mvestberg/phaseplan/internal/progress"
)

// FormatLogResult renders a progress-logging result: the new progress level,
// milestone celebrations, and the completion payload when the phase finished.
func FormatLogResult(result *contract.LogProgressResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		Bold(result.PhaseName),
		RenderProgress(result.ProgressPct, 16),
		Dim(fmt.Sprintf("%d/%d tasks", result.CompletedTasks, result.TotalTasks))))

	for _, m := range result.Milestones {
		b.WriteString(fmt.Sprintf("%s %s\n",
			StylePurple.Render("★ "+m.Celebration),
			Dim(m.Description)))
	}

	if result.Completion != nil {
		b.WriteString("\n")
		b.WriteString(FormatCompletion(result.Completion))
	}
	return b.String()
}

// FormatCompletion renders the phase completion celebration box.
func FormatCompletion(c *progress.Completion) string {
	var lines []string

	lines = append(lines, c.Message)
	if len(c.Badges) > 0 {
		lines = append(lines, "")
		for _, badge := range c.Badges {
			lines = append(lines, StyleYellow.Render("🏅 "+badge))
		}
	}
	if c.NextPhase != nil {
		lines = append(lines, "",
			fmt.Sprintf("%s %s %s", Dim("Up next:"), Bold(c.NextPhase.PhaseName),
				Dim(fmt.Sprintf("(due %s)", FullDate(c.NextPhase.Deadline)))))
	}
	return RenderBox("Phase Complete", strings.Join(lines, "\n"))
}
