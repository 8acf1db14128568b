package formatter

import (
	"fmt"
	"strings"

	"github.com/mvestberg/phaseplan/internal/contract"
)

// FormatCriticalPath renders the dependency-annotated critical path, one
// block per phase in order.
func FormatCriticalPath(resp *contract.CriticalPathResponse) string {
	var b strings.Builder

	b.WriteString(Header("Critical Path"))
	b.WriteString("\n\n")

	if len(resp.Items) == 0 {
		b.WriteString(Dim("No phases yet.") + "\n")
		return b.String()
	}

	for i, item := range resp.Items {
		marker := StyleGreen.Render("○")
		if item.IsCritical {
			marker = StyleRed.Render("●")
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", marker, Bold(item.PhaseName),
			Dim(fmt.Sprintf("%s → %s (%dd)", ShortDate(item.StartDate), ShortDate(item.Deadline), item.DurationDays))))
		b.WriteString(fmt.Sprintf("   %s  %s\n",
			RenderProgress(item.ProgressPct, 12),
			Dim(fmt.Sprintf("%d tasks left, buffer %dd", item.TasksRemaining, item.BufferDays))))
		b.WriteString(fmt.Sprintf("   %s\n", item.CriticalityReason))
		for _, dep := range item.Dependencies {
			b.WriteString(fmt.Sprintf("   %s %s\n", Dim("└ after"), dep.PhaseName))
		}
		if i < len(resp.Items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
