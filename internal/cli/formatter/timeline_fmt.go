package formatter

import (
	"fmt"
	"strings"

	"github.com/mvestberg/phaseplan/internal/contract"
	"github.com/mvestberg/phaseplan/internal/domain"
)

// FormatTimeline renders the integrated cross-phase timeline: one line per
// event, deadlines highlighted, clusters dimmed.
func FormatTimeline(resp *contract.TimelineResponse) string {
	var b strings.Builder

	b.WriteString(Header("Timeline"))
	b.WriteString("\n\n")

	if len(resp.Events) == 0 {
		b.WriteString(Dim("Nothing scheduled yet.") + "\n")
		return b.String()
	}

	for _, e := range resp.Events {
		date := StyleFg.Render(ShortDate(e.Date))
		switch e.Type {
		case domain.EventDeadline:
			b.WriteString(fmt.Sprintf("%s  %s %s %s\n",
				date,
				CriticalityColor(e.Criticality).Render("◆"),
				Bold(e.Description),
				Dim(fmt.Sprintf("(buffer %dd)", e.BufferDays)),
			))
		default:
			b.WriteString(fmt.Sprintf("%s  %s %s %s\n",
				date,
				CriticalityColor(e.Criticality).Render("·"),
				e.Description,
				Dim(e.PhaseName),
			))
		}
	}

	b.WriteString("\n")
	b.WriteString(formatSummary(resp.Summary))
	return b.String()
}
