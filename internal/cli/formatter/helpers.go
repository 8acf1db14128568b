package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mvestberg/phaseplan/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		content = StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
	}
	return boxStyle.Render(content)
}

// ShortDate formats a date as "Mon, Jan 2".
func ShortDate(t time.Time) string {
	return t.Format("Mon, Jan 2")
}

// FullDate formats a date as "Jan 2, 2006".
func FullDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// DaysLabel renders a remaining-days count with urgency coloring.
func DaysLabel(days int) string {
	text := fmt.Sprintf("%dd left", days)
	switch {
	case days < 0:
		return StyleRed.Render(fmt.Sprintf("%dd overdue", -days))
	case days <= 3:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// IntensityBadge renders a work-day intensity marker.
func IntensityBadge(i domain.Intensity) string {
	switch i {
	case domain.IntensityHeavy:
		return StylePurple.Render("▲ heavy")
	case domain.IntensityLight:
		return StyleBlue.Render("△ light")
	default:
		return StyleDim.Render("— off")
	}
}

// TaskCheckbox renders a completion marker for a task row.
func TaskCheckbox(completed bool) string {
	if completed {
		return StyleGreen.Render("✔")
	}
	return StyleDim.Render("○")
}

// PriorityPill renders a colored task priority label.
func PriorityPill(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("high")
	case domain.PriorityLow:
		return StyleDim.Render("low")
	default:
		return StyleYellow.Render("med")
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Truncate shortens a string to max runes, appending an ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
