// Package formatter renders service responses for the terminal using a
// shared Gruvbox-inspired palette.
package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mvestberg/phaseplan/internal/domain"
)

var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CriticalityColor returns the style for a criticality level.
func CriticalityColor(c domain.Criticality) lipgloss.Style {
	switch c {
	case domain.CriticalityCritical:
		return StyleRed
	case domain.CriticalityHigh:
		return StyleYellow
	case domain.CriticalityMedium:
		return StyleBlue
	default:
		return StyleGreen
	}
}

// CriticalityIndicator returns a colored indicator such as "● CRITICAL".
func CriticalityIndicator(c domain.Criticality) string {
	label := strings.ToUpper(string(c))
	return CriticalityColor(c).Render("● " + label)
}

// OnTrackPill returns a colored on-track / behind indicator.
func OnTrackPill(onTrack bool) string {
	if onTrack {
		return StyleGreen.Render("✔ on track")
	}
	return StyleRed.Render("✘ behind")
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
