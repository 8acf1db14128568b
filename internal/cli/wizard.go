package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mvestberg/phaseplan/internal/cli/formatter"
	"github.com/mvestberg/phaseplan/internal/domain"
)

// phaseplanHuhTheme returns a custom huh theme using the existing Gruvbox
// palette.
func phaseplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateRequiredDate accepts a YYYY-MM-DD date string.
func validateRequiredDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	return validateRequiredDate(s)
}

// weekdayOrder fixes the display order of intensity selects in wizards.
var weekdayOrder = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// wizardSelectIntensity creates a select for one weekday's work intensity.
// The result pointer must be pre-set to the default choice.
func wizardSelectIntensity(day string, result *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title(day).
		Options(
			huh.NewOption("off", string(domain.IntensityNone)),
			huh.NewOption("light (1 task)", string(domain.IntensityLight)),
			huh.NewOption("heavy (2 tasks)", string(domain.IntensityHeavy)),
		).
		Value(result)
}

// wizardSelectPhase creates a huh form to select a phase from the list.
func wizardSelectPhase(phases []*domain.Phase, title string, result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(phases))
	for _, p := range phases {
		label := fmt.Sprintf("%s (due %s)", p.Name, p.Deadline.Format(domain.DateLayout))
		options = append(options, huh.NewOption(label, p.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(result),
		),
	).WithTheme(phaseplanHuhTheme()).WithShowHelp(false)
}

// wizardSelectTasks creates a huh form to multi-select incomplete tasks.
func wizardSelectTasks(tasks []*domain.Task, result *[]string) *huh.Form {
	options := make([]huh.Option[string], 0, len(tasks))
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		label := fmt.Sprintf("%s — %s", t.Date.Format("Jan 2"), formatter.Truncate(t.Description, 60))
		options = append(options, huh.NewOption(label, t.ID))
	}
	if len(options) == 0 {
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which tasks did you finish?").
				Options(options...).
				Value(result),
		),
	).WithTheme(phaseplanHuhTheme()).WithShowHelp(false)
}
