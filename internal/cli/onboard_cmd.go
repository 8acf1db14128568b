package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mvestberg/phaseplan/internal/cli/formatter"
	"github.com/mvestberg/phaseplan/internal/contract"
	"github.com/mvestberg/phaseplan/internal/domain"
	"github.com/mvestberg/phaseplan/internal/importer"
	"github.com/mvestberg/phaseplan/internal/template"
	"github.com/spf13/cobra"
)

func newOnboardCmd(app *App) *cobra.Command {
	var planFile string

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Set up a student with work day preferences and phases",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var req *contract.OnboardRequest
			var err error
			switch {
			case planFile != "":
				req, err = onboardFromFile(planFile)
			case app.interactive():
				req, err = onboardWizard()
			default:
				return fmt.Errorf("not a terminal; pass --file with an onboarding plan")
			}
			if err != nil {
				return err
			}

			result, err := app.Phases.Onboard(ctx, *req)
			if err != nil {
				return err
			}

			fmt.Printf("Welcome, %s!\n\n", formatter.Bold(result.Student.Name))
			for _, p := range result.Phases {
				fmt.Printf("  %d. %s %s\n", p.OrderIndex, p.Name,
					formatter.Dim(fmt.Sprintf("(due %s)", formatter.FullDate(p.Deadline))))
			}
			fmt.Printf("\nRun %s to build your first schedule.\n",
				formatter.Bold("phaseplan plan "+string(result.Phases[0].Type)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&planFile, "file", "f", "", "Onboarding plan YAML file")

	return cmd
}

func onboardFromFile(path string) (*contract.OnboardRequest, error) {
	plan, err := importer.LoadPlan(path)
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidatePlan(plan); len(errs) > 0 {
		for _, e := range errs {
			fmt.Println(formatter.StyleRed.Render("✘ " + e.Error()))
		}
		return nil, fmt.Errorf("plan file has %d validation error(s)", len(errs))
	}
	return importer.Convert(plan)
}

// onboardWizard walks the student through name, phase selection, deadlines,
// and weekly work intensities.
func onboardWizard() (*contract.OnboardRequest, error) {
	var name, thesis string
	var selectedTypes []string

	typeOptions := make([]huh.Option[string], 0, 4)
	for _, t := range template.AvailableTypes() {
		tmpl, _ := template.Get(t)
		label := fmt.Sprintf("%s %s — %s", tmpl.Icon, tmpl.Name, tmpl.Description)
		typeOptions = append(typeOptions, huh.NewOption(label, string(t)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name").
				Value(&name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewMultiSelect[string]().
				Title("Which phases are you planning?").
				Description("Deadlines must follow the order shown").
				Options(typeOptions...).
				Value(&selectedTypes).
				Validate(func(v []string) error {
					if len(v) == 0 {
						return fmt.Errorf("pick at least one phase")
					}
					return nil
				}),
			huh.NewInput().
				Title("Thesis deadline (optional)").
				Placeholder("YYYY-MM-DD").
				Value(&thesis).
				Validate(validateOptionalDate),
		),
	).WithTheme(phaseplanHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}

	// Deadline per selected phase, then weekly intensities. Built after the
	// first form because the fields depend on the selection.
	deadlines := make([]string, len(selectedTypes))
	deadlineFields := make([]huh.Field, 0, len(selectedTypes))
	for i, t := range selectedTypes {
		tmpl, _ := template.Get(domain.PhaseType(t))
		deadlineFields = append(deadlineFields, huh.NewInput().
			Title(fmt.Sprintf("%s deadline", tmpl.Name)).
			Description(fmt.Sprintf("typically %d weeks", tmpl.DefaultDurationWeeks)).
			Placeholder("YYYY-MM-DD").
			Value(&deadlines[i]).
			Validate(validateRequiredDate))
	}

	intensities := make([]string, len(weekdayOrder))
	intensityFields := make([]huh.Field, 0, len(weekdayOrder))
	for i, day := range weekdayOrder {
		intensities[i] = string(domain.IntensityNone)
		if day != "saturday" && day != "sunday" {
			intensities[i] = string(domain.IntensityLight)
		}
		intensityFields = append(intensityFields, wizardSelectIntensity(day, &intensities[i]))
	}

	form = huh.NewForm(
		huh.NewGroup(deadlineFields...).Title("Phase Deadlines"),
		huh.NewGroup(intensityFields...).Title("Weekly Work Days"),
	).WithTheme(phaseplanHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}

	req := &contract.OnboardRequest{
		StudentName: name,
		Preferences: make(domain.WorkDayPreferences, len(weekdayOrder)),
	}
	for i, day := range weekdayOrder {
		req.Preferences[day] = domain.Intensity(intensities[i])
	}
	for i, t := range selectedTypes {
		deadline, err := time.Parse(domain.DateLayout, deadlines[i])
		if err != nil {
			return nil, fmt.Errorf("parsing deadline for %s: %w", t, err)
		}
		req.Phases = append(req.Phases, contract.PhaseSelection{
			Type:     domain.PhaseType(t),
			Deadline: deadline,
		})
	}
	if thesis != "" {
		t, err := time.Parse(domain.DateLayout, thesis)
		if err != nil {
			return nil, fmt.Errorf("parsing thesis deadline: %w", err)
		}
		req.ThesisDeadline = &t
	}
	return req, nil
}
