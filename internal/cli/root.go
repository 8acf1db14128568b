package cli

import (
	"strings"

	"github.com/mvestberg/phaseplan/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Phases      service.PhaseService
	Schedules   service.ScheduleService
	Coordinator service.CoordinatorService
	Progress    service.ProgressService

	// DefaultStudent pins the student used when commands get no --student
	// flag. Empty means auto-resolve (sole student, or an error).
	DefaultStudent string

	// IsInteractive reports whether stdin is a terminal; wizards are only
	// offered when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "phaseplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "phaseplan",
		Short: "Research phase planner and progress tracker",
	}

	// Accept underscore spellings for flag names, matching phase type syntax.
	root.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newOnboardCmd(app),
		newPhaseCmd(app),
		newPlanCmd(app),
		newTasksCmd(app),
		newStatusCmd(app),
		newTimelineCmd(app),
		newPathCmd(app),
		newReplanCmd(app),
		newLogCmd(app),
		newSummaryCmd(app),
		newDashboardCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
