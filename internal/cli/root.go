package cli

import (
	"github.com/ameliaholt/weekplan/internal/grid"
	"github.com/ameliaholt/weekplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds everything CLI commands need: the schedule service, the
// injected grid geometry, and environment probes wired up by main.
type App struct {
	Schedule service.ScheduleService
	Geometry grid.Config

	// IsInteractive reports whether stdin is a terminal; the bare command
	// opens the TUI only when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "weekplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var fromLink string

	root := &cobra.Command{
		Use:   "weekplan",
		Short: "Weekly class schedule editor",
		Long: `Edit a weekly class schedule from the terminal: add classes with
day-of-week recurrence, view the laid-out week grid, and move schedules
between machines with export files or share links.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Schedule.Bootstrap(cmd.Context(), fromLink)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&fromLink, "from-link", "",
		"Import a share link before running; replaces the stored schedule for this and later sessions")

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newEditCmd(app),
		newRemoveCmd(app),
		newClearCmd(app),
		newTitleCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newShareCmd(app),
	)

	return root
}
