package cli

import (
	"github.com/evanmoss/dayboard/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks     service.TaskService
	Sections  service.SectionService
	Dashboard service.DashboardService
	Move      service.MoveService
	DoToday   service.DoTodayService
	Profile   service.ProfileService
}

// NewRootCmd creates the top-level "dayboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dayboard",
		Short: "Daily task dashboard with recurring series",
	}

	root.AddCommand(
		newTaskCmd(app),
		newSectionCmd(app),
		newTodayCmd(app),
		newNextCmd(app),
		newProgressCmd(app),
		newMoveCmd(app),
		newHideCmd(app),
		newHideAllCmd(app),
		newFocusCmd(app),
	)

	return root
}
