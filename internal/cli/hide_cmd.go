package cli

import (
	"context"
	"fmt"

	"github.com/evanmoss/dayboard/internal/contract"
	"github.com/spf13/cobra"
)

func newHideCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "hide ID",
		Short: "Toggle a task in or out of today's list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.DoToday.Toggle(context.Background(), args[0], contract.NewTaskQuery()); err != nil {
				return err
			}
			fmt.Printf("Toggled task %s for today\n", args[0])
			return nil
		},
	}
}

func newHideAllCmd(app *App) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "hide-all",
		Short: "Toggle every task in today's list at once",
		Long: `Flips the whole daily list by majority: when most tasks are visible,
everything is hidden for today; otherwise everything comes back.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.DoToday.ToggleAll(context.Background(), filters.toQuery(cmd.Flags())); err != nil {
				return err
			}
			fmt.Println("Toggled today's list")
			return nil
		},
	}

	filters.register(cmd.Flags())
	return cmd
}
