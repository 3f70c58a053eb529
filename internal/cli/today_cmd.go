package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/evanmoss/dayboard/internal/cli/formatter"
	"github.com/evanmoss/dayboard/internal/contract"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			q := filters.toQuery(cmd.Flags())
			q.View = "daily"

			reps, err := app.Dashboard.Tasks(ctx, q)
			if err != nil {
				return err
			}
			sections, err := app.Sections.List(ctx)
			if err != nil {
				return err
			}
			report, err := app.Dashboard.Progress(ctx, q)
			if err != nil {
				return err
			}

			fmt.Print(formatter.RenderTaskList(reps, sections, time.Now()))
			fmt.Println()
			fmt.Print(formatter.RenderProgressReport(report))
			return nil
		},
	}

	filters.register(cmd.Flags())
	return cmd
}

func newNextCmd(app *App) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the single most relevant task",
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := app.Dashboard.NextUp(context.Background(), filters.toQuery(cmd.Flags()))
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderNext(rep, time.Now()))
			return nil
		},
	}

	filters.register(cmd.Flags())
	return cmd
}

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show today's completion summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Dashboard.Progress(context.Background(), contract.NewTaskQuery())
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderProgressReport(report))
			return nil
		},
	}
}
