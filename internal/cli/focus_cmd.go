package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/evanmoss/dayboard/internal/cli/formatter"
	"github.com/evanmoss/dayboard/internal/domain"
	"github.com/spf13/cobra"
)

func newFocusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Control focus mode and the pinned task",
	}

	cmd.AddCommand(
		newFocusOnCmd(app),
		newFocusOffCmd(app),
		newFocusPinCmd(app),
		newFocusUnpinCmd(app),
		newFocusWindowCmd(app),
		newFocusShowCmd(app),
	)

	return cmd
}

func newFocusOnCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "on",
		Short: "Enable focus mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Profile.SetFocusMode(context.Background(), true); err != nil {
				return err
			}
			fmt.Println("Focus mode on")
			return nil
		},
	}
}

func newFocusOffCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "off",
		Short: "Disable focus mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Profile.SetFocusMode(context.Background(), false); err != nil {
				return err
			}
			fmt.Println("Focus mode off")
			return nil
		},
	}
}

func newFocusPinCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pin ID",
		Short: "Pin a task so it always comes up next",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			// Pinning a virtual occurrence realizes it so the pin survives.
			id := args[0]
			if _, _, ok := domain.ParseVirtualID(id); ok {
				realized, err := app.Tasks.Realize(ctx, id)
				if err != nil {
					return err
				}
				id = realized
			} else if _, err := app.Tasks.GetByID(ctx, id); err != nil {
				return err
			}
			if err := app.Profile.SetFocusedTask(ctx, &id); err != nil {
				return err
			}
			fmt.Printf("Pinned task %s\n", id)
			return nil
		},
	}
}

func newFocusUnpinCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unpin",
		Short: "Clear the pinned task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Profile.SetFocusedTask(context.Background(), nil); err != nil {
				return err
			}
			fmt.Println("Unpinned")
			return nil
		},
	}
}

func newFocusWindowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "window DAYS",
		Short: "Set the future window; -1 disables it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing DAYS: %w", err)
			}
			if err := app.Profile.SetFutureWindow(context.Background(), days); err != nil {
				return err
			}
			if days < 0 {
				fmt.Println("Future window disabled")
			} else {
				fmt.Printf("Future window set to %d days\n", days)
			}
			return nil
		},
	}
}

func newFocusShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current focus settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profile.Get(context.Background())
			if err != nil {
				return err
			}

			mode := formatter.Dim("off")
			if p.FocusMode {
				mode = "on"
			}
			fmt.Printf("%s  %s\n", formatter.Dim("MODE  "), mode)

			pinned := formatter.Dim("none")
			if p.FocusedTaskID != nil {
				pinned = *p.FocusedTaskID
			}
			fmt.Printf("%s  %s\n", formatter.Dim("PINNED"), pinned)

			window := formatter.Dim("disabled")
			if p.FutureWindowDays >= 0 {
				window = fmt.Sprintf("%d days", p.FutureWindowDays)
			}
			fmt.Printf("%s  %s\n", formatter.Dim("WINDOW"), window)
			return nil
		},
	}
}
