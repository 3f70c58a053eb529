package cli

import (
	"context"
	"fmt"

	"github.com/evanmoss/dayboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSectionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Manage sections",
	}

	cmd.AddCommand(
		newSectionAddCmd(app),
		newSectionListCmd(app),
		newSectionRenameCmd(app),
		newSectionRemoveCmd(app),
	)

	return cmd
}

func newSectionAddCmd(app *App) *cobra.Command {
	var noFocus bool

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Sections.Create(context.Background(), args[0], !noFocus)
			if err != nil {
				return err
			}
			fmt.Printf("Created section %s (%s)\n", s.Name, s.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noFocus, "no-focus", false, "Exclude this section from focus mode")
	return cmd
}

func newSectionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			sections, err := app.Sections.List(context.Background())
			if err != nil {
				return err
			}
			if len(sections) == 0 {
				fmt.Println(formatter.Dim("No sections yet."))
				return nil
			}

			headers := []string{"ID", "NAME", "ORDER", "FOCUS"}
			rows := make([][]string, 0, len(sections))
			for _, s := range sections {
				focus := formatter.Dim("excluded")
				if s.IncludeInFocus {
					focus = "yes"
				}
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					s.Name,
					fmt.Sprintf("%d", s.Order),
					focus,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newSectionRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sections, err := app.Sections.List(ctx)
			if err != nil {
				return err
			}
			for i := range sections {
				if sections[i].ID == args[0] {
					sections[i].Name = args[1]
					if err := app.Sections.Update(ctx, &sections[i]); err != nil {
						return err
					}
					fmt.Printf("Renamed section %s to %s\n", args[0], args[1])
					return nil
				}
			}
			return fmt.Errorf("no section %s", args[0])
		},
	}
}

func newSectionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a section; its tasks become unsectioned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sections.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed section %s\n", args[0])
			return nil
		},
	}
}
