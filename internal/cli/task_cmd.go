package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/evanmoss/dayboard/internal/cli/formatter"
	"github.com/evanmoss/dayboard/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskStatusCmd(app, "done", domain.TaskCompleted, "Mark a task completed"),
		newTaskStatusCmd(app, "skip", domain.TaskSkipped, "Skip a task for now"),
		newTaskStatusCmd(app, "archive", domain.TaskArchived, "Archive a task or series template"),
		newTaskEditCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var notes, link, category, priority, recur, due, sectionID, parentID string

	cmd := &cobra.Command{
		Use:   "add DESCRIPTION",
		Short: "Create a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &domain.Task{
				Description: args[0],
				Notes:       notes,
				Link:        link,
				Category:    category,
				Priority:    domain.Priority(priority),
				Recurrence:  domain.Recurrence(recur),
			}
			if cmd.Flags().Changed("section") {
				t.SectionID = &sectionID
			}
			if cmd.Flags().Changed("parent") {
				t.ParentID = &parentID
			}
			if due != "" {
				d, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("parsing --due: %w", err)
				}
				t.DueDate = &d
			}

			if err := app.Tasks.Create(context.Background(), t); err != nil {
				return err
			}

			fmt.Printf("Created task %s (%s)\n", t.Description, t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&link, "link", "", "Reference URL")
	cmd.Flags().StringVar(&category, "category", "", "Category label")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high)")
	cmd.Flags().StringVar(&recur, "recur", "", "Recurrence (daily|weekly|monthly)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&sectionID, "section", "", "Section ID")
	cmd.Flags().StringVar(&parentID, "parent", "", "Parent task ID")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			q := filters.toQuery(cmd.Flags())

			reps, err := app.Dashboard.Tasks(ctx, q)
			if err != nil {
				return err
			}
			sections, err := app.Sections.List(ctx)
			if err != nil {
				return err
			}

			fmt.Print(formatter.RenderTaskList(reps, sections, time.Now()))
			return nil
		},
	}

	filters.register(cmd.Flags())
	return cmd
}

func newTaskStatusCmd(app *App, use string, status domain.TaskStatus, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Tasks.SetStatus(context.Background(), args[0], status)
			if err != nil {
				return err
			}
			if id != args[0] {
				fmt.Printf("Saved today's occurrence as %s\n", id)
			}
			fmt.Printf("Task %s is now %s\n", id, status)
			return nil
		},
	}
}

func newTaskEditCmd(app *App) *cobra.Command {
	var description, notes, link, category, priority, due string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := app.Tasks.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("description") {
				t.Description = description
			}
			if cmd.Flags().Changed("notes") {
				t.Notes = notes
			}
			if cmd.Flags().Changed("link") {
				t.Link = link
			}
			if cmd.Flags().Changed("category") {
				t.Category = category
			}
			if cmd.Flags().Changed("priority") {
				t.Priority = domain.Priority(priority)
			}
			if cmd.Flags().Changed("due") {
				if due == "" {
					t.DueDate = nil
				} else {
					d, err := time.Parse("2006-01-02", due)
					if err != nil {
						return fmt.Errorf("parsing --due: %w", err)
					}
					t.DueDate = &d
				}
			}

			id, err := app.Tasks.Update(ctx, t)
			if err != nil {
				return err
			}
			fmt.Printf("Updated task %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&link, "link", "", "Reference URL")
	cmd.Flags().StringVar(&category, "category", "", "Category label")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD); empty clears it")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a task and its subtasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed task %s\n", args[0])
			return nil
		},
	}
}
