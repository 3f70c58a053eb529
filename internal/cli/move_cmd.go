package cli

import (
	"context"
	"fmt"

	"github.com/evanmoss/dayboard/internal/contract"
	"github.com/spf13/cobra"
)

func newMoveCmd(app *App) *cobra.Command {
	var sectionID, parentID, overID string
	var after bool

	cmd := &cobra.Command{
		Use:   "move ID",
		Short: "Move a task to a new position",
		Long: `Move a task within or across sibling groups. The destination group is
given by --section and --parent; --over names the sibling to insert before
(or after, with --after). Omitting --over appends to the group.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.MoveRequest{
				TaskID:       args[0],
				DraggingDown: after,
			}
			if cmd.Flags().Changed("section") {
				req.SectionID = &sectionID
			}
			if cmd.Flags().Changed("parent") {
				req.ParentID = &parentID
			}
			if cmd.Flags().Changed("over") {
				req.OverID = &overID
			}

			result, err := app.Move.Move(context.Background(), req)
			if err != nil {
				return err
			}

			if result.Realized {
				fmt.Printf("Saved today's occurrence as %s\n", result.TaskID)
			}
			fmt.Printf("Moved task %s (%d positions updated)\n", result.TaskID, result.Updated)
			return nil
		},
	}

	cmd.Flags().StringVar(&sectionID, "section", "", "Destination section ID")
	cmd.Flags().StringVar(&parentID, "parent", "", "Destination parent task ID")
	cmd.Flags().StringVar(&overID, "over", "", "Sibling to insert relative to")
	cmd.Flags().BoolVar(&after, "after", false, "Insert after --over instead of before")

	return cmd
}
