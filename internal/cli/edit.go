package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/davrell/taskdeck/internal/input"
	"github.com/davrell/taskdeck/internal/store"
)

var (
	editDescriptionFlag string
	editDueFlag         string
	editPriorityFlag    string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task's description, due date, or priority",
	Long: `Edit the task with the given ID. Only the fields you pass flags for
change: --description replaces the text, --due replaces the deadline
(pass "none" to clear it), --priority replaces the urgency.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("task ID must be a number, got %q", args[0])
		}

		current, found := Store.Get(id)
		if !found {
			fmt.Println(Renderer.NotFound(id))
			return nil
		}

		// The store always overwrites the due date on edit, so an
		// untouched --due flag has to pass the current deadline back.
		req := store.EditRequest{Description: editDescriptionFlag, Due: current.Due}
		if cmd.Flags().Changed("due") {
			if editDueFlag == "none" {
				req.Due = nil
			} else {
				due, parseErr := input.ParseDueDate(editDueFlag)
				if parseErr != nil {
					fmt.Printf("%s. Clearing the due date.\n", parseErr)
				}
				req.Due = due
			}
		}
		if editPriorityFlag != "" {
			pri, ok := input.PriorityFromCode(editPriorityFlag)
			if !ok {
				fmt.Printf("Unrecognized priority %q, using %s.\n", editPriorityFlag, pri)
			}
			req.Priority = &pri
		}

		task, ok := Store.Edit(id, req)
		if !ok {
			fmt.Println(Renderer.NotFound(id))
			return nil
		}
		fmt.Println(Renderer.Edited(task))
		recordEvent("task.edited", task.ID, task.Description)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editDescriptionFlag, "description", "", "Replacement description")
	editCmd.Flags().StringVar(&editDueFlag, "due", "", "Replacement due date (yyyy-MM-dd, or \"none\" to clear)")
	editCmd.Flags().StringVar(&editPriorityFlag, "priority", "", "Replacement priority: 1=LOW, 2=MEDIUM, 3=HIGH")
	rootCmd.AddCommand(editCmd)
}
