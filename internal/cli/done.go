package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as completed",
	Long: `Mark the task with the given ID as completed. Completing an
already-completed task succeeds silently.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("task ID must be a number, got %q", args[0])
		}

		task, ok := Store.Complete(id)
		if !ok {
			fmt.Println(Renderer.NotFound(id))
			return nil
		}
		fmt.Println(Renderer.Completed(task))
		recordEvent("task.completed", task.ID, task.Description)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
