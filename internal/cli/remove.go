package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a task",
	Long: `Remove the task with the given ID. Removed IDs are never
reassigned to later tasks.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("task ID must be a number, got %q", args[0])
		}

		if !Store.Remove(id) {
			fmt.Println(Renderer.NotFound(id))
			return nil
		}
		fmt.Println(Renderer.Removed(id))
		recordEvent("task.removed", id, "")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
