package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davrell/taskdeck/internal/input"
)

var (
	addDueFlag      string
	addPriorityFlag string
)

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a new task",
	Long: `Add a new task. The description may span multiple arguments.

Use --due to set a deadline (yyyy-MM-dd) and --priority to set the
urgency (1=LOW, 2=MEDIUM, 3=HIGH). Both are optional.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		due, err := input.ParseDueDate(addDueFlag)
		if err != nil {
			fmt.Printf("%s. Continuing without a due date.\n", err)
		}

		pri := Cfg.DefaultPriority
		if addPriorityFlag != "" {
			parsed, ok := input.PriorityFromCode(addPriorityFlag)
			if !ok {
				fmt.Printf("Unrecognized priority %q, using %s.\n", addPriorityFlag, pri)
			} else {
				pri = parsed
			}
		}

		task := Store.Add(strings.Join(args, " "), due, pri)
		fmt.Println(Renderer.Added(task))
		recordEvent("task.added", task.ID, task.Description)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDueFlag, "due", "", "Due date (yyyy-MM-dd)")
	addCmd.Flags().StringVar(&addPriorityFlag, "priority", "", "Priority: 1=LOW, 2=MEDIUM, 3=HIGH")
	rootCmd.AddCommand(addCmd)
}
