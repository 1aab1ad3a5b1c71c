package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/davrell/taskdeck/internal/input"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the workload category for the current task count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}
		fmt.Println(Renderer.Workload(Store.Workload()))
		return nil
	},
}

var overdueTodayFlag string

var overdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "Count incomplete tasks past their due date",
	Long: `Count incomplete tasks whose due date is strictly before today.

Use --today to supply a different reference date (yyyy-MM-dd).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		today := time.Now()
		if overdueTodayFlag != "" {
			parsed, err := input.ParseDueDate(overdueTodayFlag)
			if err != nil {
				return fmt.Errorf("invalid --today value %q: use yyyy-MM-dd", overdueTodayFlag)
			}
			today = *parsed
		}

		count, category := Store.Overdue(today)
		fmt.Println(Renderer.Overdue(count, category))
		return nil
	},
}

func init() {
	overdueCmd.Flags().StringVar(&overdueTodayFlag, "today", "", "Reference date (yyyy-MM-dd)")
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(overdueCmd)
}
