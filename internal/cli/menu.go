package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davrell/taskdeck/internal/menu"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive menu loop",
	Long: `Run the nine-choice interactive menu: add, list, complete, remove,
search, edit, workload summary, overdue check, exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}
		loop := menu.New(Store, Renderer, Events, Cfg.DefaultPriority, os.Stdin, os.Stdout)
		return loop.Run()
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
