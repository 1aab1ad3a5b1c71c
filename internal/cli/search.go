package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search tasks by description",
	Long: `Find tasks whose description contains the keyword, case-insensitive.
Results keep their creation order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		keyword := strings.Join(args, " ")
		fmt.Println(Renderer.SearchResults(keyword, Store.Search(keyword)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
