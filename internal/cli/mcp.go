package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davrell/taskdeck/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server on stdio",
	Long: `Run taskdeck as an MCP (Model Context Protocol) server over stdio,
exposing the task store as tools for AI coding assistants: add_task,
list_tasks, complete_task, remove_task, search_tasks, edit_task,
get_workload, and check_overdue.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}
		srv := mcp.NewServer(Store, appVersion)
		return srv.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
