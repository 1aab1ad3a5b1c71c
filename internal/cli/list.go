package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davrell/taskdeck/internal/render"
)

var listFormatFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks sorted by due date",
	Long: `List all tasks sorted by due date ascending, undated tasks last,
with priority (LOW before HIGH) breaking ties.

Use --format yaml for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		format := Cfg.Format
		if listFormatFlag != "" {
			format = listFormatFlag
		}

		tasks := Store.List()
		switch format {
		case "yaml":
			out, err := render.YAML(tasks)
			if err != nil {
				return fmt.Errorf("rendering task list: %w", err)
			}
			fmt.Print(out)
		case "table":
			fmt.Println(Renderer.TaskList(tasks))
		default:
			return fmt.Errorf("unknown format %q: use table or yaml", format)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFormatFlag, "format", "", "Output format: table or yaml")
	rootCmd.AddCommand(listCmd)
}
