package cmd

import "github.com/spf13/cobra"

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click on a UI element",
	Long:  "Click a UI element by tree path (from a preceding snapshot or find) or by text query. When the element itself refuses the click, the nearest clickable ancestor is tried.",
	RunE:  runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	clickCmd.Flags().String("path", "", "Tree path of the element (e.g. r/0/2)")
	clickCmd.Flags().String("query", "", "Find the element by text")
}

func runClick(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	query, _ := cmd.Flags().GetString("query")
	return runCommand(cmd, "ui.click", map[string]any{
		"path":  path,
		"query": query,
	})
}
