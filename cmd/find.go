package cmd

import "github.com/spf13/cobra"

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find the best-matching UI element",
	Long:  "Search the UI tree for the element whose text, description, hint, or resource id best matches a query. Returns the element's path, bounds, and center point.",
	RunE:  runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().String("query", "", "Text to search for (case-insensitive substring match)")
}

func runFind(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	return runCommand(cmd, "ui.find", map[string]any{"query": query})
}
