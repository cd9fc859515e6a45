package cmd

import "github.com/spf13/cobra"

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for a UI element to appear or disappear",
	Long:  "Poll the UI tree until an element matching the query appears (or, with --gone, disappears) or the timeout is reached.",
	RunE:  runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().String("query", "", "Text to wait for")
	waitCmd.Flags().Bool("gone", false, "Invert: wait until no element matches")
	waitCmd.Flags().Int("timeout", 3000, "Max milliseconds to wait (100-15000)")
	waitCmd.Flags().Int("interval", 150, "Polling interval in milliseconds (50-1000)")
}

func runWait(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	gone, _ := cmd.Flags().GetBool("gone")
	params := map[string]any{"query": query, "expectGone": gone}
	if cmd.Flags().Changed("timeout") {
		params["timeoutMs"], _ = cmd.Flags().GetInt("timeout")
	}
	if cmd.Flags().Changed("interval") {
		params["pollMs"], _ = cmd.Flags().GetInt("interval")
	}
	return runCommand(cmd, "ui.waitFor", params)
}
