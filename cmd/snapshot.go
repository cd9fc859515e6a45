package cmd

import "github.com/spf13/cobra"

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Dump the current UI tree",
	Long:  "Dump the UI element tree in breadth-first order with paths, bounds, and interaction flags, capped to a maximum node count.",
	RunE:  runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().Int("max-nodes", 300, "Max nodes in the snapshot")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	params := map[string]any{}
	if cmd.Flags().Changed("max-nodes") {
		params["maxNodes"], _ = cmd.Flags().GetInt("max-nodes")
	}
	return runCommand(cmd, "ui.snapshot", params)
}
