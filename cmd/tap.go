package cmd

import "github.com/spf13/cobra"

var tapCmd = &cobra.Command{
	Use:   "tap",
	Short: "Tap at screen coordinates",
	Long:  "Dispatch a tap gesture at absolute screen coordinates and wait for it to complete.",
	RunE:  runTap,
}

func init() {
	rootCmd.AddCommand(tapCmd)
	tapCmd.Flags().Int("x", 0, "X screen coordinate in pixels")
	tapCmd.Flags().Int("y", 0, "Y screen coordinate in pixels")
	tapCmd.Flags().Int("duration", 60, "Press duration in ms (40-1000)")
}

func runTap(cmd *cobra.Command, args []string) error {
	params := map[string]any{}
	if cmd.Flags().Changed("x") {
		params["x"], _ = cmd.Flags().GetInt("x")
	}
	if cmd.Flags().Changed("y") {
		params["y"], _ = cmd.Flags().GetInt("y")
	}
	if cmd.Flags().Changed("duration") {
		params["durationMs"], _ = cmd.Flags().GetInt("duration")
	}
	return runCommand(cmd, "screen.tap", params)
}
