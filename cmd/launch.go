package cmd

import "github.com/spf13/cobra"

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Launch an app by package name",
	Long:  "Launch an Android application by package name, optionally targeting a specific activity.",
	RunE:  runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
	launchCmd.Flags().String("package", "", "Package name (e.g. com.android.settings)")
	launchCmd.Flags().String("activity", "", "Activity to start (default: the package's launcher activity)")
}

func runLaunch(cmd *cobra.Command, args []string) error {
	pkg, _ := cmd.Flags().GetString("package")
	activity, _ := cmd.Flags().GetString("activity")
	return runCommand(cmd, "app.launch", map[string]any{
		"packageName": pkg,
		"activity":    activity,
	})
}
