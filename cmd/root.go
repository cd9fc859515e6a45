package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmcf/droidctl/internal/output"
	"github.com/tmcf/droidctl/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "droidctl",
	Short: "Read and interact with Android UI elements",
	Long:  "A CLI tool that lets AI agents read and interact with Android devices over adb: dump the UI tree, find and click elements, type text, and launch apps.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().String("serial", "", "Device serial (default: the only attached device, or $ANDROID_SERIAL)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Use the root persistent flag directly to avoid conflicts with
		// subcommand local flags (e.g. screenshot --format png/jpg).
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml", "":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
