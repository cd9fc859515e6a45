package cmd

import "github.com/spf13/cobra"

var typeCmd = &cobra.Command{
	Use:   "type",
	Short: "Type text into an editable field",
	Long:  "Type text into the focused editable field, or find a field by text first with --target.",
	RunE:  runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
	typeCmd.Flags().String("text", "", "Text to type")
	typeCmd.Flags().String("target", "", "Find the target field by text before typing (label, hint, or resource id)")
}

func runType(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	target, _ := cmd.Flags().GetString("target")
	return runCommand(cmd, "text.input", map[string]any{
		"text":        text,
		"targetQuery": target,
	})
}
