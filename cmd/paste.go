package cmd

import "github.com/spf13/cobra"

var pasteCmd = &cobra.Command{
	Use:   "paste",
	Short: "Paste text through the clipboard",
	Long:  "Stage text on the device clipboard and paste it into an editable field. Unlike type, this carries text the key-event path cannot (emoji, CJK, long strings).",
	RunE:  runPaste,
}

func init() {
	rootCmd.AddCommand(pasteCmd)
	pasteCmd.Flags().String("text", "", "Text to paste")
	pasteCmd.Flags().String("target", "", "Find the target field by text before pasting")
}

func runPaste(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	target, _ := cmd.Flags().GetString("target")
	return runCommand(cmd, "ime.paste", map[string]any{
		"text":        text,
		"targetQuery": target,
	})
}
