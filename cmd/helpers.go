package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmcf/droidctl/internal/command"
	"github.com/tmcf/droidctl/internal/output"
	"github.com/tmcf/droidctl/internal/platform"
)

// newProvider builds the device provider for the serial selected by the
// root --serial flag.
func newProvider() (*platform.Provider, error) {
	serial, _ := rootCmd.PersistentFlags().GetString("serial")
	return platform.NewProvider(serial)
}

// runCommand invokes one handler command and prints its result. Handler
// errors are printed in the same {ok, code, message} shape agents see over
// MCP, and also returned so the process exits non-zero.
func runCommand(cmd *cobra.Command, name string, params map[string]any) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}
	result, cerr := command.New(provider).Handle(cmd.Context(), name, params)
	if cerr != nil {
		_ = output.Print(map[string]any{"ok": false, "code": cerr.Code, "message": cerr.Message})
		return fmt.Errorf("%s: %s", cerr.Code, cerr.Message)
	}
	return output.Print(result)
}
