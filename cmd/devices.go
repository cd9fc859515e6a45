package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmcf/droidctl/internal/output"
	"github.com/tmcf/droidctl/internal/platform"
)

// devicesResult is the top-level output of the devices command.
type devicesResult struct {
	OK      bool                  `yaml:"ok"      json:"ok"`
	Action  string                `yaml:"action"  json:"action"`
	Devices []platform.DeviceInfo `yaml:"devices" json:"devices"`
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List attached Android devices",
	RunE:  runDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}

func runDevices(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}
	if provider.Devices == nil {
		return fmt.Errorf("device listing not supported by this backend")
	}
	devices, err := provider.Devices.Devices()
	if err != nil {
		return err
	}
	if devices == nil {
		devices = []platform.DeviceInfo{}
	}
	return output.Print(devicesResult{OK: true, Action: "devices", Devices: devices})
}
