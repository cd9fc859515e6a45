package adb

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/tmcf/droidctl/internal/platform"
)

// Lister enumerates devices known to the local adb server.
type Lister struct{}

// Devices runs `adb devices -l` and parses the listing.
func (Lister) Devices() ([]platform.DeviceInfo, error) {
	out, err := exec.Command(adbPath(), "devices", "-l").CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("adb devices: %w", err)
	}
	return parseDeviceList(string(out)), nil
}

func parseDeviceList(out string) []platform.DeviceInfo {
	var devices []platform.DeviceInfo
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "List of devices") || strings.HasPrefix(line, "*") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		info := platform.DeviceInfo{Serial: fields[0], State: fields[1]}
		for _, f := range fields[2:] {
			if v, ok := strings.CutPrefix(f, "model:"); ok {
				info.Model = v
			}
		}
		devices = append(devices, info)
	}
	return devices
}
