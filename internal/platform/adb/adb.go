// Package adb drives an Android device through the adb command-line tool:
// the UI tree comes from uiautomator dumps, input from the `input` shell
// command, and app control from the activity manager.
package adb

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Device is a handle to one Android device reachable over adb. An empty
// serial selects the only attached device (adb's own default, which also
// honors ANDROID_SERIAL).
type Device struct {
	Serial  string
	ADBPath string
}

// NewDevice returns a Device using the adb binary from $ADB or the PATH.
func NewDevice(serial string) *Device {
	return &Device{Serial: serial, ADBPath: adbPath()}
}

func adbPath() string {
	if p := os.Getenv("ADB"); p != "" {
		return p
	}
	return "adb"
}

func (d *Device) args(sub ...string) []string {
	var args []string
	if d.Serial != "" {
		args = append(args, "-s", d.Serial)
	}
	return append(args, sub...)
}

// Shell runs an adb shell command and returns its combined output.
func (d *Device) Shell(cmdArgs ...string) (string, error) {
	full := d.args(append([]string{"shell"}, cmdArgs...)...)
	out, err := exec.Command(d.ADBPath, full...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("adb shell %s: %s (%w)", cmdArgs[0], strings.TrimSpace(string(out)), err)
	}
	return string(out), nil
}

// ExecOut runs a device command through `adb exec-out`, which carries binary
// stdout without the pty newline mangling of `adb shell`.
func (d *Device) ExecOut(cmdArgs ...string) ([]byte, error) {
	full := d.args(append([]string{"exec-out"}, cmdArgs...)...)
	out, err := exec.Command(d.ADBPath, full...).Output()
	if err != nil {
		return nil, fmt.Errorf("adb exec-out %s: %w", cmdArgs[0], err)
	}
	return out, nil
}

// ShellCommand builds an exec.Cmd for an adb shell invocation without
// starting it, for callers that manage the process lifecycle themselves.
func (d *Device) ShellCommand(cmdArgs ...string) *exec.Cmd {
	full := d.args(append([]string{"shell"}, cmdArgs...)...)
	return exec.Command(d.ADBPath, full...)
}
