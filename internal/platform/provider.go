package platform

import (
	"fmt"

	"github.com/tmcf/droidctl/internal/ui"
)

// Provider bundles all device backends for the configured transport.
type Provider struct {
	Tree      ui.TreeSource
	Actions   Actions
	Gestures  Gestures
	Clipboard Clipboard
	Launcher  Launcher
	Screens   Screenshotter
	Devices   DeviceLister
}

// ErrUnavailable is returned when no device backend has been registered.
var ErrUnavailable = fmt.Errorf("no device backend available")

// NewProviderFunc is set by backend packages via init().
// See internal/platform/adb/init.go for the adb registration.
var NewProviderFunc func(serial string) (*Provider, error)

// NewProvider returns a Provider bound to the given device serial. An empty
// serial selects the only attached device (or honors ANDROID_SERIAL).
func NewProvider(serial string) (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnavailable
	}
	return NewProviderFunc(serial)
}
