package platform

import (
	"errors"
	"image"
	"time"

	"github.com/tmcf/droidctl/internal/ui"
)

// ErrAppNotFound is returned by Launcher implementations when the target
// package or activity cannot be resolved on the device.
var ErrAppNotFound = errors.New("app not found")

// Actions performs accessibility actions on resolved nodes. It is a superset
// of ui.Actor so the editable-target resolver can reuse the same backend.
type Actions interface {
	// Click taps the node; reports whether the node accepted the click.
	Click(n ui.Node) bool
	// Focus gives the node input focus (best-effort on touch-only devices).
	Focus(n ui.Node) bool
	// SetText injects text into the node, which must already hold focus.
	SetText(n ui.Node, text string) bool
	// Paste pastes the current clipboard content into the node.
	Paste(n ui.Node) bool
}

// Gestures dispatches raw touch gestures. Dispatch is asynchronous at the
// platform boundary: an error return means the gesture was rejected outright,
// while completion or cancellation arrives later through the GestureResult.
type Gestures interface {
	DispatchTap(x, y int, duration time.Duration) (*GestureResult, error)
}

// Clipboard sets the device clipboard text.
type Clipboard interface {
	SetText(text string) error
}

// Launcher starts applications on the device. activity may be empty to launch
// the package's default launcher activity. Returns ErrAppNotFound (possibly
// wrapped) when the target does not exist.
type Launcher interface {
	Launch(packageName, activity string) error
}

// ScreenshotOptions configures a screen capture.
type ScreenshotOptions struct {
	Scale float64 // 0.1-1.0 downscale factor (0 = no scaling)
}

// Screenshotter captures the device screen.
type Screenshotter interface {
	Capture(opts ScreenshotOptions) (image.Image, error)
}

// DeviceInfo describes one attached device.
type DeviceInfo struct {
	Serial string `yaml:"serial"          json:"serial"`
	State  string `yaml:"state"           json:"state"`
	Model  string `yaml:"model,omitempty" json:"model,omitempty"`
}

// DeviceLister enumerates attached devices.
type DeviceLister interface {
	Devices() ([]DeviceInfo, error)
}
