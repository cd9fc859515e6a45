package adb

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tmcf/droidctl/internal/platform"
)

// Gestures dispatches raw touch gestures through the device input service.
type Gestures struct {
	dev *Device
}

// NewGestures returns a Gestures bound to the device.
func NewGestures(dev *Device) *Gestures {
	return &Gestures{dev: dev}
}

// DispatchTap issues a press-and-hold tap as a zero-distance swipe. The
// shell command is started asynchronously: a start failure means the gesture
// was rejected at dispatch, while the returned future resolves once the
// device reports the gesture finished (or failed mid-flight).
func (g *Gestures) DispatchTap(x, y int, duration time.Duration) (*platform.GestureResult, error) {
	sx, sy := strconv.Itoa(x), strconv.Itoa(y)
	ms := strconv.FormatInt(duration.Milliseconds(), 10)

	cmd := g.dev.ShellCommand("input", "swipe", sx, sy, sx, sy, ms)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("gesture dispatch: %w", err)
	}

	result := platform.NewGestureResult()
	go func() {
		result.Complete(cmd.Wait() == nil)
	}()
	return result, nil
}
