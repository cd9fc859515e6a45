package adb

import (
	"fmt"
	"strings"

	"github.com/tmcf/droidctl/internal/platform"
)

// Launcher starts applications through the activity manager.
type Launcher struct {
	dev *Device
}

// NewLauncher returns a Launcher bound to the device.
func NewLauncher(dev *Device) *Launcher {
	return &Launcher{dev: dev}
}

// Launch starts the given package. With an explicit activity it uses
// `am start -n`; otherwise it fires the package's LAUNCHER intent through
// monkey, which needs no activity name.
func (l *Launcher) Launch(packageName, activity string) error {
	if activity != "" {
		component := packageName + "/" + activity
		out, err := l.dev.Shell("am", "start", "-n", component)
		if err != nil {
			return fmt.Errorf("am start %s: %w", component, err)
		}
		// am exits 0 even when the component is bogus; errors land in stdout.
		if strings.Contains(out, "does not exist") || strings.Contains(out, "Error type 3") {
			return fmt.Errorf("%s: %w", component, platform.ErrAppNotFound)
		}
		if strings.Contains(out, "Error") {
			return fmt.Errorf("am start %s: %s", component, firstLine(out))
		}
		return nil
	}

	out, err := l.dev.Shell("monkey", "-p", packageName, "-c", "android.intent.category.LAUNCHER", "1")
	if err != nil {
		return fmt.Errorf("launch %s: %w", packageName, err)
	}
	if strings.Contains(out, "No activities found") {
		return fmt.Errorf("%s: %w", packageName, platform.ErrAppNotFound)
	}
	return nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
