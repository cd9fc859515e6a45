package adb

import (
	"github.com/tmcf/droidctl/internal/platform"
)

func init() {
	platform.NewProviderFunc = func(serial string) (*platform.Provider, error) {
		dev := NewDevice(serial)
		return &platform.Provider{
			Tree:      NewTreeSource(dev),
			Actions:   NewActions(dev),
			Gestures:  NewGestures(dev),
			Clipboard: NewClipboard(dev),
			Launcher:  NewLauncher(dev),
			Screens:   NewScreens(dev),
			Devices:   Lister{},
		}, nil
	}
}
