package adb

import (
	"fmt"
	"strings"
)

// Clipboard sets device clipboard text through the clipboard shell service.
type Clipboard struct {
	dev *Device
}

// NewClipboard returns a Clipboard bound to the device.
func NewClipboard(dev *Device) *Clipboard {
	return &Clipboard{dev: dev}
}

// SetText writes text to the device clipboard.
func (c *Clipboard) SetText(text string) error {
	if _, err := c.dev.Shell("cmd", "clipboard", "set-text", shellQuote(text)); err != nil {
		return fmt.Errorf("clipboard set: %w", err)
	}
	return nil
}

// shellQuote single-quotes a string for the device shell.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
