package adb

import (
	"strconv"
	"strings"

	"github.com/tmcf/droidctl/internal/ui"
)

// Actions performs node actions by synthesizing input events at the node's
// center. Acceptance mirrors the accessibility action model: a node that is
// neither clickable nor editable refuses clicks, so callers walk up to an
// ancestor that accepts.
type Actions struct {
	dev *Device
}

// NewActions returns an Actions bound to the device.
func NewActions(dev *Device) *Actions {
	return &Actions{dev: dev}
}

// Click taps the node's center.
func (a *Actions) Click(n ui.Node) bool {
	attrs := n.Attrs()
	if !attrs.Clickable && !attrs.Editable {
		return false
	}
	return a.tap(attrs.Bounds)
}

// Focus brings the node into input focus. Touch devices expose no direct
// focus primitive; a tap on a focusable node is the closest equivalent.
func (a *Actions) Focus(n ui.Node) bool {
	attrs := n.Attrs()
	if !attrs.Focusable && !attrs.Editable {
		return false
	}
	return a.tap(attrs.Bounds)
}

// SetText types text into the node, which must already hold focus.
func (a *Actions) SetText(n ui.Node, text string) bool {
	if !n.Attrs().Editable {
		return false
	}
	_, err := a.dev.Shell("input", "text", escapeInputText(text))
	return err == nil
}

// Paste sends KEYCODE_PASTE to the focused node.
func (a *Actions) Paste(n ui.Node) bool {
	if !n.Attrs().Editable {
		return false
	}
	_, err := a.dev.Shell("input", "keyevent", "279")
	return err == nil
}

func (a *Actions) tap(b ui.Rect) bool {
	if b.Right <= b.Left || b.Bottom <= b.Top {
		return false
	}
	_, err := a.dev.Shell("input", "tap", strconv.Itoa(b.CenterX()), strconv.Itoa(b.CenterY()))
	return err == nil
}

// inputTextEscaper prepares text for `input text`: spaces must be encoded as
// %s and shell metacharacters escaped, or the device shell mangles them.
var inputTextEscaper = strings.NewReplacer(
	"\\", "\\\\",
	" ", "%s",
	"\"", "\\\"",
	"'", "\\'",
	"(", "\\(",
	")", "\\)",
	"&", "\\&",
	"|", "\\|",
	";", "\\;",
	"<", "\\<",
	">", "\\>",
	"*", "\\*",
	"~", "\\~",
	"$", "\\$",
	"`", "\\`",
)

func escapeInputText(s string) string {
	return inputTextEscaper.Replace(s)
}
