package command

import "fmt"

// Error codes surfaced to callers. Platform failures are converted to the
// nearest code at the command boundary; nothing panics past it.
const (
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeAccessibilityDisabled = "ACCESSIBILITY_DISABLED"
	CodeAppNotFound           = "APP_NOT_FOUND"
	CodeAppLaunchFailed       = "APP_LAUNCH_FAILED"
	CodeTapFailed             = "TAP_FAILED"
	CodeTextInputFailed       = "TEXT_INPUT_FAILED"
	CodeIMEPasteFailed        = "IME_PASTE_FAILED"
	CodeUIClickFailed         = "UI_CLICK_FAILED"
	CodeUINotFound            = "UI_NOT_FOUND"
	CodeUIWaitTimeout         = "UI_WAIT_TIMEOUT"
	CodeScreenshotFailed      = "SCREENSHOT_FAILED"
)

// Error is the command-layer failure shape: a stable code plus a
// human-readable message.
type Error struct {
	Code    string `yaml:"code"    json:"code"`
	Message string `yaml:"message" json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Errorf builds an Error with a formatted message.
func Errorf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}
