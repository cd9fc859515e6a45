package command

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image/jpeg"
	"image/png"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tmcf/droidctl/internal/platform"
	"github.com/tmcf/droidctl/internal/ui"
)

const (
	defaultTapDurationMs = 60
	minTapDurationMs     = 40
	maxTapDurationMs     = 1000

	defaultSnapshotMaxNodes = 300

	defaultWaitTimeoutMs = 3000
	minWaitTimeoutMs     = 100
	maxWaitTimeoutMs     = 15000

	defaultWaitPollMs = 150
	minWaitPollMs     = 50
	maxWaitPollMs     = 1000
)

// Handler maps named commands with JSON-style parameter maps to calls against
// the device provider and wraps results as response maps. One command runs
// start-to-finish before the next; the only state between commands is the
// live device UI, re-fetched fresh per operation.
type Handler struct {
	provider *platform.Provider
}

// New returns a Handler bound to the given provider.
func New(provider *platform.Provider) *Handler {
	return &Handler{provider: provider}
}

// Handle dispatches one command. On failure it returns a nil response and a
// taxonomy error; platform failures never propagate as raw errors.
func (h *Handler) Handle(ctx context.Context, name string, params map[string]any) (map[string]any, *Error) {
	switch name {
	case "app.launch":
		return h.appLaunch(params)
	case "screen.tap":
		return h.screenTap(ctx, params)
	case "text.input":
		return h.textInput(params)
	case "ime.paste":
		return h.imePaste(params)
	case "ui.snapshot":
		return h.uiSnapshot(params)
	case "ui.find":
		return h.uiFind(params)
	case "ui.click":
		return h.uiClick(params)
	case "ui.waitFor":
		return h.uiWaitFor(ctx, params)
	case "screen.capture":
		return h.screenCapture(params)
	default:
		return nil, Errorf(CodeInvalidRequest, "unknown command %q", name)
	}
}

// treeRoot fetches the current tree root. A nil root with a nil error means
// the tree is transiently unavailable; callers decide whether that is a
// NOT_FOUND-class condition or an empty result.
func (h *Handler) treeRoot() (ui.Node, *Error) {
	if h.provider == nil || h.provider.Tree == nil {
		return nil, Errorf(CodeAccessibilityDisabled, "accessibility bridge is not connected")
	}
	root, err := h.provider.Tree.Root()
	if err != nil {
		return nil, Errorf(CodeAccessibilityDisabled, "accessibility bridge unavailable: %v", err)
	}
	return root, nil
}

func (h *Handler) appLaunch(params map[string]any) (map[string]any, *Error) {
	pkg := strings.TrimSpace(StringParam(params, "packageName", ""))
	if pkg == "" {
		return nil, Errorf(CodeInvalidRequest, "packageName is required")
	}
	activity := strings.TrimSpace(StringParam(params, "activity", ""))

	if h.provider == nil || h.provider.Launcher == nil {
		return nil, Errorf(CodeAccessibilityDisabled, "device bridge is not connected")
	}
	if err := h.provider.Launcher.Launch(pkg, activity); err != nil {
		if errors.Is(err, platform.ErrAppNotFound) {
			return nil, Errorf(CodeAppNotFound, "app %q not found: %v", pkg, err)
		}
		return nil, Errorf(CodeAppLaunchFailed, "launch %q failed: %v", pkg, err)
	}

	resp := map[string]any{"ok": true, "packageName": pkg}
	if activity != "" {
		resp["activity"] = activity
	}
	return resp, nil
}

func (h *Handler) screenTap(ctx context.Context, params map[string]any) (map[string]any, *Error) {
	x, cerr := requireInt(params, "x")
	if cerr != nil {
		return nil, cerr
	}
	y, cerr := requireInt(params, "y")
	if cerr != nil {
		return nil, cerr
	}
	durationMs := clampInt(IntParam(params, "durationMs", defaultTapDurationMs), minTapDurationMs, maxTapDurationMs)

	if h.provider == nil || h.provider.Gestures == nil {
		return nil, Errorf(CodeAccessibilityDisabled, "gesture dispatch is not connected")
	}

	// Dispatch acceptance and gesture completion are distinct events; the
	// command resolves only on completion.
	result, err := h.provider.Gestures.DispatchTap(x, y, time.Duration(durationMs)*time.Millisecond)
	if err != nil {
		return nil, Errorf(CodeTapFailed, "tap rejected at dispatch: %v", err)
	}
	completed, err := result.Await(ctx)
	if err != nil {
		return nil, Errorf(CodeTapFailed, "tap abandoned: %v", err)
	}
	if !completed {
		return nil, Errorf(CodeTapFailed, "gesture was cancelled")
	}

	return map[string]any{"ok": true, "x": x, "y": y, "durationMs": durationMs}, nil
}

func (h *Handler) textInput(params map[string]any) (map[string]any, *Error) {
	text := StringParam(params, "text", "")
	if text == "" {
		return nil, Errorf(CodeInvalidRequest, "text is required")
	}
	targetQuery := StringParam(params, "targetQuery", "")

	target, cerr := h.resolveEditable(targetQuery)
	if cerr != nil {
		return nil, cerr
	}
	if target == nil {
		return nil, Errorf(CodeTextInputFailed, "no editable target available")
	}
	if !h.provider.Actions.SetText(target, text) {
		return nil, Errorf(CodeTextInputFailed, "text injection rejected by the device")
	}

	resp := map[string]any{"ok": true, "textLength": utf8.RuneCountInString(text)}
	if targetQuery != "" {
		resp["targetQuery"] = targetQuery
	}
	return resp, nil
}

func (h *Handler) imePaste(params map[string]any) (map[string]any, *Error) {
	text := StringParam(params, "text", "")
	if text == "" {
		return nil, Errorf(CodeInvalidRequest, "text is required")
	}
	targetQuery := StringParam(params, "targetQuery", "")

	if h.provider == nil || h.provider.Clipboard == nil {
		return nil, Errorf(CodeAccessibilityDisabled, "clipboard is not connected")
	}
	target, cerr := h.resolveEditable(targetQuery)
	if cerr != nil {
		return nil, cerr
	}
	if target == nil {
		return nil, Errorf(CodeIMEPasteFailed, "no editable target available")
	}
	if err := h.provider.Clipboard.SetText(text); err != nil {
		return nil, Errorf(CodeIMEPasteFailed, "clipboard: %v", err)
	}
	if !h.provider.Actions.Paste(target) {
		return nil, Errorf(CodeIMEPasteFailed, "paste action rejected by the device")
	}

	resp := map[string]any{"ok": true, "textLength": utf8.RuneCountInString(text)}
	if targetQuery != "" {
		resp["targetQuery"] = targetQuery
	}
	return resp, nil
}

// resolveEditable runs the editable-target policy against the live tree.
// A nil node with nil error means no target is available right now.
func (h *Handler) resolveEditable(targetQuery string) (ui.Node, *Error) {
	if h.provider == nil || h.provider.Tree == nil || h.provider.Actions == nil {
		return nil, Errorf(CodeAccessibilityDisabled, "accessibility bridge is not connected")
	}
	resolver := &ui.Resolver{Tree: h.provider.Tree, Actor: h.provider.Actions}
	return resolver.ResolveTarget(targetQuery), nil
}

func (h *Handler) uiSnapshot(params map[string]any) (map[string]any, *Error) {
	maxNodes := IntParam(params, "maxNodes", defaultSnapshotMaxNodes)
	if maxNodes < 1 {
		maxNodes = 1
	}

	root, cerr := h.treeRoot()
	if cerr != nil {
		return nil, cerr
	}
	// An unavailable tree is an expected transient condition: empty snapshot.
	dumps := ui.Snapshot(root, maxNodes)
	if dumps == nil {
		dumps = []ui.NodeDump{}
	}
	return map[string]any{"ok": true, "count": len(dumps), "nodes": dumps}, nil
}

func (h *Handler) uiFind(params map[string]any) (map[string]any, *Error) {
	query := strings.TrimSpace(StringParam(params, "query", ""))
	if query == "" {
		return nil, Errorf(CodeInvalidRequest, "query is required")
	}

	root, cerr := h.treeRoot()
	if cerr != nil {
		return nil, cerr
	}
	best := ui.FindBest(root, ui.NormalizeQuery(query))
	if best == nil {
		return nil, Errorf(CodeUINotFound, "no node matched %q", query)
	}

	resp := map[string]any{
		"ok":        true,
		"query":     query,
		"path":      best.Path,
		"bounds":    best.Bounds,
		"centerX":   best.CenterX,
		"centerY":   best.CenterY,
		"clickable": best.Clickable,
		"editable":  best.Editable,
	}
	if best.Text != "" {
		resp["text"] = best.Text
	}
	if best.Description != "" {
		resp["description"] = best.Description
	}
	if best.Hint != "" {
		resp["hint"] = best.Hint
	}
	if best.ViewID != "" {
		resp["viewId"] = best.ViewID
	}
	return resp, nil
}

func (h *Handler) uiClick(params map[string]any) (map[string]any, *Error) {
	path := strings.TrimSpace(StringParam(params, "path", ""))
	query := strings.TrimSpace(StringParam(params, "query", ""))
	if path == "" && query == "" {
		return nil, Errorf(CodeInvalidRequest, "path or query is required")
	}
	if h.provider == nil || h.provider.Actions == nil {
		return nil, Errorf(CodeAccessibilityDisabled, "accessibility bridge is not connected")
	}

	root, cerr := h.treeRoot()
	if cerr != nil {
		return nil, cerr
	}
	if root == nil {
		return nil, Errorf(CodeUINotFound, "ui tree is unavailable")
	}

	var target ui.Node
	if path != "" {
		target = ui.ResolvePath(root, path)
		if target == nil {
			return nil, Errorf(CodeUINotFound, "path %q did not resolve", path)
		}
	} else {
		best := ui.FindBest(root, ui.NormalizeQuery(query))
		if best == nil {
			return nil, Errorf(CodeUINotFound, "no node matched %q", query)
		}
		target = ui.ResolvePath(root, best.Path)
		if target == nil {
			return nil, Errorf(CodeUINotFound, "matched node vanished before the click")
		}
	}

	if !ui.ClickOrAncestor(h.provider.Actions, target) {
		return nil, Errorf(CodeUIClickFailed, "node and its ancestors rejected the click")
	}

	resp := map[string]any{"ok": true}
	if path != "" {
		resp["path"] = path
	}
	if query != "" {
		resp["query"] = query
	}
	return resp, nil
}

func (h *Handler) uiWaitFor(ctx context.Context, params map[string]any) (map[string]any, *Error) {
	query := strings.TrimSpace(StringParam(params, "query", ""))
	if query == "" {
		return nil, Errorf(CodeInvalidRequest, "query is required")
	}
	timeoutMs := clampInt(IntParam(params, "timeoutMs", defaultWaitTimeoutMs), minWaitTimeoutMs, maxWaitTimeoutMs)
	pollMs := clampInt(IntParam(params, "pollMs", defaultWaitPollMs), minWaitPollMs, maxWaitPollMs)
	expectGone := BoolParam(params, "expectGone", false)

	if h.provider == nil || h.provider.Tree == nil {
		return nil, Errorf(CodeAccessibilityDisabled, "accessibility bridge is not connected")
	}

	normalized := ui.NormalizeQuery(query)
	start := time.Now()
	deadline := start.Add(time.Duration(timeoutMs) * time.Millisecond)

	for {
		matched := false
		if root, err := h.provider.Tree.Root(); err == nil && root != nil {
			matched = ui.FindBest(root, normalized) != nil
		}
		if matched != expectGone {
			return map[string]any{
				"ok":         true,
				"query":      query,
				"expectGone": expectGone,
				"elapsedMs":  time.Since(start).Milliseconds(),
			}, nil
		}
		if !time.Now().Before(deadline) {
			return nil, Errorf(CodeUIWaitTimeout, "condition not reached within %dms", timeoutMs)
		}
		select {
		case <-ctx.Done():
			return nil, Errorf(CodeUIWaitTimeout, "wait cancelled: %v", ctx.Err())
		case <-time.After(time.Duration(pollMs) * time.Millisecond):
		}
	}
}

func (h *Handler) screenCapture(params map[string]any) (map[string]any, *Error) {
	scale := clampFloat(FloatParam(params, "scale", 0.5), 0.1, 1.0)
	format := StringParam(params, "format", "png")
	quality := clampInt(IntParam(params, "quality", 80), 1, 100)

	if h.provider == nil || h.provider.Screens == nil {
		return nil, Errorf(CodeAccessibilityDisabled, "screen capture is not connected")
	}
	img, err := h.provider.Screens.Capture(platform.ScreenshotOptions{Scale: scale})
	if err != nil {
		return nil, Errorf(CodeScreenshotFailed, "capture: %v", err)
	}

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpg", "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})
	default:
		return nil, Errorf(CodeInvalidRequest, "unsupported format %q (use png or jpg)", format)
	}
	if err != nil {
		return nil, Errorf(CodeScreenshotFailed, "encode: %v", err)
	}

	bounds := img.Bounds()
	return map[string]any{
		"ok":     true,
		"format": format,
		"width":  bounds.Dx(),
		"height": bounds.Dy(),
		"data":   base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}
