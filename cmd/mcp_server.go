package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/tmcf/droidctl/internal/command"
	"github.com/tmcf/droidctl/internal/platform"
)

// mcpServer exposes the command handler as MCP tools.
type mcpServer struct {
	provider *platform.Provider
	handler  *command.Handler
	cache    *cachedTreeSource
	mu       sync.Mutex
	mcp      *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Serial    string
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with all droidctl tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	provider, err := platform.NewProvider(cfg.Serial)
	if err != nil {
		return nil, err
	}

	s := &mcpServer{provider: provider}
	if provider.Tree != nil {
		s.cache = newCachedTreeSource(provider.Tree, cfg.CacheTTL)
		cached := *provider
		cached.Tree = s.cache
		s.handler = command.New(&cached)
	} else {
		s.handler = command.New(provider)
	}

	s.mcp = mcpserver.NewMCPServer(
		"droidctl",
		"1.0.0",
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// app_launch
	s.mcp.AddTool(
		mcp.NewTool("app_launch",
			mcp.WithDescription("Launch an Android app by package name"),
			mcp.WithString("packageName", mcp.Description("Package name (e.g. com.android.settings)"), mcp.Required()),
			mcp.WithString("activity", mcp.Description("Activity to start (default: the launcher activity)")),
		),
		s.commandTool("app.launch", true),
	)

	// screen_tap
	s.mcp.AddTool(
		mcp.NewTool("screen_tap",
			mcp.WithDescription("Tap at absolute screen coordinates and wait for the gesture to complete"),
			mcp.WithNumber("x", mcp.Description("X coordinate in pixels"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Y coordinate in pixels"), mcp.Required()),
			mcp.WithNumber("durationMs", mcp.Description("Press duration in ms, 40-1000 (default: 60)")),
		),
		s.commandTool("screen.tap", true),
	)

	// text_input
	s.mcp.AddTool(
		mcp.NewTool("text_input",
			mcp.WithDescription("Type text into the focused editable field, or find a field by text first"),
			mcp.WithString("text", mcp.Description("Text to type"), mcp.Required()),
			mcp.WithString("targetQuery", mcp.Description("Find the target field by text before typing")),
		),
		s.commandTool("text.input", true),
	)

	// ime_paste
	s.mcp.AddTool(
		mcp.NewTool("ime_paste",
			mcp.WithDescription("Paste text through the device clipboard (carries emoji/CJK/long strings the key path cannot)"),
			mcp.WithString("text", mcp.Description("Text to paste"), mcp.Required()),
			mcp.WithString("targetQuery", mcp.Description("Find the target field by text before pasting")),
		),
		s.commandTool("ime.paste", true),
	)

	// ui_snapshot
	s.mcp.AddTool(
		mcp.NewTool("ui_snapshot",
			mcp.WithDescription("Dump the UI element tree breadth-first with paths, bounds, and interaction flags"),
			mcp.WithNumber("maxNodes", mcp.Description("Max nodes in the snapshot (default: 300)")),
		),
		s.commandTool("ui.snapshot", false),
	)

	// ui_find
	s.mcp.AddTool(
		mcp.NewTool("ui_find",
			mcp.WithDescription("Find the UI element best matching a text query. Returns its path, bounds, and center point."),
			mcp.WithString("query", mcp.Description("Text to search for (case-insensitive substring)"), mcp.Required()),
		),
		s.commandTool("ui.find", false),
	)

	// ui_click
	s.mcp.AddTool(
		mcp.NewTool("ui_click",
			mcp.WithDescription("Click a UI element by tree path or text query, falling back to the nearest clickable ancestor"),
			mcp.WithString("path", mcp.Description("Tree path from a snapshot or find (e.g. r/0/2)")),
			mcp.WithString("query", mcp.Description("Find the element by text")),
		),
		s.commandTool("ui.click", true),
	)

	// ui_wait_for
	s.mcp.AddTool(
		mcp.NewTool("ui_wait_for",
			mcp.WithDescription("Poll the UI tree until an element matching the query appears (or disappears)"),
			mcp.WithString("query", mcp.Description("Text to wait for"), mcp.Required()),
			mcp.WithBoolean("expectGone", mcp.Description("Invert: wait until no element matches")),
			mcp.WithNumber("timeoutMs", mcp.Description("Max ms to wait, 100-15000 (default: 3000)")),
			mcp.WithNumber("pollMs", mcp.Description("Polling interval in ms, 50-1000 (default: 150)")),
		),
		s.commandTool("ui.waitFor", false),
	)

	// screen_capture
	s.mcp.AddTool(
		mcp.NewTool("screen_capture",
			mcp.WithDescription("Capture the device screen as a base64 image"),
			mcp.WithString("format", mcp.Description("Image format: png, jpg (default: png)")),
			mcp.WithNumber("quality", mcp.Description("JPEG quality 1-100 (default: 80)")),
			mcp.WithNumber("scale", mcp.Description("Scale factor 0.1-1.0 (default: 0.5)")),
		),
		s.commandTool("screen.capture", false),
	)

	// device_list
	s.mcp.AddTool(
		mcp.NewTool("device_list",
			mcp.WithDescription("List Android devices attached to the local adb server"),
		),
		s.handleDeviceList,
	)
}

// commandTool wraps one handler command as an MCP tool handler. Tools that
// change UI state invalidate the tree cache after running.
func (s *mcpServer) commandTool(name string, invalidates bool) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := request.GetArguments()

		s.mu.Lock()
		result, cerr := s.handler.Handle(ctx, name, params)
		if invalidates && s.cache != nil {
			s.cache.invalidate()
		}
		s.mu.Unlock()

		if cerr != nil {
			return mcp.NewToolResultError(errorToText(cerr)), nil
		}
		b, err := yaml.Marshal(result)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(string(b)), nil
	}
}

func (s *mcpServer) handleDeviceList(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.provider.Devices == nil {
		return mcp.NewToolResultError("device listing not supported by this backend"), nil
	}
	devices, err := s.provider.Devices.Devices()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, merr := yaml.Marshal(devices)
	if merr != nil {
		return nil, merr
	}
	return mcp.NewToolResultText(string(b)), nil
}

// errorToText serializes a handler error to YAML for MCP responses.
func errorToText(cerr *command.Error) string {
	b, err := yaml.Marshal(map[string]any{"ok": false, "code": cerr.Code, "message": cerr.Message})
	if err != nil {
		return fmt.Sprintf("ok: false\ncode: %s\nmessage: %s", cerr.Code, cerr.Message)
	}
	return string(b)
}
