// Package mcp exposes window discovery and manipulation as MCP tools
// over stdio, so MCP-capable clients can drive the same operations the
// CLI offers.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/YMC-GitHub/pscan/internal/logging"
	"github.com/YMC-GitHub/pscan/internal/platform"
	"github.com/YMC-GitHub/pscan/internal/procs"
)

const (
	ServerName    = "pscan"
	ServerVersion = "0.1.0"
)

// Server is the MCP server wrapping a window system backend.
type Server struct {
	mcpServer *mcpsdk.Server
	backend   platform.Backend
	log       *logging.Logger

	// Process table hooks (primarily for tests).
	processNames  func() (map[uint32]string, error)
	listProcesses func(windows []platform.Window) ([]procs.Info, error)
}

// NewServer creates an MCP server serving tools against backend.
// Diagnostics go through log, which must not write to stdout because
// stdout carries the protocol stream.
func NewServer(backend platform.Backend, log *logging.Logger) *Server {
	s := &Server{
		backend:       backend,
		log:           log,
		processNames:  procs.Names,
		listProcesses: procs.List,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Close releases the window system connection.
func (s *Server) Close() {
	s.backend.Close()
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List visible top-level windows with their process id, title, size and position. Filters narrow the result by exact pid, process name substring or title substring.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_processes",
		Description: "List running processes with memory usage and whether they own a visible window. Filters narrow the result by exact pid, name substring, window title substring or window ownership.",
	}, s.handleListProcesses)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "minimize_windows",
		Description: "Minimize windows matching the filters. With more than one match, all must be set.",
	}, s.handleMinimizeWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "maximize_windows",
		Description: "Maximize windows matching the filters. With more than one match, all must be set.",
	}, s.handleMaximizeWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "restore_windows",
		Description: "Restore minimized or maximized windows matching the filters. With more than one match, all must be set.",
	}, s.handleRestoreWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_windows",
		Description: "Move windows matching the filters. Exactly one placement mode applies: position puts every window at one spot, layout assigns one coordinate pair per window, and x_start/y_start with steps walk a grid. Matches are sorted by title; index selects 1-based rows of that order, otherwise the first match is moved unless all is set.",
	}, s.handleMoveWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_windows",
		Description: "Resize windows matching the filters. keep_position pins the current top-left corner and center centers the window on the primary display; the two are mutually exclusive. Matches are sorted by title; index selects 1-based rows of that order, otherwise the first match is resized unless all is set.",
	}, s.handleResizeWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_always_on_top",
		Description: "Set, clear or toggle the always-on-top state of windows matching the filters. With more than one match, all must be set unless index selects specific rows.",
	}, s.handleSetAlwaysOnTop)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_transparency",
		Description: "Set window transparency for windows matching the filters. Level runs from 0 (invisible) to 100 (fully opaque); reset restores full opacity. With more than one match, all must be set unless index selects specific rows.",
	}, s.handleSetTransparency)
}
