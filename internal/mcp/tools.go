package mcp

import (
	"context"

	"github.com/dustin/go-humanize"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/YMC-GitHub/pscan/internal/apperr"
	"github.com/YMC-GitHub/pscan/internal/batch"
	"github.com/YMC-GitHub/pscan/internal/layout"
	"github.com/YMC-GitHub/pscan/internal/platform"
	"github.com/YMC-GitHub/pscan/internal/procs"
	"github.com/YMC-GitHub/pscan/internal/sorting"
)

func (f WindowFilter) platformFilter() platform.Filter {
	return platform.Filter{PID: f.PID, Name: f.Name, Title: f.Title}
}

// findWindows lists windows matching the filter together with the
// current pid to process name table.
func (s *Server) findWindows(f WindowFilter) ([]platform.Window, map[uint32]string, error) {
	names, err := s.processNames()
	if err != nil {
		return nil, nil, apperr.Platform("failed to list processes: %v", err)
	}
	windows, err := platform.FindWindows(s.backend, f.platformFilter(), names)
	if err != nil {
		return nil, nil, err
	}
	return windows, names, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	s.log.Debug("tool invoked", "tool", "list_windows")

	windows, names, err := s.findWindows(args.WindowFilter)
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}

	out := ListWindowsOutput{Windows: make([]WindowSummary, 0, len(windows)), Count: len(windows)}
	for _, win := range windows {
		name := "Unknown"
		if n, ok := names[win.PID]; ok {
			name = n
		}
		out.Windows = append(out.Windows, WindowSummary{
			PID:        win.PID,
			Name:       name,
			Title:      win.Title,
			X:          win.Bounds.X,
			Y:          win.Bounds.Y,
			Width:      win.Bounds.Width,
			Height:     win.Bounds.Height,
			Dimensions: win.Bounds.String(),
		})
	}
	return nil, out, nil
}

func (s *Server) handleListProcesses(_ context.Context, _ *mcpsdk.CallToolRequest, args ListProcessesInput) (*mcpsdk.CallToolResult, ListProcessesOutput, error) {
	s.log.Debug("tool invoked", "tool", "list_processes")

	windows, err := s.backend.ListWindows()
	if err != nil {
		return nil, ListProcessesOutput{}, err
	}
	infos, err := s.listProcesses(windows)
	if err != nil {
		return nil, ListProcessesOutput{}, apperr.Platform("failed to list processes: %v", err)
	}
	infos = procs.FilterProcesses(infos, procs.Filter{
		PID:       args.PID,
		Name:      args.Name,
		Title:     args.Title,
		HasWindow: args.HasWindow,
		NoWindow:  args.NoWindow,
	})

	out := ListProcessesOutput{Processes: make([]ProcessSummary, 0, len(infos)), Count: len(infos)}
	for _, info := range infos {
		out.Processes = append(out.Processes, ProcessSummary{
			PID:         info.PID,
			Name:        info.Name,
			Title:       info.Title,
			MemoryBytes: info.MemoryUsage,
			Memory:      humanize.IBytes(info.MemoryUsage),
			HasWindow:   info.HasWindow,
		})
	}
	return nil, out, nil
}

// operate applies op to each target window, collecting per-window
// results. Zero modified windows is an error so callers never mistake
// a fully failed batch for success.
func (s *Server) operate(tool string, windows []platform.Window, targets []int, op func(row int, win platform.Window) error) (OperateOutput, error) {
	out := OperateOutput{}
	for _, i := range targets {
		win := windows[i]
		if err := op(i, win); err != nil {
			s.log.Warn("window operation failed",
				"tool", tool, "pid", win.PID, "title", win.Title, "error", err.Error())
			out.Failed++
			out.Results = append(out.Results, WindowResult{PID: win.PID, Title: win.Title, Error: err.Error()})
			continue
		}
		out.Modified++
		out.Results = append(out.Results, WindowResult{PID: win.PID, Title: win.Title, OK: true})
	}
	if out.Modified == 0 {
		return OperateOutput{}, apperr.NoWindowsModified()
	}
	return out, nil
}

// allTargets selects every window, for tools using the single-match
// guard instead of index addressing.
func allTargets(windows []platform.Window) []int {
	targets := make([]int, len(windows))
	for i := range windows {
		targets[i] = i
	}
	return targets
}

func (s *Server) operateSimple(tool string, args ShowWindowsInput, op func(platform.WindowID) error) (OperateOutput, error) {
	s.log.Debug("tool invoked", "tool", tool)

	windows, _, err := s.findWindows(args.WindowFilter)
	if err != nil {
		return OperateOutput{}, err
	}
	selected, err := batch.Select(windows, args.All)
	if err != nil {
		return OperateOutput{}, err
	}
	return s.operate(tool, selected, allTargets(selected), func(_ int, win platform.Window) error {
		return op(win.ID)
	})
}

func (s *Server) handleMinimizeWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ShowWindowsInput) (*mcpsdk.CallToolResult, OperateOutput, error) {
	out, err := s.operateSimple("minimize_windows", args, s.backend.Minimize)
	return nil, out, err
}

func (s *Server) handleMaximizeWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ShowWindowsInput) (*mcpsdk.CallToolResult, OperateOutput, error) {
	out, err := s.operateSimple("maximize_windows", args, s.backend.Maximize)
	return nil, out, err
}

func (s *Server) handleRestoreWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ShowWindowsInput) (*mcpsdk.CallToolResult, OperateOutput, error) {
	out, err := s.operateSimple("restore_windows", args, s.backend.Restore)
	return nil, out, err
}

// indexedWindows finds, sorts and index-selects windows for the tools
// addressing rows of the title-sorted match list.
func (s *Server) indexedWindows(f WindowFilter, index string, all bool) ([]platform.Window, []int, error) {
	windows, _, err := s.findWindows(f)
	if err != nil {
		return nil, nil, err
	}
	if len(windows) == 0 {
		return nil, nil, apperr.NoMatchingWindows()
	}
	sorting.ByTitle(windows, sorting.None, sorting.DefaultPositionSort())
	indices := batch.ParseIndices(index, len(windows))
	return windows, batch.Targets(len(windows), indices, all), nil
}

// selectTargets resolves the windows a tool acts on: without an index
// the single-match guard applies, with one the indexed rules do.
func (s *Server) selectTargets(f WindowFilter, index string, all bool) ([]platform.Window, []int, error) {
	if index == "" {
		windows, _, err := s.findWindows(f)
		if err != nil {
			return nil, nil, err
		}
		selected, err := batch.Select(windows, all)
		if err != nil {
			return nil, nil, err
		}
		return selected, allTargets(selected), nil
	}
	return s.indexedWindows(f, index, all)
}

// optStr maps an omitted string argument to an absent flag.
func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *Server) handleMoveWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveWindowsInput) (*mcpsdk.CallToolResult, OperateOutput, error) {
	s.log.Debug("tool invoked", "tool", "move_windows", "position", args.Position, "layout", args.Layout)

	windows, targets, err := s.indexedWindows(args.WindowFilter, args.Index, args.All)
	if err != nil {
		return nil, OperateOutput{}, err
	}

	spec := layout.Spec{
		Position: optStr(args.Position),
		Layout:   optStr(args.Layout),
		XStart:   optStr(args.XStart),
		YStart:   optStr(args.YStart),
		XStep:    optStr(args.XStep),
		YStep:    optStr(args.YStep),
	}
	if err := spec.Validate(); err != nil {
		return nil, OperateOutput{}, err
	}
	positions, err := spec.Positions(len(windows))
	if err != nil {
		return nil, OperateOutput{}, err
	}

	out, err := s.operate("move_windows", windows, targets, func(row int, win platform.Window) error {
		p := positions[row]
		return s.backend.SetPosition(win.ID, p.X, p.Y)
	})
	return nil, out, err
}

func (s *Server) handleResizeWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ResizeWindowsInput) (*mcpsdk.CallToolResult, OperateOutput, error) {
	s.log.Debug("tool invoked", "tool", "resize_windows", "width", args.Width, "height", args.Height)

	if args.Width <= 0 || args.Height <= 0 {
		return nil, OperateOutput{}, apperr.InvalidParameter("Width and height must be positive values")
	}
	if args.KeepPosition && args.Center {
		return nil, OperateOutput{}, apperr.InvalidParameter("keep_position and center are mutually exclusive")
	}

	windows, targets, err := s.indexedWindows(args.WindowFilter, args.Index, args.All)
	if err != nil {
		return nil, OperateOutput{}, err
	}
	out, err := s.operate("resize_windows", windows, targets, func(_ int, win platform.Window) error {
		return s.backend.Resize(win.ID, args.Width, args.Height, args.KeepPosition, args.Center)
	})
	return nil, out, err
}

func (s *Server) handleSetAlwaysOnTop(_ context.Context, _ *mcpsdk.CallToolRequest, args SetAlwaysOnTopInput) (*mcpsdk.CallToolResult, OperateOutput, error) {
	s.log.Debug("tool invoked", "tool", "set_always_on_top", "off", args.Off, "toggle", args.Toggle)

	if args.Off && args.Toggle {
		return nil, OperateOutput{}, apperr.InvalidParameter("off and toggle are mutually exclusive")
	}

	windows, targets, err := s.selectTargets(args.WindowFilter, args.Index, args.All)
	if err != nil {
		return nil, OperateOutput{}, err
	}

	out, err := s.operate("set_always_on_top", windows, targets, func(_ int, win platform.Window) error {
		if args.Toggle {
			current, err := s.backend.IsAlwaysOnTop(win.ID)
			if err != nil {
				return err
			}
			return s.backend.SetAlwaysOnTop(win.ID, !current)
		}
		return s.backend.SetAlwaysOnTop(win.ID, !args.Off)
	})
	return nil, out, err
}

func (s *Server) handleSetTransparency(_ context.Context, _ *mcpsdk.CallToolRequest, args SetTransparencyInput) (*mcpsdk.CallToolResult, OperateOutput, error) {
	level := 100
	if args.Level != nil {
		level = *args.Level
	}
	if args.Reset {
		if args.Level != nil {
			return nil, OperateOutput{}, apperr.InvalidParameter("level and reset are mutually exclusive")
		}
		level = 100
	}
	if level < 0 || level > 100 {
		return nil, OperateOutput{}, apperr.InvalidParameter("Transparency level must be between 0 and 100, got %d", level)
	}

	s.log.Debug("tool invoked", "tool", "set_transparency", "level", level)

	windows, targets, err := s.selectTargets(args.WindowFilter, args.Index, args.All)
	if err != nil {
		return nil, OperateOutput{}, err
	}

	out, err := s.operate("set_transparency", windows, targets, func(_ int, win platform.Window) error {
		return s.backend.SetTransparency(win.ID, level)
	})
	return nil, out, err
}
