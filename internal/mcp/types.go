package mcp

// WindowFilter carries the match criteria shared by every tool that
// addresses windows.
type WindowFilter struct {
	PID   string `json:"pid,omitempty" jsonschema:"Exact process id to match"`
	Name  string `json:"name,omitempty" jsonschema:"Process name substring to match (case-insensitive)"`
	Title string `json:"title,omitempty" jsonschema:"Window title substring to match (case-insensitive)"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct {
	WindowFilter
}

// WindowSummary describes one window in list_windows output.
type WindowSummary struct {
	PID        uint32 `json:"pid"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Dimensions string `json:"dimensions"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowSummary `json:"windows"`
	Count   int             `json:"count"`
}

// ListProcessesInput is the input for the list_processes tool.
type ListProcessesInput struct {
	PID       string `json:"pid,omitempty" jsonschema:"Exact process id to match"`
	Name      string `json:"name,omitempty" jsonschema:"Process name substring to match (case-insensitive)"`
	Title     string `json:"title,omitempty" jsonschema:"Window title substring to match (case-insensitive)"`
	HasWindow bool   `json:"has_window,omitempty" jsonschema:"Only processes that own a visible window"`
	NoWindow  bool   `json:"no_window,omitempty" jsonschema:"Only processes without a visible window"`
}

// ProcessSummary describes one process in list_processes output.
type ProcessSummary struct {
	PID         string `json:"pid"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	MemoryBytes uint64 `json:"memory_bytes"`
	Memory      string `json:"memory"`
	HasWindow   bool   `json:"has_window"`
}

// ListProcessesOutput is the output for the list_processes tool.
type ListProcessesOutput struct {
	Processes []ProcessSummary `json:"processes"`
	Count     int              `json:"count"`
}

// ShowWindowsInput is the input for minimize_windows, maximize_windows
// and restore_windows.
type ShowWindowsInput struct {
	WindowFilter
	All bool `json:"all,omitempty" jsonschema:"Apply to all matching windows instead of requiring a single match"`
}

// MoveWindowsInput is the input for the move_windows tool. Exactly one
// placement mode must be supplied: position, layout, or the grid fields.
type MoveWindowsInput struct {
	WindowFilter
	All      bool   `json:"all,omitempty" jsonschema:"Apply to all matching windows instead of only the first"`
	Position string `json:"position,omitempty" jsonschema:"Single target position X,Y applied to every selected window, e.g. 100,100"`
	Layout   string `json:"layout,omitempty" jsonschema:"Flat coordinate list X1,Y1,X2,Y2,... assigning one position per sorted row"`
	XStart   string `json:"x_start,omitempty" jsonschema:"Grid mode starting X coordinate"`
	YStart   string `json:"y_start,omitempty" jsonschema:"Grid mode starting Y coordinate"`
	XStep    string `json:"x_step,omitempty" jsonschema:"Grid mode X increment per window (default 100)"`
	YStep    string `json:"y_step,omitempty" jsonschema:"Grid mode Y increment per window (default 100)"`
	Index    string `json:"index,omitempty" jsonschema:"Comma-separated 1-based indices into the title-sorted match list"`
}

// ResizeWindowsInput is the input for the resize_windows tool.
type ResizeWindowsInput struct {
	WindowFilter
	All          bool   `json:"all,omitempty" jsonschema:"Apply to all matching windows instead of only the first"`
	Width        int    `json:"width" jsonschema:"required,Target width in pixels"`
	Height       int    `json:"height" jsonschema:"required,Target height in pixels"`
	KeepPosition bool   `json:"keep_position,omitempty" jsonschema:"Keep the current top-left corner while resizing"`
	Center       bool   `json:"center,omitempty" jsonschema:"Center the window on the primary display after resizing"`
	Index        string `json:"index,omitempty" jsonschema:"Comma-separated 1-based indices into the title-sorted match list"`
}

// SetAlwaysOnTopInput is the input for the set_always_on_top tool.
type SetAlwaysOnTopInput struct {
	WindowFilter
	All    bool   `json:"all,omitempty" jsonschema:"Apply to all matching windows instead of requiring a single match"`
	Off    bool   `json:"off,omitempty" jsonschema:"Clear the always-on-top state instead of setting it"`
	Toggle bool   `json:"toggle,omitempty" jsonschema:"Toggle the current always-on-top state per window"`
	Index  string `json:"index,omitempty" jsonschema:"Comma-separated 1-based indices into the title-sorted match list"`
}

// SetTransparencyInput is the input for the set_transparency tool.
type SetTransparencyInput struct {
	WindowFilter
	All   bool   `json:"all,omitempty" jsonschema:"Apply to all matching windows instead of requiring a single match"`
	Level *int   `json:"level,omitempty" jsonschema:"Opacity percentage from 0 (invisible) to 100 (fully opaque, default)"`
	Reset bool   `json:"reset,omitempty" jsonschema:"Reset to fully opaque (100)"`
	Index string `json:"index,omitempty" jsonschema:"Comma-separated 1-based indices into the title-sorted match list"`
}

// WindowResult reports the outcome of one window operation.
type WindowResult struct {
	PID   uint32 `json:"pid"`
	Title string `json:"title"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// OperateOutput is the output of every window manipulation tool.
type OperateOutput struct {
	Modified int            `json:"modified"`
	Failed   int            `json:"failed"`
	Results  []WindowResult `json:"results"`
}
