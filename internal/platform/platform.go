// Package platform abstracts window-system discovery and manipulation
// across operating systems behind a single Backend interface.
package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// WindowID is a platform-neutral window identifier. It holds an X11 window
// ID on Linux and a Win32 window handle on Windows.
type WindowID uintptr

// Rect describes a window's position and size in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// String renders the rectangle in X geometry notation, WxH+X+Y.
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Window is a handle to one top-level window paired with its owning
// process id, title, and geometry at enumeration time.
type Window struct {
	ID     WindowID
	PID    uint32
	Title  string
	Bounds Rect
}

// Backend abstracts window-system operations across platforms. Mutating
// operations revalidate the window first and fail on stale handles rather
// than acting on a recycled identifier.
type Backend interface {
	// ListWindows enumerates all visible top-level application windows in
	// OS enumeration order. Windows with empty titles, without an owning
	// process, or belonging to shell infrastructure are excluded.
	ListWindows() ([]Window, error)

	Minimize(id WindowID) error
	Maximize(id WindowID) error
	Restore(id WindowID) error

	// SetPosition moves the window's top-left corner, keeping its size.
	SetPosition(id WindowID, x, y int) error

	// Resize changes the window size. keepPosition pins the current
	// top-left corner, which is also the default since the native
	// move-resize calls always carry a position; center recenters the
	// window on the primary display. Width and height must already be
	// validated as positive.
	Resize(id WindowID, width, height int, keepPosition, center bool) error

	SetAlwaysOnTop(id WindowID, onTop bool) error
	IsAlwaysOnTop(id WindowID) (bool, error)

	// SetTransparency applies an opacity percentage between 0 and 100,
	// 100 meaning fully opaque, mapped linearly onto the backend's
	// native alpha range.
	SetTransparency(id WindowID, opacity int) error

	Close()
}

// Filter selects windows by process id, process name, and window title.
// Set fields are AND-combined; empty fields match everything.
type Filter struct {
	PID   string
	Name  string
	Title string
}

// FindWindows filters the backend's window list. The pid filter compares
// the decimal rendering of the window's process id exactly; name and title
// filters match case-insensitive substrings, with process names resolved
// through the names table. A window whose pid is missing from the table
// only passes an empty name filter. An empty result is not an error.
func FindWindows(b Backend, f Filter, names map[uint32]string) ([]Window, error) {
	windows, err := b.ListWindows()
	if err != nil {
		return nil, err
	}
	return FilterWindows(windows, f, names), nil
}

// FilterWindows applies f to windows, preserving input order.
func FilterWindows(windows []Window, f Filter, names map[uint32]string) []Window {
	matched := make([]Window, 0, len(windows))
	for _, w := range windows {
		if f.PID != "" && strconv.FormatUint(uint64(w.PID), 10) != f.PID {
			continue
		}
		if f.Name != "" {
			name := strings.ToLower(names[w.PID])
			if !strings.Contains(name, strings.ToLower(f.Name)) {
				continue
			}
		}
		if f.Title != "" && !strings.Contains(strings.ToLower(w.Title), strings.ToLower(f.Title)) {
			continue
		}
		matched = append(matched, w)
	}
	return matched
}
