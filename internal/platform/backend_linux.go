//go:build linux

package platform

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/YMC-GitHub/pscan/internal/x11"
)

// LinuxBackend drives X11 windows through EWMH requests.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// New opens a connection to the X server and returns the Linux backend.
func New() (Backend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Close disconnects from the X server.
func (b *LinuxBackend) Close() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// ListWindows returns the window manager's client list, excluding desktop
// infrastructure (docks, desktops, splash screens), windows without a
// usable title, and windows that advertise no owning process.
func (b *LinuxBackend) ListWindows() ([]Window, error) {
	clients, err := b.conn.ClientWindows()
	if err != nil {
		return nil, err
	}

	windows := make([]Window, 0, len(clients))
	for _, id := range clients {
		if !b.conn.IsNormalWindow(id) {
			continue
		}

		title := b.conn.WindowTitle(id)
		if strings.TrimSpace(title) == "" {
			continue
		}

		pid, err := b.conn.WindowPID(id)
		if err != nil || pid == 0 {
			continue
		}

		x, y, width, height, err := b.conn.WindowGeometry(id)
		if err != nil {
			continue
		}

		windows = append(windows, Window{
			ID:     WindowID(id),
			PID:    pid,
			Title:  title,
			Bounds: Rect{X: x, Y: y, Width: width, Height: height},
		})
	}

	return windows, nil
}

// Minimize iconifies the window.
func (b *LinuxBackend) Minimize(id WindowID) error {
	win := xproto.Window(id)
	if err := b.conn.ValidateWindow(win); err != nil {
		return err
	}
	return b.conn.MinimizeWindow(win)
}

// Maximize fills the window's current monitor in both axes.
func (b *LinuxBackend) Maximize(id WindowID) error {
	win := xproto.Window(id)
	if err := b.conn.ValidateWindow(win); err != nil {
		return err
	}
	return b.conn.MaximizeWindow(win)
}

// Restore maps an iconified window and clears any maximized state.
func (b *LinuxBackend) Restore(id WindowID) error {
	win := xproto.Window(id)
	if err := b.conn.ValidateWindow(win); err != nil {
		return err
	}
	return b.conn.RestoreWindow(win)
}

// SetPosition moves the window keeping its current size.
func (b *LinuxBackend) SetPosition(id WindowID, x, y int) error {
	win := xproto.Window(id)
	if err := b.conn.ValidateWindow(win); err != nil {
		return err
	}

	_, _, width, height, err := b.conn.WindowGeometry(win)
	if err != nil {
		return err
	}

	return b.conn.MoveResizeWindow(win, x, y, width, height)
}

// Resize changes the window size. EWMH move-resize always carries a
// position, so both the keep-position policy and the default pin the
// current top-left corner; center places the window centered on the
// primary monitor.
func (b *LinuxBackend) Resize(id WindowID, width, height int, keepPosition, center bool) error {
	win := xproto.Window(id)
	if err := b.conn.ValidateWindow(win); err != nil {
		return err
	}

	x, y, _, _, err := b.conn.WindowGeometry(win)
	if err != nil {
		return err
	}

	if center {
		mon, err := b.conn.PrimaryMonitor()
		if err != nil {
			return err
		}
		x = mon.X + (mon.Width-width)/2
		y = mon.Y + (mon.Height-height)/2
	}

	return b.conn.MoveResizeWindow(win, x, y, width, height)
}

// SetAlwaysOnTop toggles the window's above state.
func (b *LinuxBackend) SetAlwaysOnTop(id WindowID, onTop bool) error {
	win := xproto.Window(id)
	if err := b.conn.ValidateWindow(win); err != nil {
		return err
	}
	return b.conn.SetWindowAbove(win, onTop)
}

// IsAlwaysOnTop reports whether the window is kept above others.
func (b *LinuxBackend) IsAlwaysOnTop(id WindowID) (bool, error) {
	win := xproto.Window(id)
	if err := b.conn.ValidateWindow(win); err != nil {
		return false, err
	}
	return b.conn.IsWindowAbove(win)
}

// SetTransparency sets the window's opacity percentage.
func (b *LinuxBackend) SetTransparency(id WindowID, opacity int) error {
	win := xproto.Window(id)
	if err := b.conn.ValidateWindow(win); err != nil {
		return err
	}
	return b.conn.SetWindowOpacity(win, opacity)
}
