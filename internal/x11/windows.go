package x11

import (
	"errors"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// ErrWindowGone reports that a window ID no longer refers to a live window.
var ErrWindowGone = errors.New("window no longer exists")

// ClientWindows returns the managed top-level windows in the window
// manager's enumeration order.
func (c *Connection) ClientWindows() ([]xproto.Window, error) {
	return ewmh.ClientListGet(c.XUtil)
}

// ValidateWindow checks that the window still exists on the server.
func (c *Connection) ValidateWindow(windowID xproto.Window) error {
	if _, err := xproto.GetWindowAttributes(c.XUtil.Conn(), windowID).Reply(); err != nil {
		return ErrWindowGone
	}
	return nil
}

// IsNormalWindow checks if a window is a normal application window
func (c *Connection) IsNormalWindow(windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		// If we can't determine type, assume it's normal
		return true
	}

	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_NORMAL" {
			return true
		}
		// Reject desktop, dock, splash, etc.
		if t == "_NET_WM_WINDOW_TYPE_DESKTOP" ||
			t == "_NET_WM_WINDOW_TYPE_DOCK" ||
			t == "_NET_WM_WINDOW_TYPE_SPLASH" ||
			t == "_NET_WM_WINDOW_TYPE_NOTIFICATION" {
			return false
		}
	}

	// If no specific type is set, assume it's normal
	return len(types) == 0
}

// WindowTitle returns the window title, preferring the EWMH name over the
// older ICCCM property. Returns "" when neither is set.
func (c *Connection) WindowTitle(windowID xproto.Window) string {
	title, err := ewmh.WmNameGet(c.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	title, err = icccm.WmNameGet(c.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	return ""
}

// WindowPID returns the process id advertised by the window via _NET_WM_PID.
func (c *Connection) WindowPID(windowID xproto.Window) (uint32, error) {
	pid, err := ewmh.WmPidGet(c.XUtil, windowID)
	if err != nil {
		return 0, err
	}
	return uint32(pid), nil
}

// WindowGeometry returns the window's position relative to the root window
// along with its size.
func (c *Connection) WindowGeometry(windowID xproto.Window) (x, y, width, height int, err error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return 0, 0, 0, 0, err
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return 0, 0, 0, 0, err
	}

	return int(translate.DstX), int(translate.DstY), int(geom.Width), int(geom.Height), nil
}

// MoveResizeWindow moves and resizes a window to the specified geometry
func (c *Connection) MoveResizeWindow(windowID xproto.Window, x, y, width, height int) error {
	// A maximized window ignores configure requests, so drop that state first.
	c.UnmaximizeWindow(windowID)

	// Use EWMH MoveResize for better WM compatibility
	err := ewmh.MoveresizeWindow(
		c.XUtil,
		windowID,
		x, y, width, height,
	)

	if err != nil {
		// Fallback to direct window manipulation
		win := xwindow.New(c.XUtil, windowID)
		win.MoveResize(x, y, width, height)
	}

	return nil
}

// MinimizeWindow iconifies a window via WM_CHANGE_STATE.
func (c *Connection) MinimizeWindow(windowID xproto.Window) error {
	reply, err := xproto.InternAtom(c.XUtil.Conn(), false, uint16(len("WM_CHANGE_STATE")), "WM_CHANGE_STATE").Reply()
	if err != nil {
		return err
	}

	const iconicState = 3
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: windowID,
		Type:   reply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{iconicState, 0, 0, 0, 0}),
	}

	return xproto.SendEvent(
		c.XUtil.Conn(),
		false,
		c.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

// MaximizeWindow adds both maximized states in one request.
func (c *Connection) MaximizeWindow(windowID xproto.Window) error {
	return ewmh.WmStateReqExtra(
		c.XUtil,
		windowID,
		ewmh.StateAdd,
		"_NET_WM_STATE_MAXIMIZED_VERT",
		"_NET_WM_STATE_MAXIMIZED_HORZ",
		2,
	)
}

// UnmaximizeWindow removes maximized state from a window
func (c *Connection) UnmaximizeWindow(windowID xproto.Window) error {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return err
	}

	hasMaxH := false
	hasMaxV := false
	for _, state := range states {
		if state == "_NET_WM_STATE_MAXIMIZED_HORZ" {
			hasMaxH = true
		}
		if state == "_NET_WM_STATE_MAXIMIZED_VERT" {
			hasMaxV = true
		}
	}

	if hasMaxH || hasMaxV {
		return ewmh.WmStateReqExtra(
			c.XUtil,
			windowID,
			ewmh.StateRemove,
			"_NET_WM_STATE_MAXIMIZED_VERT",
			"_NET_WM_STATE_MAXIMIZED_HORZ",
			2,
		)
	}

	return nil
}

// RestoreWindow maps an iconified window and drops any maximized state.
func (c *Connection) RestoreWindow(windowID xproto.Window) error {
	if err := xproto.MapWindowChecked(c.XUtil.Conn(), windowID).Check(); err != nil {
		return err
	}
	return c.UnmaximizeWindow(windowID)
}

// SetWindowAbove adds or removes the _NET_WM_STATE_ABOVE state.
func (c *Connection) SetWindowAbove(windowID xproto.Window, above bool) error {
	action := ewmh.StateRemove
	if above {
		action = ewmh.StateAdd
	}
	return ewmh.WmStateReq(c.XUtil, windowID, action, "_NET_WM_STATE_ABOVE")
}

// IsWindowAbove reports whether the window currently carries
// _NET_WM_STATE_ABOVE.
func (c *Connection) IsWindowAbove(windowID xproto.Window) (bool, error) {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return false, err
	}
	for _, state := range states {
		if state == "_NET_WM_STATE_ABOVE" {
			return true, nil
		}
	}
	return false, nil
}

// SetWindowOpacity sets _NET_WM_WINDOW_OPACITY from a 0-100 percentage,
// 100 meaning fully opaque. Requires a running compositor to take effect.
func (c *Connection) SetWindowOpacity(windowID xproto.Window, percent int) error {
	const opaque = 0xFFFFFFFF
	value := uint(float64(percent) / 100 * float64(opaque))
	return xprop.ChangeProp32(c.XUtil, windowID, "_NET_WM_WINDOW_OPACITY", "CARDINAL", value)
}
