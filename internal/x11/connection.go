// Package x11 wraps the X server primitives used for window discovery
// and manipulation on Linux.
package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection establishes a connection to the X11 server
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	// EWMH and RandR extensions are initialized automatically by xgbutil

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
