//go:build windows

package platform

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

// WindowsBackend drives native windows through user32.
type WindowsBackend struct{}

var _ Backend = (*WindowsBackend)(nil)

var errWindowGone = errors.New("window no longer exists")

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procEnumWindows                = user32.NewProc("EnumWindows")
	procIsWindow                   = user32.NewProc("IsWindow")
	procIsWindowVisible            = user32.NewProc("IsWindowVisible")
	procGetWindowTextW             = user32.NewProc("GetWindowTextW")
	procGetWindowThreadProcessId   = user32.NewProc("GetWindowThreadProcessId")
	procGetWindowRect              = user32.NewProc("GetWindowRect")
	procGetClassNameW              = user32.NewProc("GetClassNameW")
	procShowWindow                 = user32.NewProc("ShowWindow")
	procSetWindowPos               = user32.NewProc("SetWindowPos")
	procGetWindowLongW             = user32.NewProc("GetWindowLongW")
	procSetWindowLongW             = user32.NewProc("SetWindowLongW")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
	procGetSystemMetrics           = user32.NewProc("GetSystemMetrics")
)

const (
	swMaximize = 3
	swMinimize = 6
	swRestore  = 9

	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010

	gwlExStyle  = -20
	wsExTopmost = 0x00000008
	wsExLayered = 0x00080000

	lwaAlpha = 0x00000002

	smCxScreen = 0
	smCyScreen = 1
)

const (
	hwndTopmost   = ^uintptr(0) // (HWND)-1
	hwndNoTopmost = ^uintptr(1) // (HWND)-2
)

type winRect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// New returns the Win32 backend.
func New() (Backend, error) {
	return &WindowsBackend{}, nil
}

// Close releases nothing; user32 handles are process-global.
func (b *WindowsBackend) Close() {}

// ListWindows enumerates visible top-level windows, excluding shell
// infrastructure classes, windows without a usable title, and windows
// whose owning process cannot be determined.
func (b *WindowsBackend) ListWindows() ([]Window, error) {
	var found []Window

	cb := windows.NewCallback(func(hwnd, lparam uintptr) uintptr {
		if !isWindowVisible(hwnd) {
			return 1
		}

		title := windowTitle(hwnd)
		if strings.TrimSpace(title) == "" {
			return 1
		}

		if isShellWindow(windowClassName(hwnd)) {
			return 1
		}

		pid := windowPID(hwnd)
		if pid == 0 {
			return 1
		}

		var r winRect
		ret, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
		if ret == 0 {
			return 1
		}

		found = append(found, Window{
			ID:    WindowID(hwnd),
			PID:   pid,
			Title: title,
			Bounds: Rect{
				X:      int(r.Left),
				Y:      int(r.Top),
				Width:  int(r.Right - r.Left),
				Height: int(r.Bottom - r.Top),
			},
		})
		return 1
	})

	ret, _, err := procEnumWindows.Call(cb, 0)
	if ret == 0 {
		return nil, fmt.Errorf("EnumWindows failed: %v", err)
	}

	return found, nil
}

// Minimize minimizes the window.
func (b *WindowsBackend) Minimize(id WindowID) error {
	return showWindow(uintptr(id), swMinimize)
}

// Maximize maximizes the window.
func (b *WindowsBackend) Maximize(id WindowID) error {
	return showWindow(uintptr(id), swMaximize)
}

// Restore returns the window to its normal size and position.
func (b *WindowsBackend) Restore(id WindowID) error {
	return showWindow(uintptr(id), swRestore)
}

// SetPosition moves the window keeping its size and z-order.
func (b *WindowsBackend) SetPosition(id WindowID, x, y int) error {
	hwnd := uintptr(id)
	if err := validateWindow(hwnd); err != nil {
		return err
	}
	return setWindowPos(hwnd, 0, x, y, 0, 0, swpNoSize|swpNoZOrder|swpNoActivate)
}

// Resize changes the window size. center places the window centered on
// the primary display; the keep-position policy and the default both
// leave the top-left corner untouched.
func (b *WindowsBackend) Resize(id WindowID, width, height int, keepPosition, center bool) error {
	hwnd := uintptr(id)
	if err := validateWindow(hwnd); err != nil {
		return err
	}

	if center {
		x := (systemMetric(smCxScreen) - width) / 2
		y := (systemMetric(smCyScreen) - height) / 2
		return setWindowPos(hwnd, 0, x, y, width, height, swpNoZOrder|swpNoActivate)
	}

	return setWindowPos(hwnd, 0, 0, 0, width, height, swpNoMove|swpNoZOrder|swpNoActivate)
}

// SetAlwaysOnTop moves the window into or out of the topmost band.
func (b *WindowsBackend) SetAlwaysOnTop(id WindowID, onTop bool) error {
	hwnd := uintptr(id)
	if err := validateWindow(hwnd); err != nil {
		return err
	}

	insertAfter := hwndNoTopmost
	if onTop {
		insertAfter = hwndTopmost
	}
	return setWindowPos(hwnd, insertAfter, 0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
}

// IsAlwaysOnTop reports whether the window carries the topmost style.
func (b *WindowsBackend) IsAlwaysOnTop(id WindowID) (bool, error) {
	hwnd := uintptr(id)
	if err := validateWindow(hwnd); err != nil {
		return false, err
	}
	return getWindowLong(hwnd, gwlExStyle)&wsExTopmost != 0, nil
}

// SetTransparency applies an opacity percentage through the layered
// window alpha channel, promoting the window to layered if needed.
func (b *WindowsBackend) SetTransparency(id WindowID, opacity int) error {
	hwnd := uintptr(id)
	if err := validateWindow(hwnd); err != nil {
		return err
	}

	style := getWindowLong(hwnd, gwlExStyle)
	if style&wsExLayered == 0 {
		setWindowLong(hwnd, gwlExStyle, style|wsExLayered)
	}

	alpha := uintptr(opacity * 255 / 100)
	ret, _, err := procSetLayeredWindowAttributes.Call(hwnd, 0, alpha, lwaAlpha)
	if ret == 0 {
		return fmt.Errorf("SetLayeredWindowAttributes failed: %v", err)
	}
	return nil
}

func validateWindow(hwnd uintptr) error {
	ret, _, _ := procIsWindow.Call(hwnd)
	if ret == 0 {
		return errWindowGone
	}
	return nil
}

func showWindow(hwnd uintptr, cmd int) error {
	if err := validateWindow(hwnd); err != nil {
		return err
	}
	// The return value is the previous visibility state, not an error.
	procShowWindow.Call(hwnd, uintptr(cmd))
	return nil
}

func setWindowPos(hwnd, insertAfter uintptr, x, y, w, h int, flags uint32) error {
	ret, _, err := procSetWindowPos.Call(
		hwnd,
		insertAfter,
		uintptr(int32(x)),
		uintptr(int32(y)),
		uintptr(int32(w)),
		uintptr(int32(h)),
		uintptr(flags),
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos failed: %v", err)
	}
	return nil
}

func getWindowLong(hwnd uintptr, index int32) int32 {
	ret, _, _ := procGetWindowLongW.Call(hwnd, uintptr(uint32(index)))
	return int32(ret)
}

func setWindowLong(hwnd uintptr, index, value int32) {
	procSetWindowLongW.Call(hwnd, uintptr(uint32(index)), uintptr(uint32(value)))
}

func systemMetric(index int) int {
	ret, _, _ := procGetSystemMetrics.Call(uintptr(index))
	return int(ret)
}

func isWindowVisible(hwnd uintptr) bool {
	ret, _, _ := procIsWindowVisible.Call(hwnd)
	return ret != 0
}

func windowTitle(hwnd uintptr) string {
	var buf [512]uint16
	n, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func windowClassName(hwnd uintptr) string {
	var buf [256]uint16
	n, _, _ := procGetClassNameW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func windowPID(hwnd uintptr) uint32 {
	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	return pid
}

// isShellWindow reports whether the window class belongs to the desktop
// shell rather than an application.
func isShellWindow(class string) bool {
	switch class {
	case "Progman", "WorkerW", "Shell_TrayWnd", "Shell_SecondaryTrayWnd",
		"Button", "DV2ControlHost":
		return true
	}
	return false
}
