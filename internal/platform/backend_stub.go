//go:build !linux && !windows

package platform

import (
	"fmt"
	"os"

	"github.com/YMC-GitHub/pscan/internal/apperr"
)

// stubBackend stands in on platforms without a supported windowing API.
// Discovery reports an empty universe and every mutation fails; nothing
// is ever silently skipped.
type stubBackend struct{}

var _ Backend = (*stubBackend)(nil)

// New returns the backend for platforms without native window support.
func New() (Backend, error) {
	return &stubBackend{}, nil
}

func (*stubBackend) Close() {}

// ListWindows warns and reports no windows rather than failing, leaving
// the empty-result decision to the caller.
func (*stubBackend) ListWindows() ([]Window, error) {
	fmt.Fprintln(os.Stderr, "Warning: Window operations are not supported on this platform")
	return nil, nil
}

func notSupported() error {
	return apperr.FeatureNotSupported("window operations on this platform")
}

func (*stubBackend) Minimize(WindowID) error { return notSupported() }

func (*stubBackend) Maximize(WindowID) error { return notSupported() }

func (*stubBackend) Restore(WindowID) error { return notSupported() }

func (*stubBackend) SetPosition(WindowID, int, int) error { return notSupported() }

func (*stubBackend) Resize(WindowID, int, int, bool, bool) error { return notSupported() }

func (*stubBackend) SetAlwaysOnTop(WindowID, bool) error { return notSupported() }

func (*stubBackend) IsAlwaysOnTop(WindowID) (bool, error) { return false, notSupported() }

func (*stubBackend) SetTransparency(WindowID, int) error { return notSupported() }
