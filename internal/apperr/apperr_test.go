package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "parse",
			err:  Parse("Invalid sort order: %s. Use 1 (ascending), -1 (descending), or 0 (none)", "2"),
			want: "Parse error: Invalid sort order: 2. Use 1 (ascending), -1 (descending), or 0 (none)",
		},
		{
			name: "window operation",
			err:  WindowOperation("window no longer exists"),
			want: "Window operation failed: window no longer exists",
		},
		{
			name: "no matching windows",
			err:  NoMatchingWindows(),
			want: "No matching windows found",
		},
		{
			name: "multiple windows",
			err:  MultipleWindows(3),
			want: "Multiple windows found (3). Use --all to modify all matching windows",
		},
		{
			name: "invalid parameter",
			err:  InvalidParameter("Invalid width: %s", "abc"),
			want: "Invalid parameter: Invalid width: abc",
		},
		{
			name: "feature not supported",
			err:  FeatureNotSupported("window enumeration on this platform"),
			want: "Feature not supported: window enumeration on this platform",
		},
		{
			name: "platform",
			err:  Platform("cannot connect to X server"),
			want: "Platform error: cannot connect to X server",
		},
		{
			name: "no windows modified",
			err:  NoWindowsModified(),
			want: "No windows were modified",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain error", errors.New("boom"), 1},
		{"parse", Parse("bad token"), 2},
		{"invalid parameter", InvalidParameter("bad value"), 2},
		{"no matching windows", NoMatchingWindows(), 3},
		{"multiple windows", MultipleWindows(2), 4},
		{"no windows modified", NoWindowsModified(), 5},
		{"window operation", WindowOperation("denied"), 6},
		{"feature not supported", FeatureNotSupported("transparency"), 7},
		{"platform", Platform("no display"), 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("running command: %w", NoMatchingWindows())
	if got := ExitCode(wrapped); got != 3 {
		t.Errorf("ExitCode(wrapped) = %d, want 3", got)
	}
}
