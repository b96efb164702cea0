// Package apperr defines the error kinds shared by the CLI commands and
// maps each kind to a stable process exit code.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an Error for exit-code mapping.
type Kind int

const (
	KindUnknown Kind = iota
	KindParse
	KindWindowOperation
	KindNoMatchingWindows
	KindMultipleWindows
	KindInvalidParameter
	KindFeatureNotSupported
	KindPlatform
	KindNoWindowsModified
)

// Error is a classified failure. The message rendered by Error includes a
// fixed prefix per kind so callers can print it directly.
type Error struct {
	Kind  Kind
	Count int // matching windows, set for KindMultipleWindows
	msg   string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindParse:
		return "Parse error: " + e.msg
	case KindWindowOperation:
		return "Window operation failed: " + e.msg
	case KindNoMatchingWindows:
		return "No matching windows found"
	case KindMultipleWindows:
		return fmt.Sprintf("Multiple windows found (%d). Use --all to modify all matching windows", e.Count)
	case KindInvalidParameter:
		return "Invalid parameter: " + e.msg
	case KindFeatureNotSupported:
		return "Feature not supported: " + e.msg
	case KindPlatform:
		return "Platform error: " + e.msg
	case KindNoWindowsModified:
		return "No windows were modified"
	}
	return e.msg
}

// Parse reports malformed user input such as a bad sort order token.
func Parse(format string, args ...any) *Error {
	return &Error{Kind: KindParse, msg: fmt.Sprintf(format, args...)}
}

// WindowOperation reports a window manipulation that the OS rejected,
// including operations on handles that went stale.
func WindowOperation(format string, args ...any) *Error {
	return &Error{Kind: KindWindowOperation, msg: fmt.Sprintf(format, args...)}
}

// NoMatchingWindows reports that a filter matched nothing when a command
// required at least one target.
func NoMatchingWindows() *Error {
	return &Error{Kind: KindNoMatchingWindows}
}

// MultipleWindows reports that count windows matched but the command only
// modifies one unless --all is given.
func MultipleWindows(count int) *Error {
	return &Error{Kind: KindMultipleWindows, Count: count}
}

// InvalidParameter reports a structurally valid flag carrying an unusable
// value, such as an odd-length layout list.
func InvalidParameter(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidParameter, msg: fmt.Sprintf(format, args...)}
}

// FeatureNotSupported reports an operation the current platform cannot
// perform at all.
func FeatureNotSupported(format string, args ...any) *Error {
	return &Error{Kind: KindFeatureNotSupported, msg: fmt.Sprintf(format, args...)}
}

// Platform reports an OS-level failure outside any single window, such as
// a lost display connection.
func Platform(format string, args ...any) *Error {
	return &Error{Kind: KindPlatform, msg: fmt.Sprintf(format, args...)}
}

// NoWindowsModified reports a batch in which every per-window attempt failed.
func NoWindowsModified() *Error {
	return &Error{Kind: KindNoWindowsModified}
}

// ExitCode maps err to the process exit code documented for the CLI.
// nil maps to 0 and unclassified errors map to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *Error
	if !errors.As(err, &e) {
		return 1
	}
	switch e.Kind {
	case KindParse, KindInvalidParameter:
		return 2
	case KindNoMatchingWindows:
		return 3
	case KindMultipleWindows:
		return 4
	case KindNoWindowsModified:
		return 5
	case KindWindowOperation:
		return 6
	case KindFeatureNotSupported:
		return 7
	case KindPlatform:
		return 8
	}
	return 1
}
