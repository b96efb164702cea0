// Package logging wraps zerolog behind a small structured logger.
// Diagnostics go to stderr so that stdout stays reserved for command
// output, and the MCP server can redirect them to a file because its
// stdout carries the protocol stream.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the process-wide structured logger.
type Logger struct {
	zlog zerolog.Logger
	file *os.File
}

// Option configures a Logger during construction.
type Option func(*Logger) error

// WithLevel sets the minimum level that gets logged.
func WithLevel(level zerolog.Level) Option {
	return func(l *Logger) error {
		l.zlog = l.zlog.Level(level)
		return nil
	}
}

// WithOutput sends log events to w instead of the default stderr
// console writer.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) error {
		l.zlog = l.zlog.Output(w)
		return nil
	}
}

// WithFile appends human-readable log lines to the file at path,
// creating parent directories as needed.
func WithFile(path string) Option {
	return func(l *Logger) error {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = f
		l.zlog = l.zlog.Output(zerolog.ConsoleWriter{
			Out:        f,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
		return nil
	}
}

// New creates a logger writing to stderr at info level unless options
// say otherwise.
func New(opts ...Option) (*Logger, error) {
	l := &Logger{
		zlog: zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger().Level(zerolog.InfoLevel),
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, fmt.Errorf("failed to apply logger option: %w", err)
		}
	}
	return l, nil
}

// Close releases the log file if one was opened.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// ParseLevel maps a config log level string to a zerolog level.
// Unrecognized values fall back to info rather than failing startup.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// addSourceContext records the caller's file and line on the event.
func addSourceContext(e *zerolog.Event) *zerolog.Event {
	_, file, line, ok := runtime.Caller(2)
	if ok {
		return e.Str("file", filepath.Base(file)).Int("line", line)
	}
	return e
}

// Debug logs a debug message with optional key/value field pairs.
func (l *Logger) Debug(msg string, fields ...interface{}) {
	event := addSourceContext(l.zlog.Debug())
	logFields(event, fields...)
	event.Msg(msg)
}

// Info logs an info message with optional key/value field pairs.
func (l *Logger) Info(msg string, fields ...interface{}) {
	event := addSourceContext(l.zlog.Info())
	logFields(event, fields...)
	event.Msg(msg)
}

// Warn logs a warning message with optional key/value field pairs.
func (l *Logger) Warn(msg string, fields ...interface{}) {
	event := addSourceContext(l.zlog.Warn())
	logFields(event, fields...)
	event.Msg(msg)
}

// Error logs an error message with the error attached.
func (l *Logger) Error(msg string, err error, fields ...interface{}) {
	event := addSourceContext(l.zlog.Error())
	if err != nil {
		event = event.Err(err)
	}
	logFields(event, fields...)
	event.Msg(msg)
}

// logFields attaches fields as alternating key/value pairs. A trailing
// key without a value is dropped.
func logFields(event *zerolog.Event, fields ...interface{}) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		event.Interface(key, fields[i+1])
	}
}
