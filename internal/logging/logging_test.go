package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"ERROR", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"trace", zerolog.InfoLevel},
	} {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(WithOutput(&buf), WithLevel(zerolog.InfoLevel))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer log.Close()

	log.Debug("should be filtered")
	log.Info("window restored", "pid", 4242, "title", "Terminal")

	out := buf.String()
	if strings.Contains(out, "should be filtered") {
		t.Error("debug message logged despite info level")
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(out), &entry); err != nil {
		t.Fatalf("log line is not json: %v\n%s", err, out)
	}
	if entry["message"] != "window restored" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["pid"] != float64(4242) {
		t.Errorf("pid field = %v", entry["pid"])
	}
	if entry["title"] != "Terminal" {
		t.Errorf("title field = %v", entry["title"])
	}
	if _, ok := entry["file"]; !ok {
		t.Error("source file field missing")
	}
}

func TestLoggerDanglingFieldIsDropped(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(WithOutput(&buf))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer log.Close()

	log.Info("msg", "pid", 1, "dangling")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not json: %v", err)
	}
	if _, ok := entry["dangling"]; ok {
		t.Error("dangling key should not be logged")
	}
}

func TestWithFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pscan.log")
	log, err := New(WithFile(path))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	log.Info("written to file")
	if err := log.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file content = %q", data)
	}
}
