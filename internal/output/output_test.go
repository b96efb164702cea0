package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/YMC-GitHub/pscan/internal/platform"
	"github.com/YMC-GitHub/pscan/internal/procs"
)

var testWindows = []platform.Window{
	{ID: 1, PID: 4242, Title: "Downloads - File Manager", Bounds: platform.Rect{X: 10, Y: 20, Width: 800, Height: 600}},
	{ID: 2, PID: 77, Title: "Terminal", Bounds: platform.Rect{X: 0, Y: 0, Width: 1280, Height: 720}},
}

// 77 is deliberately absent so the "Unknown" fallback is exercised.
var testNames = map[uint32]string{4242: "thunar"}

var testInfos = []procs.Info{
	{PID: "4242", Name: "thunar", Title: "Downloads - File Manager", MemoryUsage: 12 * 1024 * 1024, HasWindow: true},
	{PID: "901", Name: "sshd", Title: "No Title", MemoryUsage: 1024 * 1024, HasWindow: false},
}

func TestParseFormat(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Format
	}{
		{"table", FormatTable},
		{"json", FormatJSON},
		{"YAML", FormatYAML},
		{"csv", FormatCSV},
		{"Simple", FormatSimple},
		{"detailed", FormatDetailed},
	} {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q) returned error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	_, err := ParseFormat("xml")
	if err == nil {
		t.Fatal("ParseFormat(\"xml\") should fail")
	}
	if !strings.Contains(err.Error(), "Invalid output format: xml") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestTruncate(t *testing.T) {
	for _, tt := range []struct {
		in   string
		max  int
		want string
	}{
		{"short", 18, "short"},
		{"exactly eighteen!!", 18, "exactly eighteen!!"},
		{"a very long window title here", 18, "a very long win..."},
		{"Downloads - File Manager", 28, "Downloads - File Manager"},
	} {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestWindowsTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Windows(&buf, testWindows, testNames, FormatTable); err != nil {
		t.Fatalf("Windows returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Found 2 windows:" {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "PID      Name") {
		t.Errorf("column header = %q", lines[1])
	}
	if lines[2] != "4242     thunar               Downloads - File Manager       800     x600    +10+20" {
		t.Errorf("row 1 = %q", lines[2])
	}
	if lines[3] != "77       Unknown              Terminal                       1280    x720    +0+0" {
		t.Errorf("row 2 = %q", lines[3])
	}
}

func TestWindowsSimple(t *testing.T) {
	var buf bytes.Buffer
	if err := Windows(&buf, testWindows, testNames, FormatSimple); err != nil {
		t.Fatalf("Windows returned error: %v", err)
	}

	want := "4242: thunar - Downloads - File Manager (800x600 at +10+20)\n" +
		"77: Unknown - Terminal (1280x720 at +0+0)\n"
	if buf.String() != want {
		t.Errorf("simple output = %q, want %q", buf.String(), want)
	}
}

func TestWindowsDetailed(t *testing.T) {
	var buf bytes.Buffer
	if err := Windows(&buf, testWindows[:1], testNames, FormatDetailed); err != nil {
		t.Fatalf("Windows returned error: %v", err)
	}

	want := "Window #1:\n" +
		"  PID:        4242\n" +
		"  Name:       thunar\n" +
		"  Title:      Downloads - File Manager\n" +
		"  Size:       800x600\n" +
		"  Position:   +10+20\n" +
		"  Dimensions: 800x600+10+20\n" +
		"\n"
	if buf.String() != want {
		t.Errorf("detailed output = %q, want %q", buf.String(), want)
	}
}

func TestWindowsCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Windows(&buf, testWindows, testNames, FormatCSV); err != nil {
		t.Fatalf("Windows returned error: %v", err)
	}

	want := "PID,Name,Title,X,Y,Width,Height,Dimensions\n" +
		"4242,thunar,Downloads - File Manager,10,20,800,600,800x600+10+20\n" +
		"77,Unknown,Terminal,0,0,1280,720,1280x720+0+0\n"
	if buf.String() != want {
		t.Errorf("csv output = %q, want %q", buf.String(), want)
	}
}

func TestWindowsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Windows(&buf, testWindows, testNames, FormatJSON); err != nil {
		t.Fatalf("Windows returned error: %v", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["pid"] != "4242" {
		t.Errorf("pid = %v, want the string \"4242\"", records[0]["pid"])
	}
	if records[0]["name"] != "thunar" {
		t.Errorf("name = %v", records[0]["name"])
	}
	if records[0]["width"] != float64(800) {
		t.Errorf("width = %v", records[0]["width"])
	}
	if records[0]["dimensions"] != "800x600+10+20" {
		t.Errorf("dimensions = %v", records[0]["dimensions"])
	}
	if records[1]["name"] != "Unknown" {
		t.Errorf("fallback name = %v, want Unknown", records[1]["name"])
	}
}

func TestWindowsYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Windows(&buf, testWindows, testNames, FormatYAML); err != nil {
		t.Fatalf("Windows returned error: %v", err)
	}

	var records []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatalf("output is not valid yaml: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["pid"] != "4242" {
		t.Errorf("pid = %v, want the string \"4242\"", records[0]["pid"])
	}
	if records[0]["width"] != 800 {
		t.Errorf("width = %v", records[0]["width"])
	}
}

func TestProcessesTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Processes(&buf, testInfos, FormatTable, false); err != nil {
		t.Fatalf("Processes returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Found 2 matching processes:" {
		t.Errorf("header line = %q", lines[0])
	}
	if lines[2] != "4242     thunar               Downloads - File Manager       12.00 MB" {
		t.Errorf("row 1 = %q", lines[2])
	}
}

func TestProcessesTableVerbose(t *testing.T) {
	var buf bytes.Buffer
	if err := Processes(&buf, testInfos[:1], FormatTable, true); err != nil {
		t.Fatalf("Processes returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Window") {
		t.Error("verbose header should include a Window column")
	}
	if !strings.Contains(out, "12.00       MB Yes") {
		t.Errorf("verbose row missing from output:\n%s", out)
	}
	if !strings.Contains(out, "    PID: 4242\n") {
		t.Errorf("detail block missing from output:\n%s", out)
	}
	if !strings.Contains(out, "    "+strings.Repeat("-", 50)+"\n") {
		t.Errorf("detail separator missing from output:\n%s", out)
	}
}

func TestProcessesSimple(t *testing.T) {
	var buf bytes.Buffer
	if err := Processes(&buf, testInfos, FormatSimple, false); err != nil {
		t.Fatalf("Processes returned error: %v", err)
	}

	want := "4242: thunar (12.0 MB) - Has Window\n" +
		"901: sshd (1.0 MB) - No Window\n"
	if buf.String() != want {
		t.Errorf("simple output = %q, want %q", buf.String(), want)
	}
}

func TestProcessesDetailed(t *testing.T) {
	var buf bytes.Buffer
	if err := Processes(&buf, testInfos[:1], FormatDetailed, false); err != nil {
		t.Fatalf("Processes returned error: %v", err)
	}

	want := "Process #1:\n" +
		"  PID:          4242\n" +
		"  Name:         thunar\n" +
		"  Title:        Downloads - File Manager\n" +
		"  Memory:       12.00 MB\n" +
		"  Raw Memory:   12582912 bytes\n" +
		"  Has Window:   Yes\n" +
		"\n"
	if buf.String() != want {
		t.Errorf("detailed output = %q, want %q", buf.String(), want)
	}
}

func TestProcessesCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Processes(&buf, testInfos, FormatCSV, false); err != nil {
		t.Fatalf("Processes returned error: %v", err)
	}

	want := "PID,Name,Title,MemoryUsage,MemoryUsageMB,HasWindow\n" +
		"4242,thunar,Downloads - File Manager,12582912,12.00,true\n" +
		"901,sshd,No Title,1048576,1.00,false\n"
	if buf.String() != want {
		t.Errorf("csv output = %q, want %q", buf.String(), want)
	}
}

func TestProcessesJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Processes(&buf, testInfos, FormatJSON, false); err != nil {
		t.Fatalf("Processes returned error: %v", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if records[0]["memory_usage_mb"] != float64(12) {
		t.Errorf("memory_usage_mb = %v", records[0]["memory_usage_mb"])
	}
	if records[0]["has_window"] != true {
		t.Errorf("has_window = %v", records[0]["has_window"])
	}
	if records[1]["has_window"] != false {
		t.Errorf("has_window = %v", records[1]["has_window"])
	}
}
