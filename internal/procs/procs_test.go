package procs

import (
	"testing"

	"github.com/YMC-GitHub/pscan/internal/platform"
)

func sampleInfos() []Info {
	return []Info{
		{PID: "100", Name: "firefox", Title: "Mozilla Firefox", MemoryUsage: 512 << 20, HasWindow: true},
		{PID: "200", Name: "sshd", Title: "/usr/sbin/sshd -D", MemoryUsage: 8 << 20, HasWindow: false},
		{PID: "300", Name: "code", Title: "main.go - Visual Studio Code", MemoryUsage: 1 << 30, HasWindow: true},
	}
}

func TestFilterProcesses(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		wantPIDs []string
	}{
		{
			name:     "no filters returns everything",
			filter:   Filter{},
			wantPIDs: []string{"100", "200", "300"},
		},
		{
			name:     "pid exact match",
			filter:   Filter{PID: "200"},
			wantPIDs: []string{"200"},
		},
		{
			name:     "name substring case-insensitive",
			filter:   Filter{Name: "FIRE"},
			wantPIDs: []string{"100"},
		},
		{
			name:     "title substring case-insensitive",
			filter:   Filter{Title: "visual studio"},
			wantPIDs: []string{"300"},
		},
		{
			name:     "has-window",
			filter:   Filter{HasWindow: true},
			wantPIDs: []string{"100", "300"},
		},
		{
			name:     "no-window",
			filter:   Filter{NoWindow: true},
			wantPIDs: []string{"200"},
		},
		{
			name:     "filters combine with AND",
			filter:   Filter{Name: "o", HasWindow: true, Title: "firefox"},
			wantPIDs: []string{"100"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProcesses(sampleInfos(), tt.filter)
			if len(got) != len(tt.wantPIDs) {
				t.Fatalf("got %d processes, want %d", len(got), len(tt.wantPIDs))
			}
			for i, p := range got {
				if p.PID != tt.wantPIDs[i] {
					t.Errorf("process %d: PID = %s, want %s", i, p.PID, tt.wantPIDs[i])
				}
			}
		})
	}
}

func TestPairTitlesKeepsFirstTitlePerPid(t *testing.T) {
	windows := []platform.Window{
		{PID: 100, Title: "First"},
		{PID: 100, Title: "Second"},
		{PID: 200, Title: "Other"},
	}

	titles := pairTitles(windows)
	if titles[100] != "First" {
		t.Errorf("titles[100] = %q, want %q", titles[100], "First")
	}
	if titles[200] != "Other" {
		t.Errorf("titles[200] = %q, want %q", titles[200], "Other")
	}
}
