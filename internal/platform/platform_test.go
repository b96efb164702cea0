package platform

import "testing"

func sampleWindows() []Window {
	return []Window{
		{ID: 1, PID: 100, Title: "Downloads - File Manager", Bounds: Rect{X: 0, Y: 0, Width: 800, Height: 600}},
		{ID: 2, PID: 200, Title: "main.go - Editor", Bounds: Rect{X: 100, Y: 50, Width: 1024, Height: 768}},
		{ID: 3, PID: 300, Title: "Terminal", Bounds: Rect{X: 400, Y: 300, Width: 640, Height: 480}},
	}
}

func sampleNames() map[uint32]string {
	return map[uint32]string{
		100: "thunar",
		200: "code",
		300: "xterm",
	}
}

func TestFilterWindows(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		wantPIDs []uint32
	}{
		{
			name:     "no filters returns everything",
			filter:   Filter{},
			wantPIDs: []uint32{100, 200, 300},
		},
		{
			name:     "pid exact match",
			filter:   Filter{PID: "200"},
			wantPIDs: []uint32{200},
		},
		{
			name:     "pid compares as string",
			filter:   Filter{PID: "0200"},
			wantPIDs: []uint32{},
		},
		{
			name:     "name substring case-insensitive",
			filter:   Filter{Name: "TERM"},
			wantPIDs: []uint32{300},
		},
		{
			name:     "title substring case-insensitive",
			filter:   Filter{Title: "editor"},
			wantPIDs: []uint32{200},
		},
		{
			name:     "filters combine with AND",
			filter:   Filter{PID: "200", Name: "code", Title: "editor"},
			wantPIDs: []uint32{200},
		},
		{
			name:     "AND with one failing filter matches nothing",
			filter:   Filter{PID: "200", Title: "terminal"},
			wantPIDs: []uint32{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterWindows(sampleWindows(), tt.filter, sampleNames())
			if len(got) != len(tt.wantPIDs) {
				t.Fatalf("got %d windows, want %d", len(got), len(tt.wantPIDs))
			}
			for i, w := range got {
				if w.PID != tt.wantPIDs[i] {
					t.Errorf("window %d: PID = %d, want %d", i, w.PID, tt.wantPIDs[i])
				}
			}
		})
	}
}

func TestFilterWindowsUnknownProcessName(t *testing.T) {
	// PID 400 has no entry in the names table, so a name filter can
	// never match it.
	windows := []Window{{ID: 9, PID: 400, Title: "Mystery"}}

	if got := FilterWindows(windows, Filter{Name: "mystery"}, sampleNames()); len(got) != 0 {
		t.Errorf("name filter matched a window with unknown process name: %v", got)
	}
	if got := FilterWindows(windows, Filter{}, sampleNames()); len(got) != 1 {
		t.Errorf("empty filter should still match, got %d windows", len(got))
	}
}

func TestFilterWindowsPreservesOrder(t *testing.T) {
	windows := []Window{
		{ID: 1, PID: 300, Title: "b"},
		{ID: 2, PID: 100, Title: "a"},
		{ID: 3, PID: 200, Title: "c"},
	}

	got := FilterWindows(windows, Filter{}, sampleNames())
	for i, w := range got {
		if w.ID != windows[i].ID {
			t.Errorf("window %d: ID = %d, want %d (input order must be preserved)", i, w.ID, windows[i].ID)
		}
	}
}

func TestRectString(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 800, Height: 600}
	if got, want := r.String(), "800x600+10+20"; got != want {
		t.Errorf("Rect.String() = %q, want %q", got, want)
	}
}
