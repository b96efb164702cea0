package batch

import (
	"errors"
	"reflect"
	"testing"

	"github.com/YMC-GitHub/pscan/internal/apperr"
	"github.com/YMC-GitHub/pscan/internal/platform"
)

func TestParseIndices(t *testing.T) {
	for _, tt := range []struct {
		in   string
		max  int
		want []int
	}{
		{"", 5, nil},
		{"1,3", 5, []int{1, 3}},
		{"1,6,3", 5, []int{1, 3}},
		{"1,,3", 5, []int{1, 3}},
		{" 2 , 4 ", 5, []int{2, 4}},
		{"a,2", 5, []int{2}},
		{"0,1", 5, []int{1}},
		{"-1,2", 5, []int{2}},
		{"2,2", 5, []int{2, 2}},
	} {
		if got := ParseIndices(tt.in, tt.max); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseIndices(%q, %d) = %v, want %v", tt.in, tt.max, got, tt.want)
		}
	}
}

func sampleWindows(n int) []platform.Window {
	windows := make([]platform.Window, n)
	for i := range windows {
		windows[i] = platform.Window{ID: platform.WindowID(i + 1), PID: uint32(100 + i)}
	}
	return windows
}

func TestSelectEmptyIsNoMatchingWindows(t *testing.T) {
	_, err := Select(nil, false)
	if err == nil {
		t.Fatal("expected error for empty window list")
	}
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindNoMatchingWindows {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSelectMultipleWithoutAll(t *testing.T) {
	_, err := Select(sampleWindows(3), false)
	if err == nil {
		t.Fatal("expected error for multiple matches without all")
	}
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindMultipleWindows {
		t.Fatalf("unexpected error: %v", err)
	}
	if appErr.Count != 3 {
		t.Errorf("Count = %d, want 3", appErr.Count)
	}
}

func TestSelectSingleWithoutAll(t *testing.T) {
	windows, err := Select(sampleWindows(1), false)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if len(windows) != 1 {
		t.Errorf("got %d windows", len(windows))
	}
}

func TestSelectAllReturnsEverything(t *testing.T) {
	windows, err := Select(sampleWindows(3), true)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if len(windows) != 3 {
		t.Errorf("got %d windows", len(windows))
	}
}

func TestTargets(t *testing.T) {
	for _, tt := range []struct {
		name    string
		count   int
		indices []int
		all     bool
		want    []int
	}{
		{"no indices without all takes first row only", 3, nil, false, []int{0}},
		{"no indices with all takes every row", 3, nil, true, []int{0, 1, 2}},
		{"indices select their rows", 4, []int{2, 4}, false, []int{1, 3}},
		{"indices ignore all", 4, []int{2, 4}, true, []int{1, 3}},
		{"no windows", 0, nil, true, nil},
		{"indices matching nothing", 3, []int{5}, false, nil},
	} {
		if got := Targets(tt.count, tt.indices, tt.all); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: Targets(%d, %v, %v) = %v, want %v",
				tt.name, tt.count, tt.indices, tt.all, got, tt.want)
		}
	}
}
