package main

import (
	"errors"
	"testing"

	"github.com/YMC-GitHub/pscan/internal/apperr"
	"github.com/YMC-GitHub/pscan/internal/platform"
	"github.com/YMC-GitHub/pscan/internal/sorting"
)

func stackingWindows() []platform.Window {
	return []platform.Window{
		{ID: 1, PID: 100, Title: "beta"},
		{ID: 2, PID: 200, Title: "alpha"},
		{ID: 3, PID: 300, Title: "gamma"},
	}
}

func TestSelectStackingEmptyIsNoMatch(t *testing.T) {
	_, _, err := selectStacking(nil, "", false, "0|0")
	if kind := errorKind(t, err); kind != apperr.KindNoMatchingWindows {
		t.Fatalf("kind = %v, want NoMatchingWindows", kind)
	}
}

func TestSelectStackingGuardsMultipleMatches(t *testing.T) {
	_, _, err := selectStacking(stackingWindows(), "", false, "0|0")
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindMultipleWindows {
		t.Fatalf("err = %v, want MultipleWindows", err)
	}
	if appErr.Count != 3 {
		t.Errorf("count = %d, want 3", appErr.Count)
	}
}

func TestSelectStackingAllRows(t *testing.T) {
	selected, rows, err := selectStacking(stackingWindows(), "", true, "1|1")
	if err != nil {
		t.Fatalf("selectStacking returned error: %v", err)
	}
	if len(selected) != 3 || len(rows) != 3 {
		t.Fatalf("selected %d windows over %d rows", len(selected), len(rows))
	}
	// "1|1" sorts the match list by title.
	if selected[rows[0]].Title != "alpha" || selected[rows[2]].Title != "gamma" {
		t.Errorf("sorted titles = %q, %q, %q", selected[rows[0]].Title, selected[rows[1]].Title, selected[rows[2]].Title)
	}
}

func TestSelectStackingIndexAddressesSortedRows(t *testing.T) {
	selected, rows, err := selectStacking(stackingWindows(), "2", false, "1|1")
	if err != nil {
		t.Fatalf("selectStacking returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %v, want one row", rows)
	}
	if got := selected[rows[0]].Title; got != "beta" {
		t.Errorf("row 2 title = %q, want beta", got)
	}
}

func TestSelectStackingOutOfRangeIndexFallsBackToFirstRow(t *testing.T) {
	selected, rows, err := selectStacking(stackingWindows(), "9", false, "1|1")
	if err != nil {
		t.Fatalf("selectStacking returned error: %v", err)
	}
	if len(rows) != 1 || selected[rows[0]].Title != "alpha" {
		t.Errorf("rows = %v over %d windows", rows, len(selected))
	}
}

func TestPositionSortOrDefault(t *testing.T) {
	pos := positionSortOrDefault("1|-1")
	if pos.X != sorting.Ascending || pos.Y != sorting.Descending {
		t.Errorf("positionSortOrDefault(1|-1) = %+v", pos)
	}
	pos = positionSortOrDefault("sideways")
	if pos != sorting.DefaultPositionSort() {
		t.Errorf("fallback = %+v, want default", pos)
	}
}

func TestAotFailureVerb(t *testing.T) {
	if got := aotFailureVerb(false, false); got != "set always on top" {
		t.Errorf("default verb = %q", got)
	}
	if got := aotFailureVerb(true, false); got != "unset always on top" {
		t.Errorf("off verb = %q", got)
	}
	if got := aotFailureVerb(false, true); got != "toggle always on top" {
		t.Errorf("toggle verb = %q", got)
	}
}
