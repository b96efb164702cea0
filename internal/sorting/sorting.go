// Package sorting orders windows deterministically so that 1-based index
// addressing of batch operations is stable and repeatable.
package sorting

import (
	"sort"
	"strings"

	"github.com/YMC-GitHub/pscan/internal/apperr"
	"github.com/YMC-GitHub/pscan/internal/platform"
)

// Order is a sort direction for a single key.
type Order int

const (
	None Order = iota
	Ascending
	Descending
)

// ParseOrder converts the CLI tokens "1", "-1" and "0" to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "1":
		return Ascending, nil
	case "-1":
		return Descending, nil
	case "0":
		return None, nil
	}
	return None, apperr.Parse("Invalid sort order: %s. Use 1 (ascending), -1 (descending), or 0 (none)", s)
}

// PositionSort pairs the X and Y axis sort directions.
type PositionSort struct {
	X Order
	Y Order
}

// DefaultPositionSort sorts both axes ascending.
func DefaultPositionSort() PositionSort {
	return PositionSort{X: Ascending, Y: Ascending}
}

// ParsePositionSort parses an "X_ORDER|Y_ORDER" token such as "1|-1".
func ParsePositionSort(s string) (PositionSort, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 2 {
		return PositionSort{}, apperr.Parse("Position sort format should be X_ORDER|Y_ORDER, e.g., 1|-1")
	}

	x, err := ParseOrder(parts[0])
	if err != nil {
		return PositionSort{}, err
	}
	y, err := ParseOrder(parts[1])
	if err != nil {
		return PositionSort{}, err
	}

	return PositionSort{X: x, Y: y}, nil
}

// ByPosition stable-sorts windows by X coordinate, breaking ties by Y and
// then by process id, honoring each key's direction. With all three keys
// None the slice is left untouched, so sorting is idempotent and a re-sort
// of sorted input is the identity.
func ByPosition(windows []platform.Window, pidOrder Order, pos PositionSort) {
	if pidOrder == None && pos.X == None && pos.Y == None {
		return
	}

	sort.SliceStable(windows, func(i, j int) bool {
		a, b := windows[i], windows[j]

		cmp := 0
		if pos.X != None {
			cmp = directed(compare(a.Bounds.X, b.Bounds.X), pos.X)
		}
		if cmp == 0 && pos.Y != None {
			cmp = directed(compare(a.Bounds.Y, b.Bounds.Y), pos.Y)
		}
		if cmp == 0 && pidOrder != None {
			cmp = directed(compare(int(a.PID), int(b.PID)), pidOrder)
		}

		return cmp < 0
	})
}

// ByTitle stable-sorts window handles for operations that address windows
// without trusting their screen position: the title stands in for the X
// axis and takes its direction, with process id as the tiebreaker. With
// both keys None the slice is left untouched.
func ByTitle(windows []platform.Window, pidOrder Order, pos PositionSort) {
	if pidOrder == None && pos.X == None {
		return
	}

	sort.SliceStable(windows, func(i, j int) bool {
		a, b := windows[i], windows[j]

		cmp := 0
		if pos.X != None {
			cmp = directed(strings.Compare(a.Title, b.Title), pos.X)
		}
		if cmp == 0 && pidOrder != None {
			cmp = directed(compare(int(a.PID), int(b.PID)), pidOrder)
		}

		return cmp < 0
	})
}

func compare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func directed(cmp int, o Order) int {
	if o == Descending {
		return -cmp
	}
	return cmp
}
