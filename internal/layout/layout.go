// Package layout resolves a target position for every window in a batch
// from exactly one of three placement modes: a single shared position, an
// explicit coordinate list, or a start+step grid.
package layout

import (
	"strconv"
	"strings"

	"github.com/YMC-GitHub/pscan/internal/apperr"
)

// Point is one target top-left position in screen coordinates.
type Point struct {
	X int
	Y int
}

// Spec carries the raw placement flags of a position-setting command.
// nil fields were not provided on the command line; presence matters,
// because an empty grid flag still selects the grid mode.
type Spec struct {
	Position *string // "X,Y" applied to every window
	Layout   *string // "X1,Y1,X2,Y2,..." consumed pairwise
	XStart   *string
	YStart   *string
	XStep    *string
	YStep    *string
}

// Validate checks that exactly one placement mode is selected. The layout
// mode only counts when its value is non-blank, matching Positions.
func (s Spec) Validate() error {
	hasPosition := s.Position != nil
	hasLayout := s.Layout != nil && strings.TrimSpace(*s.Layout) != ""
	hasGrid := s.XStart != nil || s.YStart != nil || s.XStep != nil || s.YStep != nil

	count := 0
	for _, set := range []bool{hasPosition, hasLayout, hasGrid} {
		if set {
			count++
		}
	}

	if count == 0 {
		return apperr.InvalidParameter("No position method specified. Use --position, --layout, or --x-start/--y-start with steps")
	}
	if count > 1 {
		return apperr.InvalidParameter("Multiple position methods specified. Use only one of --position, --layout, or grid parameters")
	}
	return nil
}

// Positions resolves the placement into one position per window. The grid mode
// walks a single diagonal line, position i landing at start + i*step on
// each axis; grid values that fail to parse fall back to their defaults
// (start 0, step 100).
func (s Spec) Positions(windowCount int) ([]Point, error) {
	switch {
	case s.Position != nil:
		p, err := ParsePosition(*s.Position)
		if err != nil {
			return nil, err
		}
		positions := make([]Point, windowCount)
		for i := range positions {
			positions[i] = p
		}
		return positions, nil

	case s.Layout != nil && strings.TrimSpace(*s.Layout) != "":
		return ParseLayout(*s.Layout, windowCount)

	case s.XStart != nil || s.YStart != nil:
		xStart := intOr(s.XStart, 0)
		yStart := intOr(s.YStart, 0)
		xStep := intOr(s.XStep, 100)
		yStep := intOr(s.YStep, 100)

		positions := make([]Point, windowCount)
		for i := range positions {
			positions[i] = Point{X: xStart + i*xStep, Y: yStart + i*yStep}
		}
		return positions, nil
	}

	return nil, apperr.InvalidParameter("No valid position configuration found")
}

// ParsePosition parses a single "X,Y" pair. The coordinate values may
// carry surrounding whitespace.
func ParsePosition(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, apperr.InvalidParameter("Invalid position format: %s. Expected 'X,Y'", s)
	}

	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Point{}, apperr.InvalidParameter("Invalid X coordinate: %s", parts[0])
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Point{}, apperr.InvalidParameter("Invalid Y coordinate: %s", parts[1])
	}

	return Point{X: x, Y: y}, nil
}

// ParseLayout parses a flat "X1,Y1,X2,Y2,..." list into pairs. The list
// must supply at least windowCount pairs; extra pairs are dropped.
func ParseLayout(s string, windowCount int) ([]Point, error) {
	coords := strings.Split(s, ",")

	if len(coords)%2 != 0 {
		return nil, apperr.InvalidParameter("Layout must have even number of coordinates, got %d", len(coords))
	}

	positions := make([]Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		x, err := strconv.Atoi(strings.TrimSpace(coords[i]))
		if err != nil {
			return nil, apperr.InvalidParameter("Invalid X coordinate in layout: %s", coords[i])
		}
		y, err := strconv.Atoi(strings.TrimSpace(coords[i+1]))
		if err != nil {
			return nil, apperr.InvalidParameter("Invalid Y coordinate in layout: %s", coords[i+1])
		}
		positions = append(positions, Point{X: x, Y: y})
	}

	if len(positions) < windowCount {
		return nil, apperr.InvalidParameter("Not enough positions in layout (need %d, got %d)", windowCount, len(positions))
	}

	return positions[:windowCount], nil
}

// intOr parses the flag value, falling back to def when the flag is
// absent or not a valid integer.
func intOr(s *string, def int) int {
	if s == nil {
		return def
	}
	n, err := strconv.Atoi(*s)
	if err != nil {
		return def
	}
	return n
}
