// Package batch implements the target selection rules shared by the
// window manipulation commands: guarding single-window commands against
// ambiguous matches and resolving --index selections against a sorted
// window list.
package batch

import (
	"slices"
	"strconv"
	"strings"

	"github.com/YMC-GitHub/pscan/internal/apperr"
	"github.com/YMC-GitHub/pscan/internal/platform"
)

// ParseIndices parses a comma-separated list of 1-based window indices.
// Entries that do not parse or fall outside 1..max are dropped rather
// than treated as errors, and an empty string selects nothing.
func ParseIndices(s string, max int) []int {
	if s == "" {
		return nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if n < 1 || n > max {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Select applies the single-target guard used by commands without index
// addressing: no matches is an error, and more than one match requires
// the caller to have passed --all.
func Select(windows []platform.Window, all bool) ([]platform.Window, error) {
	if len(windows) == 0 {
		return nil, apperr.NoMatchingWindows()
	}
	if !all && len(windows) > 1 {
		return nil, apperr.MultipleWindows(len(windows))
	}
	return windows, nil
}

// Targets returns the 0-based positions an indexed batch operation
// applies to. Explicit indices select their 1-based rows regardless of
// all; without indices the operation covers every row when all is set
// and only the first row otherwise.
func Targets(count int, indices []int, all bool) []int {
	var out []int
	for i := 0; i < count; i++ {
		if len(indices) > 0 {
			if !slices.Contains(indices, i+1) {
				continue
			}
		} else if !all && i > 0 {
			break
		}
		out = append(out, i)
	}
	return out
}
