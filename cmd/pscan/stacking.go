package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YMC-GitHub/pscan/internal/apperr"
	"github.com/YMC-GitHub/pscan/internal/batch"
	"github.com/YMC-GitHub/pscan/internal/platform"
	"github.com/YMC-GitHub/pscan/internal/sorting"
)

var (
	aotPID          string
	aotName         string
	aotTitle        string
	aotAll          bool
	aotIndex        string
	aotToggle       bool
	aotOff          bool
	aotSortPosition string
)

var windowsAlwaysOnTopCmd = &cobra.Command{
	Use:     "always-on-top",
	Aliases: []string{"alwaysontop", "topmost"},
	Short:   "Set window always on top state",
	Args:    cobra.NoArgs,
	RunE:    runAlwaysOnTop,
}

var (
	transPID          string
	transName         string
	transTitle        string
	transAll          bool
	transIndex        string
	transLevel        int
	transReset        bool
	transSortPosition string
)

var windowsTransparencyCmd = &cobra.Command{
	Use:     "transparency",
	Aliases: []string{"opacity"},
	Short:   "Set window transparency/opacity level",
	Args:    cobra.NoArgs,
	RunE:    runTransparency,
}

func init() {
	windowsAlwaysOnTopCmd.Flags().StringVarP(&aotPID, "pid", "p", "", "Filter by process ID")
	windowsAlwaysOnTopCmd.Flags().StringVarP(&aotName, "name", "n", "", "Filter by process name (contains)")
	windowsAlwaysOnTopCmd.Flags().StringVarP(&aotTitle, "title", "t", "", "Filter by window title (contains)")
	windowsAlwaysOnTopCmd.Flags().BoolVarP(&aotAll, "all", "a", false, "Apply to all matching windows")
	windowsAlwaysOnTopCmd.Flags().StringVar(&aotIndex, "index", "", "Window indices to modify (e.g., \"1,2,3\")")
	windowsAlwaysOnTopCmd.Flags().BoolVar(&aotToggle, "toggle", false, "Toggle always on top state (on/off)")
	windowsAlwaysOnTopCmd.Flags().BoolVar(&aotOff, "off", false, "Turn off always on top")
	windowsAlwaysOnTopCmd.Flags().StringVar(&aotSortPosition, "sort-position", "0|0", "Sort by position: X_ORDER|Y_ORDER, e.g., 1|-1 for X ascending, Y descending")
	windowsCmd.AddCommand(windowsAlwaysOnTopCmd)

	windowsTransparencyCmd.Flags().StringVarP(&transPID, "pid", "p", "", "Filter by process ID")
	windowsTransparencyCmd.Flags().StringVarP(&transName, "name", "n", "", "Filter by process name (contains)")
	windowsTransparencyCmd.Flags().StringVarP(&transTitle, "title", "t", "", "Filter by window title (contains)")
	windowsTransparencyCmd.Flags().BoolVarP(&transAll, "all", "a", false, "Apply to all matching windows")
	windowsTransparencyCmd.Flags().StringVar(&transIndex, "index", "", "Window indices to modify (e.g., \"1,2,3\")")
	windowsTransparencyCmd.Flags().IntVarP(&transLevel, "level", "l", 100, "Transparency level (0-100%, where 100 is fully opaque)")
	windowsTransparencyCmd.Flags().BoolVar(&transReset, "reset", false, "Reset transparency to fully opaque (100%)")
	windowsTransparencyCmd.Flags().StringVar(&transSortPosition, "sort-position", "0|0", "Sort by position: X_ORDER|Y_ORDER, e.g., 1|-1 for X ascending, Y descending")
	windowsCmd.AddCommand(windowsTransparencyCmd)
}

func runAlwaysOnTop(_ *cobra.Command, _ []string) error {
	if aotOff && aotToggle {
		return apperr.InvalidParameter("--off and --toggle are mutually exclusive")
	}

	backend, _, windows, err := matchWindows(aotPID, aotName, aotTitle)
	if err != nil {
		return err
	}
	defer backend.Close()

	selected, rows, err := selectStacking(windows, aotIndex, aotAll, aotSortPosition)
	if err != nil {
		return err
	}

	count := 0
	for _, i := range rows {
		win := selected[i]
		newState, err := applyAlwaysOnTop(backend, win.ID, aotOff, aotToggle)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to %s window %s (PID: %d): %v\n",
				aotFailureVerb(aotOff, aotToggle), win.Title, win.PID, err)
			continue
		}
		action := "set"
		if aotToggle {
			action = "toggled"
		}
		state := "normal"
		if newState {
			state = "always on top"
		}
		fmt.Printf("%s: %s (PID: %d) - %s\n", action, win.Title, win.PID, state)
		count++
	}
	if count == 0 {
		return apperr.NoWindowsModified()
	}
	fmt.Printf("Successfully modified %d window(s)\n", count)
	return nil
}

// applyAlwaysOnTop performs the state write, reading and inverting the
// current state in toggle mode. The read-then-write is not atomic.
func applyAlwaysOnTop(backend platform.Backend, id platform.WindowID, off, toggle bool) (bool, error) {
	if toggle {
		current, err := backend.IsAlwaysOnTop(id)
		if err != nil {
			return false, err
		}
		target := !current
		return target, backend.SetAlwaysOnTop(id, target)
	}
	target := !off
	return target, backend.SetAlwaysOnTop(id, target)
}

// aotFailureVerb matches the failure message to the requested mode.
func aotFailureVerb(off, toggle bool) string {
	switch {
	case toggle:
		return "toggle always on top"
	case off:
		return "unset always on top"
	}
	return "set always on top"
}

func runTransparency(cmd *cobra.Command, _ []string) error {
	if transReset && cmd.Flags().Changed("level") {
		return apperr.InvalidParameter("--level and --reset are mutually exclusive")
	}
	level := transLevel
	if transReset {
		level = 100
	}
	if level < 0 || level > 100 {
		return apperr.InvalidParameter("Transparency level must be between 0 and 100, got %d", level)
	}

	backend, _, windows, err := matchWindows(transPID, transName, transTitle)
	if err != nil {
		return err
	}
	defer backend.Close()

	selected, rows, err := selectStacking(windows, transIndex, transAll, transSortPosition)
	if err != nil {
		return err
	}

	action := "set"
	if transReset {
		action = "reset"
	}
	count := 0
	for _, i := range rows {
		win := selected[i]
		if err := backend.SetTransparency(win.ID, level); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to set transparency for window %s (PID: %d): %v\n", win.Title, win.PID, err)
			continue
		}
		fmt.Printf("%s: %s (PID: %d) to %d%% opacity\n", action, win.Title, win.PID, level)
		count++
	}
	if count == 0 {
		return apperr.NoWindowsModified()
	}
	fmt.Printf("Successfully modified %d window(s)\n", count)
	return nil
}

// selectStacking resolves the rows a stacking command acts on. An index
// addresses the sorted match list; without one the single-match guard
// applies, requiring --all for more than one match.
func selectStacking(windows []platform.Window, index string, all bool, sortFlag string) ([]platform.Window, []int, error) {
	if len(windows) == 0 {
		return nil, nil, apperr.NoMatchingWindows()
	}
	sorting.ByTitle(windows, sorting.None, positionSortOrDefault(sortFlag))

	if index == "" {
		selected, err := batch.Select(windows, all)
		if err != nil {
			return nil, nil, err
		}
		return selected, allRows(selected), nil
	}
	indices := batch.ParseIndices(index, len(windows))
	return windows, batch.Targets(len(windows), indices, all), nil
}

func allRows(windows []platform.Window) []int {
	rows := make([]int, len(windows))
	for i := range rows {
		rows[i] = i
	}
	return rows
}
