package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YMC-GitHub/pscan/internal/apperr"
	"github.com/YMC-GitHub/pscan/internal/batch"
	"github.com/YMC-GitHub/pscan/internal/output"
	"github.com/YMC-GitHub/pscan/internal/platform"
	"github.com/YMC-GitHub/pscan/internal/procs"
	"github.com/YMC-GitHub/pscan/internal/sorting"
)

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "Inspect and manipulate application windows",
}

var (
	getPID          string
	getName         string
	getTitle        string
	getFormat       string
	getSortPID      string
	getSortPosition string
)

var windowsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Get window information including size and position",
	Args:  cobra.NoArgs,
	RunE:  runWindowsGet,
}

func init() {
	windowsGetCmd.Flags().StringVarP(&getPID, "pid", "p", "", "Filter by process ID")
	windowsGetCmd.Flags().StringVarP(&getName, "name", "n", "", "Filter by process name (contains)")
	windowsGetCmd.Flags().StringVarP(&getTitle, "title", "t", "", "Filter by window title (contains)")
	windowsGetCmd.Flags().StringVarP(&getFormat, "format", "f", "table", "Output format (table, json, yaml, csv, simple, detailed)")
	windowsGetCmd.Flags().StringVar(&getSortPID, "sort-pid", "0", "Sort by PID: 1 (ascending), -1 (descending), 0 (none)")
	windowsGetCmd.Flags().StringVar(&getSortPosition, "sort-position", "0|0", "Sort by position: X_ORDER|Y_ORDER, e.g., 1|-1 for X ascending, Y descending")

	windowsCmd.AddCommand(windowsGetCmd)
	for _, op := range windowOps {
		windowsCmd.AddCommand(newWindowOpCommand(op))
	}
	rootCmd.AddCommand(windowsCmd)
}

func runWindowsGet(cmd *cobra.Command, _ []string) error {
	format, err := resolveFormat(cmd, getFormat)
	if err != nil {
		return err
	}
	pidOrder, err := sorting.ParseOrder(getSortPID)
	if err != nil {
		return err
	}
	pos := positionSortOrDefault(getSortPosition)

	backend, names, windows, err := matchWindows(getPID, getName, getTitle)
	if err != nil {
		return err
	}
	defer backend.Close()

	if len(windows) == 0 {
		return apperr.NoMatchingWindows()
	}
	sorting.ByPosition(windows, pidOrder, pos)
	return output.Windows(os.Stdout, windows, names, format)
}

// matchWindows opens the platform backend and returns the windows
// matching the filters together with the process name table. The caller
// owns backend.Close.
func matchWindows(pid, name, title string) (platform.Backend, map[uint32]string, []platform.Window, error) {
	backend, err := platform.New()
	if err != nil {
		return nil, nil, nil, apperr.Platform("%v", err)
	}
	names, err := procs.Names()
	if err != nil {
		backend.Close()
		return nil, nil, nil, apperr.Platform("failed to list processes: %v", err)
	}
	windows, err := platform.FindWindows(backend, platform.Filter{PID: pid, Name: name, Title: title}, names)
	if err != nil {
		backend.Close()
		return nil, nil, nil, apperr.Platform("%v", err)
	}
	return backend, names, windows, nil
}

// positionSortOrDefault parses a --sort-position value, warning and
// falling back to ascending on both axes when it does not parse.
func positionSortOrDefault(s string) sorting.PositionSort {
	pos, err := sorting.ParsePositionSort(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Invalid position sort format '%s', using default\n", s)
		return sorting.DefaultPositionSort()
	}
	return pos
}

// windowOp describes one window state operation: the command it hangs
// off, the message strings around it and the backend call it dispatches.
type windowOp struct {
	verb    string
	short   string
	capital string
	past    string
	run     func(platform.Backend, platform.WindowID) error
}

var windowOps = []windowOp{
	{verb: "minimize", short: "Minimize windows", capital: "Minimized", past: "minimized", run: platform.Backend.Minimize},
	{verb: "maximize", short: "Maximize windows", capital: "Maximized", past: "maximized", run: platform.Backend.Maximize},
	{verb: "restore", short: "Restore windows to normal state", capital: "Restored", past: "restored", run: platform.Backend.Restore},
}

func newWindowOpCommand(op windowOp) *cobra.Command {
	var (
		pid   string
		name  string
		title string
		all   bool
	)
	cmd := &cobra.Command{
		Use:   op.verb,
		Short: op.short,
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runWindowOp(op, pid, name, title, all)
		},
	}
	cmd.Flags().StringVarP(&pid, "pid", "p", "", "Filter by process ID")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Filter by process name (contains)")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Filter by window title (contains)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Apply to all matching windows")
	return cmd
}

func runWindowOp(op windowOp, pid, name, title string, all bool) error {
	backend, _, windows, err := matchWindows(pid, name, title)
	if err != nil {
		return err
	}
	defer backend.Close()

	selected, err := batch.Select(windows, all)
	if err != nil {
		return err
	}

	count := 0
	for _, win := range selected {
		if err := op.run(backend, win.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to %s window %s (PID: %d): %v\n", op.verb, win.Title, win.PID, err)
			continue
		}
		fmt.Printf("%s: %s (PID: %d)\n", op.capital, win.Title, win.PID)
		count++
	}
	if count == 0 {
		return apperr.NoWindowsModified()
	}
	fmt.Printf("Successfully %s %d window(s)\n", op.past, count)
	return nil
}
