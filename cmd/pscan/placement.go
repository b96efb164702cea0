package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YMC-GitHub/pscan/internal/apperr"
	"github.com/YMC-GitHub/pscan/internal/batch"
	"github.com/YMC-GitHub/pscan/internal/layout"
	"github.com/YMC-GitHub/pscan/internal/sorting"
)

var (
	posPID          string
	posName         string
	posTitle        string
	posAll          bool
	posPosition     string
	posIndex        string
	posLayout       string
	posXStart       string
	posYStart       string
	posXStep        string
	posYStep        string
	posSortPosition string
)

var windowsPositionCmd = &cobra.Command{
	Use:   "position",
	Short: "Window position operations",
}

var windowsPositionSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set window position with various layout options",
	Long: `Set window position with various layout options.

Exactly one placement mode must be chosen: --position puts every selected
window at one spot, --layout assigns one coordinate pair per window, and
--x-start/--y-start with steps walk a diagonal grid. Matching windows are
sorted before indices apply, so --index addresses a stable order.`,
	Example: `  # Move the only matching window
  pscan windows position set -t "Downloads" --position "100,100"

  # Cascade all terminals
  pscan windows position set -n term --all --x-start 0 --y-start 0 --x-step 40 --y-step 40

  # Give the first two sorted windows explicit spots
  pscan windows position set -n code --index "1,2" --layout "0,0,960,0"`,
	Args: cobra.NoArgs,
	RunE: runPositionSet,
}

var (
	resizePID          string
	resizeName         string
	resizeTitle        string
	resizeAll          bool
	resizeIndex        string
	resizeWidth        string
	resizeHeight       string
	resizeSize         string
	resizeKeep         bool
	resizeCenter       bool
	resizeSortPosition string
)

var windowsResizeCmd = &cobra.Command{
	Use:   "resize",
	Short: "Resize windows to specified dimensions",
	Args:  cobra.NoArgs,
	RunE:  runResize,
}

func init() {
	windowsPositionSetCmd.Flags().StringVarP(&posPID, "pid", "p", "", "Filter by process ID")
	windowsPositionSetCmd.Flags().StringVarP(&posName, "name", "n", "", "Filter by process name (contains)")
	windowsPositionSetCmd.Flags().StringVarP(&posTitle, "title", "t", "", "Filter by window title (contains)")
	windowsPositionSetCmd.Flags().BoolVarP(&posAll, "all", "a", false, "Apply to all matching windows")
	windowsPositionSetCmd.Flags().StringVar(&posPosition, "position", "", "Set window position (e.g., \"100,100\")")
	windowsPositionSetCmd.Flags().StringVar(&posIndex, "index", "", "Window indices to set (e.g., \"1,2,3\"), empty means all")
	windowsPositionSetCmd.Flags().StringVar(&posLayout, "layout", "", "Multiple positions layout (e.g., \"100,100,150,120,200,140\")")
	windowsPositionSetCmd.Flags().StringVar(&posXStart, "x-start", "", "Starting X position for multiple windows")
	windowsPositionSetCmd.Flags().StringVar(&posYStart, "y-start", "", "Starting Y position for multiple windows")
	windowsPositionSetCmd.Flags().StringVar(&posXStep, "x-step", "", "X step for multiple windows")
	windowsPositionSetCmd.Flags().StringVar(&posYStep, "y-step", "", "Y step for multiple windows")
	windowsPositionSetCmd.Flags().StringVar(&posSortPosition, "sort-position", "1|1", "Sort by position: X_ORDER|Y_ORDER, e.g., 1|-1 for X ascending, Y descending")

	windowsPositionCmd.AddCommand(windowsPositionSetCmd)
	windowsCmd.AddCommand(windowsPositionCmd)

	windowsResizeCmd.Flags().StringVarP(&resizePID, "pid", "p", "", "Filter by process ID")
	windowsResizeCmd.Flags().StringVarP(&resizeName, "name", "n", "", "Filter by process name (contains)")
	windowsResizeCmd.Flags().StringVarP(&resizeTitle, "title", "t", "", "Filter by window title (contains)")
	windowsResizeCmd.Flags().BoolVarP(&resizeAll, "all", "a", false, "Apply to all matching windows")
	windowsResizeCmd.Flags().StringVar(&resizeIndex, "index", "", "Window indices to resize (e.g., \"1,2,3\"), empty means all")
	windowsResizeCmd.Flags().StringVarP(&resizeWidth, "width", "W", "", "Window width in pixels")
	windowsResizeCmd.Flags().StringVarP(&resizeHeight, "height", "H", "", "Window height in pixels")
	windowsResizeCmd.Flags().StringVar(&resizeSize, "size", "", "Window size in format WIDTHxHEIGHT (e.g., \"800x600\")")
	windowsResizeCmd.Flags().BoolVar(&resizeKeep, "keep-position", false, "Keep current window position, only change size")
	windowsResizeCmd.Flags().BoolVar(&resizeCenter, "center", false, "Center window on screen after resizing")
	windowsResizeCmd.Flags().StringVar(&resizeSortPosition, "sort-position", "0|0", "Sort by position: X_ORDER|Y_ORDER, e.g., 1|-1 for X ascending, Y descending")

	windowsCmd.AddCommand(windowsResizeCmd)
}

func runPositionSet(cmd *cobra.Command, _ []string) error {
	backend, _, windows, err := matchWindows(posPID, posName, posTitle)
	if err != nil {
		return err
	}
	defer backend.Close()

	if len(windows) == 0 {
		return apperr.NoMatchingWindows()
	}

	sortFlag := posSortPosition
	if !cmd.Flags().Changed("sort-position") {
		sortFlag = cfg.SortPosition
	}
	sorting.ByTitle(windows, sorting.None, positionSortOrDefault(sortFlag))

	indices := batch.ParseIndices(posIndex, len(windows))

	spec := layout.Spec{
		Position: flagValue(cmd, "position", &posPosition),
		Layout:   &posLayout,
		XStart:   flagValue(cmd, "x-start", &posXStart),
		YStart:   flagValue(cmd, "y-start", &posYStart),
		XStep:    flagValue(cmd, "x-step", &posXStep),
		YStep:    flagValue(cmd, "y-step", &posYStep),
	}
	if err := spec.Validate(); err != nil {
		return err
	}
	positions, err := spec.Positions(len(windows))
	if err != nil {
		return err
	}

	count := 0
	for _, i := range batch.Targets(len(windows), indices, posAll) {
		win := windows[i]
		p := positions[i]
		if err := backend.SetPosition(win.ID, p.X, p.Y); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to set position for window %s (PID: %d): %v\n", win.Title, win.PID, err)
			continue
		}
		fmt.Printf("Position set: %s (PID: %d) to position %d,%d\n", win.Title, win.PID, p.X, p.Y)
		count++
	}
	if count == 0 {
		return apperr.NoWindowsModified()
	}
	fmt.Printf("Successfully positioned %d window(s)\n", count)
	return nil
}

// flagValue returns the flag's value only when it was set on the command
// line; placement mode selection keys on presence, not contents.
func flagValue(cmd *cobra.Command, name string, v *string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return v
}

func runResize(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("size") && (cmd.Flags().Changed("width") || cmd.Flags().Changed("height")) {
		return apperr.InvalidParameter("--size cannot be combined with --width or --height")
	}
	if resizeKeep && resizeCenter {
		return apperr.InvalidParameter("--keep-position and --center are mutually exclusive")
	}

	size := sizeFlags{
		size:      resizeSize,
		sizeSet:   cmd.Flags().Changed("size"),
		width:     resizeWidth,
		widthSet:  cmd.Flags().Changed("width"),
		height:    resizeHeight,
		heightSet: cmd.Flags().Changed("height"),
	}
	width, height, err := size.resolve()
	if err != nil {
		return err
	}

	backend, _, windows, err := matchWindows(resizePID, resizeName, resizeTitle)
	if err != nil {
		return err
	}
	defer backend.Close()

	if len(windows) == 0 {
		return apperr.NoMatchingWindows()
	}
	sorting.ByTitle(windows, sorting.None, positionSortOrDefault(resizeSortPosition))

	indices := batch.ParseIndices(resizeIndex, len(windows))

	count := 0
	for _, i := range batch.Targets(len(windows), indices, resizeAll) {
		win := windows[i]
		if err := backend.Resize(win.ID, width, height, resizeKeep, resizeCenter); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to resize window %s (PID: %d): %v\n", win.Title, win.PID, err)
			continue
		}
		fmt.Printf("Resized: %s (PID: %d) to %dx%d\n", win.Title, win.PID, width, height)
		count++
	}
	if count == 0 {
		return apperr.NoWindowsModified()
	}
	fmt.Printf("Successfully resized %d window(s)\n", count)
	return nil
}

// sizeFlags carries the raw resize dimension flags; --size wins over the
// width/height pair.
type sizeFlags struct {
	size      string
	sizeSet   bool
	width     string
	widthSet  bool
	height    string
	heightSet bool
}

func (f sizeFlags) resolve() (int, int, error) {
	if f.sizeSet {
		return parseSize(f.size)
	}
	if !f.widthSet {
		return 0, 0, apperr.InvalidParameter("Width is required")
	}
	if !f.heightSet {
		return 0, 0, apperr.InvalidParameter("Height is required")
	}
	width, err := strconv.Atoi(f.width)
	if err != nil {
		return 0, 0, apperr.Parse("Invalid width value")
	}
	height, err := strconv.Atoi(f.height)
	if err != nil {
		return 0, 0, apperr.Parse("Invalid height value")
	}
	if width <= 0 || height <= 0 {
		return 0, 0, apperr.InvalidParameter("Width and height must be positive values")
	}
	return width, height, nil
}

// parseSize splits a "WIDTHxHEIGHT" value into pixel dimensions.
func parseSize(s string) (int, int, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return 0, 0, apperr.Parse("Invalid size format: %s. Expected 'WIDTHxHEIGHT'", s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, apperr.Parse("Invalid width: %s", parts[0])
	}
	height, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, apperr.Parse("Invalid height: %s", parts[1])
	}
	if width <= 0 || height <= 0 {
		return 0, 0, apperr.InvalidParameter("Width and height must be positive values")
	}
	return width, height, nil
}
