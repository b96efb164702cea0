package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/YMC-GitHub/pscan/internal/apperr"
	"github.com/YMC-GitHub/pscan/internal/platform"
)

// windowRecord is the serialized shape of a window for json, yaml and
// csv output.
type windowRecord struct {
	PID        string `json:"pid" yaml:"pid"`
	Name       string `json:"name" yaml:"name"`
	Title      string `json:"title" yaml:"title"`
	X          int    `json:"x" yaml:"x"`
	Y          int    `json:"y" yaml:"y"`
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	Dimensions string `json:"dimensions" yaml:"dimensions"`
}

func windowRecords(windows []platform.Window, names map[uint32]string) []windowRecord {
	records := make([]windowRecord, 0, len(windows))
	for _, win := range windows {
		records = append(records, windowRecord{
			PID:        strconv.FormatUint(uint64(win.PID), 10),
			Name:       processName(names, win.PID),
			Title:      win.Title,
			X:          win.Bounds.X,
			Y:          win.Bounds.Y,
			Width:      win.Bounds.Width,
			Height:     win.Bounds.Height,
			Dimensions: win.Bounds.String(),
		})
	}
	return records
}

// Windows writes the window listing to w in the requested format. The
// names table maps pids to process names for the Name column.
func Windows(w io.Writer, windows []platform.Window, names map[uint32]string, format Format) error {
	switch format {
	case FormatTable:
		return windowTable(w, windows, names)
	case FormatJSON:
		return windowJSON(w, windows, names)
	case FormatYAML:
		return windowYAML(w, windows, names)
	case FormatCSV:
		return windowCSV(w, windows, names)
	case FormatSimple:
		return windowSimple(w, windows, names)
	case FormatDetailed:
		return windowDetailed(w, windows, names)
	}
	return apperr.Parse("Invalid output format: %s. Use table, json, yaml, csv, simple, or detailed", format)
}

func windowTable(w io.Writer, windows []platform.Window, names map[uint32]string) error {
	fmt.Fprintf(w, "Found %d windows:\n", len(windows))
	writeHeader(w, fmt.Sprintf("%-8s %-20s %-30s %-15s %-12s",
		"PID", "Name", "Title", "Size", "Position"))

	for _, win := range windows {
		fmt.Fprintf(w, "%-8d %-20s %-30s %-8dx%-6d +%d+%d\n",
			win.PID,
			truncate(processName(names, win.PID), 18),
			truncate(win.Title, 28),
			win.Bounds.Width,
			win.Bounds.Height,
			win.Bounds.X,
			win.Bounds.Y)
	}
	return nil
}

func windowJSON(w io.Writer, windows []platform.Window, names map[uint32]string) error {
	data, err := json.MarshalIndent(windowRecords(windows, names), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func windowYAML(w io.Writer, windows []platform.Window, names map[uint32]string) error {
	data, err := yaml.Marshal(windowRecords(windows, names))
	if err != nil {
		return err
	}
	fmt.Fprint(w, string(data))
	return nil
}

func windowCSV(w io.Writer, windows []platform.Window, names map[uint32]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"PID", "Name", "Title", "X", "Y", "Width", "Height", "Dimensions"}); err != nil {
		return err
	}
	for _, rec := range windowRecords(windows, names) {
		row := []string{
			rec.PID,
			rec.Name,
			rec.Title,
			strconv.Itoa(rec.X),
			strconv.Itoa(rec.Y),
			strconv.Itoa(rec.Width),
			strconv.Itoa(rec.Height),
			rec.Dimensions,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func windowSimple(w io.Writer, windows []platform.Window, names map[uint32]string) error {
	for _, win := range windows {
		fmt.Fprintf(w, "%d: %s - %s (%dx%d at +%d+%d)\n",
			win.PID,
			processName(names, win.PID),
			win.Title,
			win.Bounds.Width,
			win.Bounds.Height,
			win.Bounds.X,
			win.Bounds.Y)
	}
	return nil
}

func windowDetailed(w io.Writer, windows []platform.Window, names map[uint32]string) error {
	for i, win := range windows {
		fmt.Fprintf(w, "Window #%d:\n", i+1)
		fmt.Fprintf(w, "  PID:        %d\n", win.PID)
		fmt.Fprintf(w, "  Name:       %s\n", processName(names, win.PID))
		fmt.Fprintf(w, "  Title:      %s\n", win.Title)
		fmt.Fprintf(w, "  Size:       %dx%d\n", win.Bounds.Width, win.Bounds.Height)
		fmt.Fprintf(w, "  Position:   +%d+%d\n", win.Bounds.X, win.Bounds.Y)
		fmt.Fprintf(w, "  Dimensions: %s\n", win.Bounds.String())
		fmt.Fprintln(w)
	}
	return nil
}
