package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/YMC-GitHub/pscan/internal/apperr"
	"github.com/YMC-GitHub/pscan/internal/procs"
)

// processRecord is the serialized shape of a process for json, yaml
// and csv output.
type processRecord struct {
	PID           string  `json:"pid" yaml:"pid"`
	Name          string  `json:"name" yaml:"name"`
	Title         string  `json:"title" yaml:"title"`
	MemoryUsage   uint64  `json:"memory_usage" yaml:"memory_usage"`
	MemoryUsageMB float64 `json:"memory_usage_mb" yaml:"memory_usage_mb"`
	HasWindow     bool    `json:"has_window" yaml:"has_window"`
}

func processRecords(infos []procs.Info) []processRecord {
	records := make([]processRecord, 0, len(infos))
	for _, info := range infos {
		records = append(records, processRecord{
			PID:           info.PID,
			Name:          info.Name,
			Title:         info.Title,
			MemoryUsage:   info.MemoryUsage,
			MemoryUsageMB: megabytes(info.MemoryUsage),
			HasWindow:     info.HasWindow,
		})
	}
	return records
}

func megabytes(bytes uint64) float64 {
	return float64(bytes) / 1024.0 / 1024.0
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Processes writes the process listing to w in the requested format.
// Verbose adds a window column and a per-process detail block to the
// table format; the other formats ignore it.
func Processes(w io.Writer, infos []procs.Info, format Format, verbose bool) error {
	switch format {
	case FormatTable:
		return processTable(w, infos, verbose)
	case FormatJSON:
		return processJSON(w, infos)
	case FormatYAML:
		return processYAML(w, infos)
	case FormatCSV:
		return processCSV(w, infos)
	case FormatSimple:
		return processSimple(w, infos)
	case FormatDetailed:
		return processDetailed(w, infos)
	}
	return apperr.Parse("Invalid output format: %s. Use table, json, yaml, csv, simple, or detailed", format)
}

func processTable(w io.Writer, infos []procs.Info, verbose bool) error {
	fmt.Fprintf(w, "Found %d matching processes:\n", len(infos))

	if verbose {
		writeHeader(w, fmt.Sprintf("%-8s %-20s %-30s %-12s %s",
			"PID", "Name", "Title", "Memory", "Window"))
	} else {
		writeHeader(w, fmt.Sprintf("%-8s %-20s %-30s %s",
			"PID", "Name", "Title", "Memory"))
	}

	for _, info := range infos {
		mb := megabytes(info.MemoryUsage)

		if verbose {
			fmt.Fprintf(w, "%-8s %-20s %-30s %-11.2f MB %s\n",
				info.PID,
				truncate(info.Name, 18),
				truncate(info.Title, 28),
				mb,
				yesNo(info.HasWindow))
			fmt.Fprintf(w, "    PID: %s\n", info.PID)
			fmt.Fprintf(w, "    Name: %s\n", info.Name)
			fmt.Fprintf(w, "    Title: %s\n", info.Title)
			fmt.Fprintf(w, "    Memory: %.2f MB\n", mb)
			fmt.Fprintf(w, "    Has Window: %s\n", yesNo(info.HasWindow))
			fmt.Fprintf(w, "    %s\n", strings.Repeat("-", 50))
		} else {
			fmt.Fprintf(w, "%-8s %-20s %-30s %.2f MB\n",
				info.PID,
				truncate(info.Name, 18),
				truncate(info.Title, 28),
				mb)
		}
	}
	return nil
}

func processJSON(w io.Writer, infos []procs.Info) error {
	data, err := json.MarshalIndent(processRecords(infos), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func processYAML(w io.Writer, infos []procs.Info) error {
	data, err := yaml.Marshal(processRecords(infos))
	if err != nil {
		return err
	}
	fmt.Fprint(w, string(data))
	return nil
}

func processCSV(w io.Writer, infos []procs.Info) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"PID", "Name", "Title", "MemoryUsage", "MemoryUsageMB", "HasWindow"}); err != nil {
		return err
	}
	for _, rec := range processRecords(infos) {
		row := []string{
			rec.PID,
			rec.Name,
			rec.Title,
			strconv.FormatUint(rec.MemoryUsage, 10),
			fmt.Sprintf("%.2f", rec.MemoryUsageMB),
			strconv.FormatBool(rec.HasWindow),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func processSimple(w io.Writer, infos []procs.Info) error {
	for _, info := range infos {
		window := "No Window"
		if info.HasWindow {
			window = "Has Window"
		}
		fmt.Fprintf(w, "%s: %s (%.1f MB) - %s\n",
			info.PID, info.Name, megabytes(info.MemoryUsage), window)
	}
	return nil
}

func processDetailed(w io.Writer, infos []procs.Info) error {
	for i, info := range infos {
		fmt.Fprintf(w, "Process #%d:\n", i+1)
		fmt.Fprintf(w, "  PID:          %s\n", info.PID)
		fmt.Fprintf(w, "  Name:         %s\n", info.Name)
		fmt.Fprintf(w, "  Title:        %s\n", info.Title)
		fmt.Fprintf(w, "  Memory:       %.2f MB\n", megabytes(info.MemoryUsage))
		fmt.Fprintf(w, "  Raw Memory:   %d bytes\n", info.MemoryUsage)
		fmt.Fprintf(w, "  Has Window:   %s\n", yesNo(info.HasWindow))
		fmt.Fprintln(w)
	}
	return nil
}
