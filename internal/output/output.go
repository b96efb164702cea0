// Package output renders window and process listings in the formats
// selectable through the --format flag.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/YMC-GitHub/pscan/internal/apperr"
)

// Format selects how listings are rendered.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatCSV      Format = "csv"
	FormatSimple   Format = "simple"
	FormatDetailed Format = "detailed"
)

// ParseFormat maps a --format flag value to a Format. Matching is
// case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatJSON, FormatYAML, FormatCSV, FormatSimple, FormatDetailed:
		return f, nil
	}
	return "", apperr.Parse("Invalid output format: %s. Use table, json, yaml, csv, simple, or detailed", s)
}

// headerStyle is applied to table header rows only when the destination
// is a terminal, so piped and redirected output stays plain text.
var headerStyle = lipgloss.NewStyle().Bold(true)

func writeHeader(w io.Writer, line string) {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		line = headerStyle.Render(line)
	}
	fmt.Fprintln(w, line)
}

// truncate shortens s so it fits a table column of max characters,
// marking cut strings with a trailing "...".
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	var b strings.Builder
	kept := 0
	for _, r := range s {
		if kept+utf8.RuneLen(r) > max-3 {
			break
		}
		b.WriteRune(r)
		kept++
	}
	return b.String() + "..."
}

// processName resolves a pid to its process name for display. Windows
// whose owning process is not in the table show as "Unknown".
func processName(names map[uint32]string, pid uint32) string {
	if name, ok := names[pid]; ok {
		return name
	}
	return "Unknown"
}
