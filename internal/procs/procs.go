// Package procs provides the process table service: it enumerates running
// processes, pairs them with their windows, and resolves pid-to-name
// lookups for window filters.
package procs

import (
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/YMC-GitHub/pscan/internal/platform"
)

// Info describes one running process and its window pairing.
type Info struct {
	PID         string
	Name        string
	Title       string
	MemoryUsage uint64
	HasWindow   bool
}

// List returns every running process. A process owning one of the given
// windows reports that window's title; the rest fall back to their
// command line, then their executable path, then "No Title".
func List(windows []platform.Window) ([]Info, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	titles := pairTitles(windows)

	infos := make([]Info, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			name = ""
		}

		var memory uint64
		if mem, err := p.MemoryInfo(); err == nil && mem != nil {
			memory = mem.RSS
		}

		pid := uint32(p.Pid)
		title, hasWindow := titles[pid]
		if !hasWindow {
			title = fallbackTitle(p)
		}

		infos = append(infos, Info{
			PID:         strconv.Itoa(int(p.Pid)),
			Name:        name,
			Title:       title,
			MemoryUsage: memory,
			HasWindow:   hasWindow,
		})
	}

	return infos, nil
}

// Names returns the pid-to-name table consumed by window name filters.
func Names() (map[uint32]string, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	names := make(map[uint32]string, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		names[uint32(p.Pid)] = name
	}

	return names, nil
}

// pairTitles keeps the first window title seen per owning pid.
func pairTitles(windows []platform.Window) map[uint32]string {
	titles := make(map[uint32]string, len(windows))
	for _, w := range windows {
		if _, ok := titles[w.PID]; !ok {
			titles[w.PID] = w.Title
		}
	}
	return titles
}

func fallbackTitle(p *process.Process) string {
	if args, err := p.CmdlineSlice(); err == nil && len(args) > 0 {
		return strings.Join(args, " ")
	}
	if exe, err := p.Exe(); err == nil && exe != "" {
		return exe
	}
	return "No Title"
}

// Filter holds the process selection flags. Set fields are AND-combined.
type Filter struct {
	PID       string
	Name      string
	Title     string
	HasWindow bool
	NoWindow  bool
}

// FilterProcesses returns the processes matching f, preserving input
// order. The pid filter compares strings exactly; name and title match
// case-insensitive substrings.
func FilterProcesses(infos []Info, f Filter) []Info {
	matched := make([]Info, 0, len(infos))
	for _, p := range infos {
		if f.PID != "" && p.PID != f.PID {
			continue
		}
		if f.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Name)) {
			continue
		}
		if f.Title != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(f.Title)) {
			continue
		}
		if f.HasWindow && !p.HasWindow {
			continue
		}
		if f.NoWindow && p.HasWindow {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}
