// Package main implements pscan, a process and window inspection tool.
// The root command lists processes with their window state; the windows
// subcommands enumerate and manipulate the windows themselves.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YMC-GitHub/pscan/internal/apperr"
	"github.com/YMC-GitHub/pscan/internal/config"
	"github.com/YMC-GitHub/pscan/internal/output"
	"github.com/YMC-GitHub/pscan/internal/platform"
	"github.com/YMC-GitHub/pscan/internal/procs"
)

const version = "0.1.0"

// cfg holds the loaded configuration. Flags given on the command line
// win over it; flags left at their default fall back to it.
var cfg = config.Default()

var (
	listPID       string
	listName      string
	listTitle     string
	listHasWindow bool
	listNoWindow  bool
	listFormat    string
	listVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "pscan",
	Short: "Inspect processes and manipulate their windows",
	Long: `pscan lists processes with their window state and memory usage, and
manipulates application windows: minimize, maximize, restore, move,
resize, always on top and transparency.

The root command lists processes. Window operations live under the
"windows" subcommand and share the same -p/-n/-t filters.`,
	Example: `  # All processes that own a window, as a table
  pscan --has-window

  # Firefox processes as json
  pscan -n firefox -f json

  # Window list sorted left to right
  pscan windows get --sort-position "1|0"

  # Cascade every editor window diagonally
  pscan windows position set -n code --all --x-start 0 --y-start 0`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		loadConfig()
	},
	RunE: runProcessList,
}

func init() {
	rootCmd.Flags().StringVarP(&listPID, "pid", "p", "", "Filter by process ID")
	rootCmd.Flags().StringVarP(&listName, "name", "n", "", "Filter by process name (contains)")
	rootCmd.Flags().StringVarP(&listTitle, "title", "t", "", "Filter by window title (contains)")
	rootCmd.Flags().BoolVar(&listHasWindow, "has-window", false, "Show only processes with windows")
	rootCmd.Flags().BoolVar(&listNoWindow, "no-window", false, "Show only processes without windows")
	rootCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "Output format (table, json, yaml, csv, simple, detailed)")
	rootCmd.Flags().BoolVarP(&listVerbose, "verbose", "v", false, "Show detailed information")
}

// loadConfig fills cfg from the config file. A broken file warns and
// leaves the defaults in place.
func loadConfig() {
	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using default configuration\n", err)
		return
	}
	cfg = loaded
}

// resolveFormat applies the configured default format when the flag was
// not given on the command line.
func resolveFormat(cmd *cobra.Command, flag string) (output.Format, error) {
	if !cmd.Flags().Changed("format") {
		flag = cfg.Format
	}
	return output.ParseFormat(flag)
}

func runProcessList(cmd *cobra.Command, _ []string) error {
	if listHasWindow && listNoWindow {
		return apperr.InvalidParameter("--has-window and --no-window are mutually exclusive")
	}
	format, err := resolveFormat(cmd, listFormat)
	if err != nil {
		return err
	}

	infos, err := procs.List(listWindowsBestEffort())
	if err != nil {
		return apperr.Platform("failed to list processes: %v", err)
	}
	filtered := procs.FilterProcesses(infos, procs.Filter{
		PID:       listPID,
		Name:      listName,
		Title:     listTitle,
		HasWindow: listHasWindow,
		NoWindow:  listNoWindow,
	})
	if len(filtered) == 0 {
		return errors.New("No matching processes found")
	}
	return output.Processes(os.Stdout, filtered, format, listVerbose)
}

// listWindowsBestEffort returns the current window list for the process
// join. Process listing works without a window system, so backend
// failures warn and degrade to an empty list rather than aborting.
func listWindowsBestEffort() []platform.Window {
	backend, err := platform.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil
	}
	defer backend.Close()

	windows, err := backend.ListWindows()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil
	}
	return windows
}

func main() {
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperr.Parse("%v", err)
	})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(apperr.ExitCode(err))
	}
}
