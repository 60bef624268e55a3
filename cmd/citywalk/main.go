// citywalk animates a stick figure walking past a scrolling city skyline.
//
// Usage:
//
//	citywalk                 - Run the animation (q to quit, p/space to pause)
//	citywalk backends        - List available terminal backends
//	citywalk snapshot        - Print one composed frame to stdout
//	citywalk config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>    - Scene config YAML (default: search order, then embedded)
//	--tick <duration>  - Override the frame interval (e.g. 100ms)
//	--verbose          - Debug logging
//	--log-file <path>  - Write logs to a file while the animation runs
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/citywalk/internal/platform/tcellterm"
	"github.com/vovakirdan/citywalk/internal/platform/tui"
)

var (
	// Global flags
	flagConfig  string
	flagTick    time.Duration
	flagVerbose bool
	flagLogFile string

	// Root flags
	flagBackend string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "citywalk",
	Short: "A stick figure walking through a scrolling city",
	Long: `citywalk draws a walking stick figure in front of an endlessly
scrolling city skyline, right in your terminal.

Controls:
  P/Space    - Pause/resume
  Q/Ctrl+C   - Quit

Examples:
  citywalk
  citywalk --backend tcell
  citywalk --tick 100ms
  citywalk snapshot --width 80 --height 24
  citywalk config > ~/.citywalk/config.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWalk,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a scene config YAML")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Frame interval override (0 = use config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.Flags().StringVarP(&flagBackend, "backend", "b", tui.BackendID, "Terminal backend (see 'citywalk backends')")

	// Add subcommands
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(configCmd)
}
