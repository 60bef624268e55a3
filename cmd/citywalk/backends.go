package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/citywalk/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List all available terminal backends",
	Long:  `Shows the terminal backends that can run the animation.`,
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Fprintln(out, "No backends available.")
		return
	}

	fmt.Fprintln(out, "Available backends:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, b := range backends {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, b := range backends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, b.ID, b.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'citywalk --backend <id>' to use one.")
}
