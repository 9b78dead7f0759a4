package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mousetris/internal/registry"
)

var sinksCmd = &cobra.Command{
	Use:   "sinks",
	Short: "List all display sinks",
	Long:  `Shows the display sinks frames can be sent to.`,
	Args:  cobra.NoArgs,
	Run:   runSinks,
}

func runSinks(_ *cobra.Command, _ []string) {
	sinks := registry.List()

	fmt.Println("Available sinks:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range sinks {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, s := range sinks {
		fmt.Printf("  %-*s  %s\n", maxNameLen, s.Name, s.Description)
	}

	fmt.Println()
	fmt.Println("Select one with 'mousetris play --sink <name>' or display.sink in the config.")
}
