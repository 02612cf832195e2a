package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini2d/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available demos",
	Long:  `Shows a list of all demos registered in mini2d.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	demos := registry.List()

	if len(demos) == 0 {
		fmt.Println("No demos available.")
		return
	}

	fmt.Println("Available demos:")
	fmt.Println()

	idWidth, titleWidth := len("ID"), len("Title")
	for _, d := range demos {
		idWidth = max(idWidth, len(d.ID))
		titleWidth = max(titleWidth, len(d.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", idWidth, "ID", titleWidth, "Title", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", idWidth, "--", titleWidth, "-----", "-----------")
	for _, d := range demos {
		fmt.Printf("  %-*s  %-*s  %s\n", idWidth, d.ID, titleWidth, d.Title, d.Description)
	}

	fmt.Println()
	fmt.Println("Run 'mini2d play <id>' to start a demo.")
}
