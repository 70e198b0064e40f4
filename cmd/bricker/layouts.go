package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/games/bricker"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List brick layouts",
	Long:  `Shows every brick layout with its brick count.`,
	Args:  cobra.NoArgs,
	RunE:  runLayouts,
}

func runLayouts(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	names := bricker.LayoutNames()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, name := range names {
		maxNameLen = max(maxNameLen, len(name))
	}

	fmt.Println("Available layouts:")
	fmt.Println()
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Name", "Bricks", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "----", "------", "-----")

	for _, name := range names {
		l, err := bricker.LayoutByName(name, cfg.Bricks)
		if err != nil {
			continue
		}
		fmt.Printf("  %-*s  %-6d  %s\n", maxNameLen, name, l.Count(), l.Title)
	}

	fmt.Println()
	fmt.Println("Run 'bricker play --layout <name>' to play a layout.")
	return nil
}
