package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty tiers",
	Long:  `Shows the configured difficulty presets and the limits of custom games.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	fmt.Println("Difficulties:")
	fmt.Println()

	maxIDLen := len("ID")
	for _, p := range cfg.Presets {
		maxIDLen = max(maxIDLen, len(p.ID))
	}
	maxIDLen = max(maxIDLen, len("custom"))

	fmt.Printf("  %-*s  %-8s  %7s  %6s\n", maxIDLen, "ID", "Title", "Buttons", "Levels")
	fmt.Printf("  %-*s  %-8s  %7s  %6s\n", maxIDLen, "--", "-----", "-------", "------")
	for _, p := range cfg.Presets {
		fmt.Printf("  %-*s  %-8s  %7d  %6d\n", maxIDLen, p.ID, p.Title, p.Buttons, p.MaxLevel)
	}
	fmt.Printf("  %-*s  %-8s  %7s  %6s\n", maxIDLen, "custom", "Custom",
		fmt.Sprintf("1-%d", cfg.Custom.MaxButtons), "any")

	fmt.Println()
	fmt.Printf("Custom defaults: %d buttons, %d levels (0 levels = unlimited).\n",
		cfg.Custom.DefaultButtons, cfg.Custom.DefaultMaxLevel)
	fmt.Println("Run 'simon play --difficulty <id>' to play.")
}
