package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the difficulty menu",
	Long: `Start Simon in interactive menu mode.

Pick a difficulty, play, and return to the menu with B/Esc when the
game ends. Tab opens the high score board.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select difficulty
  Tab          - High scores
  Q            - Quit

Examples:
  simon menu
  simon menu --fps 30
  simon menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	svc, cleanup := newServices(loadConfig())
	defer cleanup()

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(svc, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(svc, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		back, err := tui.RunGame(*menuResult.Selection, svc, cfg, true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !back {
			return
		}
	}
}
