package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/platform/tui"
)

var (
	flagDifficulty string
	flagButtons    int
	flagMaxLevel   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing at the given difficulty. Without --difficulty the
difficulty menu is shown first.

Controls:
  1-9        - Press a pad
  P/Space    - Pause
  R          - Restart (after the game ends)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy    - 4 pads, 10 levels
  medium  - 6 pads, 15 levels
  hard    - 8 pads, 20 levels
  custom  - --buttons and --max-level (0 = unlimited)

Examples:
  simon play --difficulty easy
  simon play --difficulty hard --seed 42
  simon play --difficulty custom --buttons 9 --max-level 0`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard, custom")
	cmd.Flags().IntVar(&flagButtons, "buttons", 0, "Number of pads for custom difficulty")
	cmd.Flags().IntVar(&flagMaxLevel, "max-level", 0, "Max level for custom difficulty (0 = unlimited)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	if flagDifficulty == "" {
		runMenu(cmd, nil)
		return
	}

	cfg := loadConfig()
	sel, err := resolveSelection(cmd, cfg)
	if err != nil {
		fatal("%v", err)
	}

	svc, cleanup := newServices(cfg)
	_, err = tui.RunGame(sel, svc, runtimeConfig(), false)
	cleanup()
	if err != nil {
		fatal("running game: %v", err)
	}
}

var errCustomFlags = errors.New("--buttons and --max-level need --difficulty custom")

// resolveSelection turns the difficulty flags into a Selection.
func resolveSelection(cmd *cobra.Command, cfg config.Config) (tui.Selection, error) {
	id := config.DifficultyPreset(flagDifficulty)
	if id != config.DifficultyCustom {
		if cmd.Flags().Changed("buttons") || cmd.Flags().Changed("max-level") {
			return tui.Selection{}, errCustomFlags
		}
		sel, err := tui.NewSelection(cfg, id)
		if err != nil {
			return tui.Selection{}, fmt.Errorf("%w\nRun 'simon presets' to see available difficulties", err)
		}
		return sel, nil
	}

	buttons := cfg.Custom.DefaultButtons
	if cmd.Flags().Changed("buttons") {
		buttons = flagButtons
	}
	maxLevel := cfg.Custom.DefaultMaxLevel
	if cmd.Flags().Changed("max-level") {
		maxLevel = flagMaxLevel
	}

	sc, err := cfg.CustomSession(buttons, maxLevel)
	if err != nil {
		return tui.Selection{}, err
	}
	return tui.CustomSelection(cfg, sc), nil
}
