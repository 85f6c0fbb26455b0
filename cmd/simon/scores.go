package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/platform/tui"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

var (
	flagClearScores bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top 10 results for a difficulty, or a summary of all
difficulties when none is given.

Examples:
  simon scores
  simon scores hard
  simon scores custom --clear
  simon scores -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all results of the difficulty")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	if flagInteractive {
		rc := runtimeConfig()
		if _, err := tui.RunScoreboard(tui.Services{Config: cfg, Store: store}, rc.ScreenW, rc.ScreenH); err != nil {
			fatal("%v", err)
		}
		return
	}

	if len(args) == 0 {
		printSummary(store)
		return
	}

	id := args[0]
	title := difficultyTitle(cfg, id)
	if title == "" {
		fatal("unknown difficulty %q\nRun 'simon presets' to see available difficulties.", id)
	}

	if flagClearScores {
		if err := store.ClearScores(id); err != nil {
			fatal("clearing scores: %v", err)
		}
		fmt.Printf("Cleared all %s results.\n", title)
		return
	}

	scores, err := store.TopScores(id, 10)
	if err != nil {
		fatal("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'simon play --difficulty %s' to set the first high score!\n", id)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %s\n", "Rank", "Score", "Level", "Result", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %s\n", "----", "-----", "-----", "------", "----")
	for i, r := range scores {
		fmt.Printf("  %-4d  %-6d  %-6d  %-7s  %s\n",
			i+1, r.Score, r.Level, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(id); err == nil {
		fmt.Printf("Best: %d  Games: %d  Wins: %d  Avg: %.1f\n",
			stats.HighScore, stats.Games, stats.Wins, stats.AvgScore)
	}
}

func printSummary(store *storage.Store) {
	all, err := store.AllStats()
	if err != nil {
		fatal("retrieving stats: %v", err)
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %5s  %4s  %4s  %10s\n", "Difficulty", "Games", "Wins", "Best", "Last")
	fmt.Printf("  %-10s  %5s  %4s  %4s  %10s\n", "----------", "-----", "----", "----", "----")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-10s  %5d  %4d  %4d  %10s\n",
			id, s.Games, s.Wins, s.HighScore, s.LastPlayed.Format("2006-01-02"))
	}
}

func difficultyTitle(cfg config.Config, id string) string {
	if config.DifficultyPreset(id) == config.DifficultyCustom {
		return "Custom"
	}
	if p, ok := cfg.Preset(config.DifficultyPreset(id)); ok {
		return p.Title
	}
	return ""
}
