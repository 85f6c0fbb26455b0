// simon is a terminal memory game: repeat an ever-growing sequence of pads.
//
// Usage:
//
//	simon play [--difficulty d]  - Play one difficulty (menu if omitted)
//	simon menu                   - Difficulty menu, loops back after each game
//	simon presets                - List difficulty tiers
//	simon scores [difficulty]    - Show high scores
//	simon serve                  - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible sequences
//	--db <path>          - Set database path (default: ~/.simon/scores.db)
//	--config <path>      - Use a custom config YAML
//	--mute               - Disable sound
//	--log-file <path>    - Write logs to a file ("-" for stderr)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/platform/sound"
	"github.com/vovakirdan/tui-simon/internal/platform/tui"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagMute     bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simon",
	Short: "Simon - a memory game for your terminal",
	Long: `Simon plays a sequence of lit pads; repeat it with the number keys.
Every completed round adds more pads to the sequence.

Available commands:
  play     - Play a difficulty directly
  menu     - Interactive difficulty menu
  presets  - Show difficulty tiers
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  simon play --difficulty easy
  simon play --difficulty custom --buttons 6 --max-level 0
  simon menu
  simon serve --ssh :2222
  simon scores hard`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.simon/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", `Log file path ("-" for stderr)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// fatal prints an error the way every command reports failures and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the game config or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	return cfg
}

// newLogger builds the process logger. Interactive commands discard logs
// unless --log-file is set, since the TUI owns the terminal.
func newLogger(prefix string, toStderr bool) (*log.Logger, io.Closer) {
	var (
		w      io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)

	switch {
	case flagLogFile == "-":
		w = os.Stderr
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fatal("cannot open log file: %v", err)
		}
		w, closer = f, f
	case toStderr:
		w = os.Stderr
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fatal("invalid log level %q", flagLogLevel)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer
}

// runtimeConfig reads the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newServices opens everything an interactive session needs.
// The returned cleanup must be called before exit.
func newServices(cfg config.Config) (tui.Services, func()) {
	logger, logCloser := newLogger("simon", false)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	svc := tui.Services{Config: cfg, Store: store, Logger: logger}

	var player *sound.Player
	if !flagMute && cfg.Sound.Enabled {
		player = sound.New(cfg.Sound)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			svc.Sink = player
		}
	}

	cleanup := func() {
		if player != nil {
			player.Close()
		}
		if store != nil {
			store.Close()
		}
		logCloser.Close()
	}
	return svc, cleanup
}
