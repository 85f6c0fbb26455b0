// Package tui provides the Bubble Tea integration for Simon.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-simon/internal/core"
)

// TickMsg drives one simulation step of the running game.
type TickMsg time.Time

// tickCmd schedules the next TickMsg one tick interval from now.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
