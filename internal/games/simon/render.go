package simon

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-simon/internal/core"
	engine "github.com/vovakirdan/tui-simon/internal/simon"
)

const (
	hudHeight    = 2
	footerHeight = 2
	padGap       = 1
	minPadW      = 5
	minPadH      = 3
)

// Columns returns how many pads share a grid row.
func Columns(buttons int) int {
	switch {
	case buttons <= 4:
		return 2
	case buttons <= 9:
		return 3
	default:
		return 4
	}
}

// Layout computes the pad rectangles for a screen of the given size.
// It returns nil when the pads do not fit.
func Layout(buttons, screenW, screenH int) []core.Rect {
	cols := Columns(buttons)
	rows := (buttons + cols - 1) / cols

	area := core.NewRect(1, hudHeight, screenW-2, screenH-hudHeight-footerHeight)
	cells := area.Grid(rows, cols, padGap)
	if len(cells) < buttons {
		return nil
	}
	if cells[0].W < minPadW || cells[0].H < minPadH {
		return nil
	}
	return cells[:buttons]
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil {
		return
	}

	pads := Layout(g.session.Buttons, g.screenW, g.screenH)
	if pads == nil {
		g.renderTooSmall(dst)
		return
	}

	state := g.eng.State()
	g.renderHUD(dst, state)
	for i, r := range pads {
		g.renderPad(dst, i, r)
	}
	g.renderStatus(dst, state)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen, state engine.GameState) {
	dst.DrawText(1, 0, fmt.Sprintf("Level: %d  Score: %d", state.Level, state.Score), core.ColorBrightWhite)

	info := g.session.String()
	dst.DrawText(g.screenW-len(info)-1, 0, info, core.ColorGray)
}

func (g *Game) renderPad(dst *core.Screen, i int, r core.Rect) {
	rest, bright := core.PadColor(i)

	if i == g.lit || i == g.flash {
		dst.DrawRect(r, '█', bright)
	} else {
		dst.DrawRect(r, '░', rest)
		dst.DrawBox(r, rest)
	}

	label := strconv.Itoa(i + 1)
	cx, cy := r.Center()
	dst.DrawText(cx-len(label)/2, cy, label, core.ColorBrightWhite)
}

func (g *Game) renderStatus(dst *core.Screen, state engine.GameState) {
	y := g.screenH - footerHeight

	var status string
	color := core.ColorBrightWhite
	switch state.Phase {
	case engine.PhaseDevicePlayback:
		status = "Watch..."
		color = core.ColorBrightYellow
	case engine.PhasePlayerTurn:
		status = "Your turn"
		color = core.ColorBrightGreen
	case engine.PhaseLost:
		status = fmt.Sprintf("Game Over! Score: %d", state.Score)
		color = core.ColorBrightRed
	case engine.PhaseWon:
		status = fmt.Sprintf("You Won! Score: %d", state.Score)
		color = core.ColorBrightCyan
	}
	if g.paused {
		status = "PAUSED"
		color = core.ColorBrightWhite
	}
	dst.DrawTextCentered(y, status, color)

	help := "1-9 press pad  P pause  Q quit"
	if state.Phase.Terminal() {
		help = "R restart  Q quit"
	}
	dst.DrawTextCentered(y+1, help, core.ColorGray)
}
