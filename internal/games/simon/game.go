// Package simon drives a Simon engine session at a fixed tick rate.
// It walks the presentation plan, gates player presses by phase and
// reports every engine event to its listeners.
package simon

import (
	"fmt"
	"iter"
	"time"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	engine "github.com/vovakirdan/tui-simon/internal/simon"
)

const noPad = -1

// Game implements the Simon presentation driver.
type Game struct {
	session  engine.SessionConfig
	timing   engine.Timing
	flashDur time.Duration
	listener engine.Listener

	eng     *engine.Engine
	runtime core.RuntimeConfig
	tick    uint64
	paused  bool

	// Playback of the current plan
	next      func() (engine.Step, bool)
	stop      func()
	countdown int // Ticks left in the current lead-in, highlight or gap
	gapTicks  int // Gap that follows the lit pad
	lit       int // Pad lit by playback, noPad if none

	// Feedback for accepted presses
	flash      int
	flashTicks int

	screenW int
	screenH int
}

// New creates a driver for one difficulty. Call Reset before stepping.
func New(session engine.SessionConfig, cfg config.Config, listeners ...engine.Listener) (*Game, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}

	var l engine.Listener = engine.NopListener{}
	if len(listeners) > 0 {
		l = engine.Listeners(listeners)
	}

	return &Game{
		session:  session,
		timing:   cfg.PlanTiming(),
		flashDur: cfg.InputFlash(),
		listener: l,
		lit:      noPad,
		flash:    noPad,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "simon"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Simon"
}

// Session returns the difficulty the driver plays.
func (g *Game) Session() engine.SessionConfig {
	return g.session
}

// Reset cancels any in-flight playback and starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.stopPlan()

	cfg = cfg.WithDefaults()
	g.runtime = cfg
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.paused = false
	g.flash = noPad
	g.flashTicks = 0

	g.eng = engine.NewEngine(engine.NewSeededSource(cfg.Seed))
	// The session was validated in New.
	if _, err := g.eng.StartSession(g.session); err != nil {
		panic(fmt.Sprintf("simon: start validated session: %v", err))
	}

	g.schedulePlayback()
}

// Resize changes the render area without touching the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenW = w
	g.screenH = h
}

// Close cancels in-flight playback. The game stays frozen until the next Reset.
func (g *Game) Close() {
	g.stopPlan()
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.eng == nil {
		return core.StepResult{}
	}
	g.tick++

	state := g.eng.State()

	if input.Has(core.ActionRestart) && state.Phase.Terminal() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !state.Phase.Terminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.flashTicks > 0 {
		g.flashTicks--
		if g.flashTicks == 0 {
			g.flash = noPad
		}
	}

	switch state.Phase {
	case engine.PhaseDevicePlayback:
		// Pads are disabled while the device plays.
		g.stepPlayback()
	case engine.PhasePlayerTurn:
		for _, idx := range input.Presses {
			g.press(idx)
			if g.eng.State().Phase != engine.PhasePlayerTurn {
				break
			}
		}
	}

	return core.StepResult{State: g.State()}
}

// press submits one pad activation and reports the outcome.
func (g *Game) press(idx int) {
	if idx < 0 || idx >= g.session.Buttons {
		return
	}

	state, err := g.eng.SubmitInput(idx)
	if err != nil {
		return
	}

	if state.Phase == engine.PhaseLost {
		g.listener.OnGameOver(state.Score)
		return
	}

	g.flash = idx
	g.flashTicks = max(1, g.ticks(g.flashDur))
	g.listener.OnInputAccepted(idx)

	switch state.Phase {
	case engine.PhaseWon:
		g.listener.OnGameWon(state.Score)
	case engine.PhaseDevicePlayback:
		g.listener.OnRoundAdvanced(state.Level, state.Score)
		g.schedulePlayback()
	}
}

// schedulePlayback builds a plan for the current sequence and arms the lead-in.
func (g *Game) schedulePlayback() {
	g.stopPlan()

	plan := engine.BuildPlan(g.eng.State().Sequence, g.timing)
	g.next, g.stop = iter.Pull(plan.Steps())
	g.countdown = g.ticks(plan.LeadIn())
	g.lit = noPad
}

// stepPlayback runs the plan for one tick. Zero-length phases are
// consumed in the same tick.
func (g *Game) stepPlayback() {
	if g.next == nil {
		return
	}
	if g.countdown > 0 {
		g.countdown--
	}
	for g.countdown == 0 && g.next != nil {
		g.advancePlayback()
	}
}

func (g *Game) advancePlayback() {
	if g.lit != noPad {
		g.lit = noPad
		g.countdown = g.gapTicks
		return
	}

	step, ok := g.next()
	if !ok {
		g.finishPlayback()
		return
	}

	g.lit = step.Index
	g.countdown = max(1, g.ticks(step.Highlight))
	g.gapTicks = g.ticks(step.Gap)
	g.listener.OnHighlight(step.Index)
}

func (g *Game) finishPlayback() {
	g.stopPlan()
	g.listener.OnPlaybackComplete()
	// Playback only runs in the device phase, so this cannot be rejected.
	_, _ = g.eng.AdvanceAfterPlayback()
}

func (g *Game) stopPlan() {
	if g.stop != nil {
		g.stop()
	}
	g.next = nil
	g.stop = nil
	g.countdown = 0
	g.lit = noPad
}

// ticks converts d to a whole number of ticks, rounding to nearest.
func (g *Game) ticks(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	rate := time.Duration(g.runtime.TickRate)
	return int((d*rate + time.Second/2) / time.Second)
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	s := g.eng.State()
	return core.GameState{
		Score:    s.Score,
		Level:    s.Level,
		GameOver: s.Phase.Terminal(),
		Won:      s.Phase == engine.PhaseWon,
		Paused:   g.paused,
	}
}

// Engine returns a copy of the engine state.
func (g *Game) Engine() engine.GameState {
	if g.eng == nil {
		return engine.GameState{}
	}
	return g.eng.State()
}
