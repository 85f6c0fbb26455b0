package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	simongame "github.com/vovakirdan/tui-simon/internal/games/simon"
	"github.com/vovakirdan/tui-simon/internal/simon"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

// Services bundles what every screen of a session shares.
type Services struct {
	Config config.Config
	Store  *storage.Store // Optional: results are not saved when nil
	Logger *log.Logger    // Optional: discards when nil
	Sink   simon.Listener // Optional extra presentation sink, e.g. sound
}

func (s Services) logger() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

// Selection is a difficulty picked from the menu or the command line.
type Selection struct {
	Key     string // Storage key: preset id or "custom"
	Title   string
	Session simon.SessionConfig
}

// NewSelection resolves a preset id into a Selection.
func NewSelection(cfg config.Config, id config.DifficultyPreset) (Selection, error) {
	sc, err := cfg.Session(id)
	if err != nil {
		return Selection{}, err
	}
	title := "Custom"
	if p, ok := cfg.Preset(id); ok {
		title = p.Title
	}
	return Selection{Key: cfg.ScoreKey(sc), Title: title, Session: sc}, nil
}

// CustomSelection wraps a user-built config.
func CustomSelection(cfg config.Config, sc simon.SessionConfig) Selection {
	return Selection{Key: cfg.ScoreKey(sc), Title: "Custom", Session: sc}
}

// GameModel runs one Simon session and records its result.
type GameModel struct {
	game       *simongame.Game
	selection  Selection
	events     *logListener // Owns the id of the current engine session
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	fixedSeed  bool
	allowBack  bool
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the result has been saved for the current game
}

// NewGameModel creates the model for a selection. With allowBack set,
// B/Esc after the game ends (or while paused) returns to the menu.
func NewGameModel(sel Selection, svc Services, cfg core.RuntimeConfig, allowBack bool) (GameModel, error) {
	logger := svc.logger()
	events := newLogListener(logger, sel.Key)

	listeners := []simon.Listener{events}
	if svc.Sink != nil {
		listeners = append(listeners, svc.Sink)
	}

	game, err := simongame.New(sel.Session, svc.Config, listeners...)
	if err != nil {
		return GameModel{}, fmt.Errorf("tui: create game: %w", err)
	}

	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		selection:  sel,
		events:     events,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      svc.Store,
		logger:     logger,
		config:     cfg,
		fixedSeed:  fixed,
		allowBack:  allowBack,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}, nil
}

// Init starts the session and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "session", m.events.sessionID, "difficulty", m.selection.Key,
		"config", m.selection.Session.String(), "seed", m.config.Seed)
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.allowBack && m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		previous := m.events.sessionID
		m.events.renew()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.logger.Info("session restarted", "session", m.events.sessionID, "previous", previous, "seed", m.config.Seed)
		return m, tickCmd(m.config)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveResult()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config)
}

// saveResult records a finished session. Empty losses are not worth a row.
func (m *GameModel) saveResult() {
	if m.store == nil || (m.gameState.Score == 0 && !m.gameState.Won) {
		return
	}

	outcome := storage.OutcomeLost
	if m.gameState.Won {
		outcome = storage.OutcomeWon
	}

	sc := m.selection.Session
	_, err := m.store.SaveResult(storage.Result{
		SessionID:  m.events.sessionID,
		Difficulty: m.selection.Key,
		Buttons:    sc.Buttons,
		MaxLevel:   sc.MaxLevel,
		Unlimited:  sc.Unlimited,
		Level:      m.gameState.Level,
		Score:      m.gameState.Score,
		Outcome:    outcome,
	})
	if err != nil {
		m.logger.Warn("could not save result", "session", m.events.sessionID, "error", err)
	}
}

// saveScreenshot saves the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".simon", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot dir", "error", err)
		return
	}

	name := fmt.Sprintf("simon_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// SessionID returns the id of the engine session being played.
// A restart starts a new session with a new id.
func (m GameModel) SessionID() string {
	if m.events == nil {
		return ""
	}
	return m.events.sessionID
}

// Close cancels in-flight playback. Call it whenever the model is dropped.
func (m GameModel) Close() {
	if m.game != nil {
		m.game.Close()
	}
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// RunGame runs a single session in its own Bubble Tea program.
// It reports whether the user asked to return to the menu.
func RunGame(sel Selection, svc Services, cfg core.RuntimeConfig, allowBack bool) (backToMenu bool, err error) {
	model, err := NewGameModel(sel, svc, cfg, allowBack)
	if err != nil {
		return false, err
	}

	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
