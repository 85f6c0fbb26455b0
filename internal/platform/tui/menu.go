package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/simon"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDetailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem is a selectable difficulty.
type MenuItem struct {
	ID        config.DifficultyPreset
	Title     string
	Detail    string
	HighScore int
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	cfg            config.Config
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	form           *customForm // Non-nil while the custom form is open
	quitting       bool
	selected       *Selection // Set when user picks a difficulty
	openScoreboard bool       // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg config.Config, store *storage.Store, rc core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, len(cfg.Presets)+1)
	for _, p := range cfg.Presets {
		items = append(items, MenuItem{
			ID:     config.DifficultyPreset(p.ID),
			Title:  p.Title,
			Detail: p.Session().String(),
		})
	}
	items = append(items, MenuItem{
		ID:     config.DifficultyCustom,
		Title:  "Custom",
		Detail: "choose buttons and levels",
	})

	if store != nil {
		for i := range items {
			if hs, err := store.HighScore(string(items[i].ID)); err == nil {
				items[i].HighScore = hs
			}
		}
	}

	return MenuModel{
		cfg:       cfg,
		items:     items,
		width:     rc.ScreenW,
		height:    rc.ScreenH,
		config:    rc,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.form != nil {
			return m.handleFormKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for list navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		item := m.items[m.cursor]
		if item.ID == config.DifficultyCustom {
			form := newCustomForm(m.cfg.Custom)
			m.form = &form
			return m, nil
		}
		sel, err := NewSelection(m.cfg, item.ID)
		if err != nil {
			return m, nil
		}
		m.selected = &sel
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// handleFormKey processes input while the custom form is open.
func (m MenuModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.form = nil
		return m, nil
	case "enter":
		sc, err := m.cfg.ParseCustom(m.form.values())
		if err != nil {
			form := *m.form
			form.err = formError(err)
			m.form = &form
			return m, nil
		}
		sel := CustomSelection(m.cfg, sc)
		m.selected = &sel
		return m, tea.Quit
	}

	form, cmd := m.form.update(msg)
	m.form = &form
	return m, cmd
}

// formError strips package prefixes for display.
func formError(err error) string {
	if errors.Is(err, simon.ErrInvalidConfig) {
		msg := err.Error()
		if i := strings.Index(msg, ": "); i >= 0 {
			msg = msg[i+2:]
		}
		if i := strings.LastIndex(msg, ": "); i >= 0 {
			msg = msg[:i]
		}
		return msg
	}
	return err.Error()
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S I M O N"), m.width))
	b.WriteString("\n\n")

	if m.form != nil {
		b.WriteString(centerText("Custom game", m.width))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().MarginLeft(max(0, m.width/2-16)).Render(m.form.view()))
		b.WriteString("\n\n")
		b.WriteString(centerText(menuHelpStyle.Render("Tab: Next field  |  Enter: Start  |  Esc: Back"), m.width))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(centerText("Select a difficulty", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		title := fmt.Sprintf("%-8s", item.Title)
		if i == m.cursor {
			cursor = "> "
			title = menuSelectedStyle.Render(title)
		}

		line := fmt.Sprintf("%s%s %s", cursor, title, menuDetailStyle.Render(item.Detail))
		if item.HighScore > 0 {
			line += menuDetailStyle.Render(fmt.Sprintf("  best %d", item.HighScore))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuHelpStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen difficulty, or nil if none selected.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       *Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(svc Services, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(svc.Config, svc.Store, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Selection = m.Selected()
	default:
		result.Quit = true
	}
	return result, nil
}
