package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-simon/internal/config"
)

const (
	fieldButtons = iota
	fieldMaxLevel
	fieldCount
)

var (
	formLabelStyle = lipgloss.NewStyle().Width(18)
	formErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	formHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// customForm collects a button count and a max level for a custom game.
type customForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	limits config.CustomConfig
	err    string
}

func newCustomForm(limits config.CustomConfig) customForm {
	f := customForm{limits: limits}

	buttons := textinput.New()
	buttons.Placeholder = strconv.Itoa(limits.DefaultButtons)
	buttons.CharLimit = 2
	buttons.Width = 4
	buttons.Prompt = ""
	buttons.Focus()

	maxLevel := textinput.New()
	maxLevel.Placeholder = strconv.Itoa(limits.DefaultMaxLevel)
	maxLevel.CharLimit = 4
	maxLevel.Width = 6
	maxLevel.Prompt = ""

	f.inputs[fieldButtons] = buttons
	f.inputs[fieldMaxLevel] = maxLevel
	return f
}

// update handles keys that edit or move between fields.
func (f customForm) update(msg tea.KeyMsg) (customForm, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return f.focusField((f.focus + 1) % fieldCount), nil
	case "shift+tab", "up":
		return f.focusField((f.focus + fieldCount - 1) % fieldCount), nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.err = ""
	return f, cmd
}

func (f customForm) focusField(i int) customForm {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
	return f
}

func (f customForm) values() (buttons, maxLevel string) {
	return f.inputs[fieldButtons].Value(), f.inputs[fieldMaxLevel].Value()
}

func (f customForm) view() string {
	var b strings.Builder

	b.WriteString(formLabelStyle.Render("Buttons (1-" + strconv.Itoa(f.limits.MaxButtons) + "):"))
	b.WriteString(f.inputs[fieldButtons].View())
	b.WriteString("\n")
	b.WriteString(formLabelStyle.Render("Max level:"))
	b.WriteString(f.inputs[fieldMaxLevel].View())
	b.WriteString("\n\n")
	b.WriteString(formHintStyle.Render("0 levels = unlimited, blank = default"))
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(formErrStyle.Render(f.err))
	}
	return b.String()
}
