package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-simon/internal/simon"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCustom DifficultyPreset = "custom"
)

// Preset returns the configured tier with the given id.
func (c Config) Preset(id DifficultyPreset) (Preset, bool) {
	for _, p := range c.Presets {
		if strings.EqualFold(p.ID, string(id)) {
			return p, true
		}
	}
	return Preset{}, false
}

// Session resolves a named preset into an engine config.
// DifficultyCustom resolves to the custom defaults.
func (c Config) Session(id DifficultyPreset) (simon.SessionConfig, error) {
	if id == DifficultyCustom {
		return c.CustomSession(c.Custom.DefaultButtons, c.Custom.DefaultMaxLevel)
	}
	p, ok := c.Preset(id)
	if !ok {
		return simon.SessionConfig{}, fmt.Errorf("config: unknown difficulty %q", id)
	}
	return p.Session(), nil
}

// CustomSession builds a user-supplied config. A maxLevel of 0 means
// unlimited; MaxLevel is then kept at the custom default so the config
// stays printable and valid if unlimited is later toggled off.
func (c Config) CustomSession(buttons, maxLevel int) (simon.SessionConfig, error) {
	if buttons > c.Custom.MaxButtons {
		return simon.SessionConfig{}, fmt.Errorf("config: at most %d buttons are supported, got %d: %w",
			c.Custom.MaxButtons, buttons, simon.ErrInvalidConfig)
	}
	if maxLevel < 0 {
		return simon.SessionConfig{}, fmt.Errorf("config: max level must be >= 0, got %d: %w", maxLevel, simon.ErrInvalidConfig)
	}

	sc := simon.SessionConfig{Buttons: buttons, MaxLevel: maxLevel}
	if maxLevel == 0 {
		sc.MaxLevel = c.Custom.DefaultMaxLevel
		sc.Unlimited = true
	}
	return sc, sc.Validate()
}

// ParseCustom builds a custom config from free-form text fields.
// Text that is not an integer falls back to the custom defaults; the
// resulting numbers are then validated as in CustomSession.
func (c Config) ParseCustom(buttonsText, maxLevelText string) (simon.SessionConfig, error) {
	buttons, err := strconv.Atoi(strings.TrimSpace(buttonsText))
	if err != nil {
		buttons = c.Custom.DefaultButtons
	}
	maxLevel, err := strconv.Atoi(strings.TrimSpace(maxLevelText))
	if err != nil {
		maxLevel = c.Custom.DefaultMaxLevel
	}
	return c.CustomSession(buttons, maxLevel)
}

// ScoreKey returns the storage key for a session: the preset id when the
// config matches a preset exactly, otherwise "custom".
func (c Config) ScoreKey(sc simon.SessionConfig) string {
	for _, p := range c.Presets {
		if !sc.Unlimited && p.Buttons == sc.Buttons && p.MaxLevel == sc.MaxLevel {
			return p.ID
		}
	}
	return string(DifficultyCustom)
}

// Difficulties returns all selectable difficulty ids, presets first.
func (c Config) Difficulties() []DifficultyPreset {
	ids := make([]DifficultyPreset, 0, len(c.Presets)+1)
	for _, p := range c.Presets {
		ids = append(ids, DifficultyPreset(p.ID))
	}
	return append(ids, DifficultyCustom)
}
