// Package config provides YAML-based configuration loading and
// difficulty resolution for the Simon game.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-simon/internal/simon"
)

// Config contains all configuration for the game.
type Config struct {
	Timing  TimingConfig `yaml:"timing"`
	Presets []Preset     `yaml:"presets"`
	Custom  CustomConfig `yaml:"custom"`
	Sound   SoundConfig  `yaml:"sound"`
}

// TimingConfig defines presentation pacing in milliseconds.
type TimingConfig struct {
	LeadInMs     int `yaml:"lead_in_ms"`
	HighlightMs  int `yaml:"highlight_ms"`
	GapMs        int `yaml:"gap_ms"`
	InputFlashMs int `yaml:"input_flash_ms"`
}

// Preset is a named difficulty tier.
type Preset struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Buttons  int    `yaml:"buttons"`
	MaxLevel int    `yaml:"max_level"`
}

// CustomConfig bounds and defaults for user-supplied difficulty.
type CustomConfig struct {
	DefaultButtons  int `yaml:"default_buttons"`
	DefaultMaxLevel int `yaml:"default_max_level"`
	MaxButtons      int `yaml:"max_buttons"`
}

// SoundConfig defines tone generation parameters.
type SoundConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Volume        float64 `yaml:"volume"`         // 0.0 - 1.0
	ToneMs        int     `yaml:"tone_ms"`        // Length of a pad tone
	BaseFrequency float64 `yaml:"base_frequency"` // Frequency of pad 0 in Hz
}

// PlanTiming converts the millisecond settings into the engine's plan timing.
func (c Config) PlanTiming() simon.Timing {
	return simon.Timing{
		LeadIn:    ms(c.Timing.LeadInMs),
		Highlight: ms(c.Timing.HighlightMs),
		Gap:       ms(c.Timing.GapMs),
	}
}

// InputFlash returns how long a pressed pad stays lit.
func (c Config) InputFlash() time.Duration {
	return ms(c.Timing.InputFlashMs)
}

// Validate checks the config for values the game cannot run with.
func (c Config) Validate() error {
	t := c.Timing
	if t.LeadInMs < 0 || t.HighlightMs <= 0 || t.GapMs < 0 || t.InputFlashMs < 0 {
		return fmt.Errorf("config: timing values must be non-negative and highlight_ms positive")
	}
	if len(c.Presets) == 0 {
		return fmt.Errorf("config: at least one preset is required")
	}

	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if p.ID == "" {
			return fmt.Errorf("config: preset without id")
		}
		if p.ID == string(DifficultyCustom) {
			return fmt.Errorf("config: preset id %q is reserved", p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("config: duplicate preset %q", p.ID)
		}
		seen[p.ID] = true

		if p.Buttons > c.Custom.MaxButtons {
			return fmt.Errorf("config: preset %q has %d buttons, max is %d", p.ID, p.Buttons, c.Custom.MaxButtons)
		}
		if err := p.Session().Validate(); err != nil {
			return fmt.Errorf("config: preset %q: %w", p.ID, err)
		}
	}

	if c.Custom.MaxButtons < 1 || c.Custom.DefaultButtons < 1 || c.Custom.DefaultButtons > c.Custom.MaxButtons {
		return fmt.Errorf("config: custom buttons must satisfy 1 <= default_buttons <= max_buttons")
	}
	if c.Custom.DefaultMaxLevel < 1 {
		return fmt.Errorf("config: custom default_max_level must be >= 1")
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("config: sound volume must be within [0, 1]")
	}
	return nil
}

// Session returns the engine config for the preset.
func (p Preset) Session() simon.SessionConfig {
	return simon.SessionConfig{Buttons: p.Buttons, MaxLevel: p.MaxLevel}
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
