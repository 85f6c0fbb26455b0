package config

import (
	_ "embed"
)

//go:embed defaults/simon.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It mirrors defaults/simon.yaml and is used if the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Timing: TimingConfig{
			LeadInMs:     500,
			HighlightMs:  300,
			GapMs:        500,
			InputFlashMs: 150,
		},
		Presets: []Preset{
			{ID: "easy", Title: "Easy", Buttons: 4, MaxLevel: 10},
			{ID: "medium", Title: "Medium", Buttons: 6, MaxLevel: 15},
			{ID: "hard", Title: "Hard", Buttons: 8, MaxLevel: 20},
		},
		Custom: CustomConfig{
			DefaultButtons:  4,
			DefaultMaxLevel: 10,
			MaxButtons:      9,
		},
		Sound: SoundConfig{
			Enabled:       true,
			Volume:        0.3,
			ToneMs:        300,
			BaseFrequency: 261.63,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
