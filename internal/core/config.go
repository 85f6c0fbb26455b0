package core

import "time"

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // Seeds the pad sequence; 0 lets the platform pick one
}

// DefaultConfig returns an 80x24 screen at DefaultTickRate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// WithDefaults replaces non-positive sizes and rates with the defaults.
// The seed is left alone.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	d := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = d.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = d.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	return c
}

// TickInterval is the wall-clock length of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.WithDefaults().TickRate)
}

// GameState is the platform's view of a running session.
type GameState struct {
	Score    int
	Level    int
	GameOver bool // Session ended, won or lost
	Won      bool
	Paused   bool
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	State GameState
}
