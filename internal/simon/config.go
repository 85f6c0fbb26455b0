package simon

import "fmt"

// SessionConfig is immutable for the lifetime of a session.
type SessionConfig struct {
	Buttons   int  // Number of selectable elements
	MaxLevel  int  // Last playable level; ignored when Unlimited
	Unlimited bool // Never declare a win
}

// Validate reports whether the config can start a session.
func (c SessionConfig) Validate() error {
	if c.Buttons < 1 {
		return fmt.Errorf("simon: buttons must be >= 1, got %d: %w", c.Buttons, ErrInvalidConfig)
	}
	if !c.Unlimited && c.MaxLevel < 1 {
		return fmt.Errorf("simon: max level must be >= 1, got %d: %w", c.MaxLevel, ErrInvalidConfig)
	}
	return nil
}

// canAdvance reports whether completing the given level leads to another round.
func (c SessionConfig) canAdvance(level int) bool {
	return c.Unlimited || level < c.MaxLevel
}

// String formats the config for logs and headers.
func (c SessionConfig) String() string {
	if c.Unlimited {
		return fmt.Sprintf("%d buttons, unlimited", c.Buttons)
	}
	return fmt.Sprintf("%d buttons, %d levels", c.Buttons, c.MaxLevel)
}
