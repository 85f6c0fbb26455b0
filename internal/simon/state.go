package simon

import (
	"fmt"
	"slices"
)

// Phase is the engine's position in its turn-taking state machine.
type Phase int

const (
	PhaseDevicePlayback Phase = iota // Device is presenting the sequence
	PhasePlayerTurn                  // Player is reproducing the sequence
	PhaseWon                         // Terminal: max level completed
	PhaseLost                        // Terminal: wrong element submitted
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseDevicePlayback:
		return "DevicePlayback"
	case PhasePlayerTurn:
		return "PlayerTurn"
	case PhaseWon:
		return "Won"
	case PhaseLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further input can change the session.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// GameState is the complete state of one session.
// Transitions return a new value and never alias the receiver's Sequence.
type GameState struct {
	Config   SessionConfig
	Sequence []int // Target sequence, every element in [0, Config.Buttons)
	Level    int   // Starts at 1
	Score    int   // Completed levels
	Phase    Phase
	Cursor   int // How much of Sequence the player has reproduced this turn
}

// Start validates cfg and returns the first state of a new session: level 1,
// score 0, device playback, and a one-element target sequence.
func Start(cfg SessionConfig, src IndexSource) (GameState, error) {
	if err := cfg.Validate(); err != nil {
		return GameState{}, err
	}
	s := GameState{
		Config: cfg,
		Level:  1,
		Phase:  PhaseDevicePlayback,
	}
	s.Sequence = extend(nil, s.Level, cfg.Buttons, src)
	return s, nil
}

// Advance hands the turn to the player once playback has finished.
func (s GameState) Advance() (GameState, error) {
	if s.Phase != PhaseDevicePlayback {
		return s, fmt.Errorf("simon: advance after playback in phase %s: %w", s.Phase, ErrInvalidPhaseTransition)
	}
	s.Phase = PhasePlayerTurn
	s.Cursor = 0
	return s, nil
}

// Submit checks one player activation against the target sequence.
//
// A mismatch ends the session as Lost. Completing the sequence either starts
// the next round (level and score grow, the sequence is extended by the new
// level's count, playback resumes) or ends the session as Won when the max
// level has been reached.
func (s GameState) Submit(index int, src IndexSource) (GameState, error) {
	if s.Phase != PhasePlayerTurn {
		return s, fmt.Errorf("simon: submit input in phase %s: %w", s.Phase, ErrInvalidPhaseTransition)
	}
	if index < 0 || index >= s.Config.Buttons {
		return s, fmt.Errorf("simon: element %d outside [0, %d): %w", index, s.Config.Buttons, ErrInvalidInput)
	}

	if index != s.Sequence[s.Cursor] {
		s.Phase = PhaseLost
		return s, nil
	}

	s.Cursor++
	if s.Cursor < len(s.Sequence) {
		return s, nil
	}

	if !s.Config.canAdvance(s.Level) {
		s.Phase = PhaseWon
		return s, nil
	}

	s.Level++
	s.Score++
	s.Sequence = extend(s.Sequence, s.Level, s.Config.Buttons, src)
	s.Phase = PhaseDevicePlayback
	s.Cursor = 0
	return s, nil
}

// Expected returns the element the player must activate next.
// ok is false outside the player's turn.
func (s GameState) Expected() (index int, ok bool) {
	if s.Phase != PhasePlayerTurn || s.Cursor >= len(s.Sequence) {
		return 0, false
	}
	return s.Sequence[s.Cursor], true
}

// Clone returns a copy that shares no memory with s.
func (s GameState) Clone() GameState {
	s.Sequence = slices.Clone(s.Sequence)
	return s
}
