// Package simon implements the game-state engine for a Simon-style memory game:
// sequence generation, turn arbitration, input validation, level/score
// progression and terminal-state detection.
//
// The package has no I/O and no notion of elapsed time. Device playback is
// described by a data-only Plan which an external driver walks at its own
// pace; only that driver decides when to call AdvanceAfterPlayback.
package simon
