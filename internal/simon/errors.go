package simon

import "errors"

// Caller errors. All of them are rejected without mutating state and are
// never worth retrying.
var (
	// ErrInvalidInput is returned when an element index is outside [0, Buttons).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPhaseTransition is returned when an operation is invoked in a
	// phase that does not permit it.
	ErrInvalidPhaseTransition = errors.New("invalid phase transition")

	// ErrInvalidConfig is returned for a non-positive button count, or a
	// max level below 1 when the session is not unlimited.
	ErrInvalidConfig = errors.New("invalid config")
)
