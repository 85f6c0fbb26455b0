package simon

import (
	"iter"
	"slices"
	"time"
)

// Timing holds the fixed presentation constants.
type Timing struct {
	LeadIn    time.Duration // Pause before the first highlight
	Highlight time.Duration // How long each element stays lit
	Gap       time.Duration // Pause after each highlight
}

// DefaultTiming returns the classic presentation pace.
func DefaultTiming() Timing {
	return Timing{
		LeadIn:    500 * time.Millisecond,
		Highlight: 300 * time.Millisecond,
		Gap:       500 * time.Millisecond,
	}
}

// Step is one element of a presentation plan.
type Step struct {
	Index     int
	Highlight time.Duration
	Gap       time.Duration
}

// Plan is the timed presentation of a target sequence. It holds its own copy
// of the sequence, so it stays valid after the engine moves on.
type Plan struct {
	sequence []int
	timing   Timing
}

// BuildPlan derives the presentation plan for sequence. It is deterministic:
// the same sequence and timing always produce the same steps.
func BuildPlan(sequence []int, timing Timing) Plan {
	return Plan{
		sequence: slices.Clone(sequence),
		timing:   timing,
	}
}

// Steps lazily yields the plan in order. Each call starts from the beginning.
func (p Plan) Steps() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, idx := range p.sequence {
			step := Step{Index: idx, Highlight: p.timing.Highlight, Gap: p.timing.Gap}
			if !yield(step) {
				return
			}
		}
	}
}

// Len returns the number of steps.
func (p Plan) Len() int {
	return len(p.sequence)
}

// LeadIn returns the pause before the first step.
func (p Plan) LeadIn() time.Duration {
	return p.timing.LeadIn
}

// Duration returns the total presentation time including the lead-in.
func (p Plan) Duration() time.Duration {
	return p.timing.LeadIn + time.Duration(len(p.sequence))*(p.timing.Highlight+p.timing.Gap)
}
