package simon

import (
	"math/rand"
	"slices"
)

// IndexSource draws element indices. *rand.Rand satisfies it.
type IndexSource interface {
	// Intn returns a uniform value in [0, n). n is always >= 1.
	Intn(n int) int
}

// NewSeededSource returns a deterministic IndexSource.
// The same seed always yields the same target sequence.
func NewSeededSource(seed int64) IndexSource {
	return rand.New(rand.NewSource(seed))
}

// extend returns a copy of seq with count new indices appended, each drawn
// independently from [0, buttons). Immediate repeats are allowed.
func extend(seq []int, count, buttons int, src IndexSource) []int {
	out := slices.Grow(slices.Clone(seq), count)
	for range count {
		out = append(out, src.Intn(buttons))
	}
	return out
}
