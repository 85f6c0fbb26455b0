package simon

import engine "github.com/vovakirdan/tui-simon/internal/simon"

// Snapshot captures the driver state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Phase    engine.Phase
	Level    int
	Score    int
	Sequence []int
	Cursor   int
	Lit      int  // Pad lit by playback, -1 if none
	Flash    int  // Pad lit by an accepted press, -1 if none
	Playing  bool // A plan is in flight
	Paused   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.Engine()
	return Snapshot{
		Tick:     g.tick,
		Phase:    s.Phase,
		Level:    s.Level,
		Score:    s.Score,
		Sequence: s.Sequence,
		Cursor:   s.Cursor,
		Lit:      g.lit,
		Flash:    g.flash,
		Playing:  g.next != nil,
		Paused:   g.paused,
	}
}
