// Package sound plays pad tones and end-of-game cues through the system
// speaker. It is a presentation sink only: it reacts to engine events and
// never influences game state.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/simon"
)

const (
	sampleRate = beep.SampleRate(44100)

	buzzFrequency = 110.0
	buzzDuration  = 450 * time.Millisecond
	jingleNote    = 120 * time.Millisecond
)

// scaleSteps are major-scale semitone offsets; pad i sounds scaleSteps[i%8]
// semitones above the base, one octave higher per wrap.
var scaleSteps = [...]int{0, 2, 4, 5, 7, 9, 11, 12}

// ToneFrequency returns the frequency in Hz for pad index.
func ToneFrequency(base float64, index int) float64 {
	if index < 0 {
		index = 0
	}
	semitones := scaleSteps[index%len(scaleSteps)] + 12*(index/len(scaleSteps))
	return base * math.Pow(2, float64(semitones)/12)
}

// Player turns engine events into sounds.
// All methods are no-ops until Init succeeds, and after Close.
type Player struct {
	mu          sync.Mutex
	cfg         config.SoundConfig
	mixer       *beep.Mixer
	initialized bool
}

// New creates a sound player. Call Init to open the audio device.
func New(cfg config.SoundConfig) *Player {
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker. Disabled sound is not an error.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: cannot open speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Enabled reports whether sounds are actually played.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

func (p *Player) OnHighlight(index int) {
	p.playTone(index, p.toneDuration())
}

func (p *Player) OnInputAccepted(index int) {
	p.playTone(index, p.toneDuration())
}

func (p *Player) OnPlaybackComplete() {}

func (p *Player) OnRoundAdvanced(int, int) {}

// OnGameOver plays a low buzz.
func (p *Player) OnGameOver(int) {
	tone, err := generators.SquareTone(sampleRate, buzzFrequency)
	if err != nil {
		return
	}
	p.add(beep.Take(sampleRate.N(buzzDuration), tone))
}

// OnGameWon plays a short rising arpeggio.
func (p *Player) OnGameWon(int) {
	var notes []beep.Streamer
	for _, idx := range []int{0, 2, 4, 7} {
		tone, err := generators.SineTone(sampleRate, ToneFrequency(p.cfg.BaseFrequency, idx))
		if err != nil {
			return
		}
		notes = append(notes, beep.Take(sampleRate.N(jingleNote), tone))
	}
	p.add(beep.Seq(notes...))
}

func (p *Player) playTone(index int, d time.Duration) {
	tone, err := generators.SineTone(sampleRate, ToneFrequency(p.cfg.BaseFrequency, index))
	if err != nil {
		return
	}
	p.add(beep.Take(sampleRate.N(d), tone))
}

func (p *Player) toneDuration() time.Duration {
	return time.Duration(p.cfg.ToneMs) * time.Millisecond
}

// add mixes s in at the configured volume.
func (p *Player) add(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Add(&effects.Gain{Streamer: s, Gain: p.cfg.Volume - 1})
	speaker.Unlock()
}

var _ simon.Listener = (*Player)(nil)
