package core

import (
	"testing"
	"time"
)

func TestWithDefaults(t *testing.T) {
	got := RuntimeConfig{ScreenW: -1, TickRate: 0, Seed: 9}.WithDefaults()
	want := RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate, Seed: 9}
	if got != want {
		t.Errorf("WithDefaults() = %+v, want %+v", got, want)
	}

	kept := RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 30}
	if kept.WithDefaults() != kept {
		t.Errorf("WithDefaults() changed a complete config: %+v", kept.WithDefaults())
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{10, 100 * time.Millisecond},
		{0, time.Second / DefaultTickRate},
	}
	for _, tt := range tests {
		got := RuntimeConfig{TickRate: tt.rate}.TickInterval()
		if got != tt.want {
			t.Errorf("TickInterval() at %d = %v, want %v", tt.rate, got, tt.want)
		}
	}
}
