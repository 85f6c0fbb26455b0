package simon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays a fixed list of indices, then yields 0.
type scriptedSource struct {
	values []int
	pos    int
}

func (s *scriptedSource) Intn(n int) int {
	if s.pos >= len(s.values) {
		return 0
	}
	v := s.values[s.pos] % n
	s.pos++
	return v
}

func script(values ...int) *scriptedSource {
	return &scriptedSource{values: values}
}

// playRound advances past playback and reproduces the whole sequence.
func playRound(t *testing.T, e *Engine) GameState {
	t.Helper()
	st, err := e.AdvanceAfterPlayback()
	require.NoError(t, err)
	for _, idx := range st.Sequence {
		st, err = e.SubmitInput(idx)
		require.NoError(t, err)
	}
	return st
}

func TestStartSessionFreshState(t *testing.T) {
	configs := []SessionConfig{
		{Buttons: 1, MaxLevel: 1},
		{Buttons: 4, MaxLevel: 10},
		{Buttons: 6, MaxLevel: 15},
		{Buttons: 8, MaxLevel: 20},
		{Buttons: 3, Unlimited: true},
		{Buttons: 5, MaxLevel: 0, Unlimited: true},
	}

	for _, cfg := range configs {
		t.Run(cfg.String(), func(t *testing.T) {
			e := NewEngine(NewSeededSource(42))
			st, err := e.StartSession(cfg)
			require.NoError(t, err)

			assert.Equal(t, 1, st.Level)
			assert.Equal(t, 0, st.Score)
			assert.Equal(t, PhaseDevicePlayback, st.Phase)
			assert.Equal(t, 0, st.Cursor)
			assert.Len(t, st.Sequence, 1)
			assert.Equal(t, cfg, st.Config)
		})
	}
}

func TestStartSessionInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  SessionConfig
	}{
		{"zero buttons", SessionConfig{Buttons: 0, MaxLevel: 10}},
		{"negative buttons", SessionConfig{Buttons: -2, MaxLevel: 10}},
		{"zero max level", SessionConfig{Buttons: 4, MaxLevel: 0}},
		{"zero buttons unlimited", SessionConfig{Buttons: 0, Unlimited: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEngine(NewSeededSource(1))
			before, err := e.StartSession(SessionConfig{Buttons: 4, MaxLevel: 10})
			require.NoError(t, err)

			after, err := e.StartSession(tc.cfg)
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Equal(t, before, after, "rejected config must not replace the session")
			assert.Equal(t, before, e.State())
		})
	}
}

func TestSequenceElementsInRange(t *testing.T) {
	for buttons := 1; buttons <= 9; buttons++ {
		e := NewEngine(NewSeededSource(int64(buttons)))
		_, err := e.StartSession(SessionConfig{Buttons: buttons, Unlimited: true})
		require.NoError(t, err)

		var st GameState
		for range 6 {
			st = playRound(t, e)
		}
		for i, idx := range st.Sequence {
			assert.GreaterOrEqual(t, idx, 0, "buttons=%d element %d", buttons, i)
			assert.Less(t, idx, buttons, "buttons=%d element %d", buttons, i)
		}
	}
}

func TestSequenceCompoundingGrowth(t *testing.T) {
	e := NewEngine(NewSeededSource(7))
	st, err := e.StartSession(SessionConfig{Buttons: 4, Unlimited: true})
	require.NoError(t, err)

	// Round n appends n elements, so after round n the length is n(n+1)/2.
	for n := 1; n <= 7; n++ {
		require.Equal(t, n, st.Level)
		assert.Len(t, st.Sequence, n*(n+1)/2, "level %d", n)
		prefix := st.Sequence
		st = playRound(t, e)
		assert.Equal(t, prefix, st.Sequence[:len(prefix)], "sequence must only grow")
	}
}

func TestCorrectInputNeverLoses(t *testing.T) {
	e := NewEngine(NewSeededSource(99))
	_, err := e.StartSession(SessionConfig{Buttons: 6, MaxLevel: 5})
	require.NoError(t, err)

	for {
		st, err := e.AdvanceAfterPlayback()
		require.NoError(t, err)
		for range st.Sequence {
			want, ok := st.Expected()
			require.True(t, ok)
			st, err = e.SubmitInput(want)
			require.NoError(t, err)
			require.NotEqual(t, PhaseLost, st.Phase)
			if st.Phase != PhasePlayerTurn {
				break
			}
		}
		if st.Phase == PhaseWon {
			return
		}
		require.Equal(t, PhaseDevicePlayback, st.Phase)
	}
}

func TestWrongInputLosesAndFreezes(t *testing.T) {
	for cursor := 0; cursor < 3; cursor++ {
		e := NewEngine(script(1, 2, 3))
		_, err := e.StartSession(SessionConfig{Buttons: 4, MaxLevel: 5})
		require.NoError(t, err)
		playRound(t, e) // sequence is now [1, 2, 3], level 2

		st, err := e.AdvanceAfterPlayback()
		require.NoError(t, err)
		for i := 0; i < cursor; i++ {
			st, err = e.SubmitInput(st.Sequence[i])
			require.NoError(t, err)
		}

		wrong := (st.Sequence[cursor] + 1) % 4
		st, err = e.SubmitInput(wrong)
		require.NoError(t, err, "a wrong element is a loss, not an error")
		assert.Equal(t, PhaseLost, st.Phase)
		assert.Equal(t, 2, st.Level)
		assert.Equal(t, 1, st.Score)

		frozen := st
		for idx := range 4 {
			st, err = e.SubmitInput(idx)
			require.ErrorIs(t, err, ErrInvalidPhaseTransition)
			assert.Equal(t, frozen, st)
		}
		_, err = e.AdvanceAfterPlayback()
		require.ErrorIs(t, err, ErrInvalidPhaseTransition)
		assert.Equal(t, frozen, e.State())
	}
}

func TestWinAtMaxLevel(t *testing.T) {
	e := NewEngine(NewSeededSource(3))
	_, err := e.StartSession(SessionConfig{Buttons: 4, MaxLevel: 3})
	require.NoError(t, err)

	st := playRound(t, e)
	assert.Equal(t, PhaseDevicePlayback, st.Phase)
	st = playRound(t, e)
	assert.Equal(t, PhaseDevicePlayback, st.Phase)
	st = playRound(t, e)
	assert.Equal(t, PhaseWon, st.Phase)
	assert.Equal(t, 3, st.Level)
	assert.Equal(t, 2, st.Score)

	_, err = e.SubmitInput(0)
	require.ErrorIs(t, err, ErrInvalidPhaseTransition)
	assert.Equal(t, st, e.State())
}

func TestUnlimitedNeverWins(t *testing.T) {
	e := NewEngine(NewSeededSource(11))
	// MaxLevel is ignored when unlimited.
	_, err := e.StartSession(SessionConfig{Buttons: 2, MaxLevel: 1, Unlimited: true})
	require.NoError(t, err)

	for level := 1; level <= 10; level++ {
		st := playRound(t, e)
		require.Equal(t, PhaseDevicePlayback, st.Phase)
		assert.Equal(t, level+1, st.Level)
		assert.Equal(t, level, st.Score)
	}
}

func TestAdvanceAfterPlayback(t *testing.T) {
	e := NewEngine(script(0, 1, 2, 3, 0, 1))
	_, err := e.StartSession(SessionConfig{Buttons: 4, MaxLevel: 10})
	require.NoError(t, err)

	st, err := e.AdvanceAfterPlayback()
	require.NoError(t, err)
	assert.Equal(t, PhasePlayerTurn, st.Phase)
	assert.Equal(t, 0, st.Cursor)

	_, err = e.AdvanceAfterPlayback()
	require.ErrorIs(t, err, ErrInvalidPhaseTransition, "advance is only valid from playback")

	// Round trip after a completed round resets the cursor again.
	_, err = e.SubmitInput(st.Sequence[0])
	require.NoError(t, err)
	st, err = e.AdvanceAfterPlayback()
	require.NoError(t, err)
	assert.Equal(t, PhasePlayerTurn, st.Phase)
	assert.Equal(t, 0, st.Cursor)
	assert.Equal(t, 2, st.Level)
}

func TestSubmitInputRejections(t *testing.T) {
	e := NewEngine(script(2))
	st, err := e.StartSession(SessionConfig{Buttons: 4, MaxLevel: 2})
	require.NoError(t, err)

	_, err = e.SubmitInput(2)
	require.ErrorIs(t, err, ErrInvalidPhaseTransition, "no input during playback")
	assert.Equal(t, st, e.State())

	st, err = e.AdvanceAfterPlayback()
	require.NoError(t, err)

	for _, idx := range []int{-1, 4, 100} {
		got, err := e.SubmitInput(idx)
		require.ErrorIs(t, err, ErrInvalidInput, "index %d", idx)
		assert.Equal(t, st, got)
	}
	assert.Equal(t, st, e.State())
}

func TestScenarioAdvanceToLevelTwo(t *testing.T) {
	e := NewEngine(script(2, 1, 3))
	st, err := e.StartSession(SessionConfig{Buttons: 4, MaxLevel: 2})
	require.NoError(t, err)
	require.Equal(t, []int{2}, st.Sequence)

	_, err = e.AdvanceAfterPlayback()
	require.NoError(t, err)
	st, err = e.SubmitInput(2)
	require.NoError(t, err)

	assert.Equal(t, 2, st.Level)
	assert.Equal(t, 1, st.Score)
	assert.Equal(t, PhaseDevicePlayback, st.Phase)
	assert.Equal(t, 0, st.Cursor)
	assert.Equal(t, []int{2, 1, 3}, st.Sequence, "level 2 appends two elements")

	// Wrong element at cursor 0 on level 2 loses immediately.
	_, err = e.AdvanceAfterPlayback()
	require.NoError(t, err)
	st, err = e.SubmitInput(0)
	require.NoError(t, err)
	assert.Equal(t, PhaseLost, st.Phase)
	assert.Equal(t, 1, st.Score)
	assert.Equal(t, 2, st.Level)
}

func TestScenarioWinBeforeScoring(t *testing.T) {
	e := NewEngine(script(3))
	_, err := e.StartSession(SessionConfig{Buttons: 4, MaxLevel: 1})
	require.NoError(t, err)

	st := playRound(t, e)
	assert.Equal(t, PhaseWon, st.Phase)
	assert.Equal(t, 0, st.Score)
	assert.Equal(t, 1, st.Level)
	assert.Equal(t, []int{3}, st.Sequence)
}

func TestSeededSourceDeterministic(t *testing.T) {
	run := func() []int {
		e := NewEngine(NewSeededSource(2024))
		_, err := e.StartSession(SessionConfig{Buttons: 8, Unlimited: true})
		require.NoError(t, err)
		var st GameState
		for range 4 {
			st = playRound(t, e)
		}
		return st.Sequence
	}

	assert.Equal(t, run(), run())
}

func TestStateIsDefensiveCopy(t *testing.T) {
	e := NewEngine(script(1))
	st, err := e.StartSession(SessionConfig{Buttons: 4, MaxLevel: 3})
	require.NoError(t, err)

	st.Sequence[0] = 3
	assert.Equal(t, []int{1}, e.State().Sequence)
}

func TestTransitionsDoNotAliasReceiver(t *testing.T) {
	s, err := Start(SessionConfig{Buttons: 4, MaxLevel: 5}, script(1, 2, 3))
	require.NoError(t, err)
	s, err = s.Advance()
	require.NoError(t, err)

	next, err := s.Submit(1, script(2, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, s.Sequence, "receiver keeps its sequence")
	assert.Equal(t, []int{1, 2, 3}, next.Sequence)
	assert.Equal(t, PhasePlayerTurn, s.Phase)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "DevicePlayback", PhaseDevicePlayback.String())
	assert.Equal(t, "PlayerTurn", PhasePlayerTurn.String())
	assert.Equal(t, "Won", PhaseWon.String())
	assert.Equal(t, "Lost", PhaseLost.String())
	assert.Equal(t, "Unknown", Phase(42).String())

	assert.False(t, PhaseDevicePlayback.Terminal())
	assert.False(t, PhasePlayerTurn.Terminal())
	assert.True(t, PhaseWon.Terminal())
	assert.True(t, PhaseLost.Terminal())
}
