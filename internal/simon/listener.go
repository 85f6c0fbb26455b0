package simon

// Listener is the presentation callback surface. Implementations render,
// play sounds or log; none of them own game logic.
type Listener interface {
	OnHighlight(index int)
	OnPlaybackComplete()
	OnInputAccepted(index int)
	OnRoundAdvanced(level, score int)
	OnGameOver(finalScore int)
	OnGameWon(finalScore int)
}

// NopListener ignores every event. Embed it to implement a subset.
type NopListener struct{}

func (NopListener) OnHighlight(int)          {}
func (NopListener) OnPlaybackComplete()      {}
func (NopListener) OnInputAccepted(int)      {}
func (NopListener) OnRoundAdvanced(int, int) {}
func (NopListener) OnGameOver(int)           {}
func (NopListener) OnGameWon(int)            {}

// Listeners fans every event out to each listener in order.
type Listeners []Listener

func (ls Listeners) OnHighlight(index int) {
	for _, l := range ls {
		l.OnHighlight(index)
	}
}

func (ls Listeners) OnPlaybackComplete() {
	for _, l := range ls {
		l.OnPlaybackComplete()
	}
}

func (ls Listeners) OnInputAccepted(index int) {
	for _, l := range ls {
		l.OnInputAccepted(index)
	}
}

func (ls Listeners) OnRoundAdvanced(level, score int) {
	for _, l := range ls {
		l.OnRoundAdvanced(level, score)
	}
}

func (ls Listeners) OnGameOver(finalScore int) {
	for _, l := range ls {
		l.OnGameOver(finalScore)
	}
}

func (ls Listeners) OnGameWon(finalScore int) {
	for _, l := range ls {
		l.OnGameWon(finalScore)
	}
}

var (
	_ Listener = NopListener{}
	_ Listener = Listeners(nil)
)
