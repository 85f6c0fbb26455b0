package simon

// Engine owns the single live GameState of a session and its IndexSource.
// It is not safe for concurrent use; a session is driven from one flow.
type Engine struct {
	src   IndexSource
	state GameState
}

// NewEngine creates an engine drawing indices from src.
func NewEngine(src IndexSource) *Engine {
	return &Engine{src: src}
}

// StartSession discards any previous session and starts a new one.
// On an invalid config the previous state is kept.
func (e *Engine) StartSession(cfg SessionConfig) (GameState, error) {
	next, err := Start(cfg, e.src)
	if err != nil {
		return e.State(), err
	}
	e.state = next
	return e.State(), nil
}

// AdvanceAfterPlayback is called by the presentation driver once the current
// target sequence has been presented.
func (e *Engine) AdvanceAfterPlayback() (GameState, error) {
	return e.apply(e.state.Advance())
}

// SubmitInput feeds one player activation of element index.
func (e *Engine) SubmitInput(index int) (GameState, error) {
	return e.apply(e.state.Submit(index, e.src))
}

// State returns a copy of the current state.
func (e *Engine) State() GameState {
	return e.state.Clone()
}

func (e *Engine) apply(next GameState, err error) (GameState, error) {
	if err != nil {
		return e.State(), err
	}
	e.state = next
	return e.State(), nil
}
