package tui

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-simon/internal/simon"
)

// logListener writes session events to a structured logger, tagged with
// the id of the engine session they belong to.
type logListener struct {
	base       *log.Logger
	logger     *log.Logger
	difficulty string
	sessionID  string
}

func newLogListener(logger *log.Logger, difficulty string) *logListener {
	l := &logListener{base: logger, difficulty: difficulty}
	l.renew()
	return l
}

// renew switches to a fresh session id.
func (l *logListener) renew() {
	l.sessionID = uuid.NewString()
	l.logger = l.base.With("session", l.sessionID, "difficulty", l.difficulty)
}

func (l *logListener) OnHighlight(index int) {
	l.logger.Debug("highlight", "pad", index)
}

func (l *logListener) OnPlaybackComplete() {
	l.logger.Debug("playback complete")
}

func (l *logListener) OnInputAccepted(index int) {
	l.logger.Debug("input accepted", "pad", index)
}

func (l *logListener) OnRoundAdvanced(level, score int) {
	l.logger.Info("round advanced", "level", level, "score", score)
}

func (l *logListener) OnGameOver(finalScore int) {
	l.logger.Info("game over", "score", finalScore)
}

func (l *logListener) OnGameWon(finalScore int) {
	l.logger.Info("game won", "score", finalScore)
}

var _ simon.Listener = (*logListener)(nil)
