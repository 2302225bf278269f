package logging

import (
	"go.uber.org/zap"

	"examtrainer/internal/exam"
)

// SessionObserver logs exam transitions.
type SessionObserver struct {
	log *zap.Logger
}

// NewSessionObserver returns an observer writing to log.
func NewSessionObserver(log *zap.Logger) SessionObserver {
	if log == nil {
		log = zap.NewNop()
	}
	return SessionObserver{log: log}
}

// OnTransition records accepted transitions at info level and rejected ones at debug.
func (o SessionObserver) OnTransition(t exam.Transition) {
	fields := []zap.Field{
		zap.Stringer("action", t.Action.Kind),
		zap.Stringer("from", t.From),
		zap.Stringer("to", t.To),
		zap.Int("question", t.Question),
		zap.Int("correct", t.Score.Correct),
		zap.Int("answered", t.Score.Answered),
	}
	if t.Action.Kind == exam.ActionSelect {
		fields = append(fields, zap.Int("choice", t.Action.Choice))
	}
	if t.Err != nil {
		o.log.Debug("transition rejected", append(fields, zap.Error(t.Err))...)
		return
	}
	if t.To == exam.Completed && t.From != exam.Completed {
		o.log.Info("session completed", zap.String("score", t.Score.String()))
	}
	o.log.Info("transition", fields...)
}
