package quiz

import (
	"go.uber.org/zap"
)

// Display receives state-change notifications from the Engine. All calls
// are synchronous and happen on the caller's goroutine.
type Display interface {
	// SessionReset is called after a reset with the fresh state.
	SessionReset(st Status)

	// QuestionShown is called when Advance moves to a new question.
	QuestionShown(st Status)

	// AnswerScored is called after a correct or wrong submission.
	AnswerScored(r Result, st Status)

	// InputRejected is called when the answer did not parse.
	InputRejected(r Result, st Status)

	// SessionFinished is called once when the last question is advanced past.
	SessionFinished(sum Summary)
}

// NopDisplay ignores all notifications.
type NopDisplay struct{}

var _ Display = NopDisplay{}

func (NopDisplay) SessionReset(Status)          {}
func (NopDisplay) QuestionShown(Status)         {}
func (NopDisplay) AnswerScored(Result, Status)  {}
func (NopDisplay) InputRejected(Result, Status) {}
func (NopDisplay) SessionFinished(Summary)      {}

// LoggingDisplay is a decorator that logs every notification before
// forwarding it.
type LoggingDisplay struct {
	inner Display
	log   *zap.Logger
}

// WithLogging wraps a Display with structured logging.
func WithLogging(d Display, log *zap.Logger) Display {
	if d == nil {
		d = NopDisplay{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingDisplay{inner: d, log: log}
}

func (l *LoggingDisplay) SessionReset(st Status) {
	l.log.Info("session reset",
		zap.String("session_id", st.SessionID),
		zap.Stringer("difficulty", st.Difficulty),
		zap.String("prompt", st.Prompt),
	)
	l.inner.SessionReset(st)
}

func (l *LoggingDisplay) QuestionShown(st Status) {
	l.log.Debug("question shown",
		zap.String("session_id", st.SessionID),
		zap.String("counter", st.Counter()),
		zap.String("prompt", st.Prompt),
	)
	l.inner.QuestionShown(st)
}

func (l *LoggingDisplay) AnswerScored(r Result, st Status) {
	l.log.Info("answer scored",
		zap.String("session_id", st.SessionID),
		zap.Stringer("result", r.Kind),
		zap.Float64("value", r.Value),
		zap.Float64("correct_answer", r.CorrectAnswer),
		zap.Int("score", st.Score),
		zap.Int("streak", st.Streak),
	)
	l.inner.AnswerScored(r, st)
}

func (l *LoggingDisplay) InputRejected(r Result, st Status) {
	l.log.Debug("input rejected",
		zap.String("session_id", st.SessionID),
		zap.Error(r.Err),
	)
	l.inner.InputRejected(r, st)
}

func (l *LoggingDisplay) SessionFinished(sum Summary) {
	l.log.Info("session finished",
		zap.String("session_id", sum.SessionID),
		zap.Int("final_score", sum.FinalScore),
		zap.Int("correct", sum.CorrectCount),
		zap.Int("accuracy_percent", sum.AccuracyPercent),
		zap.Int("best_streak", sum.BestStreak),
	)
	l.inner.SessionFinished(sum)
}
