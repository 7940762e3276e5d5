package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/mathsprint/internal/problemgen"
)

func TestWithLogging_ForwardsAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	inner := &recordingDisplay{}
	e := NewEngine(Config{
		Difficulty: problemgen.DifficultyEasy,
		Generator:  &stubGenerator{},
		Display:    WithLogging(inner, zap.New(core)),
	})

	e.SubmitAnswer("oops")
	e.SubmitAnswer("2")
	e.Advance()

	assert.Equal(t, []string{"reset", "rejected", "scored", "question"}, inner.events)

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, "session reset", entries[0].Message)
	assert.Equal(t, "input rejected", entries[1].Message)
	assert.Equal(t, "answer scored", entries[2].Message)
	assert.Equal(t, "question shown", entries[3].Message)

	sessionID := e.Status().SessionID
	for _, entry := range entries {
		assert.Equal(t, sessionID, entry.ContextMap()["session_id"], entry.Message)
	}
	assert.Equal(t, "correct", entries[2].ContextMap()["result"])
	assert.Equal(t, int64(11), entries[2].ContextMap()["score"])
}

func TestWithLogging_Finished(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	e := NewEngine(Config{
		Generator: &stubGenerator{},
		Display:   WithLogging(nil, zap.New(core)),
	})
	for i := 0; i < TotalQuestions; i++ {
		e.SubmitAnswer(answerOf(e))
		e.Advance()
	}

	finished := logs.FilterMessage("session finished").AllUntimed()
	require.Len(t, finished, 1)
	assert.Equal(t, int64(100), finished[0].ContextMap()["accuracy_percent"])
	assert.Equal(t, int64(TotalQuestions), finished[0].ContextMap()["best_streak"])
}

func TestWithLogging_NilLogger(t *testing.T) {
	d := WithLogging(NopDisplay{}, nil)
	assert.NotPanics(t, func() {
		d.SessionReset(Status{})
		d.SessionFinished(Summary{})
	})
}
