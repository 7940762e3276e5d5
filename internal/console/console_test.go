package console

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathsprint/internal/problemgen"
	"github.com/abhisek/mathsprint/internal/quiz"
)

// countingGenerator hands out "n + 1" questions, counting up from 1.
type countingGenerator struct {
	calls int
}

func (g *countingGenerator) Generate(problemgen.Difficulty) *problemgen.Question {
	g.calls++
	return &problemgen.Question{
		OperandA: g.calls,
		OperandB: 1,
		Operator: problemgen.OpAdd,
		Answer:   float64(g.calls + 1),
		Text:     fmt.Sprintf("%d + 1 = ?", g.calls),
	}
}

func newTestEngine() *quiz.Engine {
	return quiz.NewEngine(quiz.Config{
		Difficulty: problemgen.DifficultyEasy,
		Generator:  &countingGenerator{},
	})
}

// fullSession answers all ten questions correctly, given how many
// questions the generator has already handed out, with an empty line after
// each to advance.
func fullSession(generated int) string {
	var b strings.Builder
	for i := range quiz.TotalQuestions {
		fmt.Fprintf(&b, "%d\n\n", generated+i+2)
	}
	return b.String()
}

func run(t *testing.T, e *quiz.Engine, input string) string {
	t.Helper()
	var out bytes.Buffer
	r := NewRunner(e, strings.NewReader(input), &out, nil)
	require.NoError(t, r.Run(context.Background()))
	return out.String()
}

func TestRun_ShowsFirstQuestion(t *testing.T) {
	out := run(t, newTestEngine(), "")

	assert.Contains(t, out, "Easy quiz: numbers 1 to 10")
	assert.Contains(t, out, "[1/10]")
	assert.Contains(t, out, "1 + 1 = ?")
}

func TestRun_CorrectThenWrong(t *testing.T) {
	e := newTestEngine()
	out := run(t, e, "2\n\n5\n")

	assert.Contains(t, out, "✓ Correct! Great job!")
	assert.Contains(t, out, "✗ Wrong! The answer was 3")
	assert.Contains(t, out, "[2/10]")
	assert.Equal(t, 11, e.Status().Score)
	assert.Equal(t, quiz.PhaseAwaitingAdvance, e.Phase())
}

func TestRun_InvalidInputRetries(t *testing.T) {
	e := newTestEngine()
	out := run(t, e, "abc\n2\n")

	assert.Contains(t, out, "Please enter a valid number!")
	assert.Equal(t, quiz.ResultCorrect, e.LastResult().Kind)
}

func TestRun_FullSessionPrintsSummary(t *testing.T) {
	e := newTestEngine()
	out := run(t, e, fullSession(0)+"n\n")

	assert.Contains(t, out, "Quiz complete!")
	assert.Contains(t, out, "Final score:     155")
	assert.Contains(t, out, "Correct answers: 10/10")
	assert.Contains(t, out, "Accuracy:        100%")
	assert.Contains(t, out, "Best streak:     10")
	assert.Contains(t, out, "Play again? [y/N]")
	assert.Contains(t, out, "Bye!")
	assert.Equal(t, quiz.PhaseFinished, e.Phase())
}

func TestRun_PlayAgainResets(t *testing.T) {
	e := newTestEngine()
	// The second session's first question is "11 + 1".
	out := run(t, e, fullSession(0)+"y\n12\n")

	assert.Equal(t, 2, strings.Count(out, "Easy quiz"))
	assert.Contains(t, out, "11 + 1 = ?")
	assert.Equal(t, 11, e.Status().Score)
	assert.Equal(t, 0, e.Status().QuestionIndex)
}

func TestRun_Quit(t *testing.T) {
	e := newTestEngine()
	out := run(t, e, "q\n2\n")

	assert.Contains(t, out, "Bye!")
	assert.Equal(t, quiz.PhaseActive, e.Phase())
	assert.Equal(t, 0, e.Status().Score)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(newTestEngine(), strings.NewReader("2\n"), &bytes.Buffer{}, nil)
	err := r.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRun_WriteError(t *testing.T) {
	r := NewRunner(newTestEngine(), strings.NewReader("2\n"), failingWriter{}, nil)
	err := r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write output")
}
