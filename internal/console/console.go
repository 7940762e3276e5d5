// Package console runs a quiz over plain line-oriented text, for terminals
// and pipes where the full-screen UI is not wanted.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/mathsprint/internal/quiz"
)

// Runner drives an Engine from an input stream and writes to an output
// stream. It is the engine's Display while Run is active.
type Runner struct {
	engine *quiz.Engine
	log    *zap.Logger
	in     *bufio.Scanner
	out    io.Writer

	// writeErr is the first failed write; Run reports it.
	writeErr error
}

var _ quiz.Display = (*Runner)(nil)

// NewRunner creates a Runner. A nil logger discards logs.
func NewRunner(engine *quiz.Engine, in io.Reader, out io.Writer, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		engine: engine,
		log:    log,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run plays sessions until the input ends, the learner quits, or ctx is
// cancelled. End of input is a clean exit.
func (r *Runner) Run(ctx context.Context) error {
	r.engine.SetDisplay(quiz.WithLogging(r, r.log))
	defer r.engine.SetDisplay(nil)

	r.printf("MathSprint: %d questions. Type q to quit.\n", quiz.TotalQuestions)
	r.showSession(r.engine.Status())

	askingReplay := false
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.writeErr != nil {
			return fmt.Errorf("write output: %w", r.writeErr)
		}

		if !r.in.Scan() {
			r.printf("\n")
			if err := r.in.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		}
		line := strings.TrimSpace(r.in.Text())

		if isQuit(line) {
			r.printf("Bye!\n")
			return nil
		}

		switch {
		case askingReplay:
			if !isYes(line) {
				r.printf("Bye!\n")
				return nil
			}
			askingReplay = false
			r.engine.Reset()

		case r.engine.Phase() == quiz.PhaseActive:
			r.engine.SubmitAnswer(line)

		default:
			if out := r.engine.Advance(); out.Finished {
				r.printf("Play again? [y/N] ")
				askingReplay = true
			}
		}
	}
}

func isQuit(line string) bool {
	switch strings.ToLower(line) {
	case "q", "quit":
		return true
	}
	return false
}

func isYes(line string) bool {
	switch strings.ToLower(line) {
	case "y", "yes":
		return true
	}
	return false
}

func (r *Runner) printf(format string, args ...any) {
	if r.writeErr != nil {
		return
	}
	_, r.writeErr = fmt.Fprintf(r.out, format, args...)
}

func (r *Runner) showSession(st quiz.Status) {
	rng := st.Difficulty.Range()
	r.printf("\n== %s quiz: numbers %d to %d ==\n", st.Difficulty.Label(), rng.Min, rng.Max)
	r.showQuestion(st)
}

func (r *Runner) showQuestion(st quiz.Status) {
	r.printf("\n[%s] Score %d  Streak %d\n  %s\n> ", st.Counter(), st.Score, st.Streak, st.Prompt)
}

// SessionReset implements quiz.Display.
func (r *Runner) SessionReset(st quiz.Status) {
	r.showSession(st)
}

// QuestionShown implements quiz.Display.
func (r *Runner) QuestionShown(st quiz.Status) {
	r.showQuestion(st)
}

// AnswerScored implements quiz.Display.
func (r *Runner) AnswerScored(res quiz.Result, st quiz.Status) {
	next := "next question"
	if st.QuestionIndex+1 >= st.TotalQuestions {
		next = "your results"
	}
	r.printf("%s\nScore %d  Streak %d\nPress Enter for %s. ", res.Message(), st.Score, st.Streak, next)
}

// InputRejected implements quiz.Display.
func (r *Runner) InputRejected(res quiz.Result, _ quiz.Status) {
	r.printf("%s\n> ", res.Message())
}

// SessionFinished implements quiz.Display.
func (r *Runner) SessionFinished(sum quiz.Summary) {
	r.printf("\n== Quiz complete! ==\n")
	r.printf("Final score:     %d\n", sum.FinalScore)
	r.printf("Correct answers: %d/%d\n", sum.CorrectCount, sum.TotalQuestions)
	r.printf("Accuracy:        %d%%\n", sum.AccuracyPercent)
	r.printf("Best streak:     %d\n", sum.BestStreak)
}
