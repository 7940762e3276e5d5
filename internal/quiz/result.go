package quiz

import (
	"fmt"

	"github.com/abhisek/mathsprint/internal/problemgen"
)

// ErrInvalidInput is returned in Result.Err when the answer is not a number.
var ErrInvalidInput = problemgen.ErrInvalidInput

// ResultKind classifies a submission.
type ResultKind int

const (
	ResultNone ResultKind = iota // nothing submitted yet
	ResultCorrect
	ResultWrong
	ResultInvalidInput
)

func (k ResultKind) String() string {
	switch k {
	case ResultCorrect:
		return "correct"
	case ResultWrong:
		return "wrong"
	case ResultInvalidInput:
		return "invalid-input"
	default:
		return "none"
	}
}

// Result is the outcome of SubmitAnswer.
type Result struct {
	Kind ResultKind

	// Value is the parsed answer. Zero for invalid input.
	Value float64

	// CorrectAnswer is the current question's answer, set for scored results.
	CorrectAnswer float64

	// Err wraps ErrInvalidInput when Kind is ResultInvalidInput.
	Err error
}

// Scored reports whether the result counted towards the session.
func (r Result) Scored() bool {
	return r.Kind == ResultCorrect || r.Kind == ResultWrong
}

// Message returns the feedback line shown to the learner.
func (r Result) Message() string {
	switch r.Kind {
	case ResultCorrect:
		return "✓ Correct! Great job!"
	case ResultWrong:
		return fmt.Sprintf("✗ Wrong! The answer was %s", problemgen.FormatNumber(r.CorrectAnswer))
	case ResultInvalidInput:
		return "Please enter a valid number!"
	default:
		return ""
	}
}

// AdvanceOutcome is returned by Advance: either the next prompt or the
// end-of-session summary.
type AdvanceOutcome struct {
	Finished bool
	Prompt   string
	Summary  *Summary
}

// Summary holds the end-of-session figures.
type Summary struct {
	SessionID       string
	FinalScore      int
	CorrectCount    int
	TotalQuestions  int
	AccuracyPercent int
	BestStreak      int
	Difficulty      problemgen.Difficulty
}

// AccuracyPercent returns 100*correct/total rounded half up.
// Zero total yields 0.
func AccuracyPercent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*correct + total) / (2 * total)
}
