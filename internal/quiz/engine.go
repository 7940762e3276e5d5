package quiz

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/mathsprint/internal/problemgen"
)

// TotalQuestions is the fixed number of questions in a session.
const TotalQuestions = 10

// Points for a correct answer are BasePoints plus the streak after the
// answer is counted.
const BasePoints = 10

// Phase is the engine's position in the session state machine.
type Phase int

const (
	PhaseActive          Phase = iota // Question shown, waiting for an answer
	PhaseAwaitingAdvance              // Answer submitted, waiting for Advance
	PhaseFinished                     // All questions done, summary available
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseAwaitingAdvance:
		return "awaiting-advance"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Config holds the Engine's collaborators.
type Config struct {
	// Difficulty is the starting difficulty.
	Difficulty problemgen.Difficulty

	// Generator produces questions. Nil uses a time-seeded RandomGenerator.
	Generator problemgen.Generator

	// Display receives notifications. Nil uses NopDisplay.
	Display Display
}

// session is the mutable state of one run from reset to finish.
type session struct {
	id              string
	score           int
	streak          int
	bestStreak      int
	questionIndex   int
	correctCount    int
	difficulty      problemgen.Difficulty
	question        *problemgen.Question
	awaitingAdvance bool
	finished        bool
	lastResult      Result
}

// Engine owns one quiz session: it generates questions, scores answers,
// and reports changes to its Display.
//
// The Engine is not safe for concurrent use. Displays drive it from a
// single event loop.
type Engine struct {
	gen     problemgen.Generator
	display Display
	s       session
}

// NewEngine creates an Engine and starts the first session.
func NewEngine(cfg Config) *Engine {
	gen := cfg.Generator
	if gen == nil {
		gen = problemgen.NewRandomGenerator(nil)
	}
	display := cfg.Display
	if display == nil {
		display = NopDisplay{}
	}
	e := &Engine{
		gen:     gen,
		display: display,
		s:       session{difficulty: cfg.Difficulty},
	}
	e.Reset()
	return e
}

// SetDisplay replaces the Display. It does not emit a notification.
func (e *Engine) SetDisplay(d Display) {
	if d == nil {
		d = NopDisplay{}
	}
	e.display = d
}

// Configure sets the difficulty and starts a fresh session.
func (e *Engine) Configure(d problemgen.Difficulty) {
	e.s.difficulty = d
	e.Reset()
}

// Reset discards the current session and starts a new one at the current
// difficulty.
func (e *Engine) Reset() {
	e.s = session{
		id:         uuid.New().String(),
		difficulty: e.s.difficulty,
	}
	e.generateQuestion()
	e.display.SessionReset(e.Status())
}

// generateQuestion replaces the current question. Counters are untouched.
func (e *Engine) generateQuestion() {
	e.s.question = e.gen.Generate(e.s.difficulty)
}

// SubmitAnswer scores raw input against the current question.
//
// While an answer is already awaiting Advance, or once the session is
// finished, the call is a no-op and returns the previous result. Input that is not a finite number yields a
// ResultInvalidInput and leaves the session untouched so the learner can
// retry.
func (e *Engine) SubmitAnswer(raw string) Result {
	if e.s.awaitingAdvance || e.s.finished {
		return e.s.lastResult
	}

	value, err := problemgen.ParseAnswer(raw)
	if err != nil {
		r := Result{Kind: ResultInvalidInput, Err: err}
		e.display.InputRejected(r, e.Status())
		return r
	}

	q := e.s.question
	r := Result{Value: value, CorrectAnswer: q.Answer}
	if problemgen.CheckAnswer(value, q) {
		e.s.streak++
		e.s.correctCount++
		e.s.score += BasePoints + e.s.streak
		if e.s.streak > e.s.bestStreak {
			e.s.bestStreak = e.s.streak
		}
		r.Kind = ResultCorrect
	} else {
		e.s.streak = 0
		r.Kind = ResultWrong
	}

	e.s.awaitingAdvance = true
	e.s.lastResult = r
	e.display.AnswerScored(r, e.Status())
	return r
}

// Advance moves past the current question. After the last question it
// finishes the session and returns the summary; calling it again once
// finished returns the same summary without moving.
func (e *Engine) Advance() AdvanceOutcome {
	if e.s.finished {
		sum := e.Summary()
		return AdvanceOutcome{Finished: true, Summary: &sum}
	}

	e.s.questionIndex++
	if e.s.questionIndex >= TotalQuestions {
		e.s.questionIndex = TotalQuestions
		e.s.finished = true
		sum := e.Summary()
		e.display.SessionFinished(sum)
		return AdvanceOutcome{Finished: true, Summary: &sum}
	}

	e.s.awaitingAdvance = false
	e.s.lastResult = Result{}
	e.generateQuestion()
	st := e.Status()
	e.display.QuestionShown(st)
	return AdvanceOutcome{Prompt: st.Prompt}
}

// Summary returns the session figures. It is meaningful at any time but
// is what Advance reports once the session is finished.
func (e *Engine) Summary() Summary {
	return Summary{
		SessionID:       e.s.id,
		FinalScore:      e.s.score,
		CorrectCount:    e.s.correctCount,
		TotalQuestions:  TotalQuestions,
		AccuracyPercent: AccuracyPercent(e.s.correctCount, TotalQuestions),
		BestStreak:      e.s.bestStreak,
		Difficulty:      e.s.difficulty,
	}
}

// Phase returns the current state machine phase.
func (e *Engine) Phase() Phase {
	switch {
	case e.s.finished:
		return PhaseFinished
	case e.s.awaitingAdvance:
		return PhaseAwaitingAdvance
	default:
		return PhaseActive
	}
}

// Difficulty returns the current difficulty.
func (e *Engine) Difficulty() problemgen.Difficulty {
	return e.s.difficulty
}

// CurrentQuestion returns a copy of the live question.
func (e *Engine) CurrentQuestion() problemgen.Question {
	return *e.s.question
}

// LastResult returns the result of the last scored submission in the
// current question, or a ResultNone result.
func (e *Engine) LastResult() Result {
	return e.s.lastResult
}

// Status returns the display state.
func (e *Engine) Status() Status {
	return Status{
		SessionID:       e.s.id,
		Prompt:          e.s.question.Text,
		Score:           e.s.score,
		Streak:          e.s.streak,
		BestStreak:      e.s.bestStreak,
		QuestionIndex:   e.s.questionIndex,
		CorrectCount:    e.s.correctCount,
		TotalQuestions:  TotalQuestions,
		Difficulty:      e.s.difficulty,
		Phase:           e.Phase(),
		AwaitingAdvance: e.s.awaitingAdvance,
	}
}

// Status is a read-only view of the session for rendering.
type Status struct {
	SessionID       string
	Prompt          string
	Score           int
	Streak          int
	BestStreak      int
	QuestionIndex   int
	CorrectCount    int
	TotalQuestions  int
	Difficulty      problemgen.Difficulty
	Phase           Phase
	AwaitingAdvance bool
}

// QuestionNumber is the 1-based number of the current question, clamped to
// the total once the session is finished.
func (s Status) QuestionNumber() int {
	return min(s.QuestionIndex+1, s.TotalQuestions)
}

// Counter renders the question counter, e.g. "3/10".
func (s Status) Counter() string {
	return fmt.Sprintf("%d/%d", s.QuestionNumber(), s.TotalQuestions)
}
