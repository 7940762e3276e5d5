package play

import (
	tea "charm.land/bubbletea/v2"

	"go.uber.org/zap"

	"github.com/abhisek/mathsprint/internal/quiz"
	"github.com/abhisek/mathsprint/internal/router"
	"github.com/abhisek/mathsprint/internal/screen"
	"github.com/abhisek/mathsprint/internal/screens/summary"
	"github.com/abhisek/mathsprint/internal/ui/components"
	"github.com/abhisek/mathsprint/internal/ui/layout"
)

// answerCharLimit caps the input; no operand or answer comes close.
const answerCharLimit = 12

// PlayScreen runs a quiz session in the terminal UI. It is the engine's
// Display while it is on screen.
type PlayScreen struct {
	engine *quiz.Engine
	log    *zap.Logger
	input  components.TextInput

	status   quiz.Status
	feedback quiz.Result
	summary  *quiz.Summary
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ quiz.Display = (*PlayScreen)(nil)

// New creates a PlayScreen bound to engine. The engine's current session is
// shown as-is; callers Reset it first for a fresh run.
func New(engine *quiz.Engine, log *zap.Logger) *PlayScreen {
	if log == nil {
		log = zap.NewNop()
	}
	s := &PlayScreen{
		engine: engine,
		log:    log,
		input:  components.NewTextInput("Type your answer...", true, answerCharLimit),
		status: engine.Status(),
	}
	if s.status.AwaitingAdvance {
		s.feedback = engine.LastResult()
	}
	engine.SetDisplay(quiz.WithLogging(s, log))
	return s
}

func (s *PlayScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *PlayScreen) Title() string {
	return "Quiz"
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.status.AwaitingAdvance {
		return []layout.KeyHint{
			{Key: "Enter", Description: s.nextLabel()},
			{Key: "Tab", Description: "Difficulty"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Tab", Description: "Difficulty"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			if s.status.AwaitingAdvance {
				return s.handleAdvance()
			}
			s.engine.SubmitAnswer(s.input.Value())
			return s, nil
		case "tab":
			s.engine.Configure(s.status.Difficulty.Next())
			return s, nil
		}
	}

	// The input only takes keys while a question is open.
	if s.status.AwaitingAdvance {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PlayScreen) handleAdvance() (screen.Screen, tea.Cmd) {
	out := s.engine.Advance()
	if !out.Finished {
		return s, nil
	}

	engine, log := s.engine, s.log
	results := summary.New(*out.Summary, func() screen.Screen {
		engine.Reset()
		return New(engine, log)
	})
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: results} }
}

// nextLabel is the caption of the button shown under feedback.
func (s *PlayScreen) nextLabel() string {
	if s.status.QuestionIndex+1 >= s.status.TotalQuestions {
		return "See results"
	}
	return "Next question"
}

// SessionReset implements quiz.Display.
func (s *PlayScreen) SessionReset(st quiz.Status) {
	s.status = st
	s.feedback = quiz.Result{}
	s.summary = nil
	s.input.Reset()
}

// QuestionShown implements quiz.Display.
func (s *PlayScreen) QuestionShown(st quiz.Status) {
	s.status = st
	s.feedback = quiz.Result{}
	s.input.Reset()
}

// AnswerScored implements quiz.Display.
func (s *PlayScreen) AnswerScored(r quiz.Result, st quiz.Status) {
	s.status = st
	s.feedback = r
}

// InputRejected implements quiz.Display. The typed text stays so it can
// be corrected.
func (s *PlayScreen) InputRejected(r quiz.Result, st quiz.Status) {
	s.status = st
	s.feedback = r
}

// SessionFinished implements quiz.Display.
func (s *PlayScreen) SessionFinished(sum quiz.Summary) {
	s.summary = &sum
	s.status = s.engine.Status()
}
