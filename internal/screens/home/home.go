package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsprint/internal/problemgen"
	"github.com/abhisek/mathsprint/internal/quiz"
	"github.com/abhisek/mathsprint/internal/router"
	"github.com/abhisek/mathsprint/internal/screen"
	"github.com/abhisek/mathsprint/internal/screens/play"
	"github.com/abhisek/mathsprint/internal/ui/components"
	"github.com/abhisek/mathsprint/internal/ui/layout"

	"go.uber.org/zap"
)

// Menu rows. Difficulties come first, in AllDifficulties order.
const (
	labelStart = "START QUIZ"
	labelExit  = "EXIT"
)

// difficultyChosenMsg is emitted when a difficulty row is activated.
type difficultyChosenMsg struct {
	difficulty problemgen.Difficulty
}

// startQuizMsg is emitted when START QUIZ is activated.
type startQuizMsg struct{}

// HomeScreen lets the learner pick a difficulty and start a quiz.
type HomeScreen struct {
	engine *quiz.Engine
	log    *zap.Logger
	menu   components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. The cursor starts on START QUIZ.
func New(engine *quiz.Engine, log *zap.Logger) *HomeScreen {
	if log == nil {
		log = zap.NewNop()
	}

	var items []components.MenuItem
	for _, d := range problemgen.AllDifficulties {
		items = append(items, components.MenuItem{
			Label: strings.ToUpper(d.Label()),
			Action: func() tea.Cmd {
				return func() tea.Msg { return difficultyChosenMsg{difficulty: d} }
			},
		})
	}
	items = append(items,
		components.MenuItem{Label: labelStart, Action: func() tea.Cmd {
			return func() tea.Msg { return startQuizMsg{} }
		}},
		components.MenuItem{Label: labelExit, Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h := &HomeScreen{
		engine: engine,
		log:    log,
		menu:   components.NewMenu(items),
	}
	h.menu.Selected = len(problemgen.AllDifficulties)
	h.refreshBadges()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case difficultyChosenMsg:
		h.engine.Configure(msg.difficulty)
		h.refreshBadges()
		return h, nil

	case startQuizMsg:
		h.engine.Reset()
		qs := play.New(h.engine, h.log)
		return h, func() tea.Msg { return router.PushScreenMsg{Screen: qs} }
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// refreshBadges puts a check mark on the engine's current difficulty.
func (h *HomeScreen) refreshBadges() {
	current := h.engine.Difficulty()
	for i, d := range problemgen.AllDifficulties {
		h.menu.Items[i].Badge = ""
		if d == current {
			h.menu.Items[i].Badge = "✓"
		}
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer.
	compact := height+8 < 30 || width < 80
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderRangeBar(h.engine.Difficulty(), cw),
		renderArcadeMenu(h.menu.Items, h.menu.Selected, cw),
	}

	return renderCabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
