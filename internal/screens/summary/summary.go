package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/quiz"
	"github.com/abhisek/mathsprint/internal/router"
	"github.com/abhisek/mathsprint/internal/screen"
	"github.com/abhisek/mathsprint/internal/ui/components"
	"github.com/abhisek/mathsprint/internal/ui/layout"
	"github.com/abhisek/mathsprint/internal/ui/theme"
)

// SummaryScreen displays the figures of a finished session.
type SummaryScreen struct {
	summary   quiz.Summary
	playAgain func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. playAgain builds the screen that
// replaces this one on Enter; nil disables play-again.
func New(summary quiz.Summary, playAgain func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, playAgain: playAgain}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Home"},
	}
}

// Update handles Enter. Esc is handled by the app, which pops back home.
func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || kmsg.String() != "enter" || s.playAgain == nil {
		return s, nil
	}
	next := s.playAgain()
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	b.WriteString(layout.Centered(width, theme.Title, "Quiz complete!"))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, theme.Subtitle, sum.Difficulty.Label()+" difficulty"))
	b.WriteString("\n\n")

	rows := []struct{ label, value string }{
		{"Final score", fmt.Sprint(sum.FinalScore)},
		{"Correct answers", fmt.Sprintf("%d/%d", sum.CorrectCount, sum.TotalQuestions)},
		{"Accuracy", components.PercentCaption(sum.AccuracyPercent)},
		{"Best streak", fmt.Sprint(sum.BestStreak)},
	}
	var lines []string
	for _, r := range rows {
		label := theme.StatLabel.Width(18).Render(r.label)
		lines = append(lines, label+theme.StatValue.Render(r.value))
	}
	card := theme.Card.Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Accuracy", float64(sum.AccuracyPercent)/100,
		components.PercentCaption(sum.AccuracyPercent), min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	if s.playAgain != nil {
		btn := components.NewButton("Play again", true)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, btn.View()))
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}
