package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/quiz"
	"github.com/abhisek/mathsprint/internal/ui/components"
	"github.com/abhisek/mathsprint/internal/ui/layout"
	"github.com/abhisek/mathsprint/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderCounters(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	answered := s.status.QuestionIndex
	if s.status.AwaitingAdvance {
		answered++
	}
	bar := components.NewProgressBar("Progress", float64(answered)/float64(s.status.TotalQuestions),
		s.status.Counter(), min(width-8, 60))
	b.WriteString(layout.Centered(width, lipgloss.NewStyle(), bar.View()))
	b.WriteString("\n\n\n")

	b.WriteString(layout.Centered(width, theme.Prompt, s.status.Prompt))
	b.WriteString("\n\n")

	if s.status.AwaitingAdvance {
		b.WriteString(s.renderFeedback(width))
	} else {
		b.WriteString(s.renderInput(width))
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}

// renderCounters renders the score line: difficulty on the left, counters
// on the right.
func (s *PlayScreen) renderCounters(width int) string {
	stat := func(label string, value any) string {
		return theme.StatLabel.Render(label+" ") + theme.StatValue.Render(fmt.Sprint(value))
	}

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + s.status.Difficulty.Label())

	right := strings.Join([]string{
		stat("Score", s.status.Score),
		stat("Streak", s.status.Streak),
		stat("Best", s.status.BestStreak),
		stat("Question", s.status.Counter()),
	}, "   ")

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (s *PlayScreen) renderInput(width int) string {
	var b strings.Builder
	b.WriteString(layout.Centered(width, lipgloss.NewStyle(), "Answer: "+s.input.View()))
	if s.feedback.Kind == quiz.ResultInvalidInput {
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(width, theme.Incorrect, s.feedback.Message()))
	}
	return b.String()
}

func (s *PlayScreen) renderFeedback(width int) string {
	style := theme.Incorrect
	if s.feedback.Kind == quiz.ResultCorrect {
		style = theme.Correct
	}

	var b strings.Builder
	b.WriteString(layout.Centered(width, style, s.feedback.Message()))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle(), components.NewButton(s.nextLabel(), true).View()))
	return b.String()
}
