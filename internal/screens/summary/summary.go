// Package summary implements the results screen shown after submitting.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbook/internal/bank"
	"github.com/abhisek/quizbook/internal/quiz"
	"github.com/abhisek/quizbook/internal/router"
	"github.com/abhisek/quizbook/internal/screen"
	"github.com/abhisek/quizbook/internal/screens/review"
	"github.com/abhisek/quizbook/internal/ui/components"
	"github.com/abhisek/quizbook/internal/ui/layout"
	"github.com/abhisek/quizbook/internal/ui/theme"
)

// SummaryScreen displays the score of a completed quiz.
type SummaryScreen struct {
	bank  *bank.Bank
	lc    *quiz.Lifecycle
	score quiz.Score
	menu  components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscapeHandler = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a lifecycle in the completed phase.
func New(b *bank.Bank, lc *quiz.Lifecycle) *SummaryScreen {
	s := &SummaryScreen{
		bank:  b,
		lc:    lc,
		score: lc.Session().Score(),
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Review answers", Action: s.openReview},
		{Label: "Restart", Action: s.restart},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) HandlesEscape() bool { return true }

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Restart"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && components.Keys.Back.Matches(kmsg) {
		return s, s.restart()
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) openReview() tea.Cmd {
	r := review.New(s.bank, s.lc.Session())
	return func() tea.Msg { return router.PushScreenMsg{Screen: r} }
}

// restart returns the lifecycle to not-started and goes back to the landing
// screen.
func (s *SummaryScreen) restart() tea.Cmd {
	s.lc.Restart()
	return func() tea.Msg { return router.PopToRootMsg{} }
}

func (s *SummaryScreen) View(width, height int) string {
	sc := s.score
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(layout.Center(width, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(sc.Grade.Icon()+"  Quiz complete")))
	b.WriteString("\n\n")

	b.WriteString(layout.Center(width, theme.Body.Render(
		fmt.Sprintf("%d / %d correct", sc.Correct, sc.Total))))
	b.WriteString("\n")
	b.WriteString(layout.Center(width, lipgloss.NewStyle().
		Foreground(theme.GradeColor(string(sc.Grade))).
		Bold(true).
		Render(fmt.Sprintf("%d%%  %s", sc.Percent, sc.Grade.Label()))))
	b.WriteString("\n\n")

	b.WriteString(layout.Center(width, theme.Hint.Render("By chapter")))
	b.WriteString("\n")
	b.WriteString(layout.Center(width, layout.Divider(width, 50)))
	b.WriteString("\n")
	b.WriteString(layout.Center(width, s.renderChapters(min(width-4, 50))))
	b.WriteString("\n\n")

	b.WriteString(layout.Center(width, s.menu.View()))
	return b.String()
}

// renderChapters lists every chapter, including those with no questions.
func (s *SummaryScreen) renderChapters(width int) string {
	var rows []string
	for _, c := range s.score.ChapterList() {
		name := fmt.Sprintf("Chapter %d: %s", c.Chapter, s.bank.ChapterName(c.Chapter))
		tally := fmt.Sprintf("%d/%d", c.Correct, c.Total)
		pad := max(width-lipgloss.Width(name)-lipgloss.Width(tally), 1)

		style := theme.Body
		switch {
		case c.Total == 0:
			style = theme.Disabled
		case c.Correct == c.Total:
			style = theme.Correct
		}
		rows = append(rows, style.Render(name+strings.Repeat(" ", pad)+tally))
	}
	return strings.Join(rows, "\n")
}
