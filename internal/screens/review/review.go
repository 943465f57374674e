// Package review implements the scrollable answer review screen.
package review

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbook/internal/bank"
	"github.com/abhisek/quizbook/internal/quiz"
	"github.com/abhisek/quizbook/internal/screen"
	"github.com/abhisek/quizbook/internal/ui/layout"
	"github.com/abhisek/quizbook/internal/ui/theme"
)

// ReviewScreen lists every question with the learner's pick, the correct
// option and the explanation.
type ReviewScreen struct {
	bank     *bank.Bank
	outcomes []quiz.Outcome
	vp       viewport.Model
	width    int
	height   int
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen for sess.
func New(b *bank.Bank, sess *quiz.Session) *ReviewScreen {
	return &ReviewScreen{
		bank:     b,
		outcomes: sess.Outcomes(),
		vp:       viewport.New(),
	}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "PgUp/PgDn", Description: "Page"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *ReviewScreen) View(width, height int) string {
	if width != s.width || height != s.height {
		s.resize(width, height)
	}
	return layout.Center(width, s.vp.View())
}

// resize re-wraps the content for a new content area.
func (s *ReviewScreen) resize(width, height int) {
	s.width, s.height = width, height
	body := min(width-4, 76)
	s.vp.SetWidth(body)
	s.vp.SetHeight(max(height-1, 1))
	s.vp.SetContent(Render(s.bank, s.outcomes, body))
}

// Render formats outcomes as review cards wrapped to width.
func Render(b *bank.Bank, outcomes []quiz.Outcome, width int) string {
	var out strings.Builder
	wrap := lipgloss.NewStyle().Width(width)

	for _, o := range outcomes {
		status := theme.Incorrect.Render("✗ Wrong")
		switch {
		case o.IsCorrect:
			status = theme.Correct.Render("✓ Correct")
		case !o.Answered():
			status = theme.Disabled.Render("– Unanswered")
		}

		header := theme.Hint.Render(fmt.Sprintf("Question %d (Chapter %d: %s)",
			o.Index+1, o.Chapter, b.ChapterName(o.Chapter)))
		out.WriteString(header + "  " + status + "\n")
		out.WriteString(wrap.Inherit(theme.Body).Bold(true).Render(o.Question))
		out.WriteString("\n")

		for j, opt := range o.Options {
			line := fmt.Sprintf("  %s. %s", quiz.OptionLabel(j), opt)
			style := theme.Disabled
			switch {
			case j == o.Correct:
				line += "  ✓"
				if j == o.UserOption {
					line += " (your answer)"
				}
				style = theme.Correct
			case j == o.UserOption:
				line += "  (your answer)"
				style = theme.Incorrect
			}
			out.WriteString(wrap.Inherit(style).Render(line))
			out.WriteString("\n")
		}

		out.WriteString(theme.Explanation.Width(width).Render(o.Explanation))
		out.WriteString("\n\n")
	}
	return strings.TrimRight(out.String(), "\n")
}
