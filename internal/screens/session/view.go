package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbook/internal/ui/components"
	"github.com/abhisek/quizbook/internal/ui/layout"
	"github.com/abhisek/quizbook/internal/ui/theme"
)

const maxBodyWidth = 72

func (s *SessionScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	return s.renderQuestionView(width, height)
}

// renderQuestionView renders the progress header, the question, its options
// and, once answered, the explanation and navigation row.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	sess := s.sess
	i := sess.CurrentIndex()
	q := sess.Current()
	body := min(width-4, maxBodyWidth)
	gap := "\n\n"
	if layout.IsCompactHeight(height) {
		gap = "\n"
	}

	var b strings.Builder

	// Chapter and position line.
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Chapter %d: %s", q.Chapter, s.bank.ChapterName(q.Chapter)))
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d/%d", i+1, sess.Len()))
	pad := max(body-lipgloss.Width(left)-lipgloss.Width(right), 1)
	b.WriteString(layout.Center(width, left+strings.Repeat(" ", pad)+right))
	b.WriteString("\n")
	b.WriteString(layout.Center(width, components.NewAnswerTrack(sess.State().Answers, i, body).View()))
	b.WriteString(gap)

	// Question.
	b.WriteString(layout.Center(width, lipgloss.NewStyle().
		Width(body).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%d. %s", i+1, q.Text))))
	b.WriteString(gap)

	// Options.
	b.WriteString(layout.Center(width, s.choice.View(body)))

	// Result and explanation.
	if s.choice.Locked() {
		b.WriteString("\n")
		verdict := theme.Incorrect.Render("✗ Not quite")
		if s.choice.IsCorrect() {
			verdict = theme.Correct.Render("✓ Correct!")
		}
		b.WriteString(layout.Center(width, lipgloss.NewStyle().Width(body).Render(verdict)))
		b.WriteString("\n")
		b.WriteString(layout.Center(width, theme.Explanation.
			Width(body).
			Render(q.Explanation)))
	}
	b.WriteString(gap)

	// Navigation row.
	nav := sess.Navigation()
	prev := components.NewButton("◂ Previous", nav.Previous)
	next := components.NewButton("Next ▸", nav.Next)
	var submit components.Button
	if nav.Submit {
		submit = components.NewButton("Submit ✓", true)
	}
	b.WriteString(layout.Center(width, components.ButtonRow(prev, next, submit)))

	return b.String()
}

func renderQuitConfirm(width, height int) string {
	box := theme.Card.Render(
		theme.Body.Bold(true).Render("Abandon this quiz?") + "\n\n" +
			theme.Hint.Render("Your answers will not be saved.") + "\n\n" +
			theme.Selected.Render("Y") + " yes    " + theme.Selected.Render("N") + " no",
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
