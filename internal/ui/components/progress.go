package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbook/internal/quiz"
	"github.com/abhisek/quizbook/internal/ui/theme"
)

// AnswerTrack shows one cell per question, marking which are answered and
// where the learner is. Quizzes too long for the width collapse into a
// proportional bar.
type AnswerTrack struct {
	Answers []int // quiz.Unanswered for open questions
	Current int
	Width   int
}

// NewAnswerTrack creates a track for the given answer log.
func NewAnswerTrack(answers []int, current, width int) AnswerTrack {
	return AnswerTrack{Answers: answers, Current: current, Width: width}
}

// Answered returns the number of questions with a recorded answer.
func (t AnswerTrack) Answered() int {
	n := 0
	for _, a := range t.Answers {
		if a != quiz.Unanswered {
			n++
		}
	}
	return n
}

// View renders the track followed by an "answered/total" count.
func (t AnswerTrack) View() string {
	total := len(t.Answers)
	done := t.Answered()
	count := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d/%d", done, total))

	avail := max(t.Width-lipgloss.Width(count), 4)
	if total > 0 && 2*total-1 <= avail {
		return t.cells() + count
	}
	return t.bar(avail, done, total) + count
}

func (t AnswerTrack) cells() string {
	answered := lipgloss.NewStyle().Foreground(theme.Secondary)
	open := lipgloss.NewStyle().Foreground(theme.Border)
	here := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	parts := make([]string, len(t.Answers))
	for i, a := range t.Answers {
		glyph, style := "○", open
		if a != quiz.Unanswered {
			glyph, style = "●", answered
		}
		if i == t.Current {
			style = here
		}
		parts[i] = style.Render(glyph)
	}
	return strings.Join(parts, " ")
}

func (t AnswerTrack) bar(width, done, total int) string {
	filled := 0
	if total > 0 {
		filled = (width*done + total/2) / total
	}
	filled = min(max(filled, 0), width)

	return lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-filled))
}
