// Package components holds reusable TUI widgets.
package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbook/internal/quiz"
	"github.com/abhisek/quizbook/internal/ui/theme"
)

// MultiChoice renders a question's options labelled A-D. Before an answer
// is recorded the cursor highlights one option; afterwards the options are
// locked, the correct option is marked and a wrong pick is flagged.
type MultiChoice struct {
	Options      []string
	CorrectIndex int
	Cursor       int
	ChosenIndex  int // quiz.Unanswered until answered
}

// NewMultiChoice creates a multiple-choice component. chosen is the
// recorded answer or quiz.Unanswered.
func NewMultiChoice(options []string, correctIndex, chosen int) MultiChoice {
	cursor := 0
	if chosen != quiz.Unanswered {
		cursor = chosen
	}
	return MultiChoice{
		Options:      options,
		CorrectIndex: correctIndex,
		Cursor:       cursor,
		ChosenIndex:  chosen,
	}
}

// Locked reports whether an answer has been recorded.
func (m MultiChoice) Locked() bool {
	return m.ChosenIndex != quiz.Unanswered
}

// Update moves the cursor. Selection is left to the owning screen.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || m.Locked() {
		return m, nil
	}

	switch {
	case Keys.Up.Matches(kmsg):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case Keys.Down.Matches(kmsg):
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	}
	return m, nil
}

// View renders the option list, wrapping long options to width.
func (m MultiChoice) View(width int) string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if !m.Locked() && i == m.Cursor {
			prefix = "▸ "
		}

		mark := ""
		if m.Locked() {
			switch {
			case i == m.CorrectIndex:
				mark = "  ✓"
			case i == m.ChosenIndex:
				mark = "  ✗"
			}
		}

		line := fmt.Sprintf("%s%s)  %s%s", prefix, quiz.OptionLabel(i), opt, mark)
		style := m.style(i)
		if width > 0 {
			style = style.Width(width)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m MultiChoice) style(i int) lipgloss.Style {
	if m.Locked() {
		switch {
		case i == m.CorrectIndex:
			return theme.Correct
		case i == m.ChosenIndex:
			return theme.Incorrect
		default:
			return theme.Disabled
		}
	}
	if i == m.Cursor {
		return theme.Selected
	}
	return theme.Unselected
}

// IsCorrect returns true if the recorded answer is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Locked() && m.ChosenIndex == m.CorrectIndex
}
