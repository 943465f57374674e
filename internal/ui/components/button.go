package components

import (
	"strings"

	"github.com/abhisek/quizbook/internal/ui/theme"
)

// Button is a styled, view-only button. Key handling stays with the screen
// that owns the action.
type Button struct {
	Label  string
	Active bool
}

// NewButton creates a new button.
func NewButton(label string, active bool) Button {
	return Button{Label: label, Active: active}
}

// View renders the button.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render(b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}

// ButtonRow renders buttons side by side, skipping empty labels.
func ButtonRow(buttons ...Button) string {
	var parts []string
	for _, b := range buttons {
		if b.Label == "" {
			continue
		}
		parts = append(parts, b.View())
	}
	return strings.Join(parts, "  ")
}
