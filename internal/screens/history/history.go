// Package history implements the screen listing recorded attempts.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbook/internal/router"
	"github.com/abhisek/quizbook/internal/screen"
	"github.com/abhisek/quizbook/internal/store"
	"github.com/abhisek/quizbook/internal/ui/components"
	"github.com/abhisek/quizbook/internal/ui/layout"
	"github.com/abhisek/quizbook/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	Attempts []store.AttemptRecord
	Summary  store.AttemptSummary
	Err      error
}

// HistoryScreen displays past attempts, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	attempts  []store.AttemptRecord
	summary   store.AttemptSummary
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		list, err := s.eventRepo.QueryAttempts(ctx, store.QueryOpts{Limit: pageSize})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		sum, err := s.eventRepo.AttemptSummary(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Attempts: list, Summary: sum}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Chapters"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
			s.summary = msg.Summary
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		keys := components.Keys
		switch {
		case keys.Back.Matches(msg):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case keys.Up.Matches(msg):
			if s.selected > 0 {
				s.selected--
			}
		case keys.Down.Matches(msg):
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
		case keys.Select.Matches(msg):
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Take a quiz!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Center(width, theme.Subtitle.Render(fmt.Sprintf(
		"%d attempts   best %d%%   average %.0f%%",
		s.summary.Attempts, s.summary.BestPercent, s.summary.AvgPercent))))
	b.WriteString("\n")
	b.WriteString(layout.Center(width, layout.Divider(width, 70)))
	b.WriteString("\n")

	// Keep the selected row on screen.
	visible := max(height-4, 1)
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}

	lines := 0
	for i := start; i < len(s.attempts) && lines < visible; i++ {
		a := s.attempts[i]
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s  %-20s %3d/%-3d %3d%%  %-9s %s",
			prefix,
			a.Timestamp.Local().Format("Jan 02 15:04"),
			truncate(a.BankTitle, 20),
			a.Correct, a.Total, a.Percent, a.Grade,
			formatDuration(a.DurationMs))
		b.WriteString(layout.Center(width, style.Render(line)))
		b.WriteString("\n")
		lines++

		if s.expanded[i] {
			for _, c := range a.Chapters {
				detail := fmt.Sprintf("      Chapter %d   %d/%d", c.Chapter, c.Correct, c.Total)
				b.WriteString(layout.Center(width, theme.Hint.Render(detail)))
				b.WriteString("\n")
				lines++
			}
		}
	}

	return b.String()
}

func formatDuration(ms int64) string {
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
