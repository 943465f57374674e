// Package home implements the landing screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizbook/internal/attempts"
	"github.com/abhisek/quizbook/internal/bank"
	"github.com/abhisek/quizbook/internal/quiz"
	"github.com/abhisek/quizbook/internal/router"
	"github.com/abhisek/quizbook/internal/screen"
	"github.com/abhisek/quizbook/internal/screens/history"
	"github.com/abhisek/quizbook/internal/screens/placeholder"
	sessionscreen "github.com/abhisek/quizbook/internal/screens/session"
	"github.com/abhisek/quizbook/internal/store"
	"github.com/abhisek/quizbook/internal/ui/components"
	"github.com/abhisek/quizbook/internal/ui/layout"
	"github.com/abhisek/quizbook/internal/ui/theme"
)

// HomeScreen is the landing screen: bank overview and main menu.
type HomeScreen struct {
	bank      *bank.Bank
	eventRepo store.EventRepo
	recorder  *attempts.Recorder
	lc        *quiz.Lifecycle
	menu      components.Menu
	errMsg    string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. eventRepo and recorder may be nil, in which case
// history is unavailable and attempts are not recorded.
func New(b *bank.Bank, eventRepo store.EventRepo, recorder *attempts.Recorder) *HomeScreen {
	h := &HomeScreen{
		bank:      b,
		eventRepo: eventRepo,
		recorder:  recorder,
		lc:        b.NewLifecycle(),
	}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "Start quiz", Action: h.start},
		{Label: "History", Action: h.openHistory},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
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
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// Phase reports the lifecycle phase of the quiz owned by this screen.
func (h *HomeScreen) Phase() quiz.Phase {
	return h.lc.Phase()
}

// start begins a session. An abandoned in-progress quiz is discarded and a
// fresh lifecycle takes its place.
func (h *HomeScreen) start() tea.Cmd {
	if h.lc.Phase() != quiz.PhaseNotStarted {
		h.lc = h.bank.NewLifecycle()
	}
	if _, err := h.lc.Start(); err != nil {
		h.errMsg = err.Error()
		return nil
	}
	h.errMsg = ""
	s := sessionscreen.New(h.bank, h.lc, h.recorder)
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) openHistory() tea.Cmd {
	var next screen.Screen
	if h.eventRepo == nil {
		next = placeholder.New("History", "History needs a database.\nRun with --db to enable it.")
	} else {
		next = history.New(h.eventRepo)
	}
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height + 6)

	var sections []string
	if !compact {
		sections = append(sections, RenderBanner(width))
	}

	sections = append(sections, theme.Title.Render(h.bank.Title))

	chapters := h.bank.ChapterNumbers()
	sections = append(sections, theme.Subtitle.Render(
		fmt.Sprintf("%d questions across %d chapters", len(h.bank.Questions), len(chapters))))

	if !compact {
		counts := h.bank.CountByChapter()
		var rows []string
		for _, n := range chapters {
			rows = append(rows, fmt.Sprintf("Chapter %d: %-28s %2d", n, h.bank.ChapterName(n), counts[n]))
		}
		sections = append(sections, theme.Card.Render(theme.Body.Render(strings.Join(rows, "\n"))))
	}

	sections = append(sections, h.menu.View())

	if h.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render("Error: "+h.errMsg))
	}

	for i, s := range sections {
		sections[i] = layout.Center(width, strings.TrimRight(s, "\n"))
	}
	return "\n" + strings.Join(sections, "\n\n")
}
