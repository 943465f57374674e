// Package session implements the screen that runs a quiz session.
package session

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizbook/internal/attempts"
	"github.com/abhisek/quizbook/internal/bank"
	"github.com/abhisek/quizbook/internal/quiz"
	"github.com/abhisek/quizbook/internal/router"
	"github.com/abhisek/quizbook/internal/screen"
	"github.com/abhisek/quizbook/internal/screens/summary"
	"github.com/abhisek/quizbook/internal/ui/components"
	"github.com/abhisek/quizbook/internal/ui/layout"
)

// SessionScreen implements screen.Screen for an in-progress quiz.
type SessionScreen struct {
	bank     *bank.Bank
	lc       *quiz.Lifecycle
	sess     *quiz.Session
	recorder *attempts.Recorder
	attempt  attempts.Attempt

	choice             components.MultiChoice
	showingQuitConfirm bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.EscapeHandler = (*SessionScreen)(nil)

// New creates a SessionScreen over a lifecycle that has already been
// started. recorder may be nil.
func New(b *bank.Bank, lc *quiz.Lifecycle, recorder *attempts.Recorder) *SessionScreen {
	if recorder == nil {
		recorder = attempts.NewRecorder(nil, nil)
	}
	s := &SessionScreen{
		bank:     b,
		lc:       lc,
		sess:     lc.Session(),
		recorder: recorder,
		attempt:  attempts.NewAttempt(b.Title, attempts.SourceTUI),
	}
	s.syncChoice()
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	return nil
}

func (s *SessionScreen) Title() string {
	return "Quiz"
}

func (s *SessionScreen) HandlesEscape() bool { return true }

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}

	hints := []layout.KeyHint{}
	if !s.choice.Locked() {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓ Enter", Description: "Answer"},
			layout.KeyHint{Key: "1-4/A-D", Description: "Answer"},
		)
	}
	hints = append(hints, layout.KeyHint{Key: "←→", Description: "Move"})
	if s.sess.Navigation().Submit {
		hints = append(hints, layout.KeyHint{Key: "S", Description: "Submit"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	case attemptRecordedMsg:
		return s, nil
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	keys := components.Keys

	if s.showingQuitConfirm {
		switch {
		case keys.Confirm.Matches(msg):
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case keys.Cancel.Matches(msg):
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	switch {
	case keys.Back.Matches(msg):
		s.showingQuitConfirm = true
		return s, nil
	case keys.Previous.Matches(msg):
		s.sess.Previous()
		s.syncChoice()
		return s, nil
	case keys.Next.Matches(msg):
		s.sess.Next()
		s.syncChoice()
		return s, nil
	case keys.Submit.Matches(msg):
		return s.submit()
	case keys.Select.Matches(msg):
		if s.choice.Locked() {
			// Enter on an answered question moves on.
			s.sess.Next()
			s.syncChoice()
			return s, nil
		}
		s.answer(s.choice.Cursor)
		return s, nil
	}

	if opt, ok := components.OptionKey(msg); ok {
		s.answer(opt)
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

func (s *SessionScreen) answer(option int) {
	s.sess.Answer(option)
	s.syncChoice()
}

// submit seals the session when the core allows it, records the attempt in
// the background and replaces this screen with the results.
func (s *SessionScreen) submit() (screen.Screen, tea.Cmd) {
	if !s.sess.Navigation().Submit || !s.lc.Submit() {
		return s, nil
	}

	sess, attempt, rec := s.sess, s.attempt, s.recorder
	record := func() tea.Msg {
		return attemptRecordedMsg{Err: rec.Record(context.Background(), attempt, sess)}
	}
	results := summary.New(s.bank, s.lc)
	return s, tea.Batch(record, func() tea.Msg { return router.ReplaceScreenMsg{Screen: results} })
}

// syncChoice rebuilds the option list for the current question.
func (s *SessionScreen) syncChoice() {
	q := s.sess.Current()
	chosen, _ := s.sess.AnswerAt(s.sess.CurrentIndex())
	s.choice = components.NewMultiChoice(q.Options, q.Answer, chosen)
}
