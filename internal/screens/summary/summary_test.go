package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizbook/internal/bank"
	"github.com/abhisek/quizbook/internal/quiz"
	"github.com/abhisek/quizbook/internal/router"
	"github.com/abhisek/quizbook/internal/screens/review"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// completed returns a bank with an empty third chapter and a lifecycle
// submitted with one of two answers correct.
func completed(t *testing.T) (*bank.Bank, *quiz.Lifecycle) {
	t.Helper()
	opts := []string{"w", "x", "y", "z"}
	b := &bank.Bank{
		Title: "Test",
		Chapters: []bank.Chapter{
			{Number: 1, Name: "One"}, {Number: 2, Name: "Two"}, {Number: 3, Name: "Three"},
		},
		Questions: []quiz.Question{
			{Chapter: 1, Text: "a?", Options: opts, Answer: 0, Explanation: "e"},
			{Chapter: 2, Text: "b?", Options: opts, Answer: 1, Explanation: "e"},
		},
	}
	lc := b.NewLifecycle()
	s, err := lc.Start()
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	s.Answer(0)
	s.Next()
	s.Answer(3)
	if !lc.Submit() {
		t.Fatal("submit failed")
	}
	return b, lc
}

func TestSummaryScreen_View(t *testing.T) {
	b, lc := completed(t)
	view := New(b, lc).View(80, 30)

	for _, want := range []string{
		"1 / 2 correct",
		"50%",
		"Chapter 1: One",
		"Chapter 2: Two",
		"Chapter 3: Three",
		"0/0",
		"Review answers",
		"Restart",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_RestartReturnsHome(t *testing.T) {
	b, lc := completed(t)
	s := New(b, lc)

	s.Update(specialKey(tea.KeyDown))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("restart should pop to the landing screen")
	}
	if lc.Phase() != quiz.PhaseNotStarted {
		t.Errorf("Phase = %v, want not_started", lc.Phase())
	}
	if lc.Session() != nil {
		t.Error("restart should discard the session")
	}
}

func TestSummaryScreen_EscapeRestarts(t *testing.T) {
	b, lc := completed(t)
	_, cmd := New(b, lc).Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg")
	}
	if lc.Phase() != quiz.PhaseNotStarted {
		t.Errorf("Phase = %v, want not_started", lc.Phase())
	}
}

func TestSummaryScreen_ReviewPushesScreen(t *testing.T) {
	b, lc := completed(t)
	_, cmd := New(b, lc).Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*review.ReviewScreen); !ok {
		t.Errorf("pushed %T, want *review.ReviewScreen", push.Screen)
	}
	if lc.Phase() != quiz.PhaseCompleted {
		t.Error("opening the review must not change the phase")
	}
}
