package quiz

import (
	"errors"
	"testing"
)

func TestLifecycle_FullCycle(t *testing.T) {
	l := NewLifecycle(testQuestions(), WithChapters(1, 2))
	if l.Phase() != PhaseNotStarted {
		t.Fatalf("phase = %v, want not_started", l.Phase())
	}
	if l.Submit() || l.Restart() {
		t.Fatal("transition allowed from not_started")
	}

	s, err := l.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if l.Phase() != PhaseInProgress {
		t.Fatalf("phase = %v, want in_progress", l.Phase())
	}

	again, _ := l.Start()
	if again != s {
		t.Error("Start in progress should keep the session")
	}

	s.Answer(1)
	if l.Submit() {
		t.Fatal("submit allowed while incomplete")
	}
	if l.Phase() != PhaseInProgress {
		t.Errorf("phase = %v after rejected submit", l.Phase())
	}
	if l.Restart() {
		t.Error("restart allowed while in progress")
	}

	s.Next()
	s.Answer(0)
	if !l.Submit() {
		t.Fatal("submit rejected when complete")
	}
	if l.Phase() != PhaseCompleted {
		t.Fatalf("phase = %v, want completed", l.Phase())
	}

	// Completed sessions are frozen.
	s.GoTo(0)
	if s.CurrentIndex() != 1 {
		t.Error("navigation allowed after submit")
	}
	if s.Navigation() != (Navigation{}) {
		t.Error("navigation offered after submit")
	}
	if got := s.Score().Correct; got != 2 {
		t.Errorf("Correct = %d, want 2", got)
	}

	if !l.Restart() {
		t.Fatal("restart rejected when completed")
	}
	if l.Phase() != PhaseNotStarted || l.Session() != nil {
		t.Error("restart did not discard the session")
	}

	fresh, err := l.Start()
	if err != nil {
		t.Fatalf("Start after restart: %v", err)
	}
	if fresh.AnsweredCount() != 0 || fresh.CurrentIndex() != 0 {
		t.Error("restarted session carries old state")
	}
}

func TestLifecycle_StartInvalid(t *testing.T) {
	l := NewLifecycle(nil)
	s, err := l.Start()
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if s != nil || l.Phase() != PhaseNotStarted {
		t.Error("failed start must leave lifecycle not started")
	}
}
