package review

import (
	"strings"
	"testing"

	"github.com/abhisek/quizbook/internal/bank"
	"github.com/abhisek/quizbook/internal/quiz"
)

func TestRender(t *testing.T) {
	opts := []string{"Thorax", "Head", "Abdomen", "Wing"}
	b := &bank.Bank{
		Title:    "Insects",
		Chapters: []bank.Chapter{{Number: 1, Name: "Anatomy"}},
	}
	outcomes := []quiz.Outcome{
		{Index: 0, Chapter: 1, Question: "Where are the legs attached?", Options: opts,
			Correct: 0, UserOption: 0, IsCorrect: true, Explanation: "All six legs join the thorax."},
		{Index: 1, Chapter: 1, Question: "Where are the antennae?", Options: opts,
			Correct: 1, UserOption: 2, Explanation: "Antennae sit on the head."},
		{Index: 2, Chapter: 1, Question: "What do beetles fold?", Options: opts,
			Correct: 3, UserOption: quiz.Unanswered, Explanation: "Hind wings fold under elytra."},
	}

	out := Render(b, outcomes, 70)

	for _, want := range []string{
		"Question 1 (Chapter 1: Anatomy)",
		"✓ Correct",
		"✗ Wrong",
		"– Unanswered",
		"Where are the antennae?",
		"A. Thorax",
		"(your answer)",
		"Antennae sit on the head.",
		"Hind wings fold under elytra.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if got := strings.Count(out, "(your answer)"); got != 2 {
		t.Errorf("(your answer) appears %d times, want 2", got)
	}
}

func TestReviewScreen_View(t *testing.T) {
	opts := []string{"a", "b", "c", "d"}
	b := &bank.Bank{Title: "T"}
	lc := quiz.NewLifecycle([]quiz.Question{
		{Chapter: 1, Text: "Only question", Options: opts, Answer: 2, Explanation: "why"},
	})
	s, err := lc.Start()
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	s.Answer(2)
	lc.Submit()

	view := New(b, s).View(80, 20)
	if !strings.Contains(view, "Only question") {
		t.Error("view missing question text")
	}
}
