package questiongen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/quizbook/internal/quiz"
)

func TestBuildUserMessage_Minimal(t *testing.T) {
	input := DraftInput{Chapter: 2, ChapterName: "Kingdoms of Life"}
	msg := buildUserMessage(input, 3, DefaultConfig())

	if !strings.Contains(msg, "Chapter 2: Kingdoms of Life") {
		t.Error("missing chapter line")
	}
	if !strings.Contains(msg, "Number of questions: 3") {
		t.Error("missing count")
	}
	if strings.Contains(msg, "Topic notes") {
		t.Error("unexpected topic line")
	}
	if !strings.Contains(msg, "Already in the bank:\nNone") {
		t.Error("expected 'None' for existing questions")
	}
}

func TestBuildUserMessage_TopicAndExisting(t *testing.T) {
	input := DraftInput{
		Chapter:     1,
		ChapterName: "Insect Evolution",
		Topic:       "  Carboniferous giants ",
		Existing: []quiz.Question{
			{Chapter: 1, Text: "When did insects first appear?"},
			{Chapter: 2, Text: "Which kingdom includes fungi?"},
		},
	}
	msg := buildUserMessage(input, 1, DefaultConfig())

	if !strings.Contains(msg, "Topic notes: Carboniferous giants\n") {
		t.Error("missing trimmed topic")
	}
	if !strings.Contains(msg, "1. When did insects first appear?") {
		t.Error("missing chapter question")
	}
	if strings.Contains(msg, "fungi") {
		t.Error("other chapter's question should not be listed")
	}
}

func TestBuildExisting_KeepsMostRecent(t *testing.T) {
	var existing []quiz.Question
	for i := 1; i <= 5; i++ {
		existing = append(existing, quiz.Question{Chapter: 1, Text: fmt.Sprintf("Q%d", i)})
	}
	got := buildExisting(existing, 1, 2)
	want := "1. Q4\n2. Q5"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
