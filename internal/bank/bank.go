// Package bank loads, validates and edits chaptered question banks.
package bank

import (
	"embed"
	"fmt"
	"slices"

	"github.com/abhisek/quizbook/internal/quiz"
)

//go:embed data/insects.yaml data/bank.schema.json
var dataFS embed.FS

// Chapter is a labelled chapter of a bank.
type Chapter struct {
	Number int    `json:"number" yaml:"number"`
	Name   string `json:"name" yaml:"name"`
}

// Bank is an ordered question set with chapter labels.
type Bank struct {
	Title     string          `json:"title" yaml:"title"`
	Format    string          `json:"format,omitempty" yaml:"format,omitempty"`
	Chapters  []Chapter       `json:"chapters,omitempty" yaml:"chapters,omitempty"`
	Questions []quiz.Question `json:"questions" yaml:"questions"`
}

// Default returns the embedded insect biology bank.
func Default() (*Bank, error) {
	data, err := dataFS.ReadFile("data/insects.yaml")
	if err != nil {
		return nil, fmt.Errorf("read default bank: %w", err)
	}
	return Parse(data, FormatYAML)
}

// ChapterName returns the label for chapter n, or "Chapter n" when the bank
// does not name it.
func (b *Bank) ChapterName(n int) string {
	for _, c := range b.Chapters {
		if c.Number == n {
			return c.Name
		}
	}
	return fmt.Sprintf("Chapter %d", n)
}

// ChapterNumbers returns the sorted union of labelled chapters and chapters
// referenced by questions.
func (b *Bank) ChapterNumbers() []int {
	var out []int
	for _, c := range b.Chapters {
		if !slices.Contains(out, c.Number) {
			out = append(out, c.Number)
		}
	}
	for _, q := range b.Questions {
		if !slices.Contains(out, q.Chapter) {
			out = append(out, q.Chapter)
		}
	}
	slices.Sort(out)
	return out
}

// CountByChapter returns the number of questions in each chapter.
func (b *Bank) CountByChapter() map[int]int {
	counts := make(map[int]int)
	for _, q := range b.Questions {
		counts[q.Chapter]++
	}
	return counts
}

// QuestionsIn returns the questions of chapter n in bank order.
func (b *Bank) QuestionsIn(n int) []quiz.Question {
	var out []quiz.Question
	for _, q := range b.Questions {
		if q.Chapter == n {
			out = append(out, q)
		}
	}
	return out
}

// SessionOptions returns the quiz options that seed scoring with every
// chapter this bank knows about.
func (b *Bank) SessionOptions() []quiz.Option {
	return []quiz.Option{quiz.WithChapters(b.ChapterNumbers()...)}
}

// NewLifecycle returns a quiz lifecycle over this bank's questions.
func (b *Bank) NewLifecycle() *quiz.Lifecycle {
	return quiz.NewLifecycle(b.Questions, b.SessionOptions()...)
}

// Append inserts questions keeping chapter order stable: each question goes
// after the last existing question whose chapter is not greater than its own.
func (b *Bank) Append(questions ...quiz.Question) {
	for _, q := range questions {
		at := 0
		for i, existing := range b.Questions {
			if existing.Chapter <= q.Chapter {
				at = i + 1
			}
		}
		b.Questions = slices.Insert(b.Questions, at, q)
	}
}

// Validate checks the bank's questions.
func (b *Bank) Validate() error {
	return quiz.ValidateQuestions(b.Questions)
}
