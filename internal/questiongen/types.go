// Package questiongen drafts new multiple-choice questions for a bank
// chapter with an LLM and filters them through a validator chain.
package questiongen

import "github.com/abhisek/quizbook/internal/quiz"

// DraftInput describes what to draft.
type DraftInput struct {
	// Chapter is the 1-based chapter the drafts belong to.
	Chapter int

	// ChapterName is the human-readable chapter title used in the prompt.
	ChapterName string

	// Topic holds optional free-form notes that narrow the subject matter.
	Topic string

	// Count is the number of accepted questions wanted.
	Count int

	// Existing lists questions already in the bank. Drafts that repeat one
	// of them are rejected.
	Existing []quiz.Question
}

// Rejection records a draft that failed validation.
type Rejection struct {
	Draft quiz.Question
	Err   *ValidationError
}

// Result is the outcome of a drafting run.
type Result struct {
	Accepted []quiz.Question
	Rejected []Rejection

	// Rounds is the number of LLM calls made.
	Rounds int
}
