package questiongen

import (
	"strings"
	"unicode"

	"github.com/abhisek/quizbook/internal/quiz"
)

// DuplicateValidator rejects drafts whose normalized question text matches
// an existing question anywhere in the bank.
type DuplicateValidator struct{}

func (v *DuplicateValidator) Name() string { return "duplicate" }

func (v *DuplicateValidator) Validate(q *quiz.Question, input DraftInput) *ValidationError {
	text := normalize(q.Text)
	for _, existing := range input.Existing {
		if normalize(existing.Text) == text {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "question already exists in the bank",
				Retryable: true,
			}
		}
	}
	return nil
}

// normalize lowercases s, drops punctuation and collapses whitespace.
func normalize(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, " ")
}
