package questiongen

import (
	"fmt"

	"github.com/abhisek/quizbook/internal/quiz"
)

// Validator checks a drafted question.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier, e.g. "structural" or "duplicate".
	Name() string

	// Validate returns nil if q passes. input carries the chapter and the
	// questions already accepted, including earlier drafts of the same run.
	Validate(q *quiz.Question, input DraftInput) *ValidationError
}

// ValidationError describes why a draft failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether redrafting is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
