package questiongen

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/quizbook/internal/quiz"
)

const (
	maxQuestionLen    = 300
	maxOptionLen      = 120
	maxExplanationLen = 600
)

// StructuralValidator checks required fields, option count, option
// distinctness and length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *quiz.Question, _ DraftInput) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf(format, args...),
			Retryable: true,
		}
	}

	if strings.TrimSpace(q.Text) == "" {
		return fail("question is empty")
	}
	if utf8.RuneCountInString(q.Text) > maxQuestionLen {
		return fail("question exceeds %d characters", maxQuestionLen)
	}
	if len(q.Options) != quiz.OptionCount {
		return fail("has %d options, want %d", len(q.Options), quiz.OptionCount)
	}

	seen := make(map[string]bool, len(q.Options))
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fail("option %s is empty", quiz.OptionLabel(i))
		}
		if utf8.RuneCountInString(opt) > maxOptionLen {
			return fail("option %s exceeds %d characters", quiz.OptionLabel(i), maxOptionLen)
		}
		key := normalize(opt)
		if seen[key] {
			return fail("option %s repeats an earlier option", quiz.OptionLabel(i))
		}
		seen[key] = true
	}

	if q.Answer < 0 || q.Answer >= quiz.OptionCount {
		return fail("answer index %d out of range", q.Answer)
	}
	if strings.TrimSpace(q.Explanation) == "" {
		return fail("explanation is empty")
	}
	if utf8.RuneCountInString(q.Explanation) > maxExplanationLen {
		return fail("explanation exceeds %d characters", maxExplanationLen)
	}
	return nil
}
