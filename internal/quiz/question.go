package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// OptionCount is the number of options every question carries.
const OptionCount = 4

// ErrInvalidInput is returned when a session is started with an empty or
// malformed question sequence.
var ErrInvalidInput = errors.New("invalid input")

// Question is a single multiple-choice item. Questions are immutable once a
// session has been started with them.
type Question struct {
	// Chapter is the 1-based chapter the question belongs to.
	Chapter int `json:"chapter" yaml:"chapter"`

	// Text is the question prompt.
	Text string `json:"question" yaml:"question"`

	// Options holds exactly OptionCount answer choices in display order.
	Options []string `json:"options" yaml:"options"`

	// Answer is the index into Options of the correct choice.
	Answer int `json:"answer" yaml:"answer"`

	// Explanation is shown once the question has been answered.
	Explanation string `json:"explanation" yaml:"explanation"`
}

// IsCorrect reports whether option is the correct choice for q.
func (q Question) IsCorrect(option int) bool {
	return option == q.Answer
}

// Validate checks that q is well formed.
func (q Question) Validate() error {
	switch {
	case q.Chapter < 1:
		return fmt.Errorf("chapter %d: must be >= 1", q.Chapter)
	case strings.TrimSpace(q.Text) == "":
		return errors.New("question text is empty")
	case len(q.Options) != OptionCount:
		return fmt.Errorf("has %d options, want %d", len(q.Options), OptionCount)
	case !validOption(q.Answer):
		return fmt.Errorf("answer index %d out of range", q.Answer)
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("option %d is empty", i)
		}
	}
	return nil
}

// ValidateQuestions checks a whole question sequence. It returns an error
// wrapping ErrInvalidInput that names the first offending question.
func ValidateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidInput)
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("%w: question %d: %v", ErrInvalidInput, i+1, err)
		}
	}
	return nil
}

func validOption(option int) bool {
	return option >= 0 && option < OptionCount
}

// OptionLabel returns the display label for an option index ("A".."D").
func OptionLabel(option int) string {
	if !validOption(option) {
		return "?"
	}
	return string(rune('A' + option))
}
