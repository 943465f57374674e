package quiz

import (
	"iter"
	"slices"
)

// Outcome is the per-question result shown on the review screen.
type Outcome struct {
	Index       int      `json:"index"`
	Chapter     int      `json:"chapter"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct_option"`
	UserOption  int      `json:"user_option"`
	IsCorrect   bool     `json:"is_correct"`
	Explanation string   `json:"explanation"`
}

// Answered reports whether the learner chose an option for this question.
func (o Outcome) Answered() bool { return o.UserOption != Unanswered }

// Review yields one Outcome per question in display order. The sequence is
// computed lazily and may be ranged over any number of times.
func (s *Session) Review() iter.Seq[Outcome] {
	return func(yield func(Outcome) bool) {
		for i, q := range s.questions {
			user := s.answers[i]
			o := Outcome{
				Index:       i,
				Chapter:     q.Chapter,
				Question:    q.Text,
				Options:     slices.Clone(q.Options),
				Correct:     q.Answer,
				UserOption:  user,
				IsCorrect:   user != Unanswered && q.IsCorrect(user),
				Explanation: q.Explanation,
			}
			if !yield(o) {
				return
			}
		}
	}
}

// Outcomes collects Review into a slice.
func (s *Session) Outcomes() []Outcome {
	return slices.Collect(s.Review())
}
