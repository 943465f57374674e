package quiz

import (
	"slices"
)

// Unanswered marks an AnswerLog entry that has no recorded choice. It never
// equals a valid option index.
const Unanswered = -1

// Option configures a Session at start.
type Option func(*Session)

// WithChapters seeds the chapter set used by Score. Chapters listed here
// appear in the score even when no question belongs to them.
func WithChapters(chapters ...int) Option {
	return func(s *Session) {
		for _, c := range chapters {
			if c >= 1 && !slices.Contains(s.chapters, c) {
				s.chapters = append(s.chapters, c)
			}
		}
	}
}

// State is a read-only snapshot of a session's position and answers.
type State struct {
	// CurrentIndex is the 0-based index of the question on display.
	CurrentIndex int

	// Answers holds one entry per question: the chosen option or Unanswered.
	Answers []int
}

// Navigation describes which moves are currently offered to the learner.
type Navigation struct {
	Previous bool
	Next     bool
	Submit   bool
}

// Session owns an ordered question set, its answer log and the current
// position. A Session is not safe for concurrent use.
type Session struct {
	questions []Question
	answers   []int
	current   int
	chapters  []int
	sealed    bool
}

// Start creates a session over questions. The slice is copied so later
// changes by the caller do not affect the session. It returns an error
// wrapping ErrInvalidInput when questions is empty or malformed.
func Start(questions []Question, opts ...Option) (*Session, error) {
	if err := ValidateQuestions(questions); err != nil {
		return nil, err
	}

	s := &Session{
		questions: make([]Question, len(questions)),
		answers:   make([]int, len(questions)),
	}
	for i, q := range questions {
		q.Options = slices.Clone(q.Options)
		s.questions[i] = q
		s.answers[i] = Unanswered
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, q := range s.questions {
		if !slices.Contains(s.chapters, q.Chapter) {
			s.chapters = append(s.chapters, q.Chapter)
		}
	}
	slices.Sort(s.chapters)
	return s, nil
}

// Len returns the number of questions.
func (s *Session) Len() int { return len(s.questions) }

// CurrentIndex returns the index of the question on display.
func (s *Session) CurrentIndex() int { return s.current }

// Current returns the question on display.
func (s *Session) Current() Question { return s.questions[s.current] }

// Question returns the question at index i. It panics if i is out of range.
func (s *Session) Question(i int) Question { return s.questions[i] }

// Chapters returns the sorted chapter set used for scoring.
func (s *Session) Chapters() []int { return slices.Clone(s.chapters) }

// AnswerAt returns the recorded option for question i and whether one exists.
func (s *Session) AnswerAt(i int) (int, bool) {
	if i < 0 || i >= len(s.answers) || s.answers[i] == Unanswered {
		return Unanswered, false
	}
	return s.answers[i], true
}

// Answered reports whether the current question has been answered. The
// presentation layer shows the result and explanation exactly when it is.
func (s *Session) Answered() bool {
	_, ok := s.AnswerAt(s.current)
	return ok
}

// AnsweredCount returns how many questions have a recorded answer.
func (s *Session) AnsweredCount() int {
	n := 0
	for _, a := range s.answers {
		if a != Unanswered {
			n++
		}
	}
	return n
}

// State returns a snapshot of the current position and answer log.
func (s *Session) State() State {
	return State{CurrentIndex: s.current, Answers: slices.Clone(s.answers)}
}

// Sealed reports whether the session has been submitted.
func (s *Session) Sealed() bool { return s.sealed }

// GoTo moves to question i. Out-of-range indices are ignored.
func (s *Session) GoTo(i int) State {
	if !s.sealed && i >= 0 && i < len(s.questions) {
		s.current = i
	}
	return s.State()
}

// Next moves forward one question, staying put on the last one.
func (s *Session) Next() State { return s.GoTo(s.current + 1) }

// Previous moves back one question, staying put on the first one.
func (s *Session) Previous() State { return s.GoTo(s.current - 1) }

// Answer records option for the current question. The first answer wins:
// answering again, or with an option outside 0..3, changes nothing.
func (s *Session) Answer(option int) State {
	if !s.sealed && validOption(option) && s.answers[s.current] == Unanswered {
		s.answers[s.current] = option
	}
	return s.State()
}

// IsComplete reports whether every question has been answered.
func (s *Session) IsComplete() bool {
	for _, a := range s.answers {
		if a == Unanswered {
			return false
		}
	}
	return true
}

// Progress returns the position through the quiz as a fraction in (0, 1].
func (s *Session) Progress() float64 {
	return float64(s.current+1) / float64(len(s.questions))
}

// Navigation returns the moves available from the current position. Submit is
// only offered on the last question once every question has been answered.
func (s *Session) Navigation() Navigation {
	if s.sealed {
		return Navigation{}
	}
	last := s.current == len(s.questions)-1
	return Navigation{
		Previous: s.current > 0,
		Next:     !last,
		Submit:   last && s.IsComplete(),
	}
}
