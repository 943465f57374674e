package quiz

import (
	"errors"
	"testing"
)

func testQuestions() []Question {
	return []Question{
		{Chapter: 1, Text: "Which came first?", Options: []string{"a", "b", "c", "d"}, Answer: 1, Explanation: "b"},
		{Chapter: 1, Text: "How many legs?", Options: []string{"6", "8", "4", "10"}, Answer: 0, Explanation: "six"},
	}
}

func mustStart(t *testing.T, qs []Question, opts ...Option) *Session {
	t.Helper()
	s, err := Start(qs, opts...)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestStart_Fresh(t *testing.T) {
	s := mustStart(t, testQuestions())

	if s.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex = %d, want 0", s.CurrentIndex())
	}
	if s.IsComplete() {
		t.Error("expected fresh session to be incomplete")
	}
	for i, a := range s.State().Answers {
		if a != Unanswered {
			t.Errorf("answer[%d] = %d, want Unanswered", i, a)
		}
	}
	if s.AnsweredCount() != 0 {
		t.Errorf("AnsweredCount = %d, want 0", s.AnsweredCount())
	}
}

func TestStart_Empty(t *testing.T) {
	s, err := Start(nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if s != nil {
		t.Error("expected no session on invalid input")
	}
}

func TestStart_Malformed(t *testing.T) {
	tests := []struct {
		name string
		q    Question
	}{
		{"chapter zero", Question{Chapter: 0, Text: "q", Options: []string{"a", "b", "c", "d"}}},
		{"three options", Question{Chapter: 1, Text: "q", Options: []string{"a", "b", "c"}}},
		{"answer out of range", Question{Chapter: 1, Text: "q", Options: []string{"a", "b", "c", "d"}, Answer: 4}},
		{"negative answer", Question{Chapter: 1, Text: "q", Options: []string{"a", "b", "c", "d"}, Answer: -1}},
		{"blank text", Question{Chapter: 1, Text: "  ", Options: []string{"a", "b", "c", "d"}}},
		{"blank option", Question{Chapter: 1, Text: "q", Options: []string{"a", "", "c", "d"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Start([]Question{tt.q})
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestStart_CopiesInput(t *testing.T) {
	qs := testQuestions()
	s := mustStart(t, qs)
	qs[0].Options[0] = "changed"
	qs[0].Text = "changed"

	if got := s.Question(0); got.Text == "changed" || got.Options[0] == "changed" {
		t.Error("session shares storage with caller's slice")
	}
}

func TestAnswer_FirstWins(t *testing.T) {
	s := mustStart(t, testQuestions())
	s.Answer(2)
	s.Answer(1)

	got, ok := s.AnswerAt(0)
	if !ok || got != 2 {
		t.Errorf("AnswerAt(0) = %d, %v; want 2, true", got, ok)
	}
}

func TestAnswer_OutOfRangeIgnored(t *testing.T) {
	s := mustStart(t, testQuestions())
	for _, opt := range []int{-1, 4, 99} {
		s.Answer(opt)
	}
	if s.Answered() {
		t.Error("out-of-range option should not be recorded")
	}
	s.Answer(3)
	if got, _ := s.AnswerAt(0); got != 3 {
		t.Errorf("AnswerAt(0) = %d, want 3", got)
	}
}

func TestNavigation_Clamped(t *testing.T) {
	s := mustStart(t, testQuestions())

	if st := s.Previous(); st.CurrentIndex != 0 {
		t.Errorf("Previous at start: index = %d, want 0", st.CurrentIndex)
	}
	s.Next()
	if st := s.Next(); st.CurrentIndex != 1 {
		t.Errorf("Next at end: index = %d, want 1", st.CurrentIndex)
	}
	for _, i := range []int{-1, 2, 100} {
		if st := s.GoTo(i); st.CurrentIndex != 1 {
			t.Errorf("GoTo(%d): index = %d, want 1", i, st.CurrentIndex)
		}
	}
	if st := s.GoTo(0); st.CurrentIndex != 0 {
		t.Errorf("GoTo(0): index = %d, want 0", st.CurrentIndex)
	}
}

func TestNavigation_IgnoresAnswerStatus(t *testing.T) {
	s := mustStart(t, testQuestions())
	s.Next()
	s.Answer(0)
	s.Previous()

	if s.Answered() {
		t.Error("question 0 should still be unanswered")
	}
	s.Next()
	if !s.Answered() {
		t.Error("question 1 should show its recorded answer on revisit")
	}
}

func TestIsComplete_Monotone(t *testing.T) {
	s := mustStart(t, testQuestions())
	s.Answer(1)
	if s.IsComplete() {
		t.Fatal("complete after one of two answers")
	}
	s.Next()
	s.Answer(0)
	if !s.IsComplete() {
		t.Fatal("expected complete after answering all")
	}
	s.Previous()
	s.Answer(3)
	s.GoTo(5)
	if !s.IsComplete() {
		t.Error("IsComplete went back to false")
	}
}

func TestNavigationAffordances(t *testing.T) {
	s := mustStart(t, testQuestions())

	nav := s.Navigation()
	if nav.Previous || !nav.Next || nav.Submit {
		t.Errorf("first question nav = %+v", nav)
	}

	s.Next()
	s.Answer(0)
	nav = s.Navigation()
	if !nav.Previous || nav.Next || nav.Submit {
		t.Errorf("last question, incomplete nav = %+v", nav)
	}

	s.Previous()
	s.Answer(1)
	if s.Navigation().Submit {
		t.Error("submit offered away from the last question")
	}
	s.Next()
	if !s.Navigation().Submit {
		t.Error("submit not offered on last question when complete")
	}
}

func TestProgress(t *testing.T) {
	s := mustStart(t, testQuestions())
	if got := s.Progress(); got != 0.5 {
		t.Errorf("Progress = %v, want 0.5", got)
	}
	s.Next()
	if got := s.Progress(); got != 1 {
		t.Errorf("Progress = %v, want 1", got)
	}
}

func TestOptionLabel(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "A"}, {3, "D"}, {4, "?"}, {-1, "?"},
	}
	for _, tt := range tests {
		if got := OptionLabel(tt.in); got != tt.want {
			t.Errorf("OptionLabel(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
