package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizbook/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestOptionKey(t *testing.T) {
	tests := []struct {
		key  tea.KeyPressMsg
		want int
		ok   bool
	}{
		{keyPress('1'), 0, true},
		{keyPress('4'), 3, true},
		{keyPress('a'), 0, true},
		{keyPress('c'), 2, true},
		{keyPress('5'), 0, false},
		{keyPress('e'), 0, false},
		{specialKey(tea.KeyEnter), 0, false},
	}
	for _, tt := range tests {
		got, ok := OptionKey(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("OptionKey(%q) = (%d, %v), want (%d, %v)", tt.key.String(), got, ok, tt.want, tt.ok)
		}
	}
}

func TestMultiChoice_CursorMoves(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b", "c", "d"}, 1, quiz.Unanswered)
	m, _ = m.Update(specialKey(tea.KeyDown))
	m, _ = m.Update(keyPress('j'))
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", m.Cursor)
	}
	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", m.Cursor)
	}
	for range 5 {
		m, _ = m.Update(specialKey(tea.KeyUp))
	}
	if m.Cursor != 0 {
		t.Errorf("Cursor clamps at 0, got %d", m.Cursor)
	}
}

func TestMultiChoice_LockedIgnoresKeys(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b", "c", "d"}, 1, 3)
	if !m.Locked() {
		t.Fatal("expected locked")
	}
	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Cursor != 3 {
		t.Errorf("Cursor moved on a locked question: %d", m.Cursor)
	}
	if m.IsCorrect() {
		t.Error("option 3 is not correct")
	}

	view := m.View(40)
	if !strings.Contains(view, "B)  b  ✓") {
		t.Error("correct option not marked")
	}
	if !strings.Contains(view, "D)  d  ✗") {
		t.Error("wrong pick not marked")
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	ran := ""
	m := NewMenu([]MenuItem{
		{Label: "one", Disabled: true},
		{Label: "two", Action: func() tea.Cmd { ran = "two"; return nil }},
		{Label: "three", Disabled: true},
		{Label: "four", Action: func() tea.Cmd { ran = "four"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 3 {
		t.Fatalf("Selected = %d, want 3", m.Selected)
	}
	m.Update(specialKey(tea.KeyEnter))
	if ran != "four" {
		t.Errorf("ran %q, want four", ran)
	}
}

func TestAnswerTrack_Cells(t *testing.T) {
	track := NewAnswerTrack([]int{0, quiz.Unanswered, 2}, 1, 40)
	if track.Answered() != 2 {
		t.Errorf("Answered = %d, want 2", track.Answered())
	}

	view := track.View()
	if strings.Count(view, "●") != 2 || strings.Count(view, "○") != 1 {
		t.Errorf("unexpected cells in %q", view)
	}
	if !strings.Contains(view, "2/3") {
		t.Errorf("missing count in %q", view)
	}
}

func TestAnswerTrack_CollapsesWhenNarrow(t *testing.T) {
	answers := make([]int, 50)
	for i := range answers {
		answers[i] = quiz.Unanswered
	}
	answers[0] = 1

	view := NewAnswerTrack(answers, 0, 30).View()
	if strings.Contains(view, "○") {
		t.Error("a long quiz should render as a bar")
	}
	if !strings.Contains(view, "1/50") {
		t.Errorf("missing count in %q", view)
	}
}

func TestAnswerTrack_Empty(t *testing.T) {
	if v := NewAnswerTrack(nil, 0, 20).View(); !strings.Contains(v, "0/0") {
		t.Errorf("unexpected view %q", v)
	}
}

func TestButtonRow_SkipsEmpty(t *testing.T) {
	row := ButtonRow(NewButton("Prev", false), NewButton("", true), NewButton("Next", true))
	if !strings.Contains(row, "Prev") || !strings.Contains(row, "Next") {
		t.Errorf("unexpected row %q", row)
	}
}
