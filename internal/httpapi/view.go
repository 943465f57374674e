package httpapi

import (
	"github.com/abhisek/quizbook/internal/bank"
	"github.com/abhisek/quizbook/internal/quiz"
)

type bankView struct {
	Title     string        `json:"title"`
	Questions int           `json:"questions"`
	Chapters  []chapterView `json:"chapters"`
}

type chapterView struct {
	Number    int    `json:"number"`
	Name      string `json:"name"`
	Questions int    `json:"questions"`
}

type navigationView struct {
	Previous bool `json:"previous"`
	Next     bool `json:"next"`
	Submit   bool `json:"submit"`
}

// questionView hides the correct option until the question is answered.
type questionView struct {
	Number        int      `json:"number"`
	Chapter       int      `json:"chapter"`
	ChapterName   string   `json:"chapter_name"`
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	Answered      bool     `json:"answered"`
	Selected      *int     `json:"selected,omitempty"`
	CorrectOption *int     `json:"correct_option,omitempty"`
	IsCorrect     *bool    `json:"is_correct,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

type sessionView struct {
	ID         string         `json:"id"`
	Phase      string         `json:"phase"`
	Index      int            `json:"index"`
	Total      int            `json:"total"`
	Progress   float64        `json:"progress"`
	Answered   int            `json:"answered"`
	Complete   bool           `json:"complete"`
	Answers    []int          `json:"answers"` // -1 marks an unanswered question
	Question   questionView   `json:"question"`
	Navigation navigationView `json:"navigation"`
}

type chapterScoreView struct {
	Chapter int    `json:"chapter"`
	Name    string `json:"name"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

type scoreView struct {
	Correct  int                `json:"correct"`
	Total    int                `json:"total"`
	Percent  int                `json:"percent"`
	Grade    string             `json:"grade"`
	Label    string             `json:"label"`
	Chapters []chapterScoreView `json:"chapters"`
}

type submitView struct {
	Session sessionView `json:"session"`
	Score   scoreView   `json:"score"`
}

type reviewView struct {
	ID       string         `json:"id"`
	Outcomes []quiz.Outcome `json:"outcomes"`
}

type phaseView struct {
	ID    string `json:"id"`
	Phase string `json:"phase"`
}

func newBankView(b *bank.Bank) bankView {
	counts := b.CountByChapter()
	v := bankView{Title: b.Title, Questions: len(b.Questions)}
	for _, n := range b.ChapterNumbers() {
		v.Chapters = append(v.Chapters, chapterView{
			Number:    n,
			Name:      b.ChapterName(n),
			Questions: counts[n],
		})
	}
	return v
}

func newSessionView(id string, phase quiz.Phase, s *quiz.Session, b *bank.Bank) sessionView {
	nav := s.Navigation()
	return sessionView{
		ID:         id,
		Phase:      phase.String(),
		Index:      s.CurrentIndex(),
		Total:      s.Len(),
		Progress:   s.Progress(),
		Answered:   s.AnsweredCount(),
		Complete:   s.IsComplete(),
		Answers:    s.State().Answers,
		Question:   newQuestionView(s, b),
		Navigation: navigationView{Previous: nav.Previous, Next: nav.Next, Submit: nav.Submit},
	}
}

func newQuestionView(s *quiz.Session, b *bank.Bank) questionView {
	i := s.CurrentIndex()
	q := s.Current()
	v := questionView{
		Number:      i + 1,
		Chapter:     q.Chapter,
		ChapterName: b.ChapterName(q.Chapter),
		Text:        q.Text,
		Options:     q.Options,
	}
	if opt, ok := s.AnswerAt(i); ok {
		correct := q.Answer
		isCorrect := q.IsCorrect(opt)
		v.Answered = true
		v.Selected = &opt
		v.CorrectOption = &correct
		v.IsCorrect = &isCorrect
		v.Explanation = q.Explanation
	}
	return v
}

func newScoreView(sc quiz.Score, b *bank.Bank) scoreView {
	v := scoreView{
		Correct:  sc.Correct,
		Total:    sc.Total,
		Percent:  sc.Percent,
		Grade:    string(sc.Grade),
		Label:    sc.Grade.Label(),
		Chapters: []chapterScoreView{},
	}
	for _, c := range sc.ChapterList() {
		v.Chapters = append(v.Chapters, chapterScoreView{
			Chapter: c.Chapter,
			Name:    b.ChapterName(c.Chapter),
			Correct: c.Correct,
			Total:   c.Total,
		})
	}
	return v
}
