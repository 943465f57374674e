package quiz

import "slices"

// Grade is the band a percentage falls into.
type Grade string

const (
	GradeExcellent Grade = "excellent"
	GradeGood      Grade = "good"
	GradePass      Grade = "pass"
	GradeFail      Grade = "fail"
)

// GradeFor maps a percentage to its band.
func GradeFor(percent int) Grade {
	switch {
	case percent >= 80:
		return GradeExcellent
	case percent >= 60:
		return GradeGood
	case percent >= 50:
		return GradePass
	default:
		return GradeFail
	}
}

// Label returns the human-readable grade message.
func (g Grade) Label() string {
	switch g {
	case GradeExcellent:
		return "Excellent!"
	case GradeGood:
		return "Good job!"
	case GradePass:
		return "Pass"
	default:
		return "Keep practising"
	}
}

// Icon returns a short glyph for the grade.
func (g Grade) Icon() string {
	switch g {
	case GradeExcellent:
		return "🏆"
	case GradeGood:
		return "🌟"
	case GradePass:
		return "👍"
	default:
		return "📚"
	}
}

// ChapterScore is the tally for one chapter.
type ChapterScore struct {
	Chapter int `json:"chapter"`
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Score summarises a session. Unanswered questions count as incorrect.
type Score struct {
	Correct  int                  `json:"correct"`
	Total    int                  `json:"total"`
	Percent  int                  `json:"percent"`
	Grade    Grade                `json:"grade"`
	Chapters map[int]ChapterScore `json:"chapters"`
}

// ChapterList returns the chapter tallies sorted by chapter number.
func (sc Score) ChapterList() []ChapterScore {
	out := make([]ChapterScore, 0, len(sc.Chapters))
	for _, c := range sc.Chapters {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b ChapterScore) int { return a.Chapter - b.Chapter })
	return out
}

// Percent returns correct/total*100 rounded half up. It returns 0 when total
// is not positive.
func Percent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return (correct*200 + total) / (2 * total)
}

// Score computes the score from whatever has been answered so far.
func (s *Session) Score() Score {
	sc := Score{
		Total:    len(s.questions),
		Chapters: make(map[int]ChapterScore, len(s.chapters)),
	}
	for _, c := range s.chapters {
		sc.Chapters[c] = ChapterScore{Chapter: c}
	}

	for i, q := range s.questions {
		cs := sc.Chapters[q.Chapter]
		cs.Chapter = q.Chapter
		cs.Total++
		if s.answers[i] != Unanswered && q.IsCorrect(s.answers[i]) {
			cs.Correct++
			sc.Correct++
		}
		sc.Chapters[q.Chapter] = cs
	}

	sc.Percent = Percent(sc.Correct, sc.Total)
	sc.Grade = GradeFor(sc.Percent)
	return sc
}
