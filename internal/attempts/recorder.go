// Package attempts records submitted quiz sessions as attempt events.
package attempts

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/quizbook/internal/quiz"
	"github.com/abhisek/quizbook/internal/store"
)

// Sources of an attempt.
const (
	SourceTUI  = "tui"
	SourceHTTP = "http"
)

// ErrNotCompleted is returned when asked to record a session that has not
// been submitted.
var ErrNotCompleted = errors.New("session not completed")

// Attempt identifies one play-through of a bank.
type Attempt struct {
	ID        string
	BankTitle string
	Source    string
	StartedAt time.Time
}

// NewAttempt starts an attempt with a fresh id.
func NewAttempt(bankTitle, source string) Attempt {
	return Attempt{
		ID:        uuid.NewString(),
		BankTitle: bankTitle,
		Source:    source,
		StartedAt: time.Now(),
	}
}

// Recorder appends completed sessions to the event store. A nil repo turns
// recording into a no-op.
type Recorder struct {
	repo store.EventRepo
	log  *zap.Logger
	now  func() time.Time
}

// NewRecorder creates a Recorder. log may be nil.
func NewRecorder(repo store.EventRepo, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{repo: repo, log: log, now: time.Now}
}

// Record converts a submitted session into an attempt event and appends it.
// Errors are logged and returned; callers may ignore them.
func (r *Recorder) Record(ctx context.Context, a Attempt, s *quiz.Session) error {
	if s == nil || !s.Sealed() {
		return ErrNotCompleted
	}
	if r.repo == nil {
		return nil
	}

	data := EventData(a, s, r.now())
	if err := r.repo.AppendAttempt(ctx, data); err != nil {
		r.log.Warn("record attempt failed",
			zap.String("session_id", a.ID),
			zap.Error(err),
		)
		return err
	}

	r.log.Info("attempt recorded",
		zap.String("session_id", a.ID),
		zap.String("source", a.Source),
		zap.Int("correct", data.Correct),
		zap.Int("total", data.Total),
		zap.Int("percent", data.Percent),
		zap.String("grade", data.Grade),
	)
	return nil
}

// EventData builds the stored form of a session's result.
func EventData(a Attempt, s *quiz.Session, finished time.Time) store.AttemptEventData {
	sc := s.Score()

	chapters := make([]store.ChapterResult, 0, len(sc.Chapters))
	for _, c := range sc.ChapterList() {
		chapters = append(chapters, store.ChapterResult{
			Chapter: c.Chapter,
			Correct: c.Correct,
			Total:   c.Total,
		})
	}

	var duration int64
	if !a.StartedAt.IsZero() && finished.After(a.StartedAt) {
		duration = finished.Sub(a.StartedAt).Milliseconds()
	}

	return store.AttemptEventData{
		SessionID:  a.ID,
		BankTitle:  a.BankTitle,
		Source:     a.Source,
		Correct:    sc.Correct,
		Total:      sc.Total,
		Percent:    sc.Percent,
		Grade:      string(sc.Grade),
		Chapters:   chapters,
		Answers:    s.State().Answers,
		DurationMs: duration,
	}
}
