package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var attemptSelectColumns = []string{
	colID, colSequence, colTimestamp,
	"session_id", "bank_title", "source",
	"correct", "total", "percent", "grade",
	"chapter_scores", "answers", "duration_ms",
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	chapters, err := json.Marshal(data.Chapters)
	if err != nil {
		return fmt.Errorf("marshal chapter scores: %w", err)
	}
	answers, err := json.Marshal(data.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	source := data.Source
	if source == "" {
		source = "tui"
	}

	err = r.insertEvent(ctx, attemptEventsTable,
		[]string{"session_id", "bank_title", "source", "correct", "total", "percent", "grade", "chapter_scores", "answers", "duration_ms"},
		[]any{data.SessionID, data.BankTitle, source, data.Correct, data.Total, data.Percent, data.Grade, string(chapters), string(answers), data.DurationMs},
	)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	sel := builder().Select(attemptSelectColumns...).From(entsql.Table(attemptEventsTable))
	applyOpts(sel, opts)

	var out []AttemptRecord
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		rec, err := scanAttempt(rows)
		if err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) GetAttempt(ctx context.Context, sessionID string) (*AttemptRecord, error) {
	sel := builder().Select(attemptSelectColumns...).
		From(entsql.Table(attemptEventsTable)).
		Where(entsql.EQ("session_id", sessionID)).
		Limit(1)

	var found *AttemptRecord
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		rec, err := scanAttempt(rows)
		if err != nil {
			return err
		}
		found = &rec
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get attempt %s: %w", sessionID, err)
	}
	return found, nil
}

func (r *eventRepo) AttemptSummary(ctx context.Context) (AttemptSummary, error) {
	sel := builder().Select(
		entsql.Count("*"),
		"COALESCE(MAX(percent), 0)",
		"COALESCE(AVG(percent), 0)",
	).From(entsql.Table(attemptEventsTable))

	var sum AttemptSummary
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		return rows.Scan(&sum.Attempts, &sum.BestPercent, &sum.AvgPercent)
	})
	if err != nil {
		return AttemptSummary{}, fmt.Errorf("summarize attempts: %w", err)
	}
	return sum, nil
}

func scanAttempt(rows *entsql.Rows) (AttemptRecord, error) {
	var (
		rec      AttemptRecord
		chapters sql.NullString
		answers  sql.NullString
	)
	err := rows.Scan(
		&rec.ID, &rec.Sequence, &rec.Timestamp,
		&rec.SessionID, &rec.BankTitle, &rec.Source,
		&rec.Correct, &rec.Total, &rec.Percent, &rec.Grade,
		&chapters, &answers, &rec.DurationMs,
	)
	if err != nil {
		return AttemptRecord{}, fmt.Errorf("scan attempt: %w", err)
	}
	if chapters.Valid && chapters.String != "" {
		if err := json.Unmarshal([]byte(chapters.String), &rec.Chapters); err != nil {
			return AttemptRecord{}, fmt.Errorf("decode chapter scores: %w", err)
		}
	}
	if answers.Valid && answers.String != "" {
		if err := json.Unmarshal([]byte(answers.String), &rec.Answers); err != nil {
			return AttemptRecord{}, fmt.Errorf("decode answers: %w", err)
		}
	}
	return rec, nil
}
