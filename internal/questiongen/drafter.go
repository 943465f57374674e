package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/quizbook/internal/llm"
	"github.com/abhisek/quizbook/internal/quiz"
)

// ErrInvalidInput is returned for a draft request that cannot be served.
var ErrInvalidInput = errors.New("invalid draft input")

// Drafter drafts questions with an LLM provider.
type Drafter struct {
	provider llm.Provider
	config   Config
}

// New creates a Drafter with the given provider and config.
func New(provider llm.Provider, cfg Config) *Drafter {
	return &Drafter{provider: provider, config: cfg}
}

// batchOutput is the raw LLM response before validation.
type batchOutput struct {
	Questions []struct {
		Question    string   `json:"question"`
		Options     []string `json:"options"`
		Answer      int      `json:"answer"`
		Explanation string   `json:"explanation"`
	} `json:"questions"`
}

// Draft asks the provider for input.Count questions and validates each one.
// Rejected drafts are reported in the result; another round is requested for
// the shortfall while rounds remain.
func (d *Drafter) Draft(ctx context.Context, input DraftInput) (*Result, error) {
	if input.Chapter < 1 {
		return nil, fmt.Errorf("%w: chapter must be >= 1", ErrInvalidInput)
	}
	if input.Count < 1 {
		return nil, fmt.Errorf("%w: count must be >= 1", ErrInvalidInput)
	}
	if d.config.MaxCount > 0 && input.Count > d.config.MaxCount {
		return nil, fmt.Errorf("%w: count %d exceeds %d", ErrInvalidInput, input.Count, d.config.MaxCount)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionDraft)

	// Validators see accepted drafts as existing so a batch cannot repeat itself.
	working := input
	working.Existing = append([]quiz.Question(nil), input.Existing...)

	rounds := max(d.config.MaxRounds, 1)
	res := &Result{}
	for res.Rounds < rounds && len(res.Accepted) < input.Count {
		want := input.Count - len(res.Accepted)
		drafts, err := d.round(ctx, working, want)
		res.Rounds++
		if err != nil {
			if len(res.Accepted) > 0 {
				return res, err
			}
			return nil, err
		}

		for _, q := range drafts {
			if len(res.Accepted) == input.Count {
				break
			}
			if verr := d.validate(&q, working); verr != nil {
				res.Rejected = append(res.Rejected, Rejection{Draft: q, Err: verr})
				continue
			}
			res.Accepted = append(res.Accepted, q)
			working.Existing = append(working.Existing, q)
		}
	}
	return res, nil
}

func (d *Drafter) round(ctx context.Context, input DraftInput, count int) ([]quiz.Question, error) {
	req := llm.UserPrompt(systemPrompt, buildUserMessage(input, count, d.config))
	req.Schema = BatchSchema
	req.MaxTokens = d.config.MaxTokens
	req.Temperature = d.config.Temperature

	resp, err := d.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	out := make([]quiz.Question, 0, len(raw.Questions))
	for _, r := range raw.Questions {
		out = append(out, quiz.Question{
			Chapter:     input.Chapter,
			Text:        r.Question,
			Options:     r.Options,
			Answer:      r.Answer,
			Explanation: r.Explanation,
		})
	}
	return out, nil
}

func (d *Drafter) validate(q *quiz.Question, input DraftInput) *ValidationError {
	for _, v := range d.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return verr
		}
	}
	return nil
}
