package questiongen

import (
	"github.com/abhisek/quizbook/internal/llm"
	"github.com/abhisek/quizbook/internal/quiz"
)

// BatchSchema defines the JSON schema for a batch of drafted questions.
var BatchSchema = &llm.Schema{
	Name:        "quiz-question-batch",
	Description: "A batch of multiple-choice quiz questions with explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    quiz.OptionCount,
							"maxItems":    quiz.OptionCount,
							"description": "Exactly 4 answer options in display order",
						},
						"answer": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     quiz.OptionCount - 1,
							"description": "0-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct option is right",
						},
					},
					"required":             []any{"question", "options", "answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
