package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizbook/internal/quiz"
)

const systemPrompt = `You are writing multiple-choice quiz questions for a study bank.

Rules:
- Each question has exactly 4 options and exactly one correct option.
- "answer" is the 0-based index of the correct option.
- Distractors must be plausible and reflect common misconceptions, not jokes.
- Options must be distinct. Do not use "all of the above" or "none of the above".
- The explanation states why the correct option is right in one or two sentences.
- Stay within the given chapter. Use plain text, no markdown.
- Do not repeat or rephrase any question from the "already in the bank" list.`

// buildUserMessage constructs the user message for one drafting round.
func buildUserMessage(input DraftInput, count int, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Chapter %d: %s\n", input.Chapter, input.ChapterName)
	if topic := strings.TrimSpace(input.Topic); topic != "" {
		fmt.Fprintf(&b, "Topic notes: %s\n", topic)
	}
	fmt.Fprintf(&b, "Number of questions: %d\n", count)

	b.WriteString("\nAlready in the bank:\n")
	b.WriteString(buildExisting(input.Existing, input.Chapter, cfg.MaxExisting))

	return b.String()
}

// buildExisting lists the chapter's existing questions, keeping only the
// most recent max. Returns "None" when there are none.
func buildExisting(existing []quiz.Question, chapter, max int) string {
	var texts []string
	for _, q := range existing {
		if q.Chapter == chapter {
			texts = append(texts, q.Text)
		}
	}
	if len(texts) == 0 {
		return "None"
	}
	if max > 0 && len(texts) > max {
		texts = texts[len(texts)-max:]
	}

	var b strings.Builder
	for i, t := range texts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	return strings.TrimRight(b.String(), "\n")
}
