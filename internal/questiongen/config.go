package questiongen

// Config controls the behavior of the Drafter.
type Config struct {
	// Validators run in order on every draft; the first failure rejects it.
	Validators []Validator

	// MaxTokens is the token budget for each LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxExisting caps how many existing questions are listed in the prompt.
	MaxExisting int

	// MaxRounds is the number of LLM calls allowed to reach the requested
	// count when drafts are rejected.
	MaxRounds int

	// MaxCount caps a single request.
	MaxCount int
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&DuplicateValidator{},
		},
		MaxTokens:   2048,
		Temperature: 0.7,
		MaxExisting: 20,
		MaxRounds:   2,
		MaxCount:    10,
	}
}
