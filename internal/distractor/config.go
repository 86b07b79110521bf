package distractor

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Requested is how many candidates to ask for per item. More than
	// the final selection count, so ranking has room to choose.
	Requested int

	// MaxGuidance is the maximum number of error types included in the
	// prompt. Guidance beyond this is dropped from the tail, keeping
	// the most applicable entries.
	MaxGuidance int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		Requested:   5,
		MaxGuidance: 8,
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}
