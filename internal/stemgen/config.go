package stemgen

// Config tunes the LLMGenerator.
type Config struct {
	// Validators run against each candidate in order. The first
	// failure rejects the candidate; the pipeline decides whether to
	// requeue the concept for another attempt.
	Validators []Validator

	// MaxTokens caps the completion size per request.
	MaxTokens int

	// Temperature for stem generation. Moderate values give variety
	// across a batch without drifting off the requested concept.
	Temperature float64
}

// DefaultConfig returns the validator chain and limits the pipeline
// runs with.
func DefaultConfig() Config {
	return Config{
		Validators:  []Validator{&StructuralValidator{}},
		MaxTokens:   768,
		Temperature: 0.5,
	}
}
