package extract

// Source says what kind of material the extractor is reading.
type Source string

const (
	// SourceChapter treats the input as textbook chapter content.
	SourceChapter Source = "chapter"

	// SourceMCQs treats the input as existing questions to mine for
	// the concepts they test.
	SourceMCQs Source = "mcqs"
)

// Config controls the behavior of the LLMExtractor.
type Config struct {
	// Source selects the analysis mode for the input text.
	Source Source

	// MaxTokens is the token budget for the LLM response. Extraction
	// returns dozens of concepts, so the budget is generous.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		Source:      SourceChapter,
		MaxTokens:   4096,
		Temperature: 0.3,
	}
}
