package extract

import (
	"context"

	"github.com/arjun/mcqgen/internal/concept"
)

// Extractor produces concepts from source material using an LLM provider.
type Extractor interface {
	// Extract parses the source text and returns the concepts found, in
	// source order. Entries are field-defaulted but not validated; the
	// caller decides what to do with records that fail concept.Validate.
	Extract(ctx context.Context, sourceText string) ([]concept.Concept, error)
}
