package stemgen

import (
	"context"

	"github.com/arjun/mcqgen/internal/concept"
)

// Generator produces question stems using an LLM provider.
type Generator interface {
	// Generate produces a single stem candidate for the given concept.
	// All configured validators are run before returning.
	Generate(ctx context.Context, c concept.Concept) (*StemCandidate, error)
}
