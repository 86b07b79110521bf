package distractor

import (
	"context"

	"github.com/arjun/mcqgen/internal/stemgen"
	"github.com/arjun/mcqgen/internal/taxonomy"
)

// Candidate is one proposed wrong answer for an item.
type Candidate struct {
	// Text is the option exactly as shown to the student, in the same
	// notation as the correct answer.
	Text string

	// ErrorTypeID names the simulated mistake in the taxonomy's
	// vocabulary.
	ErrorTypeID string

	// Plausibility estimates how likely a real student is to produce
	// this mistake, in [0,1].
	Plausibility float64

	// Explanation describes the mistake that leads to this option.
	Explanation string
}

// Generator produces distractor candidates for a validated item.
type Generator interface {
	// Candidates proposes wrong answers for the item, each simulating
	// one error type from the guidance list. More candidates than
	// ultimately needed are expected; callers rank and select.
	Candidates(ctx context.Context, item stemgen.ValidatedItem, guidance []*taxonomy.ErrorType) ([]Candidate, error)
}
