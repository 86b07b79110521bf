package stemgen

import (
	"strings"

	"github.com/arjun/mcqgen/internal/concept"
)

// StructuralValidator checks that required fields are present, within
// length limits, and consistent with the source concept.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(c *StemCandidate, src concept.Concept) *ValidationError {
	if strings.TrimSpace(c.Stem) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "stem is empty",
			Retryable: true,
		}
	}
	if len(c.Stem) > 600 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "stem exceeds 600 characters",
			Retryable: true,
		}
	}
	if strings.TrimSpace(c.Answer) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "correct_answer is empty",
			Retryable: true,
		}
	}
	if strings.TrimSpace(c.Reasoning) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "reasoning is empty",
			Retryable: true,
		}
	}
	if c.ConceptID != src.ID {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "candidate is tagged with the wrong concept",
			Retryable: false,
		}
	}
	return nil
}
