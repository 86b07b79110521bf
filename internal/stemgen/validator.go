package stemgen

import (
	"fmt"

	"github.com/arjun/mcqgen/internal/concept"
)

// Validator checks a generated stem candidate for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural".
	Name() string

	// Validate checks the candidate and returns nil if it passes.
	// Returns a ValidationError if the candidate fails the check. The
	// validator receives the source concept for context.
	Validate(c *StemCandidate, src concept.Concept) *ValidationError
}

// ValidationError describes why a stem candidate failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
