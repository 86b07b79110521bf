package stemgen

import "github.com/arjun/mcqgen/internal/concept"

// StemCandidate is a generated question stem with the model's claimed
// antiderivative, before symbolic verification.
type StemCandidate struct {
	// ID uniquely identifies the candidate within a run.
	ID string

	// ConceptID is the source concept this stem was generated for.
	ConceptID string

	// Stem is the question text shown to the student. LaTeX is allowed
	// and expected for integral notation.
	Stem string

	// Answer is the model's claimed correct antiderivative.
	Answer string

	// Difficulty is inherited from the source concept.
	Difficulty concept.Difficulty

	// IntegralType tags the technique the stem exercises, in the
	// taxonomy's applicability vocabulary (power_rule, substitution...).
	IntegralType string

	// Reasoning is the model's own account of the solution path. Kept
	// for explanation assembly and review, never shown to students.
	Reasoning string

	// LatexValid reports whether the stem passed the delimiter and
	// command sanity checks at generation time.
	LatexValid bool
}

// ValidatedItem is a StemCandidate that passed symbolic verification,
// possibly with its answer replaced by the verifier's correction.
type ValidatedItem struct {
	StemCandidate

	// Score is the confidence of the equivalence tier that accepted
	// the answer, or of the correction that replaced it.
	Score float64

	// WasCorrected reports that Answer no longer holds the model's
	// original claim but the verifier's canonical antiderivative.
	WasCorrected bool

	// CorrectionNote preserves the verifier's account of why the
	// original answer was rejected. Empty unless WasCorrected.
	CorrectionNote string
}
