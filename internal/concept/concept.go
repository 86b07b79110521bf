package concept

import (
	"fmt"
	"strings"

	"github.com/arjun/mcqgen/internal/symbolic"
)

// Difficulty grades how demanding a concept's questions should be.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties returns the difficulties in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty maps free-form text onto a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
}

// Concept is an atomic, independently testable unit of integration
// knowledge. Concepts are immutable once created and consumed exactly once
// by stem generation.
type Concept struct {
	// ID is unique within a run, e.g. "power-rule-basic".
	ID string

	// Name is the short display name, e.g. "Power rule for integration".
	Name string

	// Formula is the representative integrand in the kernel's textual
	// grammar, e.g. "x^2" or "sin(2*x)".
	Formula string

	// Difficulty grades the questions generated from this concept.
	Difficulty Difficulty

	// Prerequisites lists IDs of concepts a learner should already hold.
	Prerequisites []string

	// Context is the surrounding explanatory text the concept was
	// extracted from. Fed back into stem generation for grounding.
	Context string

	// WorkedExample is an optional worked solution from the source
	// material. Empty when the source offered none.
	WorkedExample string
}

// Validate performs the per-record field checks. Set-level checks
// (duplicate IDs, prerequisite references, cycles) live in ValidateSet.
func (c Concept) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("concept has empty id")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("concept %q: empty name", c.ID)
	}
	if strings.TrimSpace(c.Formula) == "" {
		return fmt.Errorf("concept %q: empty formula", c.ID)
	}
	if _, err := symbolic.Parse(c.Formula); err != nil {
		return fmt.Errorf("concept %q: formula does not parse: %w", c.ID, err)
	}
	if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
		return fmt.Errorf("concept %q: %w", c.ID, err)
	}
	return nil
}
