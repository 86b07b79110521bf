package taxonomy

import (
	"sort"

	"github.com/arjun/mcqgen/internal/concept"
)

// Category is a high-level grouping of integration errors.
type Category string

const (
	CategoryAlgebraic     Category = "algebraic"
	CategoryCalculus      Category = "calculus_specific"
	CategoryTrigonometric Category = "trigonometric"
	CategoryNotational    Category = "notational"
	CategoryConceptual    Category = "conceptual"
)

// AllCategories returns the categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryAlgebraic,
		CategoryCalculus,
		CategoryTrigonometric,
		CategoryNotational,
		CategoryConceptual,
	}
}

// ErrorType defines a specific student-error pattern.
type ErrorType struct {
	ID          string
	Name        string
	Category    Category
	Description string

	// ExampleCorrect and ExampleWrong show the pattern on a concrete
	// answer pair, in the notation the stem generator emits.
	ExampleCorrect string
	ExampleWrong   string

	// Applicability lists the integral-type tags this error produces
	// plausible distractors for. The single entry "all" matches any tag.
	Applicability []string

	// Frequency estimates how common the error is among students (0-1).
	Frequency float64
}

// AppliesTo reports whether the error pattern targets the given
// integral-type tag.
func (e *ErrorType) AppliesTo(tag string) bool {
	for _, a := range e.Applicability {
		if a == "all" || a == tag {
			return true
		}
	}
	return false
}

// registry is the package-level error-type registry, keyed by ID.
var registry map[string]*ErrorType

// byCategory indexes error types by category.
var byCategory map[Category][]*ErrorType

func init() {
	registry = make(map[string]*ErrorType, len(seedErrorTypes))
	byCategory = make(map[Category][]*ErrorType)
	for i := range seedErrorTypes {
		e := &seedErrorTypes[i]
		registry[e.ID] = e
		byCategory[e.Category] = append(byCategory[e.Category], e)
	}
}

// Get returns an error type by ID, or nil if not found.
func Get(id string) *ErrorType {
	return registry[id]
}

// ByCategory returns all error types in a category, in seed order.
func ByCategory(c Category) []*ErrorType {
	return byCategory[c]
}

// All returns every error type in seed order. The order is stable so
// prompts built from the taxonomy are reproducible.
func All() []*ErrorType {
	result := make([]*ErrorType, 0, len(seedErrorTypes))
	for i := range seedErrorTypes {
		result = append(result, &seedErrorTypes[i])
	}
	return result
}

// Applicable returns the error types that target the given integral-type
// tag, filtered by a difficulty-dependent frequency floor: easy items only
// probe the most common mistakes, hard items may probe rare ones. The
// result is ordered by frequency, most common first, with seed order
// breaking ties.
func Applicable(tag string, difficulty concept.Difficulty) []*ErrorType {
	var result []*ErrorType
	for i := range seedErrorTypes {
		e := &seedErrorTypes[i]
		if !e.AppliesTo(tag) {
			continue
		}
		switch difficulty {
		case concept.DifficultyEasy:
			if e.Frequency >= 0.6 {
				result = append(result, e)
			}
		case concept.DifficultyMedium:
			if e.Frequency >= 0.4 {
				result = append(result, e)
			}
		case concept.DifficultyHard:
			result = append(result, e)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Frequency > result[j].Frequency
	})
	return result
}
