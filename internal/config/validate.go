package config

import (
	"fmt"
	"strings"

	"github.com/arjun/mcqgen/internal/concept"
)

// ValidationError reports a configuration value that would break a run.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
}

// Validate checks the configuration before any stage runs. The returned
// error is a *ValidationError naming the offending field.
func (c Config) Validate() error {
	if c.BatchSize <= 0 {
		return &ValidationError{
			Field:   "batch_size",
			Message: fmt.Sprintf("must be positive, got %d", c.BatchSize),
		}
	}
	if c.DistractorsPerItem < 1 || c.DistractorsPerItem > 3 {
		return &ValidationError{
			Field:   "distractors_per_item",
			Message: fmt.Sprintf("must be between 1 and 3, got %d", c.DistractorsPerItem),
		}
	}
	if c.Source != "chapter" && c.Source != "mcqs" {
		return &ValidationError{
			Field:   "source",
			Message: fmt.Sprintf(`must be "chapter" or "mcqs", got %q`, c.Source),
		}
	}
	if strings.TrimSpace(c.Variable) == "" {
		return &ValidationError{
			Field:   "variable",
			Message: "must not be empty",
		}
	}
	for _, d := range c.Difficulties {
		if _, err := concept.ParseDifficulty(d); err != nil {
			return &ValidationError{
				Field:   "difficulties",
				Message: err.Error(),
			}
		}
	}
	if c.KeepRuns < 0 {
		return &ValidationError{
			Field:   "keep_runs",
			Message: fmt.Sprintf("must not be negative, got %d", c.KeepRuns),
		}
	}
	return nil
}
