package concept

import (
	"fmt"
	"strings"
)

// ValidateSet checks a concept set as a whole: per-concept field
// rules, ID uniqueness, prerequisite references, and acyclicity. All
// problems found are reported in one error.
func ValidateSet(concepts []Concept) error {
	var errs []string

	idSet := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		if err := c.Validate(); err != nil {
			errs = append(errs, err.Error())
		}
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate concept ID: %q", c.ID))
		}
		idSet[c.ID] = true
	}

	for _, c := range concepts {
		for _, prereqID := range c.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("concept %q references nonexistent prerequisite %q", c.ID, prereqID))
			}
		}
	}

	if stuck := findCycle(concepts, idSet); len(stuck) > 0 {
		errs = append(errs, fmt.Sprintf("cycle detected involving concepts: %s", strings.Join(stuck, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("concept set validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// findCycle runs Kahn's algorithm over the prerequisite edges and
// returns the concepts left with unsatisfied prerequisites, the set
// on or downstream of a cycle. Edges to unknown IDs are skipped; the
// dangling-reference check reports those separately.
func findCycle(concepts []Concept, known map[string]bool) []string {
	pending := make(map[string]int, len(concepts))
	dependents := make(map[string][]string)
	for _, c := range concepts {
		pending[c.ID] = 0
	}
	for _, c := range concepts {
		for _, prereqID := range c.Prerequisites {
			if !known[prereqID] {
				continue
			}
			pending[c.ID]++
			dependents[prereqID] = append(dependents[prereqID], c.ID)
		}
	}

	ready := make([]string, 0, len(concepts))
	for _, c := range concepts {
		if pending[c.ID] == 0 {
			ready = append(ready, c.ID)
		}
	}

	done := 0
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		done++
		for _, dep := range dependents[id] {
			pending[dep]--
			if pending[dep] == 0 {
				ready = append(ready, dep)
			}
		}
	}

	if done == len(concepts) {
		return nil
	}
	var stuck []string
	for _, c := range concepts {
		if pending[c.ID] > 0 {
			stuck = append(stuck, c.ID)
		}
	}
	return stuck
}
