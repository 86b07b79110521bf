package pipeline

import (
	"time"

	"github.com/arjun/mcqgen/internal/concept"
	"github.com/arjun/mcqgen/internal/store"
)

// ValidationFailure is one entry of the in-memory validation log: an
// answer that failed symbolic verification, with the verifier's account.
// Corrected entries stayed in the run with a replaced answer.
type ValidationFailure struct {
	ItemID    string
	ConceptID string
	Note      string
	Corrected bool
}

// Metrics accumulates counts over one run.
type Metrics struct {
	Extracted int
	Filtered  int
	Generated int
	Validated int
	Corrected int
	Assembled int
	Batches   int

	// Dropped counts records dropped per stage.
	Dropped map[Stage]int

	// Difficulty is the histogram of assembled items.
	Difficulty map[concept.Difficulty]int

	// Failures is the validation failure log, corrected items included.
	Failures []ValidationFailure

	// Usage totals the LLM traffic attributed to the run. Zero when the
	// run had no event store.
	Usage store.RunUsage

	Elapsed time.Duration
}

func newMetrics() Metrics {
	return Metrics{
		Dropped:    make(map[Stage]int),
		Difficulty: make(map[concept.Difficulty]int),
	}
}

// TotalDropped sums the drops across all stages.
func (m Metrics) TotalDropped() int {
	total := 0
	for _, n := range m.Dropped {
		total += n
	}
	return total
}

// counts flattens the metrics for the completed run event.
func (m Metrics) counts() map[string]int {
	c := map[string]int{
		"extracted": m.Extracted,
		"generated": m.Generated,
		"validated": m.Validated,
		"corrected": m.Corrected,
		"assembled": m.Assembled,
		"batches":   m.Batches,
	}
	if m.Filtered > 0 {
		c["filtered"] = m.Filtered
	}
	if m.Usage.Calls > 0 {
		c["llm_calls"] = m.Usage.Calls
		c["input_tokens"] = m.Usage.InputTokens
		c["output_tokens"] = m.Usage.OutputTokens
	}
	for stage, n := range m.Dropped {
		c["dropped_"+string(stage)] = n
	}
	return c
}
