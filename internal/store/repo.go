package store

import (
	"context"
	"time"

	"github.com/arjun/mcqgen/ent"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	RunID        string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// RunEventData captures one pipeline lifecycle event: a stage starting,
// a record being dropped, a run completing or aborting.
type RunEventData struct {
	RunID  string
	Stage  string
	Kind   string
	Detail string
	Counts map[string]int
}

// ValidationEventData captures the outcome of checking one stem candidate.
type ValidationEventData struct {
	RunID          string
	ItemID         string
	ConceptID      string
	Passed         bool
	Confidence     float64
	Corrected      bool
	Note           string
	OriginalAnswer string
}

// PurposeUsage aggregates LLM calls sharing a purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	AvgLatencyMs float64
}

// ModelUsage aggregates LLM calls per model ID.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	CostUSD      float64
}

// RunUsage totals the LLM traffic of a single run.
type RunUsage struct {
	Calls        int
	InputTokens  int
	OutputTokens int
	CostUSD      float64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendRun records a pipeline lifecycle event.
	AppendRun(ctx context.Context, data RunEventData) error

	// AppendValidation records the outcome of checking one stem candidate.
	AppendValidation(ctx context.Context, data ValidationEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*ent.LLMRequestEvent, error)

	// GetLLMEvent returns a single event by ID, or nil if it doesn't exist.
	GetLLMEvent(ctx context.Context, id int) (*ent.LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates calls, tokens and cost per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates calls, tokens and cost per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// RunUsage totals the LLM calls, tokens and cost of one run.
	RunUsage(ctx context.Context, runID string) (RunUsage, error)

	// RunLog returns the lifecycle events of a run in append order.
	RunLog(ctx context.Context, runID string) ([]*ent.RunEvent, error)

	// ValidationLog returns the validation events of a run in append order.
	ValidationLog(ctx context.Context, runID string) ([]*ent.ValidationEvent, error)
}

// ItemSnapshotData is one assembled question ready for persistence.
type ItemSnapshotData struct {
	RunID          string
	QuestionNumber int
	ConceptID      string
	Difficulty     string
	Stem           string
	Options        map[string]string
	CorrectLabel   string
	Explanations   map[string]string
	Score          float64
	WasCorrected   bool
	IntegralType   string
}

// Item is a stored question read back from the database.
type Item struct {
	ID             int
	RunID          string
	QuestionNumber int
	Timestamp      time.Time
	ConceptID      string
	Difficulty     string
	Stem           string
	Options        map[string]string
	CorrectLabel   string
	Explanations   map[string]string
	Score          float64
	WasCorrected   bool
	IntegralType   string
}

// SnapshotRepo manages assembled question snapshots.
type SnapshotRepo interface {
	// SaveItem stores one assembled question.
	SaveItem(ctx context.Context, data ItemSnapshotData) error

	// ItemsForRun returns the questions of a run ordered by question number.
	ItemsForRun(ctx context.Context, runID string) ([]*Item, error)

	// LatestRunID returns the run ID of the most recently stored item,
	// or "" when the store is empty.
	LatestRunID(ctx context.Context) (string, error)

	// PruneRuns deletes all items except those of the N most recent runs.
	PruneRuns(ctx context.Context, keep int) error
}
