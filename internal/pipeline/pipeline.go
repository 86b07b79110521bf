// Package pipeline sequences a generation run: concepts are extracted
// from source material, stems are generated per concept in batches,
// answers are symbolically verified, distractors are generated and
// ranked, and options are assembled into finished questions.
//
// The run is an explicit state struct walked by a driver loop. Stages
// never recurse; the generate stage re-enters itself while the concept
// queue is non-empty. Per-record problems drop the record and keep the
// run alive; infrastructure failures abort the whole run with an error
// naming the stage.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/arjun/mcqgen/internal/assemble"
	"github.com/arjun/mcqgen/internal/concept"
	"github.com/arjun/mcqgen/internal/config"
	"github.com/arjun/mcqgen/internal/distractor"
	"github.com/arjun/mcqgen/internal/extract"
	"github.com/arjun/mcqgen/internal/llm"
	"github.com/arjun/mcqgen/internal/stemgen"
	"github.com/arjun/mcqgen/internal/store"
	"github.com/arjun/mcqgen/internal/verify"
)

// Stage names one pipeline stage. The values match the vocabulary of
// stored run events.
type Stage string

const (
	StageExtract  Stage = "extract"
	StageGenerate Stage = "generate"
	StageValidate Stage = "validate"
	StageDistract Stage = "distract"
	StageAssemble Stage = "assemble"
	StageDone     Stage = "done"
)

// Outcome is a completed run: the assembled items plus run metrics.
type Outcome struct {
	RunID   string
	Items   []assemble.Item
	Metrics Metrics
}

// Deps are the collaborators a Pipeline drives. Extractor, Generator
// and Distractors are required. A nil Verifier or Assembler gets a
// default. Nil Events/Snapshots leave no trace in the store; preview
// runs use that.
type Deps struct {
	Extractor   extract.Extractor
	Generator   stemgen.Generator
	Distractors distractor.Generator
	Verifier    *verify.Verifier
	Assembler   *assemble.Assembler
	Events      store.EventRepo
	Snapshots   store.SnapshotRepo
}

// Pipeline drives one generation run at a time. It is not safe for
// concurrent use.
type Pipeline struct {
	cfg         config.Config
	extractor   extract.Extractor
	generator   stemgen.Generator
	distractors distractor.Generator
	verifier    *verify.Verifier
	assembler   *assemble.Assembler
	events      store.EventRepo
	snapshots   store.SnapshotRepo
}

// New builds a Pipeline. The configuration is checked at Run time, not
// here, so a Pipeline can be wired before flags are resolved.
func New(cfg config.Config, deps Deps) *Pipeline {
	if deps.Verifier == nil {
		deps.Verifier = verify.New()
	}
	if deps.Assembler == nil {
		deps.Assembler = assemble.New(nil)
	}
	return &Pipeline{
		cfg:         cfg,
		extractor:   deps.Extractor,
		generator:   deps.Generator,
		distractors: deps.Distractors,
		verifier:    deps.Verifier,
		assembler:   deps.Assembler,
		events:      deps.Events,
		snapshots:   deps.Snapshots,
	}
}

// state is the carried state of the driver loop.
type state struct {
	runID      string
	stage      Stage
	queue      []concept.Concept
	concepts   map[string]concept.Concept
	candidates []stemgen.StemCandidate
	validated  []stemgen.ValidatedItem
	selected   []selection
	items      []assemble.Item
	metrics    Metrics
}

// selection pairs a validated item with its chosen distractors between
// the distract and assemble stages.
type selection struct {
	item        stemgen.ValidatedItem
	distractors []distractor.Candidate
}

// Run drives one generation run from source text to assembled items.
// The returned error is a *config.ValidationError when the
// configuration is unusable, or a *StageFailure naming the stage that
// aborted; per-record problems never surface here.
func (p *Pipeline) Run(ctx context.Context, sourceText string) (*Outcome, error) {
	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	ctx = llm.WithRunID(ctx, runID)

	st := &state{
		runID:    runID,
		stage:    StageExtract,
		concepts: make(map[string]concept.Concept),
		metrics:  newMetrics(),
	}
	started := time.Now()

	logged := Stage("")
	for st.stage != StageDone {
		if st.stage != logged {
			p.recordRun(ctx, store.RunEventData{RunID: runID, Stage: string(st.stage), Kind: "started"})
			logged = st.stage
		}

		var err error
		switch st.stage {
		case StageExtract:
			err = p.extract(ctx, st, sourceText)
		case StageGenerate:
			err = p.generate(ctx, st)
		case StageValidate:
			err = p.validate(ctx, st)
		case StageDistract:
			err = p.distract(ctx, st)
		case StageAssemble:
			err = p.assemble(ctx, st)
		}
		if err != nil {
			p.recordRun(ctx, store.RunEventData{
				RunID: runID, Stage: string(st.stage), Kind: "aborted", Detail: err.Error(),
			})
			return nil, err
		}
	}

	if p.events != nil {
		if usage, err := p.events.RunUsage(ctx, runID); err == nil {
			st.metrics.Usage = usage
		}
	}
	st.metrics.Elapsed = time.Since(started)
	p.recordRun(ctx, store.RunEventData{
		RunID: runID, Stage: string(StageDone), Kind: "completed", Counts: st.metrics.counts(),
	})
	if p.snapshots != nil && p.cfg.KeepRuns > 0 {
		if err := p.snapshots.PruneRuns(ctx, p.cfg.KeepRuns); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to prune old runs: %v\n", err)
		}
	}

	return &Outcome{RunID: runID, Items: st.items, Metrics: st.metrics}, nil
}

// drop records a per-record failure and keeps the run going.
func (p *Pipeline) drop(ctx context.Context, st *state, stage Stage, recordID string, cause error) {
	st.metrics.Dropped[stage]++
	rerr := &RecordError{RecordID: recordID, Stage: stage, Err: cause}
	p.recordRun(ctx, store.RunEventData{
		RunID: st.runID, Stage: string(stage), Kind: "record_dropped", Detail: rerr.Error(),
	})
}

// recordRun appends a lifecycle event. Event persistence never fails a
// run; without a store this is a no-op.
func (p *Pipeline) recordRun(ctx context.Context, data store.RunEventData) {
	if p.events == nil {
		return
	}
	if err := p.events.AppendRun(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log run event: %v\n", err)
	}
}

func (p *Pipeline) recordValidation(ctx context.Context, data store.ValidationEventData) {
	if p.events == nil {
		return
	}
	if err := p.events.AppendValidation(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log validation event: %v\n", err)
	}
}

// abortWorthy separates infrastructure failures, which end the run,
// from payload problems, which drop the record. The provider's retry
// decorator has already retried by the time an error reaches here.
func abortWorthy(err error) bool {
	var unavailable *llm.ErrProviderUnavailable
	if errors.As(err, &unavailable) {
		return true
	}
	var rate *llm.ErrRateLimit
	if errors.As(err, &rate) {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// allowed applies the configured difficulty filter.
func (p *Pipeline) allowed(d concept.Difficulty) bool {
	if len(p.cfg.Difficulties) == 0 {
		return true
	}
	for _, want := range p.cfg.Difficulties {
		if parsed, err := concept.ParseDifficulty(want); err == nil && parsed == d {
			return true
		}
	}
	return false
}
