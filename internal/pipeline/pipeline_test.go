package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/arjun/mcqgen/ent"
	"github.com/arjun/mcqgen/internal/concept"
	"github.com/arjun/mcqgen/internal/config"
	"github.com/arjun/mcqgen/internal/distractor"
	"github.com/arjun/mcqgen/internal/llm"
	"github.com/arjun/mcqgen/internal/stemgen"
	"github.com/arjun/mcqgen/internal/store"
	"github.com/arjun/mcqgen/internal/taxonomy"
)

type fakeExtractor struct {
	concepts []concept.Concept
	err      error
	calls    int
}

func (f *fakeExtractor) Extract(ctx context.Context, sourceText string) ([]concept.Concept, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.concepts, nil
}

// fakeGenerator emits one candidate per concept with the configured
// claimed answer. The stem embeds the concept formula as an integral so
// the validate stage can recover the integrand from the stem text.
type fakeGenerator struct {
	answers map[string]string
	fail    map[string]error
	seen    []string
	runIDs  []string
}

func (f *fakeGenerator) Generate(ctx context.Context, c concept.Concept) (*stemgen.StemCandidate, error) {
	f.seen = append(f.seen, c.ID)
	f.runIDs = append(f.runIDs, llm.RunIDFrom(ctx))
	if err, ok := f.fail[c.ID]; ok {
		return nil, err
	}
	return &stemgen.StemCandidate{
		ID:           "cand-" + c.ID,
		ConceptID:    c.ID,
		Stem:         fmt.Sprintf(`Evaluate $\int %s \, dx$`, c.Formula),
		Answer:       f.answers[c.ID],
		Difficulty:   c.Difficulty,
		IntegralType: "power_rule",
		Reasoning:    "Apply the power rule.",
		LatexValid:   true,
	}, nil
}

type fakeDistractors struct {
	fail  map[string]error
	calls int
}

func (f *fakeDistractors) Candidates(ctx context.Context, item stemgen.ValidatedItem, guidance []*taxonomy.ErrorType) ([]distractor.Candidate, error) {
	f.calls++
	if err, ok := f.fail[item.ID]; ok {
		return nil, err
	}
	return []distractor.Candidate{
		{Text: `$x^3 + C$`, ErrorTypeID: "forgot-divide", Plausibility: 0.9, Explanation: "Forgot to divide by the new exponent."},
		{Text: `$\frac{x^2}{2} + C$`, ErrorTypeID: "decrement-exponent", Plausibility: 0.7, Explanation: "Lowered the exponent instead of raising it."},
		{Text: `$3x^2 + C$`, ErrorTypeID: "differentiated", Plausibility: 0.6, Explanation: "Differentiated instead of integrating."},
	}, nil
}

// memEvents is an in-memory EventRepo. Append calls are recorded;
// queries return nothing. RunUsage counts one call per stored LLM event
// so usage propagation is observable.
type memEvents struct {
	runs        []store.RunEventData
	validations []store.ValidationEventData
	llm         []store.LLMRequestEventData
}

func (m *memEvents) AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error {
	m.llm = append(m.llm, data)
	return nil
}

func (m *memEvents) AppendRun(ctx context.Context, data store.RunEventData) error {
	m.runs = append(m.runs, data)
	return nil
}

func (m *memEvents) AppendValidation(ctx context.Context, data store.ValidationEventData) error {
	m.validations = append(m.validations, data)
	return nil
}

func (m *memEvents) QueryLLMEvents(ctx context.Context, opts store.QueryOpts) ([]*ent.LLMRequestEvent, error) {
	return nil, nil
}

func (m *memEvents) GetLLMEvent(ctx context.Context, id int) (*ent.LLMRequestEvent, error) {
	return nil, nil
}

func (m *memEvents) LLMUsageByPurpose(ctx context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (m *memEvents) LLMUsageByModel(ctx context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func (m *memEvents) RunUsage(ctx context.Context, runID string) (store.RunUsage, error) {
	return store.RunUsage{Calls: len(m.llm)}, nil
}

func (m *memEvents) RunLog(ctx context.Context, runID string) ([]*ent.RunEvent, error) {
	return nil, nil
}

func (m *memEvents) ValidationLog(ctx context.Context, runID string) ([]*ent.ValidationEvent, error) {
	return nil, nil
}

func (m *memEvents) kinds() []string {
	out := make([]string, 0, len(m.runs))
	for _, e := range m.runs {
		out = append(out, e.Stage+"/"+e.Kind)
	}
	return out
}

type memSnapshots struct {
	saved   []store.ItemSnapshotData
	pruned  []int
	saveErr error
}

func (m *memSnapshots) SaveItem(ctx context.Context, data store.ItemSnapshotData) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, data)
	return nil
}

func (m *memSnapshots) ItemsForRun(ctx context.Context, runID string) ([]*store.Item, error) {
	return nil, nil
}

func (m *memSnapshots) LatestRunID(ctx context.Context) (string, error) {
	return "", nil
}

func (m *memSnapshots) PruneRuns(ctx context.Context, keep int) error {
	m.pruned = append(m.pruned, keep)
	return nil
}

func easyConcept(id, formula string) concept.Concept {
	return concept.Concept{
		ID:         id,
		Name:       "Concept " + id,
		Formula:    formula,
		Difficulty: concept.DifficultyEasy,
	}
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.BatchSize = 2
	return cfg
}

func TestRun_HappyPath(t *testing.T) {
	ext := &fakeExtractor{concepts: []concept.Concept{
		easyConcept("c1", "x^2"),
		easyConcept("c2", "sin(x)"),
	}}
	gen := &fakeGenerator{answers: map[string]string{
		"c1": `$\frac{x^3}{3} + C$`,
		"c2": `$-\cos(x) + C$`,
	}}
	cfg := testConfig()
	cfg.BatchSize = 1

	p := New(cfg, Deps{Extractor: ext, Generator: gen, Distractors: &fakeDistractors{}})
	out, err := p.Run(context.Background(), "chapter text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RunID == "" {
		t.Error("expected a run ID")
	}
	if len(out.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(out.Items))
	}
	for i, item := range out.Items {
		if item.QuestionNumber != i+1 {
			t.Errorf("item %d: question number %d", i, item.QuestionNumber)
		}
		if len(item.Options) != 4 {
			t.Errorf("item %d: expected 4 options, got %d", i, len(item.Options))
		}
		if item.CorrectLabel == "" {
			t.Errorf("item %d: no correct label", i)
		}
	}
	if got := out.Items[0].Options[out.Items[0].CorrectLabel]; got != `$\frac{x^3}{3} + C$` {
		t.Errorf("correct option holds %q", got)
	}

	m := out.Metrics
	if m.Extracted != 2 || m.Generated != 2 || m.Validated != 2 || m.Assembled != 2 {
		t.Errorf("unexpected counts: extracted %d generated %d validated %d assembled %d",
			m.Extracted, m.Generated, m.Validated, m.Assembled)
	}
	if m.Batches != 2 {
		t.Errorf("expected 2 batches with batch size 1, got %d", m.Batches)
	}
	if m.Corrected != 0 || m.TotalDropped() != 0 {
		t.Errorf("expected a clean run, got corrected %d dropped %d", m.Corrected, m.TotalDropped())
	}
	if m.Difficulty[concept.DifficultyEasy] != 2 {
		t.Errorf("difficulty histogram: %v", m.Difficulty)
	}
}

func TestRun_RejectsInvalidConfig(t *testing.T) {
	ext := &fakeExtractor{}
	cfg := testConfig()
	cfg.BatchSize = 0

	p := New(cfg, Deps{Extractor: ext, Generator: &fakeGenerator{}, Distractors: &fakeDistractors{}})
	out, err := p.Run(context.Background(), "chapter text")
	if err == nil {
		t.Fatal("expected an error for batch size 0")
	}
	if out != nil {
		t.Error("expected no outcome")
	}
	var verr *config.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *config.ValidationError, got %T: %v", err, err)
	}
	if verr.Field != "batch_size" {
		t.Errorf("unexpected field %q", verr.Field)
	}
	if ext.calls != 0 {
		t.Error("extractor ran despite invalid config")
	}
}

func TestRun_CorrectsFixableAnswer(t *testing.T) {
	ext := &fakeExtractor{concepts: []concept.Concept{easyConcept("c1", "x^3")}}
	gen := &fakeGenerator{answers: map[string]string{"c1": `$x^4 + C$`}}
	events := &memEvents{}

	p := New(testConfig(), Deps{Extractor: ext, Generator: gen, Distractors: &fakeDistractors{}, Events: events})
	out, err := p.Run(context.Background(), "chapter text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out.Items))
	}

	item := out.Items[0]
	if !item.WasCorrected {
		t.Error("expected the item to be marked corrected")
	}
	if item.Score != 1.0 {
		t.Errorf("expected score 1.0 for an integrator-backed correction, got %v", item.Score)
	}
	correct := item.Options[item.CorrectLabel]
	if !strings.Contains(correct, `\frac{1}{4}`) || !strings.Contains(correct, "+ C") {
		t.Errorf("correct option does not hold the canonical antiderivative: %q", correct)
	}
	if correct == `$x^4 + C$` {
		t.Error("original wrong answer survived as the correct option")
	}

	m := out.Metrics
	if m.Corrected != 1 || m.Validated != 1 || m.TotalDropped() != 0 {
		t.Errorf("unexpected counts: corrected %d validated %d dropped %d", m.Corrected, m.Validated, m.TotalDropped())
	}
	if len(m.Failures) != 1 {
		t.Fatalf("expected 1 failure log entry, got %d", len(m.Failures))
	}
	if !m.Failures[0].Corrected || m.Failures[0].ItemID != "cand-c1" {
		t.Errorf("unexpected failure entry: %+v", m.Failures[0])
	}

	if len(events.validations) != 1 {
		t.Fatalf("expected 1 validation event, got %d", len(events.validations))
	}
	ve := events.validations[0]
	if ve.Passed || !ve.Corrected {
		t.Errorf("expected a failed-but-corrected event, got passed=%v corrected=%v", ve.Passed, ve.Corrected)
	}
	if ve.OriginalAnswer != `$x^4 + C$` {
		t.Errorf("original answer not preserved: %q", ve.OriginalAnswer)
	}
	if ve.Confidence != 1.0 {
		t.Errorf("unexpected confidence %v", ve.Confidence)
	}
}

func TestRun_DropsUnverifiableAnswer(t *testing.T) {
	ext := &fakeExtractor{concepts: []concept.Concept{
		easyConcept("c1", "x*sin(x)"),
		easyConcept("c2", "x^2"),
	}}
	gen := &fakeGenerator{answers: map[string]string{
		"c1": `$x^2 + C$`,
		"c2": `$\frac{x^3}{3} + C$`,
	}}
	events := &memEvents{}

	p := New(testConfig(), Deps{Extractor: ext, Generator: gen, Distractors: &fakeDistractors{}, Events: events})
	out, err := p.Run(context.Background(), "chapter text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Items) != 1 {
		t.Fatalf("expected 1 surviving item, got %d", len(out.Items))
	}
	if out.Items[0].ConceptID != "c2" {
		t.Errorf("wrong item survived: %q", out.Items[0].ConceptID)
	}
	if out.Metrics.Dropped[StageValidate] != 1 {
		t.Errorf("expected 1 validate drop, got %v", out.Metrics.Dropped)
	}
	if len(out.Metrics.Failures) != 1 || out.Metrics.Failures[0].Corrected {
		t.Errorf("unexpected failure log: %+v", out.Metrics.Failures)
	}

	dropped := false
	for _, e := range events.runs {
		if e.Kind == "record_dropped" && e.Stage == "validate" && strings.Contains(e.Detail, "cand-c1") {
			dropped = true
		}
	}
	if !dropped {
		t.Errorf("no record_dropped event for cand-c1 in %v", events.kinds())
	}
}

func TestRun_AbortsWhenProviderDown(t *testing.T) {
	ext := &fakeExtractor{concepts: []concept.Concept{
		easyConcept("c1", "x^2"),
		easyConcept("c2", "sin(x)"),
	}}
	gen := &fakeGenerator{fail: map[string]error{
		"c1": &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	}}
	events := &memEvents{}

	p := New(testConfig(), Deps{Extractor: ext, Generator: gen, Distractors: &fakeDistractors{}, Events: events})
	out, err := p.Run(context.Background(), "chapter text")
	if err == nil {
		t.Fatal("expected the run to abort")
	}
	if out != nil {
		t.Error("expected no outcome")
	}
	var sf *StageFailure
	if !errors.As(err, &sf) {
		t.Fatalf("expected *StageFailure, got %T: %v", err, err)
	}
	if sf.Stage != StageGenerate {
		t.Errorf("failure names stage %q", sf.Stage)
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Error("cause not reachable through the error chain")
	}

	last := events.runs[len(events.runs)-1]
	if last.Kind != "aborted" || last.Stage != "generate" {
		t.Errorf("last event %s/%s, want generate/aborted", last.Stage, last.Kind)
	}
	for _, e := range events.runs {
		if e.Kind == "completed" {
			t.Error("aborted run logged a completed event")
		}
	}
}

func TestRun_DropsFailedGeneration(t *testing.T) {
	ext := &fakeExtractor{concepts: []concept.Concept{
		easyConcept("c1", "x^2"),
		easyConcept("c2", "sin(x)"),
	}}
	gen := &fakeGenerator{
		answers: map[string]string{"c2": `$-\cos(x) + C$`},
		fail: map[string]error{
			"c1": &llm.ErrInvalidResponse{Err: errors.New("schema mismatch")},
		},
	}

	p := New(testConfig(), Deps{Extractor: ext, Generator: gen, Distractors: &fakeDistractors{}})
	out, err := p.Run(context.Background(), "chapter text")
	if err != nil {
		t.Fatalf("a malformed response should drop the record, not abort: %v", err)
	}
	if len(out.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out.Items))
	}
	if out.Metrics.Dropped[StageGenerate] != 1 {
		t.Errorf("expected 1 generate drop, got %v", out.Metrics.Dropped)
	}
	if out.Metrics.Generated != 1 {
		t.Errorf("expected 1 generated candidate, got %d", out.Metrics.Generated)
	}
}

func TestRun_BatchesConsumeQueueInOrder(t *testing.T) {
	var concepts []concept.Concept
	answers := make(map[string]string)
	for _, id := range []string{"c1", "c2", "c3", "c4", "c5"} {
		concepts = append(concepts, easyConcept(id, "x^2"))
		answers[id] = `$\frac{x^3}{3} + C$`
	}
	ext := &fakeExtractor{concepts: concepts}
	gen := &fakeGenerator{answers: answers}
	events := &memEvents{}

	p := New(testConfig(), Deps{Extractor: ext, Generator: gen, Distractors: &fakeDistractors{}, Events: events})
	out, err := p.Run(context.Background(), "chapter text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"c1", "c2", "c3", "c4", "c5"}
	if len(gen.seen) != len(want) {
		t.Fatalf("generator saw %d concepts, want %d", len(gen.seen), len(want))
	}
	for i, id := range want {
		if gen.seen[i] != id {
			t.Errorf("position %d: generated %q, want %q", i, gen.seen[i], id)
		}
	}
	if out.Metrics.Batches != 3 {
		t.Errorf("expected 3 batches of size 2 for 5 concepts, got %d", out.Metrics.Batches)
	}

	var batchDetails []string
	for _, e := range events.runs {
		if e.Kind == "batch" {
			batchDetails = append(batchDetails, e.Detail)
		}
	}
	if len(batchDetails) != 3 {
		t.Fatalf("expected 3 batch events, got %d", len(batchDetails))
	}
	if !strings.Contains(batchDetails[0], "2 concepts, 3 queued") {
		t.Errorf("first batch detail: %q", batchDetails[0])
	}
	if !strings.Contains(batchDetails[2], "1 concepts, 0 queued") {
		t.Errorf("last batch detail: %q", batchDetails[2])
	}
}

func TestRun_ExtractFailureAborts(t *testing.T) {
	ext := &fakeExtractor{err: errors.New("no API key")}

	p := New(testConfig(), Deps{Extractor: ext, Generator: &fakeGenerator{}, Distractors: &fakeDistractors{}})
	_, err := p.Run(context.Background(), "chapter text")
	if err == nil {
		t.Fatal("expected the run to abort")
	}
	var sf *StageFailure
	if !errors.As(err, &sf) {
		t.Fatalf("expected *StageFailure, got %T: %v", err, err)
	}
	if sf.Stage != StageExtract {
		t.Errorf("failure names stage %q", sf.Stage)
	}
}

func TestRun_DropsBadConceptRecords(t *testing.T) {
	ext := &fakeExtractor{concepts: []concept.Concept{
		easyConcept("c1", "x^2"),
		{ID: "c-broken", Name: "Broken", Formula: "", Difficulty: concept.DifficultyEasy},
		easyConcept("c1", "x^2"),
	}}
	gen := &fakeGenerator{answers: map[string]string{"c1": `$\frac{x^3}{3} + C$`}}

	p := New(testConfig(), Deps{Extractor: ext, Generator: gen, Distractors: &fakeDistractors{}})
	out, err := p.Run(context.Background(), "chapter text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Metrics.Extracted != 1 {
		t.Errorf("expected 1 usable concept, got %d", out.Metrics.Extracted)
	}
	if out.Metrics.Dropped[StageExtract] != 2 {
		t.Errorf("expected the empty-formula and duplicate records dropped, got %v", out.Metrics.Dropped)
	}
	if len(out.Items) != 1 {
		t.Errorf("expected 1 item, got %d", len(out.Items))
	}
}

func TestRun_FiltersByDifficulty(t *testing.T) {
	hard := concept.Concept{
		ID:         "c2",
		Name:       "Concept c2",
		Formula:    "sin(x)",
		Difficulty: concept.DifficultyHard,
	}
	ext := &fakeExtractor{concepts: []concept.Concept{easyConcept("c1", "x^2"), hard}}
	gen := &fakeGenerator{answers: map[string]string{"c1": `$\frac{x^3}{3} + C$`}}
	events := &memEvents{}
	cfg := testConfig()
	cfg.Difficulties = []string{"easy"}

	p := New(cfg, Deps{Extractor: ext, Generator: gen, Distractors: &fakeDistractors{}, Events: events})
	out, err := p.Run(context.Background(), "chapter text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Metrics.Filtered != 1 || out.Metrics.Extracted != 1 {
		t.Errorf("filtered %d extracted %d", out.Metrics.Filtered, out.Metrics.Extracted)
	}
	if out.Metrics.TotalDropped() != 0 {
		t.Error("a filtered concept must not count as dropped")
	}
	if len(gen.seen) != 1 || gen.seen[0] != "c1" {
		t.Errorf("generator saw %v", gen.seen)
	}

	var counts map[string]int
	for _, e := range events.runs {
		if e.Kind == "completed" {
			counts = e.Counts
		}
	}
	if counts["filtered"] != 1 {
		t.Errorf("completed counts: %v", counts)
	}
}

func TestRun_DropsFailedDistractors(t *testing.T) {
	ext := &fakeExtractor{concepts: []concept.Concept{
		easyConcept("c1", "x^2"),
		easyConcept("c2", "sin(x)"),
	}}
	gen := &fakeGenerator{answers: map[string]string{
		"c1": `$\frac{x^3}{3} + C$`,
		"c2": `$-\cos(x) + C$`,
	}}
	dist := &fakeDistractors{fail: map[string]error{
		"cand-c1": errors.New("no candidates extracted"),
	}}

	p := New(testConfig(), Deps{Extractor: ext, Generator: gen, Distractors: dist})
	out, err := p.Run(context.Background(), "chapter text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out.Items))
	}
	if out.Items[0].ConceptID != "c2" || out.Items[0].QuestionNumber != 1 {
		t.Errorf("surviving item: concept %q number %d", out.Items[0].ConceptID, out.Items[0].QuestionNumber)
	}
	if out.Metrics.Dropped[StageDistract] != 1 {
		t.Errorf("expected 1 distract drop, got %v", out.Metrics.Dropped)
	}
}

func TestRun_EventStream(t *testing.T) {
	ext := &fakeExtractor{concepts: []concept.Concept{
		easyConcept("c1", "x^2"),
		easyConcept("c2", "sin(x)"),
	}}
	gen := &fakeGenerator{answers: map[string]string{
		"c1": `$\frac{x^3}{3} + C$`,
		"c2": `$-\cos(x) + C$`,
	}}
	events := &memEvents{llm: []store.LLMRequestEventData{
		{Purpose: "stem-gen"},
		{Purpose: "stem-gen"},
	}}
	cfg := testConfig()
	cfg.BatchSize = 15

	p := New(cfg, Deps{Extractor: ext, Generator: gen, Distractors: &fakeDistractors{}, Events: events})
	out, err := p.Run(context.Background(), "chapter text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"extract/started",
		"generate/started",
		"generate/batch",
		"validate/started",
		"distract/started",
		"assemble/started",
		"done/completed",
	}
	got := events.kinds()
	if len(got) != len(want) {
		t.Fatalf("event stream %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: %q, want %q", i, got[i], want[i])
		}
	}
	for _, e := range events.runs {
		if e.RunID != out.RunID {
			t.Errorf("event %s/%s has run ID %q, want %q", e.Stage, e.Kind, e.RunID, out.RunID)
		}
	}

	if out.Metrics.Usage.Calls != 2 {
		t.Errorf("usage calls %d, want 2", out.Metrics.Usage.Calls)
	}
	final := events.runs[len(events.runs)-1]
	if final.Counts["extracted"] != 2 || final.Counts["assembled"] != 2 || final.Counts["llm_calls"] != 2 {
		t.Errorf("completed counts: %v", final.Counts)
	}
	if out.Metrics.Elapsed < 0 {
		t.Errorf("elapsed %v", out.Metrics.Elapsed)
	}
}

func TestRun_TagsContextWithRunID(t *testing.T) {
	ext := &fakeExtractor{concepts: []concept.Concept{easyConcept("c1", "x^2")}}
	gen := &fakeGenerator{answers: map[string]string{"c1": `$\frac{x^3}{3} + C$`}}

	p := New(testConfig(), Deps{Extractor: ext, Generator: gen, Distractors: &fakeDistractors{}})
	out, err := p.Run(context.Background(), "chapter text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gen.runIDs) != 1 {
		t.Fatalf("generator saw %d contexts", len(gen.runIDs))
	}
	if gen.runIDs[0] == "" || gen.runIDs[0] != out.RunID {
		t.Errorf("context run ID %q, outcome run ID %q", gen.runIDs[0], out.RunID)
	}
}

func TestRun_SnapshotsSavedAndPruned(t *testing.T) {
	ext := &fakeExtractor{concepts: []concept.Concept{easyConcept("c1", "x^2")}}
	gen := &fakeGenerator{answers: map[string]string{"c1": `$\frac{x^3}{3} + C$`}}
	snaps := &memSnapshots{}

	p := New(testConfig(), Deps{Extractor: ext, Generator: gen, Distractors: &fakeDistractors{}, Snapshots: snaps})
	out, err := p.Run(context.Background(), "chapter text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps.saved) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(snaps.saved))
	}
	saved := snaps.saved[0]
	if saved.RunID != out.RunID || saved.QuestionNumber != 1 {
		t.Errorf("snapshot run %q number %d", saved.RunID, saved.QuestionNumber)
	}
	if saved.Difficulty != "easy" || saved.ConceptID != "c1" {
		t.Errorf("snapshot difficulty %q concept %q", saved.Difficulty, saved.ConceptID)
	}
	if saved.Options[saved.CorrectLabel] != `$\frac{x^3}{3} + C$` {
		t.Errorf("snapshot correct option %q", saved.Options[saved.CorrectLabel])
	}
	if len(snaps.pruned) != 1 || snaps.pruned[0] != 20 {
		t.Errorf("prune calls %v, want [20]", snaps.pruned)
	}
}

func TestRun_KeepRunsZeroDisablesPruning(t *testing.T) {
	ext := &fakeExtractor{concepts: []concept.Concept{easyConcept("c1", "x^2")}}
	gen := &fakeGenerator{answers: map[string]string{"c1": `$\frac{x^3}{3} + C$`}}
	snaps := &memSnapshots{}
	cfg := testConfig()
	cfg.KeepRuns = 0

	p := New(cfg, Deps{Extractor: ext, Generator: gen, Distractors: &fakeDistractors{}, Snapshots: snaps})
	if _, err := p.Run(context.Background(), "chapter text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps.saved) != 1 {
		t.Errorf("expected the item saved, got %d snapshots", len(snaps.saved))
	}
	if len(snaps.pruned) != 0 {
		t.Errorf("expected no prune calls, got %v", snaps.pruned)
	}
}

func TestRun_SnapshotWriteFailureAborts(t *testing.T) {
	ext := &fakeExtractor{concepts: []concept.Concept{easyConcept("c1", "x^2")}}
	gen := &fakeGenerator{answers: map[string]string{"c1": `$\frac{x^3}{3} + C$`}}
	snaps := &memSnapshots{saveErr: errors.New("disk full")}

	p := New(testConfig(), Deps{Extractor: ext, Generator: gen, Distractors: &fakeDistractors{}, Snapshots: snaps})
	_, err := p.Run(context.Background(), "chapter text")
	if err == nil {
		t.Fatal("expected the run to abort")
	}
	var sf *StageFailure
	if !errors.As(err, &sf) {
		t.Fatalf("expected *StageFailure, got %T: %v", err, err)
	}
	if sf.Stage != StageAssemble {
		t.Errorf("failure names stage %q", sf.Stage)
	}
	if !strings.Contains(err.Error(), "save item 1") {
		t.Errorf("error does not name the item: %v", err)
	}
}

func TestRun_EmptyExtractionCompletes(t *testing.T) {
	ext := &fakeExtractor{}
	events := &memEvents{}

	p := New(testConfig(), Deps{Extractor: ext, Generator: &fakeGenerator{}, Distractors: &fakeDistractors{}, Events: events})
	out, err := p.Run(context.Background(), "chapter text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Items) != 0 {
		t.Errorf("expected no items, got %d", len(out.Items))
	}
	if out.Metrics.Batches != 0 {
		t.Errorf("expected no batches, got %d", out.Metrics.Batches)
	}

	completed := false
	for _, e := range events.runs {
		if e.Kind == "completed" {
			completed = true
		}
	}
	if !completed {
		t.Error("empty run never completed")
	}
}
