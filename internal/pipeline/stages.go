package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/arjun/mcqgen/internal/assemble"
	"github.com/arjun/mcqgen/internal/distractor"
	"github.com/arjun/mcqgen/internal/stemgen"
	"github.com/arjun/mcqgen/internal/store"
	"github.com/arjun/mcqgen/internal/taxonomy"
	"github.com/arjun/mcqgen/internal/verify"
)

// extract pulls concepts out of the source text and seeds the FIFO
// queue. Malformed and duplicate records are dropped; concepts outside
// the configured difficulties are filtered, not dropped.
func (p *Pipeline) extract(ctx context.Context, st *state, sourceText string) error {
	concepts, err := p.extractor.Extract(ctx, sourceText)
	if err != nil {
		return &StageFailure{Stage: StageExtract, Err: err}
	}

	for _, c := range concepts {
		if err := c.Validate(); err != nil {
			p.drop(ctx, st, StageExtract, c.ID, err)
			continue
		}
		if !p.allowed(c.Difficulty) {
			st.metrics.Filtered++
			continue
		}
		if _, seen := st.concepts[c.ID]; seen {
			p.drop(ctx, st, StageExtract, c.ID, errors.New("duplicate concept id"))
			continue
		}
		st.concepts[c.ID] = c
		st.queue = append(st.queue, c)
	}

	st.metrics.Extracted = len(st.queue)
	st.stage = StageGenerate
	return nil
}

// generate consumes up to BatchSize concepts from the head of the queue
// and produces one stem candidate each. The stage re-enters itself
// until the queue drains, so every queued concept is consumed exactly
// once, in extraction order.
func (p *Pipeline) generate(ctx context.Context, st *state) error {
	if len(st.queue) == 0 {
		st.metrics.Generated = len(st.candidates)
		st.stage = StageValidate
		return nil
	}

	n := min(p.cfg.BatchSize, len(st.queue))
	batch := st.queue[:n]
	st.queue = st.queue[n:]
	st.metrics.Batches++
	p.recordRun(ctx, store.RunEventData{
		RunID:  st.runID,
		Stage:  string(StageGenerate),
		Kind:   "batch",
		Detail: fmt.Sprintf("batch %d: %d concepts, %d queued", st.metrics.Batches, n, len(st.queue)),
	})

	for _, c := range batch {
		cand, err := p.generator.Generate(ctx, c)
		if err != nil {
			if abortWorthy(err) {
				return &StageFailure{Stage: StageGenerate, Err: err}
			}
			p.drop(ctx, st, StageGenerate, c.ID, err)
			continue
		}
		st.candidates = append(st.candidates, *cand)
	}
	return nil
}

// validate differentiates each candidate's claimed answer and compares
// it against the integrand. The integrand is recovered from the stem
// text itself where possible; the source concept's formula is the
// fallback. A failed answer is replaced when the rule integrator knows
// the canonical antiderivative and dropped otherwise.
func (p *Pipeline) validate(ctx context.Context, st *state) error {
	for _, cand := range st.candidates {
		integrand, ok := verify.IntegrandFromStem(cand.Stem, p.cfg.Variable)
		if !ok {
			integrand = st.concepts[cand.ConceptID].Formula
		}

		result := p.verifier.Verify(integrand, cand.Answer, p.cfg.Variable)
		switch {
		case result.OK:
			st.validated = append(st.validated, stemgen.ValidatedItem{
				StemCandidate: cand,
				Score:         result.Confidence,
			})
			p.recordValidation(ctx, store.ValidationEventData{
				RunID:      st.runID,
				ItemID:     cand.ID,
				ConceptID:  cand.ConceptID,
				Passed:     true,
				Confidence: result.Confidence,
			})

		case result.Suggestion != "":
			corrected := cand
			corrected.Answer = verify.CorrectedAnswer(result.Suggestion)
			st.validated = append(st.validated, stemgen.ValidatedItem{
				StemCandidate:  corrected,
				Score:          verify.ConfidenceDirect,
				WasCorrected:   true,
				CorrectionNote: fmt.Sprintf("answer %q replaced: %s", cand.Answer, result.Note),
			})
			st.metrics.Corrected++
			st.metrics.Failures = append(st.metrics.Failures, ValidationFailure{
				ItemID:    cand.ID,
				ConceptID: cand.ConceptID,
				Note:      result.Note,
				Corrected: true,
			})
			p.recordValidation(ctx, store.ValidationEventData{
				RunID:          st.runID,
				ItemID:         cand.ID,
				ConceptID:      cand.ConceptID,
				Passed:         false,
				Confidence:     verify.ConfidenceDirect,
				Corrected:      true,
				Note:           result.Note,
				OriginalAnswer: cand.Answer,
			})

		default:
			st.metrics.Failures = append(st.metrics.Failures, ValidationFailure{
				ItemID:    cand.ID,
				ConceptID: cand.ConceptID,
				Note:      result.Note,
			})
			p.recordValidation(ctx, store.ValidationEventData{
				RunID:     st.runID,
				ItemID:    cand.ID,
				ConceptID: cand.ConceptID,
				Passed:    false,
				Note:      result.Note,
			})
			p.drop(ctx, st, StageValidate, cand.ID, errors.New(result.Note))
		}
	}

	st.metrics.Validated = len(st.validated)
	st.stage = StageDistract
	return nil
}

// distract proposes wrong answers for each validated item and keeps the
// most plausible, type-diverse subset. An empty selection is fine; the
// assembler pads short option lists with filler.
func (p *Pipeline) distract(ctx context.Context, st *state) error {
	for _, item := range st.validated {
		guidance := taxonomy.Applicable(item.IntegralType, item.Difficulty)
		cands, err := p.distractors.Candidates(ctx, item, guidance)
		if err != nil {
			if abortWorthy(err) {
				return &StageFailure{Stage: StageDistract, Err: err}
			}
			p.drop(ctx, st, StageDistract, item.ID, err)
			continue
		}
		st.selected = append(st.selected, selection{
			item:        item,
			distractors: distractor.RankAndSelect(cands, p.cfg.DistractorsPerItem),
		})
	}

	st.stage = StageAssemble
	return nil
}

// assemble turns each selection into a labeled question and persists
// the snapshots. Event logging failures are warnings, but a snapshot
// write failure aborts the run.
func (p *Pipeline) assemble(ctx context.Context, st *state) error {
	for _, sel := range st.selected {
		item := p.assembler.Assemble(len(st.items)+1, sel.item, sel.distractors)
		st.items = append(st.items, item)
		st.metrics.Difficulty[item.Difficulty]++
	}
	st.metrics.Assembled = len(st.items)

	if p.snapshots != nil {
		for _, item := range st.items {
			if err := p.snapshots.SaveItem(ctx, snapshotData(st.runID, item)); err != nil {
				return &StageFailure{
					Stage: StageAssemble,
					Err:   fmt.Errorf("save item %d: %w", item.QuestionNumber, err),
				}
			}
		}
	}

	st.stage = StageDone
	return nil
}

func snapshotData(runID string, item assemble.Item) store.ItemSnapshotData {
	return store.ItemSnapshotData{
		RunID:          runID,
		QuestionNumber: item.QuestionNumber,
		ConceptID:      item.ConceptID,
		Difficulty:     string(item.Difficulty),
		Stem:           item.Stem,
		Options:        item.Options,
		CorrectLabel:   item.CorrectLabel,
		Explanations:   item.Explanations,
		Score:          item.Score,
		WasCorrected:   item.WasCorrected,
		IntegralType:   item.IntegralType,
	}
}
