package store

import (
	"context"
	"fmt"

	"github.com/arjun/mcqgen/ent"
	"github.com/arjun/mcqgen/ent/validationevent"
)

func (r *eventRepo) AppendValidation(ctx context.Context, data ValidationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ValidationEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetItemID(data.ItemID).
		SetConceptID(data.ConceptID).
		SetPassed(data.Passed).
		SetConfidence(data.Confidence).
		SetCorrected(data.Corrected).
		SetNote(data.Note).
		SetOriginalAnswer(data.OriginalAnswer).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save validation event: %w", err)
	}
	return nil
}

func (r *eventRepo) ValidationLog(ctx context.Context, runID string) ([]*ent.ValidationEvent, error) {
	events, err := r.client.ValidationEvent.Query().
		Where(validationevent.RunIDEQ(runID)).
		Order(ent.Asc(validationevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query validation log: %w", err)
	}
	return events, nil
}
