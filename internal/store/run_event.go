package store

import (
	"context"
	"fmt"

	"github.com/arjun/mcqgen/ent"
	"github.com/arjun/mcqgen/ent/runevent"
)

func (r *eventRepo) AppendRun(ctx context.Context, data RunEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	create := r.client.RunEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetStage(data.Stage).
		SetKind(data.Kind).
		SetDetail(data.Detail)
	if data.Counts != nil {
		create = create.SetCounts(data.Counts)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save run event: %w", err)
	}
	return nil
}

func (r *eventRepo) RunLog(ctx context.Context, runID string) ([]*ent.RunEvent, error) {
	events, err := r.client.RunEvent.Query().
		Where(runevent.RunIDEQ(runID)).
		Order(ent.Asc(runevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query run log: %w", err)
	}
	return events, nil
}
