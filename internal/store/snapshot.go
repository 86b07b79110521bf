package store

import (
	"context"
	"fmt"

	"github.com/arjun/mcqgen/ent"
	"github.com/arjun/mcqgen/ent/itemsnapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) SaveItem(ctx context.Context, data ItemSnapshotData) error {
	_, err := r.client.ItemSnapshot.Create().
		SetRunID(data.RunID).
		SetQuestionNumber(data.QuestionNumber).
		SetConceptID(data.ConceptID).
		SetDifficulty(data.Difficulty).
		SetStem(data.Stem).
		SetOptions(data.Options).
		SetCorrectLabel(data.CorrectLabel).
		SetExplanations(data.Explanations).
		SetScore(data.Score).
		SetWasCorrected(data.WasCorrected).
		SetIntegralType(data.IntegralType).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save item snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) ItemsForRun(ctx context.Context, runID string) ([]*Item, error) {
	snaps, err := r.client.ItemSnapshot.Query().
		Where(itemsnapshot.RunIDEQ(runID)).
		Order(ent.Asc(itemsnapshot.FieldQuestionNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items for run: %w", err)
	}

	items := make([]*Item, len(snaps))
	for i, s := range snaps {
		items[i] = entSnapshotToItem(s)
	}
	return items, nil
}

func (r *snapshotRepo) LatestRunID(ctx context.Context) (string, error) {
	s, err := r.client.ItemSnapshot.Query().
		Order(ent.Desc(itemsnapshot.FieldTimestamp), ent.Desc(itemsnapshot.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query latest run: %w", err)
	}
	return s.RunID, nil
}

func (r *snapshotRepo) PruneRuns(ctx context.Context, keep int) error {
	// Walk items newest first, collecting distinct run IDs until the
	// keep budget is spent. Everything outside that set goes.
	snaps, err := r.client.ItemSnapshot.Query().
		Order(ent.Desc(itemsnapshot.FieldTimestamp), ent.Desc(itemsnapshot.FieldID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query items for prune: %w", err)
	}

	kept := make(map[string]bool)
	for _, s := range snaps {
		if kept[s.RunID] {
			continue
		}
		if len(kept) == keep {
			break
		}
		kept[s.RunID] = true
	}

	keepIDs := make([]string, 0, len(kept))
	for id := range kept {
		keepIDs = append(keepIDs, id)
	}

	_, err = r.client.ItemSnapshot.Delete().
		Where(itemsnapshot.RunIDNotIn(keepIDs...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune runs: %w", err)
	}
	return nil
}

// entSnapshotToItem converts an ent ItemSnapshot to a store Item.
func entSnapshotToItem(s *ent.ItemSnapshot) *Item {
	return &Item{
		ID:             s.ID,
		RunID:          s.RunID,
		QuestionNumber: s.QuestionNumber,
		Timestamp:      s.Timestamp,
		ConceptID:      s.ConceptID,
		Difficulty:     s.Difficulty,
		Stem:           s.Stem,
		Options:        s.Options,
		CorrectLabel:   s.CorrectLabel,
		Explanations:   s.Explanations,
		Score:          s.Score,
		WasCorrected:   s.WasCorrected,
		IntegralType:   s.IntegralType,
	}
}
