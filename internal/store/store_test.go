package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"llm_request_events", "run_events", "validation_events", "item_snapshots"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
		assert.Equal(t, table, name)
	}
}

func TestEventSequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newEventSequence(s.DB())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		require.NoError(t, err, "next %d", i)
		assert.Equal(t, int64(i+1), seq)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{RunID: "run-1", Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "stem-gen",
			InputTokens: 100, OutputTokens: 200, CostUSD: 0.001, LatencyMs: 50, Success: true,
			RequestBody: "generate a stem", ResponseBody: `{"items":[]}`},
		{RunID: "run-1", Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "stem-gen",
			InputTokens: 110, OutputTokens: 210, CostUSD: 0.001, LatencyMs: 70, Success: true},
		{RunID: "run-1", Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "distractor-gen",
			InputTokens: 50, OutputTokens: 80, CostUSD: 0.0005, LatencyMs: 40, Success: false,
			ErrorMessage: "rate limited"},
	}
	for i, c := range calls {
		require.NoError(t, repo.AppendLLMRequest(ctx, c), "append %d", i)
	}

	// Newest first, limit respected.
	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "distractor-gen", events[0].Purpose)
	assert.Equal(t, "stem-gen", events[1].Purpose)
	assert.Greater(t, events[0].Sequence, events[1].Sequence)

	// Single lookup round-trips the bodies.
	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	first := all[len(all)-1]
	got, err := repo.GetLLMEvent(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "generate a stem", got.RequestBody)
	assert.Equal(t, `{"items":[]}`, got.ResponseBody)
	assert.Equal(t, "run-1", got.RunID)

	// Missing ID returns nil, not an error.
	missing, err := repo.GetLLMEvent(ctx, 999999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "stem-gen", InputTokens: 100, OutputTokens: 200, CostUSD: 0.002, LatencyMs: 100, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "stem-gen", InputTokens: 300, OutputTokens: 400, CostUSD: 0.004, LatencyMs: 300, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "distractor-gen", InputTokens: 10, OutputTokens: 20, CostUSD: 0.001, LatencyMs: 50, Success: true},
	}
	for i, d := range data {
		require.NoError(t, repo.AppendLLMRequest(ctx, d), "append %d", i)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)

	// Sorted by call count, so stem-gen comes first.
	stem := byPurpose[0]
	assert.Equal(t, "stem-gen", stem.Purpose)
	assert.Equal(t, 2, stem.Calls)
	assert.Equal(t, 400, stem.InputTokens)
	assert.Equal(t, 600, stem.OutputTokens)
	assert.InDelta(t, 0.006, stem.CostUSD, 1e-9)
	assert.InDelta(t, 200, stem.AvgLatencyMs, 0.001)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "gemini-2.5-flash", byModel[0].Model)
	assert.Equal(t, 2, byModel[0].Calls)
}

func TestRunUsageFiltersByRun(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{RunID: "run-1", Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "stem-gen", InputTokens: 100, OutputTokens: 200, CostUSD: 0.002, Success: true},
		{RunID: "run-1", Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "distractor-gen", InputTokens: 50, OutputTokens: 60, CostUSD: 0.001, Success: true},
		{RunID: "run-2", Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "stem-gen", InputTokens: 999, OutputTokens: 999, CostUSD: 0.1, Success: true},
	}
	for i, d := range data {
		require.NoError(t, repo.AppendLLMRequest(ctx, d), "append %d", i)
	}

	usage, err := repo.RunUsage(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 2, usage.Calls)
	assert.Equal(t, 150, usage.InputTokens)
	assert.Equal(t, 260, usage.OutputTokens)
	assert.InDelta(t, 0.003, usage.CostUSD, 1e-9)

	empty, err := repo.RunUsage(ctx, "no-such-run")
	require.NoError(t, err)
	assert.Equal(t, RunUsage{}, empty)
}

func TestRunLogKeepsAppendOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	stages := []RunEventData{
		{RunID: "run-a", Stage: "extract", Kind: "started"},
		{RunID: "run-a", Stage: "generate", Kind: "batch", Detail: "batch 1 of 2", Counts: map[string]int{"generated": 5}},
		{RunID: "run-b", Stage: "extract", Kind: "started"},
		{RunID: "run-a", Stage: "done", Kind: "completed", Counts: map[string]int{"assembled": 9}},
	}
	for i, e := range stages {
		require.NoError(t, repo.AppendRun(ctx, e), "append %d", i)
	}

	log, err := repo.RunLog(ctx, "run-a")
	require.NoError(t, err)
	require.Len(t, log, 3)
	assert.Equal(t, "extract", log[0].Stage)
	assert.Equal(t, "generate", log[1].Stage)
	assert.Equal(t, "done", log[2].Stage)
	assert.Equal(t, 5, log[1].Counts["generated"])
	assert.Equal(t, 9, log[2].Counts["assembled"])
}

func TestValidationLogFiltersByRun(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []ValidationEventData{
		{RunID: "run-a", ItemID: "item-1", ConceptID: "power_rule", Passed: true, Confidence: 1.0},
		{RunID: "run-a", ItemID: "item-2", ConceptID: "power_rule", Passed: false, Confidence: 1.0,
			Corrected: true, Note: "answer replaced", OriginalAnswer: "$x^2$"},
		{RunID: "run-b", ItemID: "item-3", ConceptID: "u_substitution", Passed: false, Confidence: 0,
			Note: "derivative mismatch"},
	}
	for i, e := range events {
		require.NoError(t, repo.AppendValidation(ctx, e), "append %d", i)
	}

	log, err := repo.ValidationLog(ctx, "run-a")
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.True(t, log[0].Passed)
	assert.True(t, log[1].Corrected)
	assert.Equal(t, "$x^2$", log[1].OriginalAnswer)
}

func testItemData(runID string, n int) ItemSnapshotData {
	return ItemSnapshotData{
		RunID:          runID,
		QuestionNumber: n,
		ConceptID:      "power_rule",
		Difficulty:     "easy",
		Stem:           `Evaluate $\int x \, dx$`,
		Options: map[string]string{
			"a": `$\frac{x^2}{2} + C$`, "b": `$x^2 + C$`,
			"c": `$2x + C$`, "d": `$\frac{x^3}{3} + C$`,
		},
		CorrectLabel: "a",
		Explanations: map[string]string{
			"correct": "This is the correct answer. Apply the power rule.",
			"b":       "Forgot to divide by the new exponent.",
		},
		Score:        1.0,
		IntegralType: "polynomial",
	}
}

func TestItemSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Saved out of order, read back by question number.
	require.NoError(t, repo.SaveItem(ctx, testItemData("run-1", 2)))
	require.NoError(t, repo.SaveItem(ctx, testItemData("run-1", 1)))

	items, err := repo.ItemsForRun(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].QuestionNumber)
	assert.Equal(t, 2, items[1].QuestionNumber)

	got := items[0]
	assert.Equal(t, "a", got.CorrectLabel)
	assert.Equal(t, `$\frac{x^2}{2} + C$`, got.Options["a"])
	assert.Equal(t, "Forgot to divide by the new exponent.", got.Explanations["b"])
	assert.Equal(t, "polynomial", got.IntegralType)
}

func TestLatestRunID(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	id, err := repo.LatestRunID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", id, "empty store has no latest run")

	require.NoError(t, repo.SaveItem(ctx, testItemData("run-1", 1)))
	require.NoError(t, repo.SaveItem(ctx, testItemData("run-2", 1)))

	id, err = repo.LatestRunID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-2", id)
}

func TestPruneRuns(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for _, runID := range []string{"run-1", "run-2", "run-3"} {
		require.NoError(t, repo.SaveItem(ctx, testItemData(runID, 1)))
		require.NoError(t, repo.SaveItem(ctx, testItemData(runID, 2)))
	}

	require.NoError(t, repo.PruneRuns(ctx, 2))

	gone, err := repo.ItemsForRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Empty(t, gone, "oldest run should be pruned")

	for _, runID := range []string{"run-2", "run-3"} {
		items, err := repo.ItemsForRun(ctx, runID)
		require.NoError(t, err)
		assert.Len(t, items, 2, "run %s should survive", runID)
	}
}
