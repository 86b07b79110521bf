package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPurposeFrom_DefaultsToUnknown(t *testing.T) {
	require.Equal(t, "unknown", PurposeFrom(context.Background()))
}

func TestWithPurpose_RoundTrips(t *testing.T) {
	ctx := WithPurpose(context.Background(), "stem-gen")
	require.Equal(t, "stem-gen", PurposeFrom(ctx))

	// Inner annotations win.
	ctx = WithPurpose(ctx, "distractor-gen")
	require.Equal(t, "distractor-gen", PurposeFrom(ctx))
}

func TestRunIDFrom_DefaultsToEmpty(t *testing.T) {
	require.Empty(t, RunIDFrom(context.Background()))
}

func TestWithRunID_RoundTrips(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-20260215-0001")
	require.Equal(t, "run-20260215-0001", RunIDFrom(ctx))
}
