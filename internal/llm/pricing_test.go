package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 3, OutputPerMTok: 15}

	assert.InDelta(t, 18.0, c.Cost(1_000_000, 1_000_000), 1e-9)
	assert.InDelta(t, 0.0045, c.Cost(1000, 100), 1e-9)
	assert.Zero(t, c.Cost(0, 0))
}

func TestLookupCost_KnownModel(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	require.NotNil(t, c)
	assert.InDelta(t, 0.15, c.InputPerMTok, 1e-9)
	assert.InDelta(t, 0.6, c.OutputPerMTok, 1e-9)
}

func TestLookupCost_UnknownModel(t *testing.T) {
	assert.Nil(t, LookupCost("llama-guard-3-8b"))
}

func TestLookupCost_StripsOpenRouterVendorPrefix(t *testing.T) {
	direct := LookupCost("claude-haiku-4-5")
	routed := LookupCost("anthropic/claude-haiku-4-5")

	require.NotNil(t, direct)
	require.NotNil(t, routed)
	assert.Equal(t, *direct, *routed)

	// A prefix on an unknown model still comes back nil.
	assert.Nil(t, LookupCost("mystery/unpriced-model"))
}

func TestLookupCost_CoversDefaultModels(t *testing.T) {
	// Models the default config can select should be priced so cost
	// tracking works out of the box.
	for _, id := range []string{
		"claude-sonnet-4-20250514",
		"claude-haiku-4-5-20251001",
		"gpt-4o",
		"gpt-4o-mini",
		"gemini-2.0-flash",
	} {
		assert.NotNilf(t, LookupCost(id), "model %q is unpriced", id)
	}
}
