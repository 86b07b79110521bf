package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}

func TestNewProvider_UnknownBackend(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "watson"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown LLM provider")
}

func TestNewProvider_MissingKeySurfacesProviderName(t *testing.T) {
	_, err := NewProvider(context.Background(), DefaultConfig(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic")
}

func TestNewProviderFromEnv_NothingConfigured(t *testing.T) {
	t.Setenv("MCQGEN_LLM_PROVIDER", "")
	clearProviderKeys(t)

	_, err := NewProviderFromEnv(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no LLM provider configured")
}

func TestNewPipelineProviderFromEnv_UsesMockWithoutKeys(t *testing.T) {
	t.Setenv("MCQGEN_LLM_PROVIDER", "mock")

	p, err := NewPipelineProviderFromEnv(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}
