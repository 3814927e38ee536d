package translator

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearleaf/leaflet-translation-service/internal/prompt"
)

func integrationPayload(t *testing.T) prompt.Payload {
	t.Helper()
	tmpl, err := prompt.New()
	require.NoError(t, err)
	payload, err := tmpl.Format("Take 2 tablets daily")
	require.NoError(t, err)
	return payload
}

func TestOpenAIBackendIntegration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	backend := NewOpenAIBackend("gpt-4o", "gpt-4o", apiKey)
	result, err := backend.Translate(context.Background(), integrationPayload(t))
	require.NoError(t, err)

	assert.NotEmpty(t, result.Content)
	assert.NotEmpty(t, result.Metadata["model"])
	t.Logf("translation: %s", result.Content)
}

func TestAnthropicBackendIntegration(t *testing.T) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: ANTHROPIC_API_KEY not set")
	}

	backend := NewAnthropicBackend("claude-3-5-sonnet", "claude-3-5-sonnet-20240620", apiKey)
	result, err := backend.Translate(context.Background(), integrationPayload(t))
	require.NoError(t, err)

	assert.NotEmpty(t, result.Content)
	assert.NotEmpty(t, result.Metadata["model"])
	t.Logf("translation: %s", result.Content)
}
