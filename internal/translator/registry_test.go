package translator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearleaf/leaflet-translation-service/internal/domain"
	"github.com/clearleaf/leaflet-translation-service/internal/prompt"
)

type stubBackend struct {
	id  string
	out string
	err error
}

func (s *stubBackend) ID() string { return s.id }

func (s *stubBackend) Translate(_ context.Context, _ prompt.Payload) (*Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &Result{Content: s.out}, nil
}

func TestRegistryGet(t *testing.T) {
	reg, err := NewRegistry(
		&stubBackend{id: "claude-3-opus"},
		&stubBackend{id: "gpt-4o"},
		&stubBackend{id: "claude-3-5-sonnet"},
	)
	require.NoError(t, err)

	for _, id := range []string{"claude-3-opus", "gpt-4o", "claude-3-5-sonnet"} {
		b, err := reg.Get(id)
		require.NoError(t, err)
		assert.Equal(t, id, b.ID())
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	reg, err := NewRegistry(&stubBackend{id: "gpt-4o"})
	require.NoError(t, err)

	_, err = reg.Get("mystery-model")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}

func TestRegistryDefaultIsFirstConfigured(t *testing.T) {
	reg, err := NewRegistry(
		&stubBackend{id: "claude-3-opus"},
		&stubBackend{id: "gpt-4o"},
	)
	require.NoError(t, err)

	// Deterministic across repeated calls.
	for i := 0; i < 5; i++ {
		assert.Equal(t, "claude-3-opus", reg.Default().ID())
	}
}

func TestRegistryIDsPreserveDeclaredOrder(t *testing.T) {
	reg, err := NewRegistry(
		&stubBackend{id: "claude-3-opus"},
		&stubBackend{id: "gpt-4o"},
		&stubBackend{id: "claude-3-5-sonnet"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"claude-3-opus", "gpt-4o", "claude-3-5-sonnet"}, reg.IDs())
}

func TestRegistryRejectsDuplicateIDs(t *testing.T) {
	_, err := NewRegistry(
		&stubBackend{id: "gpt-4o"},
		&stubBackend{id: "gpt-4o"},
	)
	require.Error(t, err)
}

func TestRegistryRequiresBackends(t *testing.T) {
	_, err := NewRegistry()
	require.Error(t, err)
}
