package translator

import (
	"fmt"

	"github.com/clearleaf/leaflet-translation-service/internal/config"
	"github.com/clearleaf/leaflet-translation-service/internal/domain"
)

// Registry holds the configured set of translator backends in declared
// order. It is built once at startup and read-only afterwards, so it is safe
// for concurrent use.
type Registry struct {
	order    []string
	backends map[string]Backend
}

// NewRegistry builds a registry from backends in declared order. Duplicate
// ids are a configuration error.
func NewRegistry(backends ...Backend) (*Registry, error) {
	if len(backends) == 0 {
		return nil, fmt.Errorf("registry requires at least one backend")
	}

	r := &Registry{backends: make(map[string]Backend, len(backends))}
	for _, b := range backends {
		if _, exists := r.backends[b.ID()]; exists {
			return nil, fmt.Errorf("duplicate backend id %q", b.ID())
		}
		r.backends[b.ID()] = b
		r.order = append(r.order, b.ID())
	}
	return r, nil
}

// NewRegistryFromConfig wires the production backend set. Declared order is
// deliberate: the first entry is the default the orchestrator binds to.
func NewRegistryFromConfig(cfg *config.Config) (*Registry, error) {
	return NewRegistry(
		NewOpenAIBackend("gpt-4o", cfg.OpenAIModel, cfg.OpenAIAPIKey),
		NewAnthropicBackend("claude-3-opus", cfg.ClaudeOpusModel, cfg.AnthropicAPIKey),
		NewAnthropicBackend("claude-3-5-sonnet", cfg.ClaudeSonnetModel, cfg.AnthropicAPIKey),
	)
}

// Get returns the backend with the given id, or ErrUnknownBackend.
func (r *Registry) Get(id string) (Backend, error) {
	b, ok := r.backends[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownBackend, id)
	}
	return b, nil
}

// Default returns the first backend in declared order. This is a fixed
// tie-break policy, not a quality ranking.
func (r *Registry) Default() Backend {
	return r.backends[r.order[0]]
}

// IDs returns backend ids in declared order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}
