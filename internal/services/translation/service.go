// Package translation implements the orchestration layer: it binds a prompt
// template to a primary translator backend and turns raw leaflet text into
// translated output.
package translation

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/clearleaf/leaflet-translation-service/internal/config"
	"github.com/clearleaf/leaflet-translation-service/internal/prompt"
	"github.com/clearleaf/leaflet-translation-service/internal/translator"
	"github.com/clearleaf/leaflet-translation-service/pkg/logger"
)

// Service is the single entry point for translation requests. It is
// read-only after construction and safe for concurrent use; the only
// mutable state is the informational readiness flag.
type Service struct {
	registry    *translator.Registry
	primary     translator.Backend
	template    *prompt.Template
	initialized atomic.Bool
}

var (
	serviceInstance *Service
	serviceInitErr  error
	serviceOnce     sync.Once
)

// GetService returns the process-wide service instance, constructing it on
// first access from configuration. A failed construction is remembered and
// re-reported on later calls.
func GetService(cfg *config.Config) (*Service, error) {
	serviceOnce.Do(func() {
		var reg *translator.Registry
		reg, serviceInitErr = translator.NewRegistryFromConfig(cfg)
		if serviceInitErr != nil {
			return
		}
		var tmpl *prompt.Template
		tmpl, serviceInitErr = prompt.New()
		if serviceInitErr != nil {
			return
		}
		serviceInstance = NewService(reg, tmpl)
	})
	return serviceInstance, serviceInitErr
}

// NewService constructs a service bound to the registry's default backend.
// The primary backend is fixed at construction; per-call selection is not
// part of the current design.
func NewService(registry *translator.Registry, template *prompt.Template) *Service {
	return &Service{
		registry: registry,
		primary:  registry.Default(),
		template: template,
	}
}

// Initialize marks the service ready. The flag feeds readiness probes only;
// it does not gate Translate, so warm-start requests issued before
// initialization still execute.
func (s *Service) Initialize() {
	s.initialized.Store(true)
	logger.Base().Info("translation service initialized",
		zap.String("primary_backend", s.primary.ID()),
		zap.Strings("backends", s.registry.IDs()),
	)
}

// IsInitialized reports whether Initialize has been called.
func (s *Service) IsInitialized() bool {
	return s.initialized.Load()
}

// Registry exposes the configured backend set for lookup by id.
func (s *Service) Registry() *translator.Registry {
	return s.registry
}

// BackendIDs lists the configured backend ids in declared order.
func (s *Service) BackendIDs() []string {
	return s.registry.IDs()
}

// PrimaryBackendID returns the id of the backend bound at construction.
func (s *Service) PrimaryBackendID() string {
	return s.primary.ID()
}

// Translate formats the input through the prompt template, invokes the
// primary backend and returns its output text. Backend failures propagate
// unmodified to the caller; there is no retry and no fallback backend.
func (s *Service) Translate(ctx context.Context, textInput string) (string, error) {
	payload, err := s.template.Format(textInput)
	if err != nil {
		return "", err
	}

	result, err := s.primary.Translate(ctx, payload)
	if err != nil {
		return "", err
	}

	logger.Base().Info("backend invocation completed",
		zap.String("backend", s.primary.ID()),
		zap.Any("metadata", result.Metadata),
	)

	return result.Content, nil
}
