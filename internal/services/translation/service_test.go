package translation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearleaf/leaflet-translation-service/internal/config"
	"github.com/clearleaf/leaflet-translation-service/internal/prompt"
	"github.com/clearleaf/leaflet-translation-service/internal/translator"
)

type stubBackend struct {
	id      string
	out     string
	err     error
	lastReq prompt.Payload
}

func (s *stubBackend) ID() string { return s.id }

func (s *stubBackend) Translate(_ context.Context, p prompt.Payload) (*translator.Result, error) {
	s.lastReq = p
	if s.err != nil {
		return nil, s.err
	}
	return &translator.Result{
		Content:  s.out,
		Metadata: map[string]interface{}{"model": s.id},
	}, nil
}

func newTestService(t *testing.T, backends ...translator.Backend) (*Service, *stubBackend) {
	t.Helper()
	reg, err := translator.NewRegistry(backends...)
	require.NoError(t, err)
	tmpl, err := prompt.New()
	require.NoError(t, err)
	return NewService(reg, tmpl), backends[0].(*stubBackend)
}

func TestTranslateReturnsBackendOutput(t *testing.T) {
	svc, primary := newTestService(t,
		&stubBackend{id: "gpt-4o", out: "Prenez 2 comprimés par jour"},
		&stubBackend{id: "claude-3-opus", out: "unused"},
	)

	got, err := svc.Translate(context.Background(), "Take 2 tablets daily")
	require.NoError(t, err)
	assert.Equal(t, "Prenez 2 comprimés par jour", got)

	// The backend receives the templated prompt, not the raw input.
	assert.Contains(t, primary.lastReq.User, "Take 2 tablets daily")
	assert.NotEmpty(t, primary.lastReq.System)
}

func TestTranslateBindsFirstConfiguredBackend(t *testing.T) {
	svc, _ := newTestService(t,
		&stubBackend{id: "claude-3-opus", out: "from opus"},
		&stubBackend{id: "gpt-4o", out: "from gpt"},
	)

	assert.Equal(t, "claude-3-opus", svc.PrimaryBackendID())

	got, err := svc.Translate(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "from opus", got)
}

func TestTranslatePropagatesBackendFailure(t *testing.T) {
	backendErr := errors.New("quota exceeded")
	svc, _ := newTestService(t, &stubBackend{id: "gpt-4o", err: backendErr})

	_, err := svc.Translate(context.Background(), "text")
	require.Error(t, err)
	assert.ErrorIs(t, err, backendErr)
}

func TestInitializeFlag(t *testing.T) {
	svc, _ := newTestService(t, &stubBackend{id: "gpt-4o", out: "ok"})

	assert.False(t, svc.IsInitialized())

	// Translation is permitted before Initialize; the flag feeds readiness
	// probes only.
	_, err := svc.Translate(context.Background(), "early call")
	require.NoError(t, err)

	svc.Initialize()
	assert.True(t, svc.IsInitialized())
}

func TestBackendIDs(t *testing.T) {
	svc, _ := newTestService(t,
		&stubBackend{id: "gpt-4o", out: "ok"},
		&stubBackend{id: "claude-3-opus", out: "ok"},
	)
	assert.Equal(t, []string{"gpt-4o", "claude-3-opus"}, svc.BackendIDs())
}

func TestGetServiceReturnsSingleInstance(t *testing.T) {
	cfg := &config.Config{
		OpenAIAPIKey:      "sk-test",
		AnthropicAPIKey:   "sk-ant-test",
		OpenAIModel:       "gpt-4o",
		ClaudeOpusModel:   "claude-3-opus-20240229",
		ClaudeSonnetModel: "claude-3-5-sonnet-20240620",
	}

	first, err := GetService(cfg)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := GetService(cfg)
	require.NoError(t, err)
	assert.Same(t, first, second)
}
