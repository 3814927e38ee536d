package translator

import (
	"context"
	"fmt"
	"strings"

	anthropic "github.com/liushuangls/go-anthropic/v2"

	"github.com/clearleaf/leaflet-translation-service/internal/prompt"
)

// AnthropicBackend invokes a Claude model through the Anthropic messages
// API.
type AnthropicBackend struct {
	id        string
	model     string
	maxTokens int
	client    *anthropic.Client
}

// NewAnthropicBackend creates a backend for the given Claude model, e.g.
// "claude-3-opus-20240229".
func NewAnthropicBackend(id, model, apiKey string) *AnthropicBackend {
	return &AnthropicBackend{
		id:        id,
		model:     model,
		maxTokens: 4096,
		client:    anthropic.NewClient(apiKey),
	}
}

func (b *AnthropicBackend) ID() string { return b.id }

func (b *AnthropicBackend) Translate(ctx context.Context, p prompt.Payload) (*Result, error) {
	resp, err := b.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(b.model),
		System:    p.System,
		MaxTokens: b.maxTokens,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(p.User),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("backend %s: %w", b.id, err)
	}

	content := strings.TrimSpace(resp.GetFirstContentText())
	if content == "" {
		return nil, fmt.Errorf("backend %s: empty response content", b.id)
	}

	metadata := map[string]interface{}{
		"model":         string(resp.Model),
		"input_tokens":  resp.Usage.InputTokens,
		"output_tokens": resp.Usage.OutputTokens,
	}
	if resp.StopReason != "" {
		metadata["stop_reason"] = string(resp.StopReason)
	}

	return &Result{Content: content, Metadata: metadata}, nil
}
