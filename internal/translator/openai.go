package translator

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/clearleaf/leaflet-translation-service/internal/prompt"
)

// OpenAIBackend invokes an OpenAI chat model through the chat completions
// API.
type OpenAIBackend struct {
	id     string
	model  string
	client *openai.Client
}

// NewOpenAIBackend creates a backend for the given model, e.g. "gpt-4o".
// The id tags records and registry lookups and must be unique per registry.
func NewOpenAIBackend(id, model, apiKey string) *OpenAIBackend {
	return &OpenAIBackend{
		id:     id,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

func (b *OpenAIBackend) ID() string { return b.id }

func (b *OpenAIBackend) Translate(ctx context.Context, p prompt.Payload) (*Result, error) {
	req := openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.System},
			{Role: openai.ChatMessageRoleUser, Content: p.User},
		},
	}

	resp, err := b.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("backend %s: %w", b.id, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("backend %s: no choices in response", b.id)
	}

	return &Result{
		Content: strings.TrimSpace(resp.Choices[0].Message.Content),
		Metadata: map[string]interface{}{
			"model":             resp.Model,
			"prompt_tokens":     resp.Usage.PromptTokens,
			"completion_tokens": resp.Usage.CompletionTokens,
			"total_tokens":      resp.Usage.TotalTokens,
			"finish_reason":     string(resp.Choices[0].FinishReason),
		},
	}, nil
}
