package provider

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"llmchat/config"
	"llmchat/model"
)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com"
	anthropicMaxTokens      = 4096 // Required by Anthropic API
)

// AnthropicProvider implements model.Provider using Anthropic's official API.
type AnthropicProvider struct {
	client  *anthropic.Client
	id      string
	model   anthropic.Model
	baseURL string
}

// NewAnthropicProvider creates a new Anthropic provider instance.
//
// Parameters:
//   - id: provider id reported in errors (default: "anthropic")
//   - baseURL: Anthropic API base URL (default: "https://api.anthropic.com")
//   - apiKey: Anthropic API key (required)
//   - model: model identifier (default: "claude-sonnet-4-5-20250929")
func NewAnthropicProvider(id, baseURL, apiKey, modelName string) (*AnthropicProvider, error) {
	if id == "" {
		id = "anthropic"
	}
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%s API key is required", id)
	}

	anthropicModel := anthropic.ModelClaudeSonnet4_5_20250929
	if modelName != "" {
		anthropicModel = anthropic.Model(modelName)
	}

	client := anthropic.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	)

	return &AnthropicProvider{
		client:  &client,
		id:      id,
		model:   anthropicModel,
		baseURL: baseURL,
	}, nil
}

// Chat implements model.Provider with a streaming Messages request.
func (p *AnthropicProvider) Chat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	anthropicMessages, systemPrompt := convertToAnthropicMessages(messages)

	params := anthropic.MessageNewParams{
		Model:     p.model,
		Messages:  anthropicMessages,
		MaxTokens: anthropicMaxTokens,
	}
	if len(systemPrompt) > 0 {
		params.System = systemPrompt
	}

	stream := p.client.Messages.NewStreaming(ctx, params)
	defer stream.Close()

	events := 0
	for stream.Next() {
		event := stream.Current()
		events++

		switch eventVariant := event.AsAny().(type) {
		case anthropic.ContentBlockDeltaEvent:
			switch deltaVariant := eventVariant.Delta.AsAny().(type) {
			case anthropic.TextDelta:
				if deltaVariant.Text == "" || callback == nil {
					continue
				}
				if err := callback(deltaVariant.Text); err != nil {
					return model.NewCompletionError(p.id, string(p.model), err)
				}
			}
		}
	}

	if err := stream.Err(); err != nil {
		return model.NewCompletionError(p.id, string(p.model), err)
	}

	config.DebugLog.Debugw("anthropic stream finished", "provider", p.id, "events", events)
	return nil
}

// GetModel implements model.Provider.
func (p *AnthropicProvider) GetModel() string {
	return string(p.model)
}

// Name implements model.Provider.
func (p *AnthropicProvider) Name() string {
	return p.id
}
