package provider

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"llmchat/config"
	"llmchat/model"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAIProvider implements model.Provider for any OpenAI-compatible chat
// completions endpoint using the official OpenAI Go SDK.
type OpenAIProvider struct {
	client  openai.Client
	id      string
	model   string
	baseURL string
}

// NewOpenAIProvider creates a new OpenAI-compatible provider instance.
//
// Parameters:
//   - id: provider id reported in errors (default: "openai")
//   - baseURL: API base URL (default: "https://api.openai.com/v1")
//   - apiKey: bearer credential (required)
//   - model: model identifier (required)
//
// The SDK's automatic retries are disabled.
func NewOpenAIProvider(id, baseURL, apiKey, model string) (*OpenAIProvider, error) {
	if id == "" {
		id = "openai"
	}
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%s API key is required", id)
	}
	if model == "" {
		return nil, fmt.Errorf("%s model is required", id)
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	)

	return &OpenAIProvider{
		client:  client,
		id:      id,
		model:   model,
		baseURL: baseURL,
	}, nil
}

// Chat implements model.Provider with a streaming chat completion.
func (p *OpenAIProvider) Chat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	params := openai.ChatCompletionNewParams{
		Messages: ConvertToOpenAIMessages(messages),
		Model:    openai.ChatModel(p.model),
	}

	stream := p.client.Chat.Completions.NewStreaming(ctx, params)
	defer stream.Close()

	chunks := 0
	for stream.Next() {
		chunk := stream.Current()
		chunks++

		// Keep-alive and role-only chunks carry no choices or no content.
		if len(chunk.Choices) == 0 {
			continue
		}
		content := chunk.Choices[0].Delta.Content
		if content == "" {
			continue
		}
		if callback != nil {
			if err := callback(content); err != nil {
				return p.completionError(err)
			}
		}
	}

	if err := stream.Err(); err != nil {
		return p.completionError(err)
	}

	config.DebugLog.Debugw("openai stream finished", "provider", p.id, "chunks", chunks)
	return nil
}

// GetModel implements model.Provider.
func (p *OpenAIProvider) GetModel() string {
	return p.model
}

// Name implements model.Provider.
func (p *OpenAIProvider) Name() string {
	return p.id
}

// BaseURL returns the endpoint the provider talks to.
func (p *OpenAIProvider) BaseURL() string {
	return p.baseURL
}

func (p *OpenAIProvider) completionError(err error) error {
	return model.NewCompletionError(p.id, p.model, err)
}
