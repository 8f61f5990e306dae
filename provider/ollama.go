package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ollama/ollama/api"

	"llmchat/config"
	"llmchat/model"
)

const (
	defaultOllamaBaseURL = "http://localhost:11434"
	defaultOllamaModel   = "llama3.1:latest"
)

// OllamaProvider implements model.Provider against a local Ollama server.
// Ollama needs no credential.
type OllamaProvider struct {
	client  *api.Client
	id      string
	model   string
	baseURL string
}

// NewOllamaProvider creates a new Ollama provider instance.
//
// Parameters:
//   - id: provider id reported in errors (default: "ollama")
//   - baseURL: The Ollama server URL (default: "http://localhost:11434")
//   - model: The model name to use (default: "llama3.1:latest")
//
// Returns an error if the baseURL is invalid.
func NewOllamaProvider(id, baseURL, modelName string) (*OllamaProvider, error) {
	if id == "" {
		id = "ollama"
	}
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}
	if modelName == "" {
		modelName = defaultOllamaModel
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid Ollama URL %q: scheme and host required", baseURL)
	}

	return &OllamaProvider{
		client:  api.NewClient(parsedURL, http.DefaultClient),
		id:      id,
		model:   modelName,
		baseURL: baseURL,
	}, nil
}

// Chat implements model.Provider by streaming /api/chat responses.
func (p *OllamaProvider) Chat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	stream := true
	req := &api.ChatRequest{
		Model:    p.model,
		Messages: ConvertToOllamaMessages(messages),
		Stream:   &stream,
	}

	responses := 0
	respFunc := func(resp api.ChatResponse) error {
		responses++
		if resp.Message.Content == "" || callback == nil {
			return nil
		}
		return callback(resp.Message.Content)
	}

	if err := p.client.Chat(ctx, req, respFunc); err != nil {
		return model.NewCompletionError(p.id, p.model, err)
	}

	config.DebugLog.Debugw("ollama stream finished", "provider", p.id, "responses", responses)
	return nil
}

// GetModel implements model.Provider.
func (p *OllamaProvider) GetModel() string {
	return p.model
}

// Name implements model.Provider.
func (p *OllamaProvider) Name() string {
	return p.id
}
