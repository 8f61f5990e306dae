package model

import "context"

// Provider abstracts LLM provider implementations (OpenAI-compatible,
// Anthropic, Ollama) using the provider-agnostic types from this package.
//
// This interface is defined in the model package (not provider package) to avoid
// import cycles: provider implementations can import model, and model can use the
// Provider interface without importing the provider package.
type Provider interface {
	// Chat sends messages and streams the reply back via callback.
	// Failures are reported as *CompletionError.
	Chat(ctx context.Context, messages []Message, callback StreamCallback) error

	// GetModel returns the model identifier sent to the service.
	GetModel() string

	// Name returns the provider id used in logs and error messages.
	Name() string
}

// StreamCallback is called once per non-empty fragment, in arrival order.
// Returning an error stops the stream.
type StreamCallback func(fragment string) error
