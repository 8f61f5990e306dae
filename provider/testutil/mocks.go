package testutil

import (
	"context"
	"errors"
	"strings"

	"llmchat/model"
)

// ErrMockStream is returned by providers built with FailingProvider.
var ErrMockStream = errors.New("mock stream failure")

// MockProvider implements model.Provider for testing
type MockProvider struct {
	// ChatFunc is called by Chat; the default streams Fragments.
	ChatFunc func(ctx context.Context, messages []model.Message, callback model.StreamCallback) error

	// Fragments streamed by the default ChatFunc.
	Fragments []string

	// Calls records the messages of every Chat call.
	Calls [][]model.Message

	currentModel string
}

// NewMockProvider creates a mock provider that streams fragments in order.
func NewMockProvider(modelName string, fragments ...string) *MockProvider {
	mock := &MockProvider{
		currentModel: modelName,
		Fragments:    fragments,
	}
	mock.ChatFunc = mock.defaultChat
	return mock
}

// FailingProvider streams fragments and then fails with ErrMockStream.
func FailingProvider(modelName string, fragments ...string) *MockProvider {
	mock := NewMockProvider(modelName, fragments...)
	mock.ChatFunc = func(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
		if err := mock.defaultChat(ctx, messages, callback); err != nil {
			return err
		}
		return model.NewCompletionError("mock", modelName, ErrMockStream)
	}
	return mock
}

// EchoProvider replies with the last user message split into words.
func EchoProvider(modelName string) *MockProvider {
	mock := NewMockProvider(modelName)
	mock.ChatFunc = func(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
		last := messages[len(messages)-1].Content
		for _, word := range strings.SplitAfter(last, " ") {
			if err := callback(word); err != nil {
				return err
			}
		}
		return nil
	}
	return mock
}

func (m *MockProvider) defaultChat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	for _, fragment := range m.Fragments {
		if fragment == "" {
			continue
		}
		if err := callback(fragment); err != nil {
			return err
		}
	}
	return nil
}

func (m *MockProvider) Chat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	snapshot := make([]model.Message, len(messages))
	copy(snapshot, messages)
	m.Calls = append(m.Calls, snapshot)
	return m.ChatFunc(ctx, messages, callback)
}

func (m *MockProvider) GetModel() string {
	return m.currentModel
}

func (m *MockProvider) Name() string {
	return "mock"
}
