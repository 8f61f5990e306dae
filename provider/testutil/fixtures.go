package testutil

import "llmchat/model"

// TestSystemPrompt is the system prompt used by fixtures.
const TestSystemPrompt = "You are a test assistant."

// TestMessages returns a sample conversation for testing
func TestMessages() []model.Message {
	return []model.Message{
		model.SystemMessage(TestSystemPrompt),
		model.UserMessage("Hello, how are you?"),
		model.AssistantMessage("I'm doing well, thank you!"),
		model.UserMessage("Can you help me with a task?"),
	}
}

// TestHistory returns a fresh history with TestSystemPrompt.
func TestHistory() model.History {
	return model.NewHistory(TestSystemPrompt)
}
