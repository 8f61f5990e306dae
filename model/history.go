package model

// History is the ordered, in-memory conversation log for one session.
//
// A History always starts with a single system message. Append never
// modifies the receiver: it returns a working copy, so a caller holding
// an older History keeps seeing the messages it had.
type History struct {
	messages []Message
}

// NewHistory creates a history holding only the system prompt.
func NewHistory(systemPrompt string) History {
	return History{messages: []Message{SystemMessage(systemPrompt)}}
}

// Append returns a copy of h with msg added at the end.
func (h History) Append(msg Message) History {
	next := make([]Message, len(h.messages), len(h.messages)+1)
	copy(next, h.messages)
	return History{messages: append(next, msg)}
}

// Reset returns a history holding only h's system message.
func (h History) Reset() History {
	if len(h.messages) == 0 {
		return History{}
	}
	return NewHistory(h.messages[0].Content)
}

// Len returns the number of messages, system message included.
func (h History) Len() int {
	return len(h.messages)
}

// Messages returns a copy of the messages in order.
func (h History) Messages() []Message {
	out := make([]Message, len(h.messages))
	copy(out, h.messages)
	return out
}

// Last returns the most recent message, or false for an empty history.
func (h History) Last() (Message, bool) {
	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

// SystemPrompt returns the content of the leading system message.
func (h History) SystemPrompt() string {
	if len(h.messages) == 0 || h.messages[0].Role != RoleSystem {
		return ""
	}
	return h.messages[0].Content
}
