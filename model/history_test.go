package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistory(t *testing.T) {
	h := NewHistory("be brief")

	require.Equal(t, 1, h.Len())
	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, SystemMessage("be brief"), last)
	assert.Equal(t, "be brief", h.SystemPrompt())
}

func TestHistoryAppendDoesNotModifyReceiver(t *testing.T) {
	base := NewHistory("sys")
	first := base.Append(UserMessage("one"))
	second := base.Append(UserMessage("two"))

	assert.Equal(t, 1, base.Len())
	require.Equal(t, 2, first.Len())
	require.Equal(t, 2, second.Len())
	assert.Equal(t, "one", first.Messages()[1].Content)
	assert.Equal(t, "two", second.Messages()[1].Content)
}

func TestHistoryMessagesReturnsCopy(t *testing.T) {
	h := NewHistory("sys").Append(UserMessage("hi"))

	msgs := h.Messages()
	msgs[1].Content = "changed"

	assert.Equal(t, "hi", h.Messages()[1].Content)
}

func TestHistoryReset(t *testing.T) {
	tests := []struct {
		name  string
		turns int
	}{
		{"fresh", 0},
		{"one turn", 1},
		{"many turns", 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory("sys")
			for i := 0; i < tt.turns; i++ {
				h = h.Append(UserMessage("q")).Append(AssistantMessage("a"))
			}

			reset := h.Reset()

			require.Equal(t, 1, reset.Len())
			assert.Equal(t, SystemMessage("sys"), reset.Messages()[0])
		})
	}
}

func TestEmptyHistory(t *testing.T) {
	var h History

	_, ok := h.Last()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Reset().Len())
	assert.Empty(t, h.SystemPrompt())
}
