package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	content string
	err     error
	reads   int
}

func (c *fakeClipboard) ReadAll() (string, error) {
	c.reads++
	return c.content, c.err
}

func TestRewriteClipboardURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com/article", "summarize https://example.com/article"},
		{"http://example.com", "summarize http://example.com"},
		{"ftp://example.com/file", "ftp://example.com/file"},
		{"see https://example.com", "see https://example.com"},
		{"HTTPS://EXAMPLE.COM", "HTTPS://EXAMPLE.COM"},
		{"plain text", "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, RewriteClipboardURL(tt.in))
		})
	}
}

func TestResolveInitialInput(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		paste     bool
		clipboard string
		want      InitialInput
		wantReads int
		wantErr   error
	}{
		{
			name: "no input",
			want: InitialInput{},
		},
		{
			name: "positional text",
			text: "explain goroutines",
			want: InitialInput{Text: "explain goroutines", Source: SourceArgument},
		},
		{
			name:      "positional text wins over paste",
			text:      "from args",
			paste:     true,
			clipboard: "from clipboard",
			want:      InitialInput{Text: "from args", Source: SourceArgument},
		},
		{
			name:      "paste",
			paste:     true,
			clipboard: "from clipboard",
			want:      InitialInput{Text: "from clipboard", Source: SourceClipboard},
			wantReads: 1,
		},
		{
			name:      "paste url",
			paste:     true,
			clipboard: "https://example.com/article",
			want:      InitialInput{Text: "summarize https://example.com/article", Source: SourceClipboard},
			wantReads: 1,
		},
		{
			name:      "empty clipboard",
			paste:     true,
			wantReads: 1,
			wantErr:   ErrClipboardEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := &fakeClipboard{content: tt.clipboard}

			got, err := ResolveInitialInput(tt.text, tt.paste, cb)

			assert.Equal(t, tt.wantReads, cb.reads)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, got.Present())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Source != SourceNone, got.Present())
		})
	}
}

func TestResolveInitialInputClipboardFailure(t *testing.T) {
	cb := &fakeClipboard{err: errors.New("xclip not found")}

	_, err := ResolveInitialInput("", true, cb)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrClipboardEmpty)
	assert.Contains(t, err.Error(), "xclip not found")
}
