package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llmchat/config"
	"llmchat/ui"
)

type stubClipboard struct{ content string }

func (c stubClipboard) ReadAll() (string, error) { return c.content, nil }

type stubReader struct{ lines []string }

func (r *stubReader) Prompt(string) (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

type chatRequest struct {
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// chatBackend counts requests and keeps the decoded bodies.
type chatBackend struct {
	mu     sync.Mutex
	bodies []chatRequest
}

func (b *chatBackend) count() int32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return int32(len(b.bodies))
}

func (b *chatBackend) last(t *testing.T) chatRequest {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	require.NotEmpty(t, b.bodies)
	return b.bodies[len(b.bodies)-1]
}

// chatEnv configures a single OpenAI-compatible provider "test" backed by
// an httptest server that always replies "Hello!".
func chatEnv(t *testing.T) *chatBackend {
	t.Helper()
	backend := &chatBackend{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body chatRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		backend.mu.Lock()
		backend.bodies = append(backend.bodies, body)
		backend.mu.Unlock()
		w.Header().Set("Content-Type", "text/event-stream")
		for _, c := range []string{"Hello", "!"} {
			fmt.Fprintf(w, `data: {"id":"1","object":"chat.completion.chunk","created":1,"model":"test-model","choices":[{"index":0,"delta":{"content":%q}}]}`+"\n\n", c)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	settings := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(settings, []byte(fmt.Sprintf(`
default_provider = "test"

[[providers]]
id = "test"
name = "Test Provider"
model = "test-model"
base_url = %q
api_key_env = "LLMCHAT_TEST_KEY"
`, srv.URL)), 0600))

	t.Setenv("HOME", dir)
	t.Setenv("LLMCHAT_CONFIG", settings)
	t.Setenv("LLMCHAT_DEBUG", "")
	t.Setenv("LLMCHAT_TEST_KEY", "sk-test")
	return backend
}

func execute(t *testing.T, clip ui.Clipboard, reader *stubReader, args ...string) (string, bool, error) {
	t.Helper()
	readerCreated := false
	newReader := func() (ui.LineReader, func()) {
		readerCreated = true
		return reader, func() {}
	}

	var out bytes.Buffer
	cmd := newRootCmd(&options{}, clip, newReader)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), readerCreated, err
}

func TestRunWithPositionalText(t *testing.T) {
	backend := chatEnv(t)

	out, created, err := execute(t, stubClipboard{}, &stubReader{lines: []string{"exit"}}, "hi there")

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int32(1), backend.count())
	assert.Contains(t, out, "Current model: Test Provider")
	assert.Contains(t, out, "Hello!")
}

func TestRunInteractiveOnly(t *testing.T) {
	backend := chatEnv(t)

	out, _, err := execute(t, stubClipboard{}, &stubReader{lines: []string{"one", "two"}})

	require.NoError(t, err)
	assert.Equal(t, int32(2), backend.count())
	assert.Contains(t, out, "Multi-turn chat started")
}

func TestRunEmptyClipboardExitsCleanly(t *testing.T) {
	backend := chatEnv(t)

	out, created, err := execute(t, stubClipboard{}, &stubReader{}, "--paste")

	require.NoError(t, err)
	assert.False(t, created, "loop must not be entered")
	assert.Zero(t, backend.count())
	assert.Contains(t, out, "Clipboard is empty")
}

func TestRunPasteURL(t *testing.T) {
	backend := chatEnv(t)

	_, _, err := execute(t, stubClipboard{content: "https://example.com/article"}, &stubReader{}, "-p")

	require.NoError(t, err)
	assert.Equal(t, int32(1), backend.count())

	sent := backend.last(t).Messages
	require.Len(t, sent, 2)
	assert.Equal(t, "system", sent[0].Role)
	assert.Equal(t, "user", sent[1].Role)
	assert.Equal(t, "summarize https://example.com/article", sent[1].Content)
}

func TestRunRejectsURLFlag(t *testing.T) {
	backend := chatEnv(t)

	_, created, err := execute(t, stubClipboard{}, &stubReader{}, "--url", "https://example.com")

	assert.ErrorIs(t, err, ui.ErrURLUnsupported)
	assert.False(t, created)
	assert.Zero(t, backend.count())
}

func TestRunUnknownModel(t *testing.T) {
	backend := chatEnv(t)

	_, created, err := execute(t, stubClipboard{}, &stubReader{}, "-m", "gpt-5", "hello")

	var cfgErr *config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "model", cfgErr.Field)
	assert.False(t, created)
	assert.Zero(t, backend.count())
}

func TestRunMissingCredential(t *testing.T) {
	backend := chatEnv(t)
	t.Setenv("LLMCHAT_TEST_KEY", "")

	_, _, err := execute(t, stubClipboard{}, &stubReader{}, "hello")

	var cfgErr *config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "LLMCHAT_TEST_KEY", cfgErr.Field)
	assert.Zero(t, backend.count())
}

func TestRunTooManyArgs(t *testing.T) {
	chatEnv(t)

	_, created, err := execute(t, stubClipboard{}, &stubReader{}, "one", "two")

	assert.Error(t, err)
	assert.False(t, created)
}

func TestConfigCommand(t *testing.T) {
	chatEnv(t)

	out, _, err := execute(t, stubClipboard{}, &stubReader{}, "config")

	require.NoError(t, err)
	assert.Contains(t, out, `default_provider = "test"`)
	assert.Contains(t, out, `credential = "set"`)
	assert.NotContains(t, out, "sk-test")
}

func TestConfigTemplate(t *testing.T) {
	chatEnv(t)

	out, _, err := execute(t, stubClipboard{}, &stubReader{}, "config", "--template")

	require.NoError(t, err)
	assert.Equal(t, config.GenerateConfigTemplate(), out)
}
