package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

var (
	// ErrClipboardEmpty means --paste found nothing to send.
	ErrClipboardEmpty = errors.New("clipboard is empty")

	// ErrURLUnsupported is returned for --url: fetching pages is not implemented.
	ErrURLUnsupported = errors.New("URL fetching is not supported; pass the URL as text or copy it and use --paste")
)

// Clipboard reads the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
}

// SystemClipboard reads the OS clipboard through atotto/clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", errors.New("no clipboard utility available on this system")
	}
	return clipboard.ReadAll()
}

// InputSource records where the initial input came from.
type InputSource int

const (
	SourceNone InputSource = iota
	SourceArgument
	SourceClipboard
)

// InitialInput is the text for the first turn, if any.
type InitialInput struct {
	Text   string
	Source InputSource
}

// Present reports whether there is a first turn to run.
func (in InitialInput) Present() bool {
	return in.Source != SourceNone
}

// ResolveInitialInput picks the first-turn input: the positional text, then
// the clipboard when paste is set, otherwise none.
//
// An empty clipboard yields ErrClipboardEmpty. Clipboard content that is a
// bare http(s) URL becomes "summarize <url>".
func ResolveInitialInput(text string, paste bool, cb Clipboard) (InitialInput, error) {
	if text != "" {
		return InitialInput{Text: text, Source: SourceArgument}, nil
	}
	if !paste {
		return InitialInput{}, nil
	}

	content, err := cb.ReadAll()
	if err != nil {
		return InitialInput{}, fmt.Errorf("failed to read clipboard: %w", err)
	}
	if content == "" {
		return InitialInput{}, ErrClipboardEmpty
	}

	return InitialInput{Text: RewriteClipboardURL(content), Source: SourceClipboard}, nil
}

// RewriteClipboardURL turns content starting with http:// or https:// into
// a summarize instruction. The URL is never fetched.
func RewriteClipboardURL(content string) string {
	if strings.HasPrefix(content, "http://") || strings.HasPrefix(content, "https://") {
		return "summarize " + content
	}
	return content
}
