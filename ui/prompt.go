package ui

import (
	"strings"

	"github.com/peterh/liner"
)

// LineReader reads one line of user input. Implementations return io.EOF
// at end of input and liner.ErrPromptAborted when the user interrupts.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// TerminalReader is a LineReader with line editing and in-memory input
// history. Nothing is written to disk.
type TerminalReader struct {
	line *liner.State
}

// NewTerminalReader puts the terminal under liner's control. Ctrl+C aborts
// the prompt instead of being delivered as a signal. Call Close when done.
func NewTerminalReader() *TerminalReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &TerminalReader{line: line}
}

// Prompt reads a line; non-blank lines are added to the input history so
// the arrow keys can recall them.
func (r *TerminalReader) Prompt(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// Close restores the terminal.
func (r *TerminalReader) Close() error {
	return r.line.Close()
}
