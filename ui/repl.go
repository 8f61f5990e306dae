package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"llmchat/config"
	"llmchat/model"
)

// LoopState is the state of the interactive loop.
type LoopState int

const (
	StateRunning LoopState = iota
	StateCleared
	StateTerminated
)

func (s LoopState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateCleared:
		return "cleared"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// TurnExecutor runs one conversation turn. *model.Executor implements it.
type TurnExecutor interface {
	ExecuteTurn(ctx context.Context, history model.History, userText string) model.History
}

// Command is a control word recognised by the loop.
type Command int

const (
	CommandNone Command = iota
	CommandExit
	CommandClear
)

// ParseCommand classifies a line of input. Matching is case-insensitive and
// ignores surrounding whitespace.
func ParseCommand(input string) Command {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "exit", "quit":
		return CommandExit
	case "clear":
		return CommandClear
	default:
		return CommandNone
	}
}

// inputPrompt is handed to the LineReader as is. liner rejects prompts
// containing control characters, so it must stay unstyled.
const inputPrompt = "> "

// Loop is the interactive conversation loop.
type Loop struct {
	Reader   LineReader
	Executor TurnExecutor
	Out      io.Writer

	state LoopState
}

// NewLoop creates a loop reading from r and delegating turns to exec.
func NewLoop(r LineReader, exec TurnExecutor, out io.Writer) *Loop {
	return &Loop{Reader: r, Executor: exec, Out: out, state: StateRunning}
}

// State returns the loop's current state.
func (l *Loop) State() LoopState {
	return l.state
}

// Run reads lines until exit/quit, end of input or an interrupt, and returns
// the conversation history held at that point.
func (l *Loop) Run(ctx context.Context, history model.History) model.History {
	l.state = StateRunning
	fmt.Fprintln(l.Out, DimStyle.Render("Multi-turn chat started. Type 'exit' or 'quit' to leave, 'clear' to reset the conversation."))

	for l.state != StateTerminated {
		input, err := l.Reader.Prompt(inputPrompt)
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Fprintln(l.Out, "\n"+DimStyle.Render("Leaving interactive mode"))
			case !errors.Is(err, io.EOF):
				config.DebugLog.Warnw("reading input failed", "error", err)
				PrintError(l.Out, fmt.Errorf("reading input: %w", err))
			}
			l.state = StateTerminated
			break
		}

		history = l.handle(ctx, history, input)
	}

	config.DebugLog.Debugw("interactive loop finished", "messages", history.Len())
	return history
}

func (l *Loop) handle(ctx context.Context, history model.History, input string) model.History {
	switch ParseCommand(input) {
	case CommandExit:
		l.state = StateTerminated
		return history
	case CommandClear:
		l.state = StateCleared
		history = history.Reset()
		fmt.Fprintln(l.Out, NoticeStyle.Render("Conversation history cleared"))
		l.state = StateRunning
		return history
	}

	if strings.TrimSpace(input) == "" {
		return history
	}

	fmt.Fprintln(l.Out)
	history = l.Executor.ExecuteTurn(ctx, history, input)
	fmt.Fprint(l.Out, "\n\n")
	return history
}
