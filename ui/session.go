package ui

import (
	"context"
	"fmt"
	"io"

	"llmchat/config"
	"llmchat/model"
)

// Session wires the first turn and the interactive loop together.
type Session struct {
	Reader   LineReader
	Executor TurnExecutor
	Out      io.Writer
}

// Run performs the first turn when initial input is present, then hands the
// history to the interactive loop. It returns the final history.
func (s *Session) Run(ctx context.Context, history model.History, initial InitialInput) model.History {
	if initial.Present() {
		config.DebugLog.Debugw("running initial turn", "source", int(initial.Source), "bytes", len(initial.Text))
		fmt.Fprintln(s.Out)
		history = s.Executor.ExecuteTurn(ctx, history, initial.Text)
		fmt.Fprint(s.Out, "\n\n")
	}

	return NewLoop(s.Reader, s.Executor, s.Out).Run(ctx, history)
}

// PrintBanner announces the selected provider.
func PrintBanner(out io.Writer, providerName, modelName string) {
	fmt.Fprintf(out, "\n%s %s\n\n",
		BannerStyle.Render("Current model: "+providerName),
		DimStyle.Render("("+modelName+")"))
}

// PrintNotice prints a one-line notice such as the empty clipboard message.
func PrintNotice(out io.Writer, msg string) {
	fmt.Fprintln(out, NoticeStyle.Render(msg))
}

// PrintError prints an error line.
func PrintError(out io.Writer, err error) {
	fmt.Fprintf(out, "%s %v\n", ErrorStyle.Render("Error:"), err)
}
