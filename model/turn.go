package model

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"llmchat/config"
)

// Executor runs one conversation turn against a provider, echoing the
// reply to Out as it streams and reporting failures on Err.
type Executor struct {
	Provider Provider
	Out      io.Writer
	Err      io.Writer
}

// NewExecutor creates an Executor bound to p.
func NewExecutor(p Provider, out, errOut io.Writer) *Executor {
	return &Executor{Provider: p, Out: out, Err: errOut}
}

// ExecuteTurn appends userText to a working copy of history, streams the
// completion and appends the accumulated reply when it is non-empty.
//
// A failed completion is reported on e.Err and is not returned: the
// working history then ends with the unanswered user message.
func (e *Executor) ExecuteTurn(ctx context.Context, history History, userText string) History {
	working := history.Append(UserMessage(userText))
	start := time.Now()

	var reply strings.Builder
	err := e.Provider.Chat(ctx, working.Messages(), func(fragment string) error {
		reply.WriteString(fragment)
		_, werr := io.WriteString(e.Out, fragment)
		return werr
	})

	log := config.DebugLog.With(
		zap.String("provider", e.Provider.Name()),
		zap.String("model", e.Provider.GetModel()),
		zap.Int("messages", working.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err != nil {
		err = NewCompletionError(e.Provider.Name(), e.Provider.GetModel(), err)
		log.Warnw("turn failed", "partial_bytes", reply.Len(), zap.Error(err))
		fmt.Fprintf(e.Err, "\nError: %v\n", err)
		return working
	}

	if reply.Len() > 0 {
		working = working.Append(AssistantMessage(reply.String()))
	}
	log.Debugw("turn complete", "reply_bytes", reply.Len())

	return working
}
