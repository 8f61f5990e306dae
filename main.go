package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"llmchat/config"
	"llmchat/model"
	"llmchat/provider"
	"llmchat/ui"
)

const (
	Version = "v0.01.00"
	License = "Apache-2.0"
)

type options struct {
	paste    bool
	model    string
	url      string
	verbose  bool
	template bool
}

func newRootCmd(opts *options, clip ui.Clipboard, newReader func() (ui.LineReader, func())) *cobra.Command {
	var flushLog func()

	rootCmd := &cobra.Command{
		Use:   "llmchat [text]",
		Short: "Chat with an LLM from the terminal",
		Long: `llmchat sends text to a remote LLM and streams the reply.

With a text argument (or --paste) the text is sent as the first turn and
the conversation continues interactively. Without input it starts in
interactive mode. Type 'exit' or 'quit' to leave and 'clear' to reset
the conversation.`,
		Version:       Version + " (" + License + ")",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flushLog = config.InitDebugLog(opts.verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if flushLog != nil {
				flushLog()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("url") {
				return ui.ErrURLUnsupported
			}

			var text string
			if len(args) == 1 {
				text = args[0]
			}
			return runChat(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, text, clip, newReader)
		},
	}

	rootCmd.Flags().BoolVarP(&opts.paste, "paste", "p", false, "read the first message from the clipboard")
	rootCmd.Flags().StringVarP(&opts.model, "model", "m", "", "provider to use (doubao, ds, ds-r or one from settings.toml; default doubao)")
	rootCmd.Flags().StringVarP(&opts.url, "url", "u", "", "not supported: URL fetching is not implemented")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "write debug logs to stderr")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.template {
				_, err := io.WriteString(cmd.OutOrStdout(), config.GenerateConfigTemplate())
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return config.WriteEffective(cmd.OutOrStdout(), cfg)
		},
	}
	configCmd.Flags().BoolVar(&opts.template, "template", false, "print a settings.toml template instead")
	rootCmd.AddCommand(configCmd)

	return rootCmd
}

func runChat(ctx context.Context, out, errOut io.Writer, opts *options, text string, clip ui.Clipboard, newReader func() (ui.LineReader, func())) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	p, resolved, err := provider.InitializeProvider(cfg, opts.model)
	if err != nil {
		return err
	}

	ui.PrintBanner(out, resolved.DisplayName(), p.GetModel())

	initial, err := ui.ResolveInitialInput(text, opts.paste, clip)
	if errors.Is(err, ui.ErrClipboardEmpty) {
		ui.PrintNotice(out, "Clipboard is empty")
		return nil
	}
	if err != nil {
		return err
	}

	reader, closeReader := newReader()
	defer closeReader()

	session := &ui.Session{
		Reader:   reader,
		Executor: model.NewExecutor(p, out, errOut),
		Out:      out,
	}
	final := session.Run(ctx, model.NewHistory(cfg.SystemPrompt), initial)

	config.DebugLog.Debugw("session ended", "provider", resolved.ID, "messages", final.Len())
	return nil
}

func terminalReader() (ui.LineReader, func()) {
	r := ui.NewTerminalReader()
	return r, func() { _ = r.Close() }
}

func main() {
	rootCmd := newRootCmd(&options{}, ui.SystemClipboard{}, terminalReader)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		ui.PrintError(os.Stderr, err)
		if errors.Is(err, ui.ErrURLUnsupported) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
