package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/nfrund/denik/internal/authscreen"
	"github.com/nfrund/denik/internal/collaborator"
	"github.com/nfrund/denik/internal/config"
	"github.com/nfrund/denik/internal/diagnostics"
	"github.com/nfrund/denik/internal/i18n"
	"github.com/nfrund/denik/internal/logging"
	"github.com/nfrund/denik/internal/theme"
	"github.com/nfrund/denik/internal/tui"
	"github.com/spf13/cobra"
)

var tuiOpts struct {
	tab     string
	lang    string
	logFile string
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the sign-in screen in the terminal",
	Long: `Run the sign-in screen in the terminal. Credentials go to the backend
configured by AUTH_BACKEND; with none, submissions stay pending.

Logs would garble the screen, so they are discarded unless --log names a file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tab, err := authscreen.ParseTab(tuiOpts.tab)
		if err != nil {
			return err
		}

		logger, closeLog, err := tuiLogger(tuiOpts.logFile)
		if err != nil {
			return err
		}
		defer closeLog()
		slog.SetDefault(logger)

		cfg, err := config.LoadBackend()
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		backend, closeBackend, err := collaborator.NewFromConfig(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() { _ = closeBackend(context.Background()) }()

		deps := authscreen.Dependencies{
			Sink:   diagnostics.NewLogSink(logger),
			Logger: logger,
		}
		if backend != nil {
			deps.Authenticator = backend
			deps.Registrar = backend
		}

		screen := authscreen.New(deps)
		if err := screen.SelectTab(tab); err != nil {
			return err
		}

		lang := tuiOpts.lang
		if lang == "" {
			lang = langFromEnv(os.Getenv("LANG"))
		}
		return tui.Run(ctx, tui.New(ctx, screen, i18n.New(lang), theme.Default()))
	},
}

// tuiLogger writes to path, or nowhere when path is empty.
func tuiLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return logging.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logging.NewWithWriter(f, "text", "debug"), func() { _ = f.Close() }, nil
}

// langFromEnv turns a POSIX locale such as cs_CZ.UTF-8 into a language tag.
func langFromEnv(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}

func init() {
	tuiCmd.Flags().StringVar(&tuiOpts.tab, "tab", "login", "tab to open: login or register")
	tuiCmd.Flags().StringVar(&tuiOpts.lang, "lang", "", "interface language: cs or en (default from $LANG, else cs)")
	tuiCmd.Flags().StringVar(&tuiOpts.logFile, "log", "", "append logs to this file")
	rootCmd.AddCommand(tuiCmd)
}
