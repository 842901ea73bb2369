package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"tableflip.dev/huddle/pkg/commands/options"
	"tableflip.dev/huddle/pkg/logging"
	"tableflip.dev/huddle/pkg/meeting"
	"tableflip.dev/huddle/pkg/prompt"
	"tableflip.dev/huddle/pkg/session"
	"tableflip.dev/huddle/pkg/store"
)

// env is everything a command needs once config and store are open.
type env struct {
	ctx       context.Context
	config    store.Config
	store     store.Store
	logger    *slog.Logger
	scheduler *meeting.Scheduler
	session   *session.Controller
}

// openSession loads config, opens the configured store and starts a
// session over it. Callers must Close the result.
func openSession(cmd *cobra.Command) (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	s, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel())
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.ContextWithLogger(ctx, logger)

	e := &env{
		ctx:       ctx,
		config:    cfg,
		store:     s,
		logger:    logger,
		scheduler: &meeting.Scheduler{BaseURL: cfg.MeetingURL()},
	}
	e.session = session.NewForStore(s, e.scheduler, logger)
	if err := e.session.Start(ctx); err != nil {
		_ = e.Close()
		return nil, err
	}
	logger.DebugContext(ctx, "session started",
		"backend", cfg.Backend(),
		"path", cfg.BasePath(),
		"gate", e.session.Gate().String())
	return e, nil
}

func (e *env) Close() error {
	if c, ok := e.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// source returns the prompt used to ask for a profile, or nil when
// prompting is disabled.
func (e *env) source(cmd *cobra.Command, in *options.InputOptions) session.ProfileSource {
	if in.NoInput {
		return nil
	}
	return e.prompter(cmd)
}

func (e *env) prompter(cmd *cobra.Command) *prompt.Prompter {
	return &prompt.Prompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
}
