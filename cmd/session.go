package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/RoboSyntax/white-raven-webapp/internal/api"
	"github.com/RoboSyntax/white-raven-webapp/internal/clipboard"
	"github.com/RoboSyntax/white-raven-webapp/internal/config"
	"github.com/RoboSyntax/white-raven-webapp/internal/dashboard"
	"github.com/RoboSyntax/white-raven-webapp/internal/logging"
	"github.com/RoboSyntax/white-raven-webapp/internal/view"
)

// session is everything a command needs to talk to the story API.
type session struct {
	cfg    *config.Config
	log    *slog.Logger
	clip   *clipboard.Writer
	ctrl   *dashboard.Controller
	closer io.Closer
}

func newSession() (*session, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
		if err := config.Validate(cfg); err != nil {
			return nil, fmt.Errorf("--api-url: %w", err)
		}
	}

	logger, closer, err := logging.Open(cfg.LogPath(), cfg.LogLevel())
	if err != nil {
		// Logging is best effort; the commands still work without it.
		logger, closer = logging.Discard(), io.NopCloser(nil)
	}
	logger.Info("starting", "version", version, "api_url", cfg.APIURL, "native_clipboard", clipboard.Available())

	client := api.NewClient(cfg.APIURL, cfg.RequestTimeoutDuration(), logger)
	clip := clipboard.New(cfg.Clipboard.OSC52)
	ctrl := dashboard.New(client, clip, dashboard.Options{
		SearchLimit: cfg.SearchLimit,
		Defaults:    cfg.FilterDefaults(),
		Locale:      view.NewLocale(cfg.Locale),
		ErrorTTL:    cfg.ErrorToastDuration(),
		SuccessTTL:  cfg.SuccessToastDuration(),
		Logger:      logger,
	})

	return &session{cfg: cfg, log: logger, clip: clip, ctrl: ctrl, closer: closer}, nil
}

func (s *session) Close() error {
	return s.closer.Close()
}

// run executes t and turns an error toast into an error.
func (s *session) run(ctx context.Context, t dashboard.Task) error {
	if t != nil {
		s.ctrl.Run(ctx, t)
	}
	if toast, ok := s.ctrl.Toast(); ok && toast.Kind == dashboard.ToastError {
		return errors.New(toast.Message)
	}
	return nil
}
