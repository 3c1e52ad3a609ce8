package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/akinator"
	"github.com/aretw0/akinator/internal/config"
	"github.com/aretw0/akinator/internal/logging"
	"github.com/aretw0/akinator/internal/metrics"
	"github.com/aretw0/akinator/internal/presentation/tui"
	"github.com/aretw0/akinator/pkg/console"
	"github.com/aretw0/akinator/pkg/game"
	"github.com/google/uuid"
	"golang.org/x/term"
)

// RunSession plays one interactive session: load, rounds until the player stops, save.
// Load and save problems are reported to the player and never fail the session.
func RunSession(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	logger, err := createLogger(cfg)
	if err != nil {
		return err
	}
	logger = logger.With("session", uuid.NewString())

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("Failed to close store", "error", err)
		}
	}()

	rich := !cfg.Plain && isTerminal(out)
	var conOpts []console.Option
	if rich {
		tui.PrintBanner(out, akinator.Version)
		conOpts = append(conOpts, console.WithRenderer(tui.NewRenderer()))
	}
	con := console.New(in, out, conOpts...)

	engineOpts := []game.Option{game.WithLogger(logger)}
	if cfg.MetricsAddr != "" {
		rec := metrics.NewRecorder()
		stop, err := metrics.Serve(cfg.MetricsAddr, rec, logger)
		if err != nil {
			// Metrics are optional; the game goes on without them.
			logger.Warn("Failed to start metrics server", "addr", cfg.MetricsAddr, "error", err)
		} else {
			defer func() { _ = stop(context.Background()) }()
			engineOpts = append(engineOpts, game.WithLifecycleHooks(rec.Hooks()))
		}
	}

	eng := game.New(store, con, engineOpts...)
	eng.InitializeOrLoad(ctx)

	if err := eng.PlaySession(ctx); err != nil {
		return fmt.Errorf("session ended: %w", err)
	}

	stats := eng.Root().Stats()
	logger.Info("Session finished", "animals", stats.Leaves, "questions", stats.Questions)
	return nil
}

func createLogger(cfg config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
