package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nfrund/gstportal/internal/assets"
	"github.com/nfrund/gstportal/internal/config"
	"github.com/nfrund/gstportal/internal/portal"
	"github.com/nfrund/gstportal/internal/pubsub"
	"github.com/nfrund/gstportal/internal/server"
	"github.com/samber/do/v2"
)

const shutdownTimeout = 10 * time.Second

// App is the runnable portal: the container plus the serve loop.
type App struct {
	cfg      *config.Config
	injector *do.RootScope
}

// New creates an App from a validated configuration.
func New(cfg *config.Config) *App {
	return &App{cfg: cfg, injector: NewInjector(cfg)}
}

// Injector exposes the container, for tests and CLI commands.
func (a *App) Injector() do.Injector {
	return a.injector
}

// Run serves on addr until ctx is canceled, then shuts every service down.
// An empty addr falls back to the configured APP_ADDR.
func (a *App) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = a.cfg.GetAppAddr()
	}

	srv, err := do.Invoke[*server.Server](a.injector)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}
	logger := do.MustInvoke[*slog.Logger](a.injector)

	bus := do.MustInvoke[*pubsub.WatermillBridge](a.injector)
	if err := portal.SubscribeAudit(ctx, bus, logger); err != nil {
		return err
	}

	if a.cfg.GetStaticWatch() {
		static := do.MustInvoke[*assets.Assets](a.injector)
		switch err := static.Watch(ctx); {
		case errors.Is(err, assets.ErrNotWatchable):
			logger.Warn("STATIC_WATCH ignored for embedded assets")
		case err != nil:
			return err
		}
	}

	runErr := srv.Start(ctx, addr)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if report := a.injector.ShutdownWithContext(shutdownCtx); !report.Succeed {
		logger.Error("Services did not shut down cleanly", "error", report.Error())
	}
	return runErr
}
