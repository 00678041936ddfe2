// Package app wires the portal's services together in a dependency container.
package app

import (
	"log/slog"

	"github.com/nfrund/gstportal/internal/assets"
	"github.com/nfrund/gstportal/internal/config"
	"github.com/nfrund/gstportal/internal/logging"
	"github.com/nfrund/gstportal/internal/portal"
	"github.com/nfrund/gstportal/internal/pubsub"
	"github.com/nfrund/gstportal/internal/rendering"
	"github.com/nfrund/gstportal/internal/server"
	"github.com/samber/do/v2"
)

// NewInjector registers every service. Services are built lazily on first
// Invoke, and the ones with a Shutdown method are closed by the root scope.
func NewInjector(cfg *config.Config) *do.RootScope {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.Provide(i, func(i do.Injector) (config.Provider, error) {
		return do.MustInvoke[*config.Config](i), nil
	})

	do.Provide(i, func(i do.Injector) (*slog.Logger, error) {
		c := do.MustInvoke[*config.Config](i)
		return logging.New(c.LogFormat, c.LogLevel), nil
	})

	do.Provide(i, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(do.MustInvoke[*slog.Logger](i)), nil
	})

	do.Provide(i, func(i do.Injector) (portal.Notifier, error) {
		bus := do.MustInvoke[*pubsub.WatermillBridge](i)
		return portal.NewPublisherNotifier(bus, do.MustInvoke[*slog.Logger](i)), nil
	})

	do.Provide(i, func(i do.Injector) (portal.Authenticator, error) {
		c := do.MustInvoke[config.Provider](i)
		return portal.NewSimulatedAuthenticator(c.GetAuthDelay()), nil
	})

	do.Provide(i, func(i do.Injector) (*portal.Sessions, error) {
		c := do.MustInvoke[config.Provider](i)
		return portal.NewSessions(
			do.MustInvoke[portal.Authenticator](i),
			c.GetSessionIdleTTL(),
			portal.WithSessionNotifier(do.MustInvoke[portal.Notifier](i)),
			portal.WithSessionLogger(do.MustInvoke[*slog.Logger](i)),
		), nil
	})

	do.Provide(i, func(i do.Injector) (*assets.Assets, error) {
		c := do.MustInvoke[config.Provider](i)
		return assets.New(c.GetStaticDir(), do.MustInvoke[*slog.Logger](i))
	})

	do.Provide(i, func(i do.Injector) (*rendering.UniversalRenderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})

	do.Provide(i, func(i do.Injector) (*server.Server, error) {
		a, err := do.Invoke[*assets.Assets](i)
		if err != nil {
			return nil, err
		}
		return server.New(server.Dependencies{
			Config:   do.MustInvoke[config.Provider](i),
			Sessions: do.MustInvoke[*portal.Sessions](i),
			Assets:   a,
			Renderer: do.MustInvoke[*rendering.UniversalRenderer](i),
			Logger:   do.MustInvoke[*slog.Logger](i),
		}), nil
	})

	return i
}
