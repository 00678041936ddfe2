package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/gstportal/internal/assets"
	"github.com/nfrund/gstportal/internal/config"
	"github.com/nfrund/gstportal/internal/handlers"
	"github.com/nfrund/gstportal/internal/middleware"
	"github.com/nfrund/gstportal/internal/portal"
	"github.com/nfrund/gstportal/internal/rendering"
)

// Dependencies are the services the HTTP server is built from.
type Dependencies struct {
	Config   config.Provider
	Sessions *portal.Sessions
	Assets   *assets.Assets
	Renderer *rendering.UniversalRenderer
	Logger   *slog.Logger
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	sessions *portal.Sessions
	assets   *assets.Assets
	logger   *slog.Logger

	authHandler      *handlers.AuthHandler
	dashboardHandler *handlers.DashboardHandler
}

// New builds the echo instance, its middleware chain and routes.
func New(deps Dependencies) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.Renderer = deps.Renderer
	setupErrorHandling(e)

	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	e.Use(middleware.Logger)

	store := sessions.NewCookieStore([]byte(deps.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(deps.Config.GetSessionMaxAge().Seconds()),
		HttpOnly: true,
		Secure:   deps.Config.GetTLS().Enabled(),
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	pages := handlers.NewPages(deps.Renderer, deps.Assets)
	s := &Server{
		E:                e,
		Cfg:              deps.Config,
		sessions:         deps.Sessions,
		assets:           deps.Assets,
		logger:           logger,
		authHandler:      handlers.NewAuthHandler(pages),
		dashboardHandler: handlers.NewDashboardHandler(pages),
	}
	s.RegisterRoutes()
	return s
}

// Sessions returns the portal session registry, useful for testing.
func (s *Server) Sessions() *portal.Sessions {
	return s.sessions
}
