package server

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/gstportal/internal/assets"
	"github.com/nfrund/gstportal/internal/domain"
	"github.com/nfrund/gstportal/internal/handlers"
	"github.com/nfrund/gstportal/internal/middleware"
	"github.com/nfrund/gstportal/internal/view"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.GET(view.PathHealth, handlers.Health)
	if s.assets != nil {
		s.E.GET(assets.Prefix+"*", echo.WrapHandler(s.assets.Handler()))
	}

	portalRoutes := s.E.Group("", middleware.PortalSession(s.sessions))
	portalRoutes.GET(view.PathHome, handlers.HomeGet)

	loggedOut := portalRoutes.Group("", middleware.RequireState(domain.LoggedOut))
	loggedOut.GET(view.PathLogin, s.authHandler.LoginGet)
	loggedOut.POST(view.PathLogin, s.authHandler.LoginPost, middleware.RateLimiter(s.Cfg.GetLoginRateLimit()))
	loggedOut.GET(view.PathLoginStatus, s.authHandler.LoginStatus)
	loggedOut.POST(view.PathLoginVisibility, s.authHandler.TogglePasswordVisibility)

	loggedIn := portalRoutes.Group("", middleware.RequireState(domain.LoggedIn))
	loggedIn.GET(view.PathDashboard, s.dashboardHandler.DashboardGet)
	loggedIn.POST(view.PathLogout, s.authHandler.Logout)
}
