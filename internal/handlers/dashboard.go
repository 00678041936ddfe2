package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gstportal/internal/domain"
	"github.com/nfrund/gstportal/internal/middleware"
	"github.com/nfrund/gstportal/internal/view"
	"github.com/nfrund/gstportal/web/src/templates/pages"
)

// DashboardHandler renders the post-login screen.
type DashboardHandler struct {
	pages *Pages
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(p *Pages) *DashboardHandler {
	return &DashboardHandler{pages: p}
}

// DashboardGet renders the dashboard (GET /dashboard).
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	app, err := middleware.AppFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	dash, err := app.Dashboard()
	if errors.Is(err, domain.ErrNotMounted) {
		return view.Redirect(c, view.PathLogin)
	}
	if err != nil {
		return err
	}
	return h.pages.Page(c, http.StatusOK, "Dashboard", pages.Dashboard(pages.DashboardPage{
		Content: dash.Content(),
		Account: app.Account(),
	}))
}
