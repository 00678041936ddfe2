package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gstportal/internal/middleware"
)

// HomeGet sends the browser to the screen matching its session state (GET /).
func HomeGet(c echo.Context) error {
	app, err := middleware.AppFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	return c.Redirect(http.StatusSeeOther, middleware.HomeFor(app.State()))
}

// Health reports liveness (GET /health).
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
