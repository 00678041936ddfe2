package middleware

import (
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/gstportal/internal/domain"
	"github.com/nfrund/gstportal/internal/portal"
	"github.com/nfrund/gstportal/internal/view"
)

// PortalSessionName is the cookie session holding the browser's App id.
const PortalSessionName = "portal-session"

const (
	appContextKey = "portal_app"
	sessionIDKey  = "app_id"
)

// PortalSession attaches the browser's App to the request, opening a new one
// when the cookie is missing or its App has been evicted.
func PortalSession(sessions *portal.Sessions) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			logger := FromContext(c.Request().Context())

			sess, err := session.Get(PortalSessionName, c)
			if err != nil {
				// A cookie signed with an old secret decodes with an error but
				// still yields a usable empty session.
				logger.Debug("Portal session cookie rejected", "error", err)
			}
			if sess == nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "session store unavailable")
			}

			id, _ := sess.Values[sessionIDKey].(string)
			app := sessions.GetOrOpen(id)
			if app.ID() != id {
				sess.Values[sessionIDKey] = app.ID()
				if err := sess.Save(c.Request(), c.Response()); err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
				}
			}

			c.Set(appContextKey, app)
			c.SetRequest(c.Request().WithContext(
				WithLogger(c.Request().Context(), logger.With("session_id", app.ID())),
			))
			return next(c)
		}
	}
}

// AppFrom returns the App attached by PortalSession.
func AppFrom(c echo.Context) (*portal.App, error) {
	app, ok := c.Get(appContextKey).(*portal.App)
	if !ok || app == nil {
		return nil, domain.ErrSessionNotFound
	}
	return app, nil
}

// RequireState lets the request through only when the App is in want, and
// otherwise redirects to the screen for the App's actual state.
func RequireState(want domain.SessionState) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			app, err := AppFrom(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
			}
			if state := app.State(); state != want {
				return view.Redirect(c, HomeFor(state))
			}
			return next(c)
		}
	}
}

// HomeFor returns the screen a browser in state belongs on.
func HomeFor(state domain.SessionState) string {
	if state == domain.LoggedIn {
		return view.PathDashboard
	}
	return view.PathLogin
}
