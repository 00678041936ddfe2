package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gstportal/internal/domain"
	"github.com/nfrund/gstportal/internal/middleware"
	"github.com/nfrund/gstportal/internal/portal"
	"github.com/nfrund/gstportal/internal/view"
	"github.com/nfrund/gstportal/web/src/templates/components"
	"github.com/nfrund/gstportal/web/src/templates/pages"
)

// invalidFormMessage is shown when the submitted fields fail validation.
const invalidFormMessage = "Please enter a valid email address and your password."

// AuthHandler drives the browser's LoginView.
type AuthHandler struct {
	pages    *Pages
	showcase portal.LoginShowcase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(p *Pages) *AuthHandler {
	return &AuthHandler{pages: p, showcase: portal.DefaultLoginShowcase()}
}

// loginView returns the mounted LoginView. When the browser has just been
// logged in it sends the browser to the dashboard instead.
func loginView(c echo.Context) (*portal.LoginView, error) {
	app, err := middleware.AppFrom(c)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	login, err := app.Login()
	if errors.Is(err, domain.ErrNotMounted) {
		return nil, view.Redirect(c, view.PathDashboard)
	}
	return login, err
}

// LoginGet renders the login page (GET /login) from the view's current state.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	login, err := loginView(c)
	if login == nil {
		return err
	}
	return h.renderLogin(c, http.StatusOK, login.Snapshot())
}

// LoginPost submits the form (POST /login).
//
// htmx requests get the submit area back in its spinner state and poll
// /login/status. Plain form posts block until the attempt resolves.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	login, err := loginView(c)
	if login == nil {
		return err
	}
	logger := middleware.FromContext(c.Request().Context())

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form").SetInternal(err)
	}
	login.SetEmail(req.Email)
	login.SetPassword(req.Password)

	if err := c.Validate(&req); err != nil {
		logger.Info("Rejected login form", "error", err)
		form := login.Snapshot()
		form.Error = invalidFormMessage
		if view.IsHTMX(c) {
			return h.pages.Fragment(c, components.SubmitArea(form))
		}
		return h.renderLogin(c, http.StatusUnprocessableEntity, form)
	}

	attempt, err := login.Submit()
	switch {
	case errors.Is(err, domain.ErrViewUnmounted):
		return view.Redirect(c, view.PathDashboard)
	case portal.IsInFlight(err):
		logger.Debug("Login already in flight", "attempt_id", attempt.ID)
	case err != nil:
		return err
	}

	if view.IsHTMX(c) {
		return h.submitStatus(c, login)
	}

	// If the request ends first the attempt keeps running for the next page load.
	if outcome, err := attempt.Wait(c.Request().Context()); outcome == domain.AuthPending {
		return err
	}
	return h.afterAttempt(c, login)
}

// LoginStatus answers the spinner's poll (GET /login/status).
func (h *AuthHandler) LoginStatus(c echo.Context) error {
	login, err := loginView(c)
	if login == nil {
		return err
	}
	return h.submitStatus(c, login)
}

// TogglePasswordVisibility flips the eye icon (POST /login/visibility) and
// returns the re-rendered password field.
func (h *AuthHandler) TogglePasswordVisibility(c echo.Context) error {
	login, err := loginView(c)
	if login == nil {
		return err
	}
	var req VisibilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form").SetInternal(err)
	}
	login.SetPassword(req.Password)
	login.ToggleVisibility()

	form := login.Snapshot()
	if !view.IsHTMX(c) {
		return c.Redirect(http.StatusSeeOther, view.PathLogin)
	}
	return h.pages.Fragment(c, components.PasswordField(form.Password, form.PasswordVisible))
}

// Logout leaves the dashboard (POST /logout).
func (h *AuthHandler) Logout(c echo.Context) error {
	app, err := middleware.AppFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	if dash, err := app.Dashboard(); err == nil {
		dash.Logout()
	}
	view.SetFlashSuccess(c, "You have been logged out.")
	return view.Redirect(c, view.PathLogin)
}

// submitStatus renders the submit area, or redirects once the App has
// switched to the dashboard.
func (h *AuthHandler) submitStatus(c echo.Context, login *portal.LoginView) error {
	if !login.Mounted() {
		return view.Redirect(c, view.PathDashboard)
	}
	return h.pages.Fragment(c, components.SubmitArea(login.Snapshot()))
}

// afterAttempt finishes a plain form post once its attempt has resolved.
func (h *AuthHandler) afterAttempt(c echo.Context, login *portal.LoginView) error {
	if !login.Mounted() {
		return c.Redirect(http.StatusSeeOther, view.PathDashboard)
	}
	return h.renderLogin(c, http.StatusUnauthorized, login.Snapshot())
}

func (h *AuthHandler) renderLogin(c echo.Context, status int, form portal.LoginForm) error {
	return h.pages.Page(c, status, "Sign In", pages.Login(pages.LoginPage{
		Form:     form,
		Showcase: h.showcase,
	}))
}
