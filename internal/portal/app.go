package portal

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nfrund/gstportal/internal/domain"
)

// App is the host application for one browser. It owns the LoggedOut/LoggedIn
// state and keeps exactly one view mounted: the LoginView while logged out,
// the DashboardView while logged in.
type App struct {
	id string

	mu        sync.Mutex
	state     domain.SessionState
	login     *LoginView
	dashboard *DashboardView
	closed    bool
	lastSeen  time.Time
	account   string

	// events orders transition events the same way as the transitions.
	// Taken while mu is held, released after publishing.
	events sync.Mutex

	auth     Authenticator
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// AppOption configures an App.
type AppOption func(*App)

// WithNotifier sets the receiver of session transition events.
func WithNotifier(n Notifier) AppOption {
	return func(a *App) { a.notifier = n }
}

// WithLogger sets the App's logger.
func WithLogger(l *slog.Logger) AppOption {
	return func(a *App) { a.logger = l }
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) AppOption {
	return func(a *App) { a.now = now }
}

// NewApp creates a logged-out App with a fresh LoginView mounted.
func NewApp(id string, auth Authenticator, opts ...AppOption) *App {
	a := &App{
		id:       id,
		state:    domain.LoggedOut,
		auth:     auth,
		notifier: nopNotifier{},
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With("session_id", id)
	a.lastSeen = a.now()
	a.login = NewLoginView(a.auth, a, a.logger)
	return a
}

// ID returns the browser session id the App belongs to.
func (a *App) ID() string { return a.id }

// State returns the current session state.
func (a *App) State() domain.SessionState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Account returns the email the session signed in with, empty when logged out.
func (a *App) Account() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.account
}

// Login returns the mounted LoginView, or domain.ErrNotMounted when logged in.
func (a *App) Login() (*LoginView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.login == nil {
		return nil, domain.ErrNotMounted
	}
	return a.login, nil
}

// Dashboard returns the mounted DashboardView, or domain.ErrNotMounted when logged out.
func (a *App) Dashboard() (*DashboardView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.dashboard == nil {
		return nil, domain.ErrNotMounted
	}
	return a.dashboard, nil
}

// OnAuthenticated switches to the dashboard. It is a no-op unless the App is
// logged out and open.
func (a *App) OnAuthenticated() {
	a.mu.Lock()
	login := a.login
	a.mu.Unlock()

	// The attempt goroutine calls the host without holding the view's lock.
	email := ""
	if login != nil {
		email = login.Snapshot().Email
	}

	a.mu.Lock()
	if a.closed || a.state != domain.LoggedOut || a.login != login {
		a.mu.Unlock()
		return
	}
	a.login = nil
	a.account = email
	a.state = domain.LoggedIn
	a.dashboard = NewDashboardView(a, DefaultDashboard())
	a.events.Lock()
	a.mu.Unlock()
	defer a.events.Unlock()

	if login != nil {
		login.Unmount()
	}
	a.logger.Info("Session logged in")
	a.publish(TopicAuthSucceeded, email, "")
}

// OnAuthFailed records a failed attempt. The LoginView stays mounted.
func (a *App) OnAuthFailed(err error) {
	reason := ""
	if err != nil {
		reason = err.Error()
	}
	a.publish(TopicAuthFailed, "", reason)
}

// OnLogout switches back to a fresh login form. It is a no-op unless the App
// is logged in and open.
func (a *App) OnLogout() {
	a.mu.Lock()
	if a.closed || a.state != domain.LoggedIn {
		a.mu.Unlock()
		return
	}
	a.dashboard = nil
	a.account = ""
	a.state = domain.LoggedOut
	a.login = NewLoginView(a.auth, a, a.logger)
	a.events.Lock()
	a.mu.Unlock()
	defer a.events.Unlock()

	a.logger.Info("Session logged out")
	a.publish(TopicLogout, "", "")
}

// Touch records activity for idle eviction.
func (a *App) Touch() {
	a.mu.Lock()
	a.lastSeen = a.now()
	a.mu.Unlock()
}

// IdleSince returns the time of the last recorded activity.
func (a *App) IdleSince() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastSeen
}

// Close unmounts whatever is mounted, cancelling an in-flight login.
// A closed App ignores further host callbacks.
func (a *App) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	login := a.login
	a.login = nil
	a.dashboard = nil
	a.mu.Unlock()

	if login != nil {
		login.Unmount()
	}
}

func (a *App) publish(topic, email, reason string) {
	a.notifier.Notify(context.Background(), Event{
		Topic:     topic,
		SessionID: a.id,
		Email:     email,
		Reason:    reason,
		At:        a.now().UTC(),
	})
}
