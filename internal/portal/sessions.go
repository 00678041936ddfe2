package portal

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/gstportal/internal/domain"
)

// Sessions holds one App per browser, keyed by an opaque id carried in the
// session cookie. Apps idle for longer than the TTL are closed and dropped.
type Sessions struct {
	mu   sync.Mutex
	apps map[string]*App

	ttl      time.Duration
	auth     Authenticator
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// SessionsOption configures a Sessions registry.
type SessionsOption func(*Sessions)

// WithSessionNotifier sets the notifier handed to every App.
func WithSessionNotifier(n Notifier) SessionsOption {
	return func(s *Sessions) { s.notifier = n }
}

// WithSessionLogger sets the registry's logger.
func WithSessionLogger(l *slog.Logger) SessionsOption {
	return func(s *Sessions) { s.logger = l }
}

// WithSessionClock overrides time.Now, for tests.
func WithSessionClock(now func() time.Time) SessionsOption {
	return func(s *Sessions) { s.now = now }
}

// NewSessions creates an empty registry whose Apps authenticate with auth.
func NewSessions(auth Authenticator, ttl time.Duration, opts ...SessionsOption) *Sessions {
	s := &Sessions{
		apps:     make(map[string]*App),
		ttl:      ttl,
		auth:     auth,
		notifier: nopNotifier{},
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a new App under a fresh random id.
func (s *Sessions) Open() *App {
	id := uuid.NewString()
	app := NewApp(id, s.auth,
		WithNotifier(s.notifier),
		WithLogger(s.logger),
		WithClock(s.now),
	)

	s.mu.Lock()
	s.apps[id] = app
	total := len(s.apps)
	s.mu.Unlock()

	s.logger.Debug("Portal session opened", "session_id", id, "total_sessions", total)
	return app
}

// Get returns the App for id and marks it active.
func (s *Sessions) Get(id string) (*App, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.apps[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	// Touched under the registry lock so a concurrent Sweep sees the activity.
	app.Touch()
	return app, nil
}

// GetOrOpen returns the App for id, opening a new one when id is empty or unknown.
func (s *Sessions) GetOrOpen(id string) *App {
	if id != "" {
		if app, err := s.Get(id); err == nil {
			return app
		}
	}
	return s.Open()
}

// Close closes and removes the App for id. Unknown ids are ignored.
func (s *Sessions) Close(id string) {
	s.mu.Lock()
	app, ok := s.apps[id]
	delete(s.apps, id)
	s.mu.Unlock()
	if ok {
		app.Close()
	}
}

// Len returns the number of open Apps.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.apps)
}

// Sweep closes every App idle since before now-TTL and returns how many were evicted.
func (s *Sessions) Sweep(now time.Time) int {
	cutoff := now.Add(-s.ttl)

	var expired []*App
	s.mu.Lock()
	for id, app := range s.apps {
		if app.IdleSince().Before(cutoff) {
			expired = append(expired, app)
			delete(s.apps, id)
		}
	}
	remaining := len(s.apps)
	s.mu.Unlock()

	for _, app := range expired {
		app.Close()
	}
	if len(expired) > 0 {
		s.logger.Info("Evicted idle portal sessions", "evicted", len(expired), "total_sessions", remaining)
	}
	return len(expired)
}

// Run sweeps on every tick of interval until ctx is canceled.
func (s *Sessions) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(s.now())
		}
	}
}

// Shutdown closes every App, cancelling any in-flight login attempts.
func (s *Sessions) Shutdown() {
	s.mu.Lock()
	apps := s.apps
	s.apps = make(map[string]*App)
	s.mu.Unlock()

	for _, app := range apps {
		app.Close()
	}
}
