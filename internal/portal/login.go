package portal

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/nfrund/gstportal/internal/domain"
)

// LoginHost is notified by a LoginView when authentication succeeds.
type LoginHost interface {
	OnAuthenticated()
}

// AuthFailureObserver is an optional extension of LoginHost. Hosts that
// implement it are told about failed attempts; the view still returns to Idle
// on its own.
type AuthFailureObserver interface {
	OnAuthFailed(err error)
}

// LoginState is the state of the login form's submission machine.
type LoginState int

const (
	Idle LoginState = iota
	Submitting
)

func (s LoginState) String() string {
	if s == Submitting {
		return "submitting"
	}
	return "idle"
}

// authFailedMessage is shown inline under the form when an attempt fails.
const authFailedMessage = "We couldn't sign you in. Please check your details and try again."

// LoginForm is a point-in-time copy of a LoginView's transient state.
type LoginForm struct {
	Email           string
	Password        string
	PasswordVisible bool
	Submitting      bool
	// Error is the inline message left by the last failed attempt, if any.
	Error string
}

// LoginView owns the login form state and runs one authentication attempt at
// a time on behalf of its host.
type LoginView struct {
	mu        sync.Mutex
	form      LoginForm
	attempt   *Attempt
	unmounted bool

	auth   Authenticator
	host   LoginHost
	logger *slog.Logger
}

// NewLoginView creates a mounted, idle login view.
func NewLoginView(auth Authenticator, host LoginHost, logger *slog.Logger) *LoginView {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoginView{auth: auth, host: host, logger: logger}
}

// SetEmail replaces the email field.
func (v *LoginView) SetEmail(value string) {
	v.mu.Lock()
	v.form.Email = value
	v.mu.Unlock()
}

// SetPassword replaces the password field.
func (v *LoginView) SetPassword(value string) {
	v.mu.Lock()
	v.form.Password = value
	v.mu.Unlock()
}

// ToggleVisibility flips between masked and unmasked password rendering and
// returns the new visibility.
func (v *LoginView) ToggleVisibility() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.form.PasswordVisible = !v.form.PasswordVisible
	return v.form.PasswordVisible
}

// Snapshot returns a copy of the current form state.
func (v *LoginView) Snapshot() LoginForm {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.form
}

// State reports whether an attempt is in flight.
func (v *LoginView) State() LoginState {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.form.Submitting {
		return Submitting
	}
	return Idle
}

// Pending returns the in-flight attempt, or nil when Idle.
func (v *LoginView) Pending() *Attempt {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.attempt
}

// Submit starts an authentication attempt with the current field values.
//
// While an attempt is in flight Submit starts nothing and returns that attempt
// together with domain.ErrSubmitInFlight. On resolution the view returns to
// Idle first and only then notifies the host, so the host never observes a
// Submitting view from inside its callback.
func (v *LoginView) Submit() (*Attempt, error) {
	v.mu.Lock()
	if v.unmounted {
		v.mu.Unlock()
		return nil, domain.ErrViewUnmounted
	}
	if v.form.Submitting {
		a := v.attempt
		v.mu.Unlock()
		return a, domain.ErrSubmitInFlight
	}

	ctx, cancel := context.WithCancel(context.Background())
	a := newAttempt(cancel)
	creds := domain.Credentials{Email: v.form.Email, Password: v.form.Password}
	v.form.Submitting = true
	v.form.Error = ""
	v.attempt = a
	v.mu.Unlock()

	v.logger.Debug("Login submitted", "attempt_id", a.ID)
	go v.run(ctx, a, creds)
	return a, nil
}

// Unmount detaches the view from its host. An in-flight attempt is cancelled
// and its late result is discarded without touching the form.
func (v *LoginView) Unmount() {
	v.mu.Lock()
	if v.unmounted {
		v.mu.Unlock()
		return
	}
	v.unmounted = true
	a := v.attempt
	v.mu.Unlock()

	if a != nil {
		a.cancel()
	}
}

// Mounted reports whether the view is still attached to its host.
func (v *LoginView) Mounted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.unmounted
}

func (v *LoginView) run(ctx context.Context, a *Attempt, creds domain.Credentials) {
	defer a.cancel()

	outcome, err := v.auth.Authenticate(ctx, creds)
	switch {
	case err != nil:
		outcome = domain.AuthFailed
	case outcome != domain.AuthSucceeded:
		outcome = domain.AuthFailed
		err = domain.ErrAuthFailed
	}

	v.mu.Lock()
	stale := v.unmounted || v.attempt != a
	if !stale {
		v.form.Submitting = false
		v.attempt = nil
		if outcome == domain.AuthFailed {
			v.form.Error = authFailedMessage
		}
	}
	v.mu.Unlock()

	if stale {
		v.logger.Debug("Discarding login result for unmounted view", "attempt_id", a.ID, "outcome", outcome)
		a.resolve(domain.AuthFailed, domain.ErrViewUnmounted)
		return
	}

	if outcome == domain.AuthSucceeded {
		v.logger.Info("Login attempt succeeded", "attempt_id", a.ID)
		v.host.OnAuthenticated()
	} else {
		v.logger.Warn("Login attempt failed", "attempt_id", a.ID, "error", err)
		if obs, ok := v.host.(AuthFailureObserver); ok {
			obs.OnAuthFailed(err)
		}
	}
	a.resolve(outcome, err)
}

// Attempt is a single submission of the login form.
type Attempt struct {
	ID string

	cancel  context.CancelFunc
	done    chan struct{}
	outcome domain.AuthOutcome
	err     error
}

func newAttempt(cancel context.CancelFunc) *Attempt {
	return &Attempt{
		ID:     uuid.NewString(),
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Done is closed once the attempt has resolved and the host has been notified.
func (a *Attempt) Done() <-chan struct{} {
	return a.done
}

// Outcome returns the resolved outcome. It reports domain.AuthPending until Done is closed.
func (a *Attempt) Outcome() (domain.AuthOutcome, error) {
	select {
	case <-a.done:
		return a.outcome, a.err
	default:
		return domain.AuthPending, nil
	}
}

// Wait blocks until the attempt resolves or ctx ends. Giving up on the wait
// does not cancel the attempt.
func (a *Attempt) Wait(ctx context.Context) (domain.AuthOutcome, error) {
	select {
	case <-a.done:
		return a.outcome, a.err
	case <-ctx.Done():
		return domain.AuthPending, ctx.Err()
	}
}

func (a *Attempt) resolve(outcome domain.AuthOutcome, err error) {
	a.outcome = outcome
	a.err = err
	close(a.done)
}

// IsInFlight reports whether err is the re-entrant submit error.
func IsInFlight(err error) bool {
	return errors.Is(err, domain.ErrSubmitInFlight)
}
