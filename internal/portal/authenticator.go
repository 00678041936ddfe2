package portal

import (
	"context"
	"time"

	"github.com/nfrund/gstportal/internal/domain"
)

// Authenticator is the operation a LoginView runs when the form is submitted.
// Implementations must return promptly once ctx is cancelled.
type Authenticator interface {
	Authenticate(ctx context.Context, creds domain.Credentials) (domain.AuthOutcome, error)
}

// AuthenticatorFunc adapts a plain function to the Authenticator interface.
type AuthenticatorFunc func(ctx context.Context, creds domain.Credentials) (domain.AuthOutcome, error)

// Authenticate calls f.
func (f AuthenticatorFunc) Authenticate(ctx context.Context, creds domain.Credentials) (domain.AuthOutcome, error) {
	return f(ctx, creds)
}

// SimulatedAuthenticator stands in for a credential-verification round trip.
// Every call succeeds after Delay unless the context ends first.
type SimulatedAuthenticator struct {
	Delay time.Duration
}

// NewSimulatedAuthenticator returns an authenticator that always succeeds after delay.
func NewSimulatedAuthenticator(delay time.Duration) *SimulatedAuthenticator {
	return &SimulatedAuthenticator{Delay: delay}
}

// Authenticate waits for the configured delay and reports success.
func (s *SimulatedAuthenticator) Authenticate(ctx context.Context, _ domain.Credentials) (domain.AuthOutcome, error) {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return domain.AuthFailed, ctx.Err()
	case <-timer.C:
		return domain.AuthSucceeded, nil
	}
}
