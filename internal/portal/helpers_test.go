package portal

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nfrund/gstportal/internal/domain"
)

// gateAuth blocks every authentication until the test releases an outcome.
type gateAuth struct {
	calls   atomic.Int32
	started chan domain.Credentials
	release chan domain.AuthOutcome
}

func newGateAuth() *gateAuth {
	return &gateAuth{
		started: make(chan domain.Credentials, 8),
		release: make(chan domain.AuthOutcome, 8),
	}
}

func (g *gateAuth) Authenticate(ctx context.Context, creds domain.Credentials) (domain.AuthOutcome, error) {
	g.calls.Add(1)
	g.started <- creds
	select {
	case <-ctx.Done():
		return domain.AuthFailed, ctx.Err()
	case outcome := <-g.release:
		return outcome, nil
	}
}

// recordingHost counts callbacks and remembers what the view looked like when
// the success callback ran.
type recordingHost struct {
	mu            sync.Mutex
	view          *LoginView
	authenticated int
	failures      []error
	sawSubmitting bool
}

func (h *recordingHost) OnAuthenticated() {
	h.mu.Lock()
	view := h.view
	h.mu.Unlock()

	submitting := view != nil && view.State() == Submitting

	h.mu.Lock()
	h.authenticated++
	h.sawSubmitting = h.sawSubmitting || submitting
	h.mu.Unlock()
}

func (h *recordingHost) OnAuthFailed(err error) {
	h.mu.Lock()
	h.failures = append(h.failures, err)
	h.mu.Unlock()
}

func (h *recordingHost) counts() (int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.authenticated, len(h.failures)
}

// recordingNotifier collects published events.
type recordingNotifier struct {
	mu     sync.Mutex
	events []Event
}

func (n *recordingNotifier) Notify(_ context.Context, evt Event) {
	n.mu.Lock()
	n.events = append(n.events, evt)
	n.mu.Unlock()
}

func (n *recordingNotifier) topics() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.events))
	for _, e := range n.events {
		out = append(out, e.Topic)
	}
	return out
}

func waitDone(t *testing.T, a *Attempt) {
	t.Helper()
	select {
	case <-a.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("login attempt did not resolve in time")
	}
}

func waitStarted(t *testing.T, g *gateAuth) domain.Credentials {
	t.Helper()
	select {
	case creds := <-g.started:
		return creds
	case <-time.After(2 * time.Second):
		t.Fatal("authentication was not started")
		return domain.Credentials{}
	}
}
