package portal

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/gstportal/internal/domain"
	"github.com/nfrund/gstportal/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_OpenAndGet(t *testing.T) {
	s := NewSessions(newGateAuth(), time.Minute)

	app := s.Open()
	assert.NotEmpty(t, app.ID())
	assert.Equal(t, 1, s.Len())

	got, err := s.Get(app.ID())
	require.NoError(t, err)
	assert.Same(t, app, got)

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessions_GetOrOpen(t *testing.T) {
	s := NewSessions(newGateAuth(), time.Minute)

	first := s.GetOrOpen("")
	assert.Same(t, first, s.GetOrOpen(first.ID()))

	other := s.GetOrOpen("expired-id")
	assert.NotEqual(t, first.ID(), other.ID())
	assert.Equal(t, 2, s.Len())
}

func TestSessions_SweepEvictsIdleApps(t *testing.T) {
	now := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	gate := newGateAuth()
	s := NewSessions(gate, 10*time.Minute, WithSessionClock(clock))

	idle := s.Open()
	login, err := idle.Login()
	require.NoError(t, err)
	a, err := login.Submit()
	require.NoError(t, err)
	waitStarted(t, gate)

	now = now.Add(6 * time.Minute)
	active := s.Open()

	now = now.Add(6 * time.Minute)
	assert.Equal(t, 1, s.Sweep(now))
	assert.Equal(t, 1, s.Len())

	_, err = s.Get(idle.ID())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = s.Get(active.ID())
	assert.NoError(t, err)

	// Eviction releases the in-flight attempt.
	waitDone(t, a)
	_, err = a.Outcome()
	assert.ErrorIs(t, err, domain.ErrViewUnmounted)
}

func TestSessions_GetProtectsFromConcurrentSweep(t *testing.T) {
	start := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 200; i++ {
		now := start
		s := NewSessions(newGateAuth(), 10*time.Minute, WithSessionClock(func() time.Time { return now }))
		app := s.Open()
		now = start.Add(time.Hour)

		var (
			wg  sync.WaitGroup
			got *App
			err error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			got, err = s.Get(app.ID())
		}()
		go func() {
			defer wg.Done()
			s.Sweep(now)
		}()
		wg.Wait()

		if err != nil {
			assert.ErrorIs(t, err, domain.ErrSessionNotFound)
			continue
		}
		// A returned app was touched before the sweep looked at it.
		_, loginErr := got.Login()
		require.NoError(t, loginErr, "iteration %d: Get returned an evicted app", i)
		require.Equal(t, 1, s.Len())
	}
}

func TestSessions_CloseAndShutdown(t *testing.T) {
	s := NewSessions(newGateAuth(), time.Minute)
	a := s.Open()
	b := s.Open()

	s.Close(a.ID())
	s.Close("unknown")
	assert.Equal(t, 1, s.Len())

	s.Shutdown()
	assert.Zero(t, s.Len())

	b.OnAuthenticated()
	assert.Equal(t, domain.LoggedOut, b.State())
}

func TestSessions_RunStopsWithContext(t *testing.T) {
	s := NewSessions(newGateAuth(), time.Nanosecond)
	s.Open()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestPublisherNotifier_AuditRoundTrip(t *testing.T) {
	bus := pubsub.NewWatermillBridge(nil)
	t.Cleanup(func() { _ = bus.Close() })

	var out syncBuffer
	logger := slog.New(slog.NewTextHandler(&out, nil))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, SubscribeAudit(ctx, bus, logger))

	notifier := NewPublisherNotifier(bus, logger)
	gate := newGateAuth()
	app := NewApp("session-42", gate, WithNotifier(notifier))
	loginThrough(t, app, gate)

	require.Eventually(t, func() bool {
		s := out.String()
		return bytes.Contains([]byte(s), []byte(TopicAuthSucceeded)) &&
			bytes.Contains([]byte(s), []byte("session-42"))
	}, time.Second, 10*time.Millisecond)
}
