package portal

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/gstportal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginThrough(t *testing.T, app *App, gate *gateAuth) {
	t.Helper()
	login, err := app.Login()
	require.NoError(t, err)
	login.SetEmail("a@b.com")
	login.SetPassword("secret")
	a, err := login.Submit()
	require.NoError(t, err)
	waitStarted(t, gate)
	gate.release <- domain.AuthSucceeded
	waitDone(t, a)
}

func TestApp_StartsLoggedOut(t *testing.T) {
	app := NewApp("s1", newGateAuth())

	assert.Equal(t, "s1", app.ID())
	assert.Equal(t, domain.LoggedOut, app.State())

	login, err := app.Login()
	require.NoError(t, err)
	assert.True(t, login.Mounted())

	_, err = app.Dashboard()
	assert.ErrorIs(t, err, domain.ErrNotMounted)
}

func TestApp_LoginAndLogoutCycle(t *testing.T) {
	gate := newGateAuth()
	notifier := &recordingNotifier{}
	app := NewApp("s1", gate, WithNotifier(notifier))

	oldLogin, err := app.Login()
	require.NoError(t, err)
	oldLogin.ToggleVisibility()

	loginThrough(t, app, gate)

	assert.Equal(t, domain.LoggedIn, app.State())
	assert.Equal(t, "a@b.com", app.Account())
	assert.False(t, oldLogin.Mounted(), "login view is unmounted once the dashboard is shown")
	_, err = app.Login()
	assert.ErrorIs(t, err, domain.ErrNotMounted)

	dash, err := app.Dashboard()
	require.NoError(t, err)
	dash.Logout()

	assert.Equal(t, domain.LoggedOut, app.State())
	assert.Empty(t, app.Account())
	_, err = app.Dashboard()
	assert.ErrorIs(t, err, domain.ErrNotMounted)

	newLogin, err := app.Login()
	require.NoError(t, err)
	assert.NotSame(t, oldLogin, newLogin)
	assert.Equal(t, LoginForm{}, newLogin.Snapshot(), "no form state survives a logout")

	assert.Equal(t, []string{TopicAuthSucceeded, TopicLogout}, notifier.topics())
	notifier.mu.Lock()
	assert.Equal(t, "a@b.com", notifier.events[0].Email)
	assert.Equal(t, "s1", notifier.events[0].SessionID)
	notifier.mu.Unlock()
}

func TestApp_CallbacksOutOfStateAreIgnored(t *testing.T) {
	notifier := &recordingNotifier{}
	app := NewApp("s1", newGateAuth(), WithNotifier(notifier))

	app.OnLogout()
	assert.Equal(t, domain.LoggedOut, app.State())

	app.OnAuthenticated()
	app.OnAuthenticated()
	assert.Equal(t, domain.LoggedIn, app.State())

	assert.Equal(t, []string{TopicAuthSucceeded}, notifier.topics())
}

func TestApp_LogoutRacingLoginKeepsEventOrder(t *testing.T) {
	for i := 0; i < 200; i++ {
		notifier := &recordingNotifier{}
		app := NewApp("s1", newGateAuth(), WithNotifier(notifier))
		login, err := app.Login()
		require.NoError(t, err)
		login.SetEmail("a@b.com")

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			app.OnAuthenticated()
		}()
		go func() {
			defer wg.Done()
			for app.State() != domain.LoggedIn {
				runtime.Gosched()
			}
			app.OnLogout()
		}()
		wg.Wait()

		require.Equal(t, domain.LoggedOut, app.State())
		require.Empty(t, app.Account(), "iteration %d", i)
		require.Equal(t, []string{TopicAuthSucceeded, TopicLogout}, notifier.topics(), "iteration %d", i)
	}
}

func TestApp_FailedLoginKeepsLoginMounted(t *testing.T) {
	gate := newGateAuth()
	notifier := &recordingNotifier{}
	app := NewApp("s1", gate, WithNotifier(notifier))

	login, err := app.Login()
	require.NoError(t, err)
	a, err := login.Submit()
	require.NoError(t, err)
	waitStarted(t, gate)
	gate.release <- domain.AuthFailed
	waitDone(t, a)

	assert.Equal(t, domain.LoggedOut, app.State())
	assert.True(t, login.Mounted())
	assert.Equal(t, []string{TopicAuthFailed}, notifier.topics())
	notifier.mu.Lock()
	assert.Equal(t, domain.ErrAuthFailed.Error(), notifier.events[0].Reason)
	notifier.mu.Unlock()
}

func TestApp_CloseCancelsInFlightLogin(t *testing.T) {
	gate := newGateAuth()
	app := NewApp("s1", gate)

	login, err := app.Login()
	require.NoError(t, err)
	a, err := login.Submit()
	require.NoError(t, err)
	waitStarted(t, gate)

	app.Close()
	waitDone(t, a)

	_, err = a.Outcome()
	assert.True(t, errors.Is(err, domain.ErrViewUnmounted))
	assert.Equal(t, domain.LoggedOut, app.State())

	app.OnAuthenticated()
	assert.Equal(t, domain.LoggedOut, app.State(), "closed app ignores callbacks")
}

func TestApp_TouchUsesClock(t *testing.T) {
	now := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	app := NewApp("s1", newGateAuth(), WithClock(func() time.Time { return now }))
	assert.Equal(t, now, app.IdleSince())

	now = now.Add(time.Minute)
	app.Touch()
	assert.Equal(t, now, app.IdleSince())
}

func TestDashboardView_LogoutForwardsEveryCall(t *testing.T) {
	host := &countingDashboardHost{}
	dash := NewDashboardView(host, DefaultDashboard())

	dash.Logout()
	assert.Equal(t, 1, host.logouts)
	dash.Logout()
	assert.Equal(t, 2, host.logouts)
}

func TestDashboardView_ContentIsCopied(t *testing.T) {
	dash := NewDashboardView(&countingDashboardHost{}, DefaultDashboard())

	c := dash.Content()
	require.Len(t, c.Features, 4)
	require.Len(t, c.Activity, 3)
	require.Len(t, c.QuickActions, 4)
	c.Features[0].Title = "mutated"

	assert.Equal(t, "GST Returns", dash.Content().Features[0].Title)
}

func TestSimulatedAuthenticator(t *testing.T) {
	t.Run("succeeds after the delay", func(t *testing.T) {
		sim := NewSimulatedAuthenticator(5 * time.Millisecond)
		outcome, err := sim.Authenticate(context.Background(), domain.Credentials{})
		assert.NoError(t, err)
		assert.Equal(t, domain.AuthSucceeded, outcome)
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		sim := NewSimulatedAuthenticator(time.Hour)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		outcome, err := sim.Authenticate(ctx, domain.Credentials{})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, domain.AuthFailed, outcome)
	})
}

type countingDashboardHost struct{ logouts int }

func (h *countingDashboardHost) OnLogout() { h.logouts++ }
