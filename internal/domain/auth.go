package domain

// Credentials are the values a user typed into the login form.
type Credentials struct {
	Email    string
	Password string
}

// AuthOutcome is the result of a resolved authentication operation.
type AuthOutcome int

const (
	// AuthPending means the operation has not resolved yet.
	AuthPending AuthOutcome = iota
	AuthSucceeded
	AuthFailed
)

func (o AuthOutcome) String() string {
	switch o {
	case AuthPending:
		return "pending"
	case AuthSucceeded:
		return "succeeded"
	case AuthFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SessionState is the host application's single piece of cross-view state.
type SessionState int

const (
	LoggedOut SessionState = iota
	LoggedIn
)

func (s SessionState) String() string {
	switch s {
	case LoggedOut:
		return "logged_out"
	case LoggedIn:
		return "logged_in"
	default:
		return "unknown"
	}
}
