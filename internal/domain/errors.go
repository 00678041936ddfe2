package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the portal's view and session flows.
var (
	// ErrSubmitInFlight is returned when a login is submitted while a previous
	// submission is still being authenticated.
	ErrSubmitInFlight = errors.New("login submission already in progress")

	// ErrViewUnmounted is returned by operations on a view the host has already
	// unmounted.
	ErrViewUnmounted = errors.New("view is no longer mounted")

	// ErrAuthFailed indicates the authentication operation resolved without
	// accepting the credentials.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrNotMounted is returned when a request targets a view that the host
	// does not currently display.
	ErrNotMounted = errors.New("requested view is not mounted")

	// ErrSessionNotFound is returned when a browser session id is unknown or expired.
	ErrSessionNotFound = errors.New("portal session not found")

	// ErrInvalidConfig wraps configuration parsing and validation failures.
	ErrInvalidConfig = errors.New("invalid configuration")
)
