package auth

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is raised locally when an operation that needs a
// current identity runs without one. No backend call is made.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrCanceled indicates the user abandoned a federated login before it
// completed.
var ErrCanceled = errors.New("login canceled")

// AuthError wraps an authentication failure. Reason is the
// backend-supplied message and is surfaced to the user as-is.
type AuthError struct {
	Op     string // "login", "signup", "provider", "logout", "restore"
	Reason string
	Err    error // underlying cause, may be nil
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func authErr(op, reason string, err error) *AuthError {
	return &AuthError{Op: op, Reason: reason, Err: err}
}
