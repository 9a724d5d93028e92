package session

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials signals a rejected email/password pair. The session
// retains no partial state.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrProfileNotFound signals that an authenticated account has no profile
// attached. Callers render a neutral state, not an error banner.
var ErrProfileNotFound = errors.New("profile not found")

// ValidationError reports a sign-up field that failed local validation.
// It is raised before any repository call and never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NetworkError wraps a store failure surfaced during a session operation.
// It is transient; the caller may re-invoke the operation.
type NetworkError struct {
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e NetworkError) Unwrap() error {
	return e.Err
}
