package models

import "errors"

var (
	// ErrEmailTaken means an account with the given email already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials means the email/password pair did not match an account.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountNotFound means the referenced account does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrSessionNotFound means the session token is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")
	// ErrMalformedToken means the bearer value is not a syntactically valid token.
	ErrMalformedToken = errors.New("malformed session token")
)

// ValidationError reports a rejected field on a write operation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
