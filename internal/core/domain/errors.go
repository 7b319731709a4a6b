package domain

import "errors"

var ErrNotFound = errors.New("record not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthorized = errors.New("unauthorized")
var ErrUserExists = errors.New("user already exists")

// TransportError wraps a network-level failure (connection refused, DNS,
// malformed response body). It is never shown verbatim to the user.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError carries the server's human-readable rejection message,
// e.g. "sku already exists" or "quantity must be at least 1".
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
