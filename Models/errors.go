package Models

import "errors"

// ErrUsernameTaken is reported when a new account's username already exists.
var ErrUsernameTaken = errors.New("username already exists")

// ValidationError reports a field that failed validation. Operations abort
// before any store write when validation fails.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
