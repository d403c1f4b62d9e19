package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized covers any missing, malformed, invalid or expired
	// credential. The specific cause is logged server-side only.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the caller is authenticated but the role lacks
	// permission for the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrMissingSigningSecret means the token signing secret was absent at
	// issuance time. Deployment error, not a client error.
	ErrMissingSigningSecret = errors.New("token signing secret is not configured")

	// ErrTicketNotFound is returned when a ticket does not exist.
	ErrTicketNotFound = errors.New("ticket not found")
)

// ConflictError reports a uniqueness violation on a would-be-unique signup
// field. Field is "email", "gov_identification", or empty when the violated
// constraint could not be attributed.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return "user already exists"
	}
	return fmt.Sprintf("%s already in use", e.Field)
}

// AsConflict unwraps err into a ConflictError, if it is one.
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
