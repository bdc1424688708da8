package users

import (
	"errors"
	"fmt"
)

// Sentinel errors for common user operations
var (
	// ErrUserNotFound is returned when a user lookup finds no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when signing up with a username that
	// already belongs to another account
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned when authentication fails.
	// Deliberately covers both unknown-user and wrong-password so the
	// token endpoint cannot be used to probe for usernames.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError represents a signup validation failure with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
