package siteadmin

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned on duplicate slugs, duplicate emails and
	// deletes blocked by references.
	ErrConflict = errors.New("record conflicts with existing data")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNoRecipients is returned when a campaign resolves to an empty
	// audience.
	ErrNoRecipients = errors.New("no active subscribers to send to")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func required(field, value string) error {
	if value == "" {
		return ValidationError{Field: field, Reason: "must not be empty"}
	}
	return nil
}
