// Package services defines the business logic for profile submission and
// match drawing. This file centralizes common service-level error values so
// that they can be consistently returned by service methods and checked by
// callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUserNotFound indicates that the requesting user id does not reference
	// an existing profile.
	ErrUserNotFound = errors.New("user not found")

	// ErrRateLimited is returned when a draw arrives before the requester's
	// cooldown window has elapsed.
	ErrRateLimited = errors.New("draw attempted within cooldown window")

	// ErrEmptyPool is returned when no opposite-gender candidate (excluding
	// the requester) exists. It is a legitimate outcome, not a fault: the
	// handler maps it to an HTTP-success-shaped "try later" response.
	ErrEmptyPool = errors.New("no eligible candidate in pool")
)

// ValidationError reports which submission fields failed validation. Fields
// holds payload field names ("nickname", "age", "gender", "contact_handle")
// in the order they were checked.
type ValidationError struct {
	Fields []string
}

// Error implements the error interface, naming every invalid field.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field(s): %s", strings.Join(e.Fields, ", "))
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
