package services

import (
	"errors"
)

// Sentinel errors surfaced to handlers. Anything not in this list is a
// store failure and maps to a generic internal error response.
var (
	ErrInvalidPhone       = errors.New("invalid phone number format")
	ErrPhoneExists        = errors.New("phone number already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseLinkNotFound = errors.New("course link not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrValidationFailed   = errors.New("validation failed")
)
