package repositories

import (
	"errors"
)

var (
	// ErrNotFound is returned when a point lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert or update violates a
	// uniqueness constraint (users.phone).
	ErrDuplicate = errors.New("duplicate record")
)
