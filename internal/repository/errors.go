package repository

import "errors"

var (
	// ErrNotFound is returned when no row matches the (id, user_id) pair.
	// Callers cannot distinguish "absent" from "owned by someone else".
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned on a unique violation of users.email.
	ErrDuplicateEmail = errors.New("email already registered")
)
