package models

import "errors"

// Error categories shared by every layer.
// Lower layers wrap these with %w so callers can use errors.Is.
var (
	// ErrValidation indicates input that breaks a data model invariant
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates the requested todo does not exist
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable indicates the database file or device could not be opened
	ErrStorageUnavailable = errors.New("storage unavailable")
)
