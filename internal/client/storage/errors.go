package storage

import "errors"

// Common client storage errors
var (
	// ErrEntryNotFound indicates that an accomplishment was not found
	ErrEntryNotFound = errors.New("accomplishment not found")

	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
