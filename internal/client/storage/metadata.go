package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines the interface for small client metadata values.
type MetadataStorage interface {
	// SaveLastSyncAt saves the time of the last successful drain.
	SaveLastSyncAt(ctx context.Context, t time.Time) error

	// GetLastSyncAt retrieves the time of the last successful drain.
	// Returns the zero time if no drain has completed yet.
	GetLastSyncAt(ctx context.Context) (time.Time, error)
}
