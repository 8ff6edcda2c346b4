package storage

import (
	"context"

	"github.com/iudanet/dailywins/internal/models"
)

//go:generate moq -out cache_mock.go . CacheStorage

// CacheStorage defines the interface for the local durable cache of
// accomplishments. The cache is the UI's read model at all times: every
// write path (direct remote or offline-queued) lands here before returning.
type CacheStorage interface {
	// Put upserts entries by ID; last write wins per entry.
	Put(ctx context.Context, entries []*models.Accomplishment) error

	// Get retrieves a cached accomplishment by ID.
	// Returns ErrEntryNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*models.Accomplishment, error)

	// Query returns one page of the owner's entries ordered by CreatedAt
	// descending, plus the full matching count independent of pagination.
	// Pages are 1-based.
	Query(ctx context.Context, ownerID string, page, pageSize int) ([]*models.Accomplishment, int, error)

	// Remove deletes a cached entry by ID. Removing a non-existent ID
	// is a no-op.
	Remove(ctx context.Context, id string) error
}
