package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/dailywins/internal/client/storage"
	"github.com/iudanet/dailywins/internal/models"
)

// Put upserts cached accomplishments by ID. Each entry is written
// independently; a failure marshalling one entry aborts the transaction
// without touching the others.
func (s *Storage) Put(ctx context.Context, entries []*models.Accomplishment) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAccomplishments)
		if bucket == nil {
			return fmt.Errorf("accomplishments bucket not found")
		}

		for _, entry := range entries {
			data, err := json.Marshal(entry)
			if err != nil {
				return fmt.Errorf("failed to marshal accomplishment: %w", err)
			}

			if err := bucket.Put([]byte(entry.ID), data); err != nil {
				return fmt.Errorf("failed to save accomplishment: %w", err)
			}
		}

		return nil
	})
}

// Get retrieves a cached accomplishment by ID.
func (s *Storage) Get(ctx context.Context, id string) (*models.Accomplishment, error) {
	var entry *models.Accomplishment

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAccomplishments)
		if bucket == nil {
			return fmt.Errorf("accomplishments bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrEntryNotFound
		}

		entry = &models.Accomplishment{}
		if err := json.Unmarshal(data, entry); err != nil {
			return fmt.Errorf("failed to unmarshal accomplishment: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Query returns one page of the owner's accomplishments ordered by
// CreatedAt descending, plus the total matching count. Pages are 1-based;
// a page past the end returns an empty slice with the correct total.
func (s *Storage) Query(ctx context.Context, ownerID string, page, pageSize int) ([]*models.Accomplishment, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return nil, 0, fmt.Errorf("invalid page size: %d", pageSize)
	}

	var matched []*models.Accomplishment

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAccomplishments)
		if bucket == nil {
			return fmt.Errorf("accomplishments bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			entry := &models.Accomplishment{}
			if err := json.Unmarshal(v, entry); err != nil {
				return fmt.Errorf("failed to unmarshal accomplishment: %w", err)
			}

			if entry.OwnerID == ownerID {
				matched = append(matched, entry)
			}

			return nil
		})
	})

	if err != nil {
		return nil, 0, err
	}

	// Newest first. Ties broken by ID so pagination is stable.
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)

	start := (page - 1) * pageSize
	if start >= total {
		return []*models.Accomplishment{}, total, nil
	}

	end := start + pageSize
	if end > total {
		end = total
	}

	return matched[start:end], total, nil
}

// Remove deletes a cached accomplishment by ID. Removing a non-existent
// ID is a no-op.
func (s *Storage) Remove(ctx context.Context, id string) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAccomplishments)
		if bucket == nil {
			return fmt.Errorf("accomplishments bucket not found")
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to remove accomplishment: %w", err)
		}

		return nil
	})
}
