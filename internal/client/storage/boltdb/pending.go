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

// EnqueueCreate stores a provisional accomplishment awaiting its first
// remote insert. A second enqueue for the same ID replaces the first.
func (s *Storage) EnqueueCreate(ctx context.Context, entry *models.Accomplishment) error {
	return s.putJSON(bucketPendingCreates, entry.ID, entry)
}

// GetCreate retrieves a queued create by ID.
func (s *Storage) GetCreate(ctx context.Context, id string) (*models.Accomplishment, error) {
	entry := &models.Accomplishment{}
	if err := s.getJSON(bucketPendingCreates, id, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListCreates returns all queued creates ordered by CreatedAt (insertion
// order, since the provisional CreatedAt is assigned at enqueue time).
func (s *Storage) ListCreates(ctx context.Context) ([]*models.Accomplishment, error) {
	var creates []*models.Accomplishment

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPendingCreates)
		if bucket == nil {
			return fmt.Errorf("pending_creates bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			entry := &models.Accomplishment{}
			if err := json.Unmarshal(v, entry); err != nil {
				return fmt.Errorf("failed to unmarshal pending create: %w", err)
			}
			creates = append(creates, entry)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	sort.Slice(creates, func(i, j int) bool {
		return creates[i].CreatedAt.Before(creates[j].CreatedAt)
	})

	return creates, nil
}

// DequeueCreate removes a queued create. Idempotent.
func (s *Storage) DequeueCreate(ctx context.Context, id string) error {
	return s.deleteKey(bucketPendingCreates, id)
}

// EnqueueUpdate stores or replaces the pending update for an ID.
// Only the most recent update per ID survives (last-writer-wins).
func (s *Storage) EnqueueUpdate(ctx context.Context, upd *storage.PendingUpdate) error {
	return s.putJSON(bucketPendingUpdates, upd.ID, upd)
}

// ListUpdates returns all queued updates ordered by QueuedAt.
func (s *Storage) ListUpdates(ctx context.Context) ([]*storage.PendingUpdate, error) {
	var updates []*storage.PendingUpdate

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPendingUpdates)
		if bucket == nil {
			return fmt.Errorf("pending_updates bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			upd := &storage.PendingUpdate{}
			if err := json.Unmarshal(v, upd); err != nil {
				return fmt.Errorf("failed to unmarshal pending update: %w", err)
			}
			updates = append(updates, upd)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	sort.Slice(updates, func(i, j int) bool {
		return updates[i].QueuedAt.Before(updates[j].QueuedAt)
	})

	return updates, nil
}

// DequeueUpdate removes a queued update. Idempotent.
func (s *Storage) DequeueUpdate(ctx context.Context, id string) error {
	return s.deleteKey(bucketPendingUpdates, id)
}

// EnqueueDelete stores or replaces the pending delete for an ID.
func (s *Storage) EnqueueDelete(ctx context.Context, del *storage.PendingDelete) error {
	return s.putJSON(bucketPendingDeletes, del.ID, del)
}

// HasDelete reports whether a delete is queued for the ID.
func (s *Storage) HasDelete(ctx context.Context, id string) (bool, error) {
	var found bool

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPendingDeletes)
		if bucket == nil {
			return fmt.Errorf("pending_deletes bucket not found")
		}

		found = bucket.Get([]byte(id)) != nil
		return nil
	})

	if err != nil {
		return false, err
	}

	return found, nil
}

// ListDeletes returns all queued deletes ordered by QueuedAt.
func (s *Storage) ListDeletes(ctx context.Context) ([]*storage.PendingDelete, error) {
	var deletes []*storage.PendingDelete

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPendingDeletes)
		if bucket == nil {
			return fmt.Errorf("pending_deletes bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			del := &storage.PendingDelete{}
			if err := json.Unmarshal(v, del); err != nil {
				return fmt.Errorf("failed to unmarshal pending delete: %w", err)
			}
			deletes = append(deletes, del)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	sort.Slice(deletes, func(i, j int) bool {
		return deletes[i].QueuedAt.Before(deletes[j].QueuedAt)
	})

	return deletes, nil
}

// DequeueDelete removes a queued delete. Idempotent.
func (s *Storage) DequeueDelete(ctx context.Context, id string) error {
	return s.deleteKey(bucketPendingDeletes, id)
}

// CountPending returns the sum of the three pending queue sizes.
func (s *Storage) CountPending(ctx context.Context) (int, error) {
	var count int

	err := s.view(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketPendingCreates, bucketPendingUpdates, bucketPendingDeletes} {
			bucket := tx.Bucket(name)
			if bucket == nil {
				return fmt.Errorf("%s bucket not found", name)
			}
			count += bucket.Stats().KeyN
		}
		return nil
	})

	if err != nil {
		return 0, err
	}

	return count, nil
}

// putJSON marshals v and stores it under key in the named bucket.
func (s *Storage) putJSON(bucketName []byte, key string, v any) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", bucketName)
		}

		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal value: %w", err)
		}

		if err := bucket.Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to save value: %w", err)
		}

		return nil
	})
}

// getJSON reads key from the named bucket and unmarshals it into v.
// Returns storage.ErrEntryNotFound if the key does not exist.
func (s *Storage) getJSON(bucketName []byte, key string, v any) error {
	return s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", bucketName)
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrEntryNotFound
		}

		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to unmarshal value: %w", err)
		}

		return nil
	})
}

// deleteKey removes key from the named bucket. Deleting a missing key
// is a no-op in bbolt, which gives the queues their idempotent dequeue.
func (s *Storage) deleteKey(bucketName []byte, key string) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", bucketName)
		}

		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete key: %w", err)
		}

		return nil
	})
}
