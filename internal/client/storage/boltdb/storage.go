package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/dailywins/internal/client/storage"
)

var (
	// BoltDB bucket names. One bucket per durable table: the cached
	// accomplishments, the three pending operation queues, plus small
	// metadata values and the auth session.
	bucketAccomplishments = []byte("accomplishments")
	bucketPendingCreates  = []byte("pending_creates")
	bucketPendingUpdates  = []byte("pending_updates")
	bucketPendingDeletes  = []byte("pending_deletes")
	bucketMetadata        = []byte("metadata")
	bucketAuth            = []byte("auth")
)

// Storage represents the BoltDB storage implementation for the client.
// A single instance backs all four durable tables; it satisfies
// storage.CacheStorage, storage.PendingStorage, storage.MetadataStorage
// and storage.AuthStorage.
type Storage struct {
	db *bbolt.DB
}

// New opens (or creates) the BoltDB file at dbPath and initializes all
// buckets. Safe to call on an existing database; bucket creation is
// idempotent.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// view runs a read transaction, failing with storage.ErrStorageClosed
// once Close has been called.
func (s *Storage) view(fn func(tx *bbolt.Tx) error) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.View(fn)
}

// update runs a write transaction, failing with storage.ErrStorageClosed
// once Close has been called.
func (s *Storage) update(fn func(tx *bbolt.Tx) error) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.Update(fn)
}

// Close closes the database connection. Safe to call multiple times.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets creates the required buckets if they don't exist.
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{
			bucketAccomplishments,
			bucketPendingCreates,
			bucketPendingUpdates,
			bucketPendingDeletes,
			bucketMetadata,
			bucketAuth,
		}

		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}

		return nil
	})
}
