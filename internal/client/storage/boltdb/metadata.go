package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var keyLastSyncAt = []byte("last_sync_at")

// SaveLastSyncAt records the wall-clock time of the last successful sync.
func (s *Storage) SaveLastSyncAt(ctx context.Context, t time.Time) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(t.UnixNano()))

		if err := bucket.Put(keyLastSyncAt, buf); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}

		return nil
	})
}

// GetLastSyncAt returns the recorded last sync time, or the zero time
// when no sync has completed yet.
func (s *Storage) GetLastSyncAt(ctx context.Context) (time.Time, error) {
	var t time.Time

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data := bucket.Get(keyLastSyncAt)
		if data == nil {
			return nil
		}

		if len(data) != 8 {
			return fmt.Errorf("invalid last sync time value")
		}

		t = time.Unix(0, int64(binary.BigEndian.Uint64(data)))
		return nil
	})

	if err != nil {
		return time.Time{}, err
	}

	return t, nil
}
