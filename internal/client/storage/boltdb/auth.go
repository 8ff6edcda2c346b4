package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/dailywins/internal/client/storage"
)

var keyCurrentAuth = []byte("current")

// SaveAuth persists the session for the signed-in user, replacing any
// previous session.
func (s *Storage) SaveAuth(ctx context.Context, data *storage.AuthData) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		buf, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal auth data: %w", err)
		}

		if err := bucket.Put(keyCurrentAuth, buf); err != nil {
			return fmt.Errorf("failed to save auth data: %w", err)
		}

		return nil
	})
}

// GetAuth returns the stored session, or storage.ErrAuthNotFound when
// nobody is signed in.
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	data := &storage.AuthData{}

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		buf := bucket.Get(keyCurrentAuth)
		if buf == nil {
			return storage.ErrAuthNotFound
		}

		if err := json.Unmarshal(buf, data); err != nil {
			return fmt.Errorf("failed to unmarshal auth data: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return data, nil
}

// DeleteAuth removes the stored session. Idempotent.
func (s *Storage) DeleteAuth(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		if err := bucket.Delete(keyCurrentAuth); err != nil {
			return fmt.Errorf("failed to delete auth data: %w", err)
		}

		return nil
	})
}
