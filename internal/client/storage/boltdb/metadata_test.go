package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

// createTestMetadataStorage creates a temporary BoltDB store with all buckets.
func createTestMetadataStorage(t *testing.T) (*Storage, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "metadata_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		require.NoError(t, store.Close())
		require.NoError(t, os.RemoveAll(tmpDir))
	}

	return store, cleanup
}

func TestSaveAndGetLastSyncAt(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestMetadataStorage(t)
	defer cleanup()

	// Zero time before the first sync.
	got, err := store.GetLastSyncAt(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	want := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	err = store.SaveLastSyncAt(ctx, want)
	require.NoError(t, err)

	got, err = store.GetLastSyncAt(ctx)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

func TestGetLastSyncAt_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestMetadataStorage(t)
	defer cleanup()

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	_, err = store.GetLastSyncAt(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")
}

func TestSaveLastSyncAt_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestMetadataStorage(t)
	defer cleanup()

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	err = store.SaveLastSyncAt(ctx, time.Now())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")
}
