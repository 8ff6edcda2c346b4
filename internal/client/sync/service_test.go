package sync

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/dailywins/internal/client/api"
	"github.com/iudanet/dailywins/internal/client/auth"
	"github.com/iudanet/dailywins/internal/client/storage"
	"github.com/iudanet/dailywins/internal/models"
	"github.com/iudanet/dailywins/pkg/api"
)

// staticChecker is a fixed connectivity state for tests.
type staticChecker bool

func (c staticChecker) IsOnline() bool { return bool(c) }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSession() *storage.AuthData {
	return &storage.AuthData{
		Email:       "user@example.com",
		UserID:      "user-123",
		AccessToken: "test_token",
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
	}
}

func authMockWithSession() *auth.ServiceMock {
	return &auth.ServiceMock{
		SessionFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return testSession(), nil
		},
	}
}

// emptyQueues returns a pending storage mock with all three queues empty.
func emptyQueues() *storage.PendingStorageMock {
	return &storage.PendingStorageMock{
		ListCreatesFunc: func(ctx context.Context) ([]*models.Accomplishment, error) {
			return nil, nil
		},
		ListUpdatesFunc: func(ctx context.Context) ([]*storage.PendingUpdate, error) {
			return nil, nil
		},
		ListDeletesFunc: func(ctx context.Context) ([]*storage.PendingDelete, error) {
			return nil, nil
		},
	}
}

func metadataMock() *storage.MetadataStorageMock {
	return &storage.MetadataStorageMock{
		SaveLastSyncAtFunc: func(ctx context.Context, t time.Time) error {
			return nil
		},
		GetLastSyncAtFunc: func(ctx context.Context) (time.Time, error) {
			return time.Time{}, nil
		},
	}
}

func TestService_Sync_Offline(t *testing.T) {
	ctx := context.Background()

	apiMock := &httpClient.ClientAPIMock{}
	svc := NewService(apiMock, &storage.CacheStorageMock{}, emptyQueues(),
		metadataMock(), authMockWithSession(), staticChecker(false), testLogger())

	result, err := svc.SyncPendingOperations(ctx)
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Empty(t, apiMock.InsertCalls())
}

func TestService_Sync_NotAuthenticated(t *testing.T) {
	ctx := context.Background()

	authMock := &auth.ServiceMock{
		SessionFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return nil, auth.ErrNotAuthenticated
		},
	}
	svc := NewService(&httpClient.ClientAPIMock{}, &storage.CacheStorageMock{},
		emptyQueues(), metadataMock(), authMock, staticChecker(true), testLogger())

	_, err := svc.SyncPendingOperations(ctx)
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestService_Sync_DrainsAllQueues(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	queuedCreate := &models.Accomplishment{
		ID:        "create-1",
		OwnerID:   "user-123",
		Text:      "offline win",
		Category:  models.CategoryWork,
		CreatedAt: now,
		UpdatedAt: now,
	}

	pendingMock := &storage.PendingStorageMock{
		ListCreatesFunc: func(ctx context.Context) ([]*models.Accomplishment, error) {
			return []*models.Accomplishment{queuedCreate}, nil
		},
		ListUpdatesFunc: func(ctx context.Context) ([]*storage.PendingUpdate, error) {
			return []*storage.PendingUpdate{
				{ID: "update-1", Text: "revised", QueuedAt: now},
			}, nil
		},
		ListDeletesFunc: func(ctx context.Context) ([]*storage.PendingDelete, error) {
			return []*storage.PendingDelete{
				{ID: "delete-1", QueuedAt: now},
			}, nil
		},
		GetCreateFunc: func(ctx context.Context, id string) (*models.Accomplishment, error) {
			return nil, storage.ErrEntryNotFound
		},
		DequeueCreateFunc: func(ctx context.Context, id string) error { return nil },
		DequeueUpdateFunc: func(ctx context.Context, id string) error { return nil },
		DequeueDeleteFunc: func(ctx context.Context, id string) error { return nil },
	}

	var cached []*models.Accomplishment
	cacheMock := &storage.CacheStorageMock{
		PutFunc: func(ctx context.Context, entries []*models.Accomplishment) error {
			cached = append(cached, entries...)
			return nil
		},
		RemoveFunc: func(ctx context.Context, id string) error { return nil },
	}

	serverCreatedAt := now.Add(time.Second)
	apiMock := &httpClient.ClientAPIMock{
		InsertFunc: func(ctx context.Context, token string, req api.InsertRequest) (*api.Accomplishment, error) {
			assert.Equal(t, "test_token", token)
			assert.Equal(t, "create-1", req.ID)
			return &api.Accomplishment{
				ID:        req.ID,
				UserID:    "user-123",
				Text:      req.Text,
				Category:  req.Category,
				CreatedAt: req.CreatedAt,
				UpdatedAt: serverCreatedAt,
			}, nil
		},
		UpdateFunc: func(ctx context.Context, token string, id string, req api.UpdateRequest) (*api.Accomplishment, error) {
			assert.Equal(t, "update-1", id)
			return &api.Accomplishment{
				ID:     id,
				UserID: "user-123",
				Text:   req.Text,
			}, nil
		},
		DeleteFunc: func(ctx context.Context, token string, id string) error {
			assert.Equal(t, "delete-1", id)
			return nil
		},
	}

	metaMock := metadataMock()

	svc := NewService(apiMock, cacheMock, pendingMock, metaMock,
		authMockWithSession(), staticChecker(true), testLogger())

	result, err := svc.SyncPendingOperations(ctx)
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, 1, result.SyncedCreates)
	assert.Equal(t, 1, result.SyncedUpdates)
	assert.Equal(t, 1, result.SyncedDeletes)
	assert.Equal(t, 0, result.Failed())

	// Canonical records were promoted into the cache.
	require.Len(t, cached, 2)
	assert.Equal(t, "create-1", cached[0].ID)
	assert.True(t, serverCreatedAt.Equal(cached[0].UpdatedAt))
	assert.Equal(t, "update-1", cached[1].ID)

	// Every queue entry was dequeued exactly once.
	assert.Len(t, pendingMock.DequeueCreateCalls(), 1)
	assert.Len(t, pendingMock.DequeueUpdateCalls(), 1)
	assert.Len(t, pendingMock.DequeueDeleteCalls(), 1)

	// The sync time was recorded.
	assert.Len(t, metaMock.SaveLastSyncAtCalls(), 1)
}

func TestService_Sync_PerItemIsolation(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	entries := []*models.Accomplishment{
		{ID: "ok-1", OwnerID: "user-123", Text: "a", Category: models.CategoryWork, CreatedAt: now, UpdatedAt: now},
		{ID: "bad-1", OwnerID: "user-123", Text: "b", Category: models.CategoryWork, CreatedAt: now.Add(time.Second), UpdatedAt: now},
		{ID: "ok-2", OwnerID: "user-123", Text: "c", Category: models.CategoryWork, CreatedAt: now.Add(2 * time.Second), UpdatedAt: now},
	}

	pendingMock := emptyQueues()
	pendingMock.ListCreatesFunc = func(ctx context.Context) ([]*models.Accomplishment, error) {
		return entries, nil
	}
	pendingMock.DequeueCreateFunc = func(ctx context.Context, id string) error { return nil }

	apiMock := &httpClient.ClientAPIMock{
		InsertFunc: func(ctx context.Context, token string, req api.InsertRequest) (*api.Accomplishment, error) {
			if req.ID == "bad-1" {
				return nil, fmt.Errorf("server error (500): database unavailable")
			}
			return &api.Accomplishment{ID: req.ID, UserID: "user-123", Text: req.Text, Category: req.Category}, nil
		},
	}
	cacheMock := &storage.CacheStorageMock{
		PutFunc: func(ctx context.Context, entries []*models.Accomplishment) error { return nil },
	}

	svc := NewService(apiMock, cacheMock, pendingMock, metadataMock(),
		authMockWithSession(), staticChecker(true), testLogger())

	result, err := svc.SyncPendingOperations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SyncedCreates)
	assert.Equal(t, 1, result.FailedCreates)

	// Only the successful creates were dequeued; the failure stays queued.
	dequeued := pendingMock.DequeueCreateCalls()
	require.Len(t, dequeued, 2)
	assert.Equal(t, "ok-1", dequeued[0].ID)
	assert.Equal(t, "ok-2", dequeued[1].ID)
}

func TestService_Sync_UpdateWaitsForPendingCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	queued := &models.Accomplishment{
		ID: "entry-1", OwnerID: "user-123", Text: "a",
		Category: models.CategoryWork, CreatedAt: now, UpdatedAt: now,
	}

	pendingMock := emptyQueues()
	pendingMock.ListCreatesFunc = func(ctx context.Context) ([]*models.Accomplishment, error) {
		return []*models.Accomplishment{queued}, nil
	}
	pendingMock.ListUpdatesFunc = func(ctx context.Context) ([]*storage.PendingUpdate, error) {
		return []*storage.PendingUpdate{{ID: "entry-1", Text: "edited", QueuedAt: now}}, nil
	}
	pendingMock.GetCreateFunc = func(ctx context.Context, id string) (*models.Accomplishment, error) {
		// The create is still queued: its insert failed this pass.
		return queued, nil
	}

	apiMock := &httpClient.ClientAPIMock{
		InsertFunc: func(ctx context.Context, token string, req api.InsertRequest) (*api.Accomplishment, error) {
			return nil, fmt.Errorf("server error (503): unavailable")
		},
	}

	svc := NewService(apiMock, &storage.CacheStorageMock{}, pendingMock,
		metadataMock(), authMockWithSession(), staticChecker(true), testLogger())

	result, err := svc.SyncPendingOperations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.FailedCreates)
	assert.Equal(t, 1, result.FailedUpdates)

	// The update was never sent: it would race the not-yet-inserted row.
	assert.Empty(t, apiMock.UpdateCalls())
}

func TestService_Sync_SecondConcurrentInvocationSkipped(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	entered := make(chan struct{})
	release := make(chan struct{})

	pendingMock := emptyQueues()
	pendingMock.ListCreatesFunc = func(ctx context.Context) ([]*models.Accomplishment, error) {
		return []*models.Accomplishment{
			{ID: "entry-1", OwnerID: "user-123", Text: "a", Category: models.CategoryWork, CreatedAt: now, UpdatedAt: now},
		}, nil
	}
	pendingMock.DequeueCreateFunc = func(ctx context.Context, id string) error { return nil }

	apiMock := &httpClient.ClientAPIMock{
		InsertFunc: func(ctx context.Context, token string, req api.InsertRequest) (*api.Accomplishment, error) {
			close(entered)
			<-release
			return &api.Accomplishment{ID: req.ID, UserID: "user-123"}, nil
		},
	}
	cacheMock := &storage.CacheStorageMock{
		PutFunc: func(ctx context.Context, entries []*models.Accomplishment) error { return nil },
	}

	svc := NewService(apiMock, cacheMock, pendingMock, metadataMock(),
		authMockWithSession(), staticChecker(true), testLogger())

	done := make(chan *SyncResult)
	go func() {
		result, err := svc.SyncPendingOperations(ctx)
		assert.NoError(t, err)
		done <- result
	}()

	// Wait until the first sync is mid-flight, then invoke again.
	<-entered
	second, err := svc.SyncPendingOperations(ctx)
	require.NoError(t, err)
	assert.True(t, second.Skipped)

	close(release)
	first := <-done
	assert.False(t, first.Skipped)
	assert.Equal(t, 1, first.SyncedCreates)

	// Only the first invocation touched the server.
	assert.Len(t, apiMock.InsertCalls(), 1)
}

func TestService_Sync_LocalStorageErrorIsFatal(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	pendingMock := emptyQueues()
	pendingMock.ListCreatesFunc = func(ctx context.Context) ([]*models.Accomplishment, error) {
		return []*models.Accomplishment{
			{ID: "entry-1", OwnerID: "user-123", Text: "a", Category: models.CategoryWork, CreatedAt: now, UpdatedAt: now},
		}, nil
	}

	apiMock := &httpClient.ClientAPIMock{
		InsertFunc: func(ctx context.Context, token string, req api.InsertRequest) (*api.Accomplishment, error) {
			return &api.Accomplishment{ID: req.ID, UserID: "user-123"}, nil
		},
	}
	cacheMock := &storage.CacheStorageMock{
		PutFunc: func(ctx context.Context, entries []*models.Accomplishment) error {
			return fmt.Errorf("disk full")
		},
	}

	svc := NewService(apiMock, cacheMock, pendingMock, metadataMock(),
		authMockWithSession(), staticChecker(true), testLogger())

	_, err := svc.SyncPendingOperations(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestService_GetSyncStatus(t *testing.T) {
	ctx := context.Background()
	lastSync := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	pendingMock := &storage.PendingStorageMock{
		CountPendingFunc: func(ctx context.Context) (int, error) {
			return 3, nil
		},
	}
	metaMock := &storage.MetadataStorageMock{
		GetLastSyncAtFunc: func(ctx context.Context) (time.Time, error) {
			return lastSync, nil
		},
	}

	svc := NewService(&httpClient.ClientAPIMock{}, &storage.CacheStorageMock{},
		pendingMock, metaMock, authMockWithSession(), staticChecker(true), testLogger())

	status, err := svc.GetSyncStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, status.PendingCount)
	assert.True(t, lastSync.Equal(status.LastSyncAt))
}

func TestService_GetSyncStatus_CountError(t *testing.T) {
	ctx := context.Background()

	pendingMock := &storage.PendingStorageMock{
		CountPendingFunc: func(ctx context.Context) (int, error) {
			return 0, fmt.Errorf("db closed")
		},
	}

	svc := NewService(&httpClient.ClientAPIMock{}, &storage.CacheStorageMock{},
		pendingMock, metadataMock(), authMockWithSession(), staticChecker(true), testLogger())

	_, err := svc.GetSyncStatus(ctx)
	assert.Error(t, err)
}
