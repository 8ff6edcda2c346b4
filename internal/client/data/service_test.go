package data

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/dailywins/internal/client/api"
	"github.com/iudanet/dailywins/internal/client/auth"
	"github.com/iudanet/dailywins/internal/client/storage"
	"github.com/iudanet/dailywins/internal/models"
	"github.com/iudanet/dailywins/pkg/api"
)

// fakeConn is a scriptable connectivity state for tests.
type fakeConn struct {
	registerErr error
	registered  int
	online      bool
}

func (c *fakeConn) IsOnline() bool { return c.online }

func (c *fakeConn) RegisterDeferredSync() error {
	c.registered++
	return c.registerErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authMockWithSession() *auth.ServiceMock {
	return &auth.ServiceMock{
		SessionFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{
				Email:       "user@example.com",
				UserID:      "user-123",
				AccessToken: "test_token",
				ExpiresAt:   time.Now().Add(time.Hour).Unix(),
			}, nil
		},
	}
}

func TestService_Add_Online(t *testing.T) {
	ctx := context.Background()
	serverNow := time.Now().UTC().Truncate(time.Second)

	apiMock := &httpClient.ClientAPIMock{
		InsertFunc: func(ctx context.Context, token string, req api.InsertRequest) (*api.Accomplishment, error) {
			assert.Equal(t, "test_token", token)
			assert.NotEmpty(t, req.ID)
			return &api.Accomplishment{
				ID:        req.ID,
				UserID:    "user-123",
				Text:      req.Text,
				Category:  req.Category,
				CreatedAt: serverNow,
				UpdatedAt: serverNow,
			}, nil
		},
	}
	var cached []*models.Accomplishment
	cacheMock := &storage.CacheStorageMock{
		PutFunc: func(ctx context.Context, entries []*models.Accomplishment) error {
			cached = append(cached, entries...)
			return nil
		},
	}
	pendingMock := &storage.PendingStorageMock{}
	conn := &fakeConn{online: true}

	svc := NewService(apiMock, cacheMock, pendingMock, authMockWithSession(), conn, testLogger())

	entry, err := svc.Add(ctx, "shipped the release", models.CategoryWork)
	require.NoError(t, err)
	require.NotNil(t, entry)

	// The ID is a client-assigned UUID.
	_, err = uuid.Parse(entry.ID)
	assert.NoError(t, err)

	// The canonical server record landed in the cache; nothing queued.
	require.Len(t, cached, 1)
	assert.True(t, serverNow.Equal(cached[0].CreatedAt))
	assert.Empty(t, pendingMock.EnqueueCreateCalls())
	assert.Zero(t, conn.registered)
}

func TestService_Add_Offline(t *testing.T) {
	ctx := context.Background()

	var queued *models.Accomplishment
	pendingMock := &storage.PendingStorageMock{
		EnqueueCreateFunc: func(ctx context.Context, entry *models.Accomplishment) error {
			queued = entry
			return nil
		},
	}
	var cached []*models.Accomplishment
	cacheMock := &storage.CacheStorageMock{
		PutFunc: func(ctx context.Context, entries []*models.Accomplishment) error {
			cached = append(cached, entries...)
			return nil
		},
	}
	apiMock := &httpClient.ClientAPIMock{}
	conn := &fakeConn{online: false}

	svc := NewService(apiMock, cacheMock, pendingMock, authMockWithSession(), conn, testLogger())

	entry, err := svc.Add(ctx, "offline win", models.CategoryHealth)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "user-123", entry.OwnerID)

	// Exactly one queued create, the provisional record is visible, the
	// server was never called, and a deferred sync was requested.
	require.NotNil(t, queued)
	assert.Equal(t, entry.ID, queued.ID)
	require.Len(t, cached, 1)
	assert.Equal(t, entry.ID, cached[0].ID)
	assert.Empty(t, apiMock.InsertCalls())
	assert.Equal(t, 1, conn.registered)
}

func TestService_Add_RemoteFailureFallsBackToQueue(t *testing.T) {
	ctx := context.Background()

	apiMock := &httpClient.ClientAPIMock{
		InsertFunc: func(ctx context.Context, token string, req api.InsertRequest) (*api.Accomplishment, error) {
			return nil, fmt.Errorf("server error (503): unavailable")
		},
	}
	pendingMock := &storage.PendingStorageMock{
		EnqueueCreateFunc: func(ctx context.Context, entry *models.Accomplishment) error { return nil },
	}
	cacheMock := &storage.CacheStorageMock{
		PutFunc: func(ctx context.Context, entries []*models.Accomplishment) error { return nil },
	}
	conn := &fakeConn{online: true}

	svc := NewService(apiMock, cacheMock, pendingMock, authMockWithSession(), conn, testLogger())

	// The remote failure is swallowed; the caller sees a successful
	// (queued) create.
	entry, err := svc.Add(ctx, "win", models.CategoryWork)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Len(t, pendingMock.EnqueueCreateCalls(), 1)
	assert.Equal(t, 1, conn.registered)
}

func TestService_Add_Validation(t *testing.T) {
	svc := NewService(&httpClient.ClientAPIMock{}, &storage.CacheStorageMock{},
		&storage.PendingStorageMock{}, authMockWithSession(), &fakeConn{}, testLogger())
	ctx := context.Background()

	_, err := svc.Add(ctx, "   ", models.CategoryWork)
	assert.Error(t, err)

	_, err = svc.Add(ctx, "valid text", models.Category("nonsense"))
	assert.Error(t, err)
}

func TestService_Add_NotAuthenticated(t *testing.T) {
	authMock := &auth.ServiceMock{
		SessionFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return nil, auth.ErrNotAuthenticated
		},
	}
	svc := NewService(&httpClient.ClientAPIMock{}, &storage.CacheStorageMock{},
		&storage.PendingStorageMock{}, authMock, &fakeConn{online: true}, testLogger())

	_, err := svc.Add(context.Background(), "win", models.CategoryWork)
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestService_Update_Online(t *testing.T) {
	ctx := context.Background()

	pendingMock := &storage.PendingStorageMock{
		HasDeleteFunc: func(ctx context.Context, id string) (bool, error) { return false, nil },
		GetCreateFunc: func(ctx context.Context, id string) (*models.Accomplishment, error) {
			return nil, storage.ErrEntryNotFound
		},
		DequeueUpdateFunc: func(ctx context.Context, id string) error { return nil },
	}
	apiMock := &httpClient.ClientAPIMock{
		UpdateFunc: func(ctx context.Context, token string, id string, req api.UpdateRequest) (*api.Accomplishment, error) {
			assert.Equal(t, "entry-1", id)
			assert.Equal(t, "revised", req.Text)
			return &api.Accomplishment{ID: id, UserID: "user-123", Text: req.Text}, nil
		},
	}
	cacheMock := &storage.CacheStorageMock{
		PutFunc: func(ctx context.Context, entries []*models.Accomplishment) error { return nil },
	}

	svc := NewService(apiMock, cacheMock, pendingMock, authMockWithSession(),
		&fakeConn{online: true}, testLogger())

	err := svc.Update(ctx, "entry-1", "revised", nil)
	require.NoError(t, err)
	assert.Len(t, apiMock.UpdateCalls(), 1)
	assert.Empty(t, pendingMock.EnqueueUpdateCalls())
}

func TestService_Update_OnlineDropsStaleQueuedUpdate(t *testing.T) {
	ctx := context.Background()

	queue := map[string]*storage.PendingUpdate{
		"entry-1": {ID: "entry-1", Text: "older edit", QueuedAt: time.Now().Add(-time.Hour)},
	}
	pendingMock := &storage.PendingStorageMock{
		HasDeleteFunc: func(ctx context.Context, id string) (bool, error) { return false, nil },
		GetCreateFunc: func(ctx context.Context, id string) (*models.Accomplishment, error) {
			return nil, storage.ErrEntryNotFound
		},
		DequeueUpdateFunc: func(ctx context.Context, id string) error {
			delete(queue, id)
			return nil
		},
	}
	apiMock := &httpClient.ClientAPIMock{
		UpdateFunc: func(ctx context.Context, token string, id string, req api.UpdateRequest) (*api.Accomplishment, error) {
			return &api.Accomplishment{ID: id, UserID: "user-123", Text: req.Text}, nil
		},
	}
	cacheMock := &storage.CacheStorageMock{
		PutFunc: func(ctx context.Context, entries []*models.Accomplishment) error { return nil },
	}

	svc := NewService(apiMock, cacheMock, pendingMock, authMockWithSession(),
		&fakeConn{online: true}, testLogger())

	// The direct write lands; the older queued edit must not survive to
	// replay at the next drain.
	err := svc.Update(ctx, "entry-1", "newer edit", nil)
	require.NoError(t, err)
	assert.Len(t, pendingMock.DequeueUpdateCalls(), 1)
	assert.Empty(t, queue)
	assert.Empty(t, pendingMock.EnqueueUpdateCalls())
}

func TestService_Update_Offline(t *testing.T) {
	ctx := context.Background()
	newDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	var queued *storage.PendingUpdate
	pendingMock := &storage.PendingStorageMock{
		HasDeleteFunc: func(ctx context.Context, id string) (bool, error) { return false, nil },
		GetCreateFunc: func(ctx context.Context, id string) (*models.Accomplishment, error) {
			return nil, storage.ErrEntryNotFound
		},
		EnqueueUpdateFunc: func(ctx context.Context, upd *storage.PendingUpdate) error {
			queued = upd
			return nil
		},
	}
	cacheMock := &storage.CacheStorageMock{
		GetFunc: func(ctx context.Context, id string) (*models.Accomplishment, error) {
			return &models.Accomplishment{ID: id, OwnerID: "user-123", Text: "old"}, nil
		},
		PutFunc: func(ctx context.Context, entries []*models.Accomplishment) error {
			require.Len(t, entries, 1)
			assert.Equal(t, "revised", entries[0].Text)
			assert.True(t, newDate.Equal(entries[0].CreatedAt))
			return nil
		},
	}
	conn := &fakeConn{online: false}

	svc := NewService(&httpClient.ClientAPIMock{}, cacheMock, pendingMock,
		authMockWithSession(), conn, testLogger())

	err := svc.Update(ctx, "entry-1", "revised", &newDate)
	require.NoError(t, err)

	require.NotNil(t, queued)
	assert.Equal(t, "entry-1", queued.ID)
	assert.Equal(t, "revised", queued.Text)
	require.NotNil(t, queued.CreatedAt)
	assert.True(t, newDate.Equal(*queued.CreatedAt))
	assert.Equal(t, 1, conn.registered)
}

func TestService_Update_MergesIntoPendingCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	queuedCreate := &models.Accomplishment{
		ID: "entry-1", OwnerID: "user-123", Text: "original",
		Category: models.CategoryWork, CreatedAt: now, UpdatedAt: now,
	}

	pendingMock := &storage.PendingStorageMock{
		HasDeleteFunc: func(ctx context.Context, id string) (bool, error) { return false, nil },
		GetCreateFunc: func(ctx context.Context, id string) (*models.Accomplishment, error) {
			return queuedCreate, nil
		},
		EnqueueCreateFunc: func(ctx context.Context, entry *models.Accomplishment) error {
			assert.Equal(t, "entry-1", entry.ID)
			assert.Equal(t, "edited before sync", entry.Text)
			return nil
		},
	}
	cacheMock := &storage.CacheStorageMock{
		PutFunc: func(ctx context.Context, entries []*models.Accomplishment) error { return nil },
	}
	apiMock := &httpClient.ClientAPIMock{}

	svc := NewService(apiMock, cacheMock, pendingMock, authMockWithSession(),
		&fakeConn{online: true}, testLogger())

	err := svc.Update(ctx, "entry-1", "edited before sync", nil)
	require.NoError(t, err)

	// The edit folded into the queued create; no update was queued and
	// the server saw nothing.
	assert.Len(t, pendingMock.EnqueueCreateCalls(), 1)
	assert.Empty(t, pendingMock.EnqueueUpdateCalls())
	assert.Empty(t, apiMock.UpdateCalls())
}

func TestService_Update_IgnoredWhenDeleteQueued(t *testing.T) {
	ctx := context.Background()

	pendingMock := &storage.PendingStorageMock{
		HasDeleteFunc: func(ctx context.Context, id string) (bool, error) { return true, nil },
	}
	apiMock := &httpClient.ClientAPIMock{}

	svc := NewService(apiMock, &storage.CacheStorageMock{}, pendingMock,
		authMockWithSession(), &fakeConn{online: true}, testLogger())

	err := svc.Update(ctx, "entry-1", "too late", nil)
	require.NoError(t, err)
	assert.Empty(t, apiMock.UpdateCalls())
	assert.Empty(t, pendingMock.EnqueueUpdateCalls())
}

func TestService_Delete_CancelsPendingCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	pendingMock := &storage.PendingStorageMock{
		GetCreateFunc: func(ctx context.Context, id string) (*models.Accomplishment, error) {
			return &models.Accomplishment{ID: id, OwnerID: "user-123", CreatedAt: now}, nil
		},
		DequeueCreateFunc: func(ctx context.Context, id string) error { return nil },
		DequeueUpdateFunc: func(ctx context.Context, id string) error { return nil },
	}
	cacheMock := &storage.CacheStorageMock{
		RemoveFunc: func(ctx context.Context, id string) error { return nil },
	}
	apiMock := &httpClient.ClientAPIMock{}

	svc := NewService(apiMock, cacheMock, pendingMock, authMockWithSession(),
		&fakeConn{online: true}, testLogger())

	err := svc.Delete(ctx, "entry-1")
	require.NoError(t, err)

	// The never-synced create is cancelled locally; the server is not
	// asked to delete a row it never had.
	assert.Len(t, pendingMock.DequeueCreateCalls(), 1)
	assert.Len(t, pendingMock.DequeueUpdateCalls(), 1)
	assert.Len(t, cacheMock.RemoveCalls(), 1)
	assert.Empty(t, apiMock.DeleteCalls())
	assert.Empty(t, pendingMock.EnqueueDeleteCalls())
}

func TestService_Delete_Online(t *testing.T) {
	ctx := context.Background()

	pendingMock := &storage.PendingStorageMock{
		GetCreateFunc: func(ctx context.Context, id string) (*models.Accomplishment, error) {
			return nil, storage.ErrEntryNotFound
		},
		DequeueUpdateFunc: func(ctx context.Context, id string) error { return nil },
	}
	apiMock := &httpClient.ClientAPIMock{
		DeleteFunc: func(ctx context.Context, token string, id string) error {
			assert.Equal(t, "entry-1", id)
			return nil
		},
	}
	cacheMock := &storage.CacheStorageMock{
		RemoveFunc: func(ctx context.Context, id string) error { return nil },
	}

	svc := NewService(apiMock, cacheMock, pendingMock, authMockWithSession(),
		&fakeConn{online: true}, testLogger())

	err := svc.Delete(ctx, "entry-1")
	require.NoError(t, err)
	assert.Len(t, apiMock.DeleteCalls(), 1)
	assert.Empty(t, pendingMock.EnqueueDeleteCalls())
}

func TestService_Delete_OfflineSupersedesQueuedUpdate(t *testing.T) {
	ctx := context.Background()

	var queued *storage.PendingDelete
	pendingMock := &storage.PendingStorageMock{
		GetCreateFunc: func(ctx context.Context, id string) (*models.Accomplishment, error) {
			return nil, storage.ErrEntryNotFound
		},
		DequeueUpdateFunc: func(ctx context.Context, id string) error { return nil },
		EnqueueDeleteFunc: func(ctx context.Context, del *storage.PendingDelete) error {
			queued = del
			return nil
		},
	}
	cacheMock := &storage.CacheStorageMock{
		RemoveFunc: func(ctx context.Context, id string) error { return nil },
	}
	conn := &fakeConn{online: false}

	svc := NewService(&httpClient.ClientAPIMock{}, cacheMock, pendingMock,
		authMockWithSession(), conn, testLogger())

	err := svc.Delete(ctx, "entry-1")
	require.NoError(t, err)

	// The queued update for the same ID was dropped before the delete
	// was queued: only the delete survives.
	assert.Len(t, pendingMock.DequeueUpdateCalls(), 1)
	require.NotNil(t, queued)
	assert.Equal(t, "entry-1", queued.ID)
	assert.Len(t, cacheMock.RemoveCalls(), 1)
	assert.Equal(t, 1, conn.registered)
}

func TestService_GetCached(t *testing.T) {
	ctx := context.Background()

	cacheMock := &storage.CacheStorageMock{
		QueryFunc: func(ctx context.Context, ownerID string, page int, pageSize int) ([]*models.Accomplishment, int, error) {
			assert.Equal(t, "user-123", ownerID)
			assert.Equal(t, 2, page)
			assert.Equal(t, 10, pageSize)
			return []*models.Accomplishment{{ID: "entry-1", OwnerID: ownerID}}, 25, nil
		},
	}

	svc := NewService(&httpClient.ClientAPIMock{}, cacheMock, &storage.PendingStorageMock{},
		authMockWithSession(), &fakeConn{}, testLogger())

	entries, total, err := svc.GetCached(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	require.Len(t, entries, 1)
	assert.Equal(t, "entry-1", entries[0].ID)
}

func TestService_RefreshCache(t *testing.T) {
	ctx := context.Background()

	// Two batches: a full page then the remainder.
	rowsFor := func(page int) []api.Accomplishment {
		var count int
		switch page {
		case 1:
			count = reloadBatchSize
		case 2:
			count = 5
		default:
			return nil
		}
		rows := make([]api.Accomplishment, count)
		for i := range rows {
			rows[i] = api.Accomplishment{
				ID:     fmt.Sprintf("p%d-entry-%d", page, i),
				UserID: "user-123",
			}
		}
		return rows
	}

	apiMock := &httpClient.ClientAPIMock{
		QueryPageFunc: func(ctx context.Context, token string, page int, pageSize int) (*api.QueryPageResponse, error) {
			assert.Equal(t, reloadBatchSize, pageSize)
			return &api.QueryPageResponse{
				Rows:       rowsFor(page),
				TotalCount: reloadBatchSize + 5,
			}, nil
		},
	}
	var putCount int
	cacheMock := &storage.CacheStorageMock{
		PutFunc: func(ctx context.Context, entries []*models.Accomplishment) error {
			putCount += len(entries)
			return nil
		},
	}

	svc := NewService(apiMock, cacheMock, &storage.PendingStorageMock{},
		authMockWithSession(), &fakeConn{online: true}, testLogger())

	err := svc.RefreshCache(ctx)
	require.NoError(t, err)
	assert.Equal(t, reloadBatchSize+5, putCount)
	assert.Len(t, apiMock.QueryPageCalls(), 2)
}
