package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/iudanet/dailywins/internal/client/api"
	"github.com/iudanet/dailywins/internal/client/auth"
	"github.com/iudanet/dailywins/internal/client/storage"
	"github.com/iudanet/dailywins/internal/models"
	"github.com/iudanet/dailywins/internal/validation"
	"github.com/iudanet/dailywins/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Connectivity is the slice of the connectivity layer the coordinator
// consumes: the current routing decision and best-effort registration of
// a deferred sync after queueing offline work.
type Connectivity interface {
	IsOnline() bool
	RegisterDeferredSync() error
}

// Service is the write coordinator: every mutation goes through the local
// cache first and reaches the backend either directly (online) or through
// the pending queues (offline or remote failure). Reads never touch the
// network.
type Service interface {
	// Add creates an accomplishment and returns it immediately; the
	// remote insert happens inline when online or is queued otherwise.
	Add(ctx context.Context, text string, category models.Category) (*models.Accomplishment, error)

	// Update edits an accomplishment's text and, optionally, its date.
	Update(ctx context.Context, id, text string, createdAt *time.Time) error

	// Delete removes an accomplishment.
	Delete(ctx context.Context, id string) error

	// GetCached returns one page of the current user's accomplishments
	// from the local cache, newest first, with the full count.
	GetCached(ctx context.Context, page, pageSize int) ([]*models.Accomplishment, int, error)

	// RefreshCache replaces cached rows with the server's current state.
	RefreshCache(ctx context.Context) error
}

// reloadBatchSize is the page size used when pulling the server state
// into the cache.
const reloadBatchSize = 100

type service struct {
	apiClient      httpClient.ClientAPI
	cacheStorage   storage.CacheStorage
	pendingStorage storage.PendingStorage
	authService    auth.Service
	conn           Connectivity
	logger         *slog.Logger
}

// NewService creates a new write coordinator.
func NewService(
	apiClient httpClient.ClientAPI,
	cacheStorage storage.CacheStorage,
	pendingStorage storage.PendingStorage,
	authService auth.Service,
	conn Connectivity,
	logger *slog.Logger,
) Service {
	return &service{
		apiClient:      apiClient,
		cacheStorage:   cacheStorage,
		pendingStorage: pendingStorage,
		authService:    authService,
		conn:           conn,
		logger:         logger,
	}
}

// Add creates an accomplishment. The ID is assigned here so a record
// created offline keeps its identity once it reaches the server.
func (s *service) Add(ctx context.Context, text string, category models.Category) (*models.Accomplishment, error) {
	if err := validation.ValidateText(text); err != nil {
		return nil, err
	}
	if err := validation.ValidateCategory(category); err != nil {
		return nil, err
	}

	session, err := s.authService.Session(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &models.Accomplishment{
		ID:        uuid.New().String(),
		OwnerID:   session.UserID,
		Text:      text,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if s.conn.IsOnline() {
		canonical, err := s.apiClient.Insert(ctx, session.AccessToken, api.InsertRequest{
			ID:        entry.ID,
			Text:      entry.Text,
			Category:  string(entry.Category),
			CreatedAt: entry.CreatedAt,
		})
		if err == nil {
			record := toModel(canonical)
			if err := s.cacheStorage.Put(ctx, []*models.Accomplishment{record}); err != nil {
				return nil, fmt.Errorf("failed to cache created entry: %w", err)
			}
			return record, nil
		}
		s.logger.Warn("remote insert failed, queueing create",
			"entry_id", entry.ID,
			"error", err)
	}

	// Offline path: queue the create and surface the provisional record
	// in the cache so the user sees it immediately.
	if err := s.pendingStorage.EnqueueCreate(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to queue create: %w", err)
	}
	if err := s.cacheStorage.Put(ctx, []*models.Accomplishment{entry}); err != nil {
		return nil, fmt.Errorf("failed to cache created entry: %w", err)
	}
	s.registerDeferredSync()

	return entry, nil
}

// Update edits text and, optionally, the entry date. An edit of a record
// whose create is still queued folds into that create; an edit of a record
// queued for deletion is dropped.
func (s *service) Update(ctx context.Context, id, text string, createdAt *time.Time) error {
	if err := validation.ValidateText(text); err != nil {
		return err
	}

	session, err := s.authService.Session(ctx)
	if err != nil {
		return err
	}

	deleted, err := s.pendingStorage.HasDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check pending delete: %w", err)
	}
	if deleted {
		s.logger.Warn("ignoring update, entry queued for deletion", "entry_id", id)
		return nil
	}

	// An edit of a not-yet-synced create folds into the queued create,
	// so the server only ever sees the final version.
	queuedCreate, err := s.pendingStorage.GetCreate(ctx, id)
	if err == nil {
		queuedCreate.Text = text
		if createdAt != nil {
			queuedCreate.CreatedAt = *createdAt
		}
		queuedCreate.UpdatedAt = time.Now().UTC()
		if err := s.pendingStorage.EnqueueCreate(ctx, queuedCreate); err != nil {
			return fmt.Errorf("failed to merge update into queued create: %w", err)
		}
		if err := s.cacheStorage.Put(ctx, []*models.Accomplishment{queuedCreate}); err != nil {
			return fmt.Errorf("failed to cache updated entry: %w", err)
		}
		return nil
	}
	if !errors.Is(err, storage.ErrEntryNotFound) {
		return fmt.Errorf("failed to check pending create: %w", err)
	}

	if s.conn.IsOnline() {
		canonical, err := s.apiClient.Update(ctx, session.AccessToken, id, api.UpdateRequest{
			Text:      text,
			CreatedAt: createdAt,
		})
		if err == nil {
			// The direct write supersedes any older queued edit; left
			// behind it would replay at the next drain and regress this one.
			if err := s.pendingStorage.DequeueUpdate(ctx, id); err != nil {
				return fmt.Errorf("failed to drop superseded queued update: %w", err)
			}
			if err := s.cacheStorage.Put(ctx, []*models.Accomplishment{toModel(canonical)}); err != nil {
				return fmt.Errorf("failed to cache updated entry: %w", err)
			}
			return nil
		}
		s.logger.Warn("remote update failed, queueing update",
			"entry_id", id,
			"error", err)
	}

	// Offline path: the queue keeps only the latest edit per ID.
	if err := s.pendingStorage.EnqueueUpdate(ctx, &storage.PendingUpdate{
		ID:        id,
		Text:      text,
		CreatedAt: createdAt,
		QueuedAt:  time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("failed to queue update: %w", err)
	}
	if err := s.applyUpdateToCache(ctx, id, text, createdAt); err != nil {
		return err
	}
	s.registerDeferredSync()

	return nil
}

// Delete removes an accomplishment. Deleting a record whose create is
// still queued cancels the create; the server never hears about it.
func (s *service) Delete(ctx context.Context, id string) error {
	session, err := s.authService.Session(ctx)
	if err != nil {
		return err
	}

	if _, err := s.pendingStorage.GetCreate(ctx, id); err == nil {
		if err := s.pendingStorage.DequeueCreate(ctx, id); err != nil {
			return fmt.Errorf("failed to cancel queued create: %w", err)
		}
		if err := s.pendingStorage.DequeueUpdate(ctx, id); err != nil {
			return fmt.Errorf("failed to drop queued update: %w", err)
		}
		if err := s.cacheStorage.Remove(ctx, id); err != nil {
			return fmt.Errorf("failed to remove entry from cache: %w", err)
		}
		return nil
	} else if !errors.Is(err, storage.ErrEntryNotFound) {
		return fmt.Errorf("failed to check pending create: %w", err)
	}

	// A queued delete supersedes any queued update for the same ID.
	if err := s.pendingStorage.DequeueUpdate(ctx, id); err != nil {
		return fmt.Errorf("failed to drop queued update: %w", err)
	}

	if s.conn.IsOnline() {
		if err := s.apiClient.Delete(ctx, session.AccessToken, id); err == nil {
			if err := s.cacheStorage.Remove(ctx, id); err != nil {
				return fmt.Errorf("failed to remove entry from cache: %w", err)
			}
			return nil
		} else {
			s.logger.Warn("remote delete failed, queueing delete",
				"entry_id", id,
				"error", err)
		}
	}

	if err := s.pendingStorage.EnqueueDelete(ctx, &storage.PendingDelete{
		ID:       id,
		QueuedAt: time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("failed to queue delete: %w", err)
	}
	if err := s.cacheStorage.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to remove entry from cache: %w", err)
	}
	s.registerDeferredSync()

	return nil
}

// GetCached serves reads from the local cache only.
func (s *service) GetCached(ctx context.Context, page, pageSize int) ([]*models.Accomplishment, int, error) {
	session, err := s.authService.Session(ctx)
	if err != nil {
		return nil, 0, err
	}

	entries, total, err := s.cacheStorage.Query(ctx, session.UserID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query cache: %w", err)
	}

	return entries, total, nil
}

// RefreshCache pulls the server's rows into the cache, batch by batch.
func (s *service) RefreshCache(ctx context.Context) error {
	session, err := s.authService.Session(ctx)
	if err != nil {
		return err
	}

	fetched := 0
	for page := 1; ; page++ {
		resp, err := s.apiClient.QueryPage(ctx, session.AccessToken, page, reloadBatchSize)
		if err != nil {
			return fmt.Errorf("failed to fetch page %d: %w", page, err)
		}
		if len(resp.Rows) == 0 {
			break
		}

		batch := make([]*models.Accomplishment, 0, len(resp.Rows))
		for i := range resp.Rows {
			batch = append(batch, toModel(&resp.Rows[i]))
		}
		if err := s.cacheStorage.Put(ctx, batch); err != nil {
			return fmt.Errorf("failed to cache fetched rows: %w", err)
		}

		fetched += len(resp.Rows)
		if fetched >= resp.TotalCount {
			break
		}
	}

	s.logger.Info("cache refreshed", "rows", fetched)

	return nil
}

// applyUpdateToCache mirrors a queued edit onto the cached row so reads
// reflect it immediately. A row missing from the cache is not an error.
func (s *service) applyUpdateToCache(ctx context.Context, id, text string, createdAt *time.Time) error {
	entry, err := s.cacheStorage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrEntryNotFound) {
			s.logger.Debug("updated entry not in cache", "entry_id", id)
			return nil
		}
		return fmt.Errorf("failed to read cached entry: %w", err)
	}

	entry.Text = text
	if createdAt != nil {
		entry.CreatedAt = *createdAt
	}
	entry.UpdatedAt = time.Now().UTC()

	if err := s.cacheStorage.Put(ctx, []*models.Accomplishment{entry}); err != nil {
		return fmt.Errorf("failed to cache updated entry: %w", err)
	}

	return nil
}

// registerDeferredSync asks the platform to sync once connectivity
// returns. Failure only costs immediacy: the reconnect sync covers it.
func (s *service) registerDeferredSync() {
	if err := s.conn.RegisterDeferredSync(); err != nil {
		s.logger.Debug("failed to register deferred sync", "error", err)
	}
}

// toModel converts a server record into the local cache model.
func toModel(a *api.Accomplishment) *models.Accomplishment {
	return &models.Accomplishment{
		ID:        a.ID,
		OwnerID:   a.UserID,
		Text:      a.Text,
		Category:  models.Category(a.Category),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
