package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	httpClient "github.com/iudanet/dailywins/internal/client/api"
	"github.com/iudanet/dailywins/internal/client/auth"
	"github.com/iudanet/dailywins/internal/client/storage"
	"github.com/iudanet/dailywins/internal/models"
	"github.com/iudanet/dailywins/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service drains the pending operation queues against the backend.
type Service interface {
	// SyncPendingOperations replays queued creates, updates and deletes
	// in that order. It is a no-op when offline and when another sync is
	// already in flight.
	SyncPendingOperations(ctx context.Context) (*SyncResult, error)

	// GetSyncStatus reports the number of queued operations and the time
	// of the last completed sync.
	GetSyncStatus(ctx context.Context) (*SyncStatus, error)
}

// ConnectivityChecker reports whether the backend is currently reachable.
type ConnectivityChecker interface {
	IsOnline() bool
}

// SyncResult contains the outcome of one drain pass.
type SyncResult struct {
	SyncedCreates int // creates accepted by the server
	SyncedUpdates int // updates accepted by the server
	SyncedDeletes int // deletes accepted by the server
	FailedCreates int // creates left queued for the next pass
	FailedUpdates int // updates left queued for the next pass
	FailedDeletes int // deletes left queued for the next pass
	Skipped       bool // offline, or another sync was already running
}

// Failed returns the total number of operations left queued.
func (r *SyncResult) Failed() int {
	return r.FailedCreates + r.FailedUpdates + r.FailedDeletes
}

// Synced returns the total number of operations the server accepted.
func (r *SyncResult) Synced() int {
	return r.SyncedCreates + r.SyncedUpdates + r.SyncedDeletes
}

// SyncStatus is a point-in-time snapshot of the queue state.
type SyncStatus struct {
	LastSyncAt   time.Time
	PendingCount int
}

type service struct {
	apiClient       httpClient.ClientAPI
	cacheStorage    storage.CacheStorage
	pendingStorage  storage.PendingStorage
	metadataStorage storage.MetadataStorage
	authService     auth.Service
	checker         ConnectivityChecker
	logger          *slog.Logger
	running         atomic.Bool
}

// NewService creates a new sync service.
func NewService(
	apiClient httpClient.ClientAPI,
	cacheStorage storage.CacheStorage,
	pendingStorage storage.PendingStorage,
	metadataStorage storage.MetadataStorage,
	authService auth.Service,
	checker ConnectivityChecker,
	logger *slog.Logger,
) Service {
	return &service{
		apiClient:       apiClient,
		cacheStorage:    cacheStorage,
		pendingStorage:  pendingStorage,
		metadataStorage: metadataStorage,
		authService:     authService,
		checker:         checker,
		logger:          logger,
	}
}

// SyncPendingOperations replays the three queues in creates, updates,
// deletes order. One remote attempt per item; a failing item is logged
// and left queued without blocking the rest of its queue. Local storage
// errors abort the drain.
func (s *service) SyncPendingOperations(ctx context.Context) (*SyncResult, error) {
	if !s.checker.IsOnline() {
		s.logger.Debug("skipping sync, offline")
		return &SyncResult{Skipped: true}, nil
	}

	// Single-flight: a concurrent invocation must not double-apply
	// queued operations.
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Debug("skipping sync, already running")
		return &SyncResult{Skipped: true}, nil
	}
	defer s.running.Store(false)

	session, err := s.authService.Session(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	s.logger.Info("starting sync", "user_id", session.UserID)

	result := &SyncResult{}

	if err := s.drainCreates(ctx, session.AccessToken, result); err != nil {
		return result, err
	}
	if err := s.drainUpdates(ctx, session.AccessToken, result); err != nil {
		return result, err
	}
	if err := s.drainDeletes(ctx, session.AccessToken, result); err != nil {
		return result, err
	}

	if err := s.metadataStorage.SaveLastSyncAt(ctx, time.Now()); err != nil {
		s.logger.Warn("failed to save last sync time", "error", err)
	}

	s.logger.Info("sync completed",
		"synced", result.Synced(),
		"failed", result.Failed())

	return result, nil
}

// drainCreates replays queued creates. A server-accepted create promotes
// the canonical record into the cache, replacing the provisional one.
func (s *service) drainCreates(ctx context.Context, token string, result *SyncResult) error {
	creates, err := s.pendingStorage.ListCreates(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending creates: %w", err)
	}

	for _, entry := range creates {
		canonical, err := s.apiClient.Insert(ctx, token, api.InsertRequest{
			ID:        entry.ID,
			Text:      entry.Text,
			Category:  string(entry.Category),
			CreatedAt: entry.CreatedAt,
		})
		if err != nil {
			s.logger.Warn("failed to sync pending create",
				"entry_id", entry.ID,
				"error", err)
			result.FailedCreates++
			continue
		}

		if err := s.cacheStorage.Put(ctx, []*models.Accomplishment{toModel(canonical)}); err != nil {
			return fmt.Errorf("failed to cache synced create: %w", err)
		}
		if err := s.pendingStorage.DequeueCreate(ctx, entry.ID); err != nil {
			return fmt.Errorf("failed to dequeue create: %w", err)
		}

		result.SyncedCreates++
	}

	return nil
}

// drainUpdates replays queued updates. An update whose target create is
// still queued (its create failed this pass) stays queued for the next
// drain rather than racing the insert.
func (s *service) drainUpdates(ctx context.Context, token string, result *SyncResult) error {
	updates, err := s.pendingStorage.ListUpdates(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending updates: %w", err)
	}

	for _, upd := range updates {
		if _, err := s.pendingStorage.GetCreate(ctx, upd.ID); err == nil {
			s.logger.Warn("skipping update, target create still pending",
				"entry_id", upd.ID)
			result.FailedUpdates++
			continue
		} else if !errors.Is(err, storage.ErrEntryNotFound) {
			return fmt.Errorf("failed to check pending create: %w", err)
		}

		canonical, err := s.apiClient.Update(ctx, token, upd.ID, api.UpdateRequest{
			Text:      upd.Text,
			CreatedAt: upd.CreatedAt,
		})
		if err != nil {
			s.logger.Warn("failed to sync pending update",
				"entry_id", upd.ID,
				"error", err)
			result.FailedUpdates++
			continue
		}

		if err := s.cacheStorage.Put(ctx, []*models.Accomplishment{toModel(canonical)}); err != nil {
			return fmt.Errorf("failed to cache synced update: %w", err)
		}
		if err := s.pendingStorage.DequeueUpdate(ctx, upd.ID); err != nil {
			return fmt.Errorf("failed to dequeue update: %w", err)
		}

		result.SyncedUpdates++
	}

	return nil
}

// drainDeletes replays queued deletes. The cache entry was already removed
// optimistically; Remove here only covers a cache refreshed in between.
func (s *service) drainDeletes(ctx context.Context, token string, result *SyncResult) error {
	deletes, err := s.pendingStorage.ListDeletes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending deletes: %w", err)
	}

	for _, del := range deletes {
		if err := s.apiClient.Delete(ctx, token, del.ID); err != nil {
			s.logger.Warn("failed to sync pending delete",
				"entry_id", del.ID,
				"error", err)
			result.FailedDeletes++
			continue
		}

		if err := s.cacheStorage.Remove(ctx, del.ID); err != nil {
			return fmt.Errorf("failed to remove synced delete from cache: %w", err)
		}
		if err := s.pendingStorage.DequeueDelete(ctx, del.ID); err != nil {
			return fmt.Errorf("failed to dequeue delete: %w", err)
		}

		result.SyncedDeletes++
	}

	return nil
}

// GetSyncStatus reports the queue depth and last completed sync time.
func (s *service) GetSyncStatus(ctx context.Context) (*SyncStatus, error) {
	count, err := s.pendingStorage.CountPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending operations: %w", err)
	}

	lastSyncAt, err := s.metadataStorage.GetLastSyncAt(ctx)
	if err != nil {
		s.logger.Debug("failed to get last sync time", "error", err)
		lastSyncAt = time.Time{}
	}

	return &SyncStatus{
		PendingCount: count,
		LastSyncAt:   lastSyncAt,
	}, nil
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
