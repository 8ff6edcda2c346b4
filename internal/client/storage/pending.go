package storage

import (
	"context"
	"time"

	"github.com/iudanet/dailywins/internal/models"
)

//go:generate moq -out pending_mock.go . PendingStorage

// PendingUpdate represents a text/date edit awaiting remote application.
// Only the most recent pending update per ID is retained: a second enqueue
// for the same ID replaces the first (last-writer-wins within the session).
type PendingUpdate struct {
	QueuedAt  time.Time  `json:"queued_at"`
	CreatedAt *time.Time `json:"created_at,omitempty"` // set when the user re-dated the entry
	ID        string     `json:"id"`
	Text      string     `json:"text"`
}

// PendingDelete represents a deletion awaiting remote application.
type PendingDelete struct {
	QueuedAt time.Time `json:"queued_at"`
	ID       string    `json:"id"`
}

// PendingStorage defines the interface for the three durable pending
// operation queues: creates, updates, deletes. Each queue is keyed by
// accomplishment ID; enqueue is an upsert and dequeue is idempotent.
// The queues are independent in storage; the write coordinator enforces
// the cross-queue invariant (a queued delete supersedes a queued update).
type PendingStorage interface {
	// EnqueueCreate stores a provisional accomplishment awaiting its
	// first remote insert. A second enqueue for the same ID replaces
	// the first.
	EnqueueCreate(ctx context.Context, entry *models.Accomplishment) error

	// GetCreate retrieves a queued create by ID.
	// Returns ErrEntryNotFound if no create is queued for the ID.
	GetCreate(ctx context.Context, id string) (*models.Accomplishment, error)

	// ListCreates returns all queued creates in insertion order.
	ListCreates(ctx context.Context) ([]*models.Accomplishment, error)

	// DequeueCreate removes a queued create. Idempotent.
	DequeueCreate(ctx context.Context, id string) error

	// EnqueueUpdate stores or replaces the pending update for an ID.
	EnqueueUpdate(ctx context.Context, upd *PendingUpdate) error

	// ListUpdates returns all queued updates in insertion order.
	ListUpdates(ctx context.Context) ([]*PendingUpdate, error)

	// DequeueUpdate removes a queued update. Idempotent.
	DequeueUpdate(ctx context.Context, id string) error

	// EnqueueDelete stores or replaces the pending delete for an ID.
	EnqueueDelete(ctx context.Context, del *PendingDelete) error

	// HasDelete reports whether a delete is queued for the ID.
	HasDelete(ctx context.Context, id string) (bool, error)

	// ListDeletes returns all queued deletes in insertion order.
	ListDeletes(ctx context.Context) ([]*PendingDelete, error)

	// DequeueDelete removes a queued delete. Idempotent.
	DequeueDelete(ctx context.Context, id string) error

	// CountPending returns the sum of the three queue sizes.
	// Used for the UI sync status.
	CountPending(ctx context.Context) (int, error)
}
