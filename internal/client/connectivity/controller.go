package connectivity

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/iudanet/dailywins/internal/client/data"
	syncSvc "github.com/iudanet/dailywins/internal/client/sync"
)

// DefaultStatusInterval is how often the controller refreshes the
// exposed pending-operation count.
const DefaultStatusInterval = 5 * time.Second

// Status is a point-in-time snapshot of connectivity and queue depth.
type Status struct {
	Online       bool
	PendingCount int
}

// Controller owns the reaction to connectivity transitions: an offline to
// online flip triggers exactly one queue drain and one cache reload, an
// online to offline flip only changes write routing, and a periodic tick
// keeps the pending count current for status consumers.
type Controller struct {
	notifier       Notifier
	syncService    syncSvc.Service
	dataService    data.Service
	logger         *slog.Logger
	statusInterval time.Duration

	online       atomic.Bool
	pendingCount atomic.Int64
}

// NewController creates a controller. A non-positive statusInterval falls
// back to DefaultStatusInterval.
func NewController(
	notifier Notifier,
	syncService syncSvc.Service,
	dataService data.Service,
	statusInterval time.Duration,
	logger *slog.Logger,
) *Controller {
	if statusInterval <= 0 {
		statusInterval = DefaultStatusInterval
	}
	return &Controller{
		notifier:       notifier,
		syncService:    syncService,
		dataService:    dataService,
		statusInterval: statusInterval,
		logger:         logger,
	}
}

// Run subscribes to connectivity transitions and ticks the pending count
// until ctx ends.
func (c *Controller) Run(ctx context.Context) error {
	c.online.Store(c.notifier.IsOnline())
	c.refreshPendingCount(ctx)

	c.notifier.OnChange(func(online bool) {
		was := c.online.Swap(online)
		switch {
		case online && !was:
			c.reconnect(ctx)
		case !online && was:
			// Routing flips to the queued path; queued work waits
			// for the next reconnect.
			c.logger.Info("connection lost, writes will be queued")
		}
	})

	ticker := time.NewTicker(c.statusInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.refreshPendingCount(ctx)
		}
	}
}

// Status returns the last observed connectivity state and queue depth.
func (c *Controller) Status() Status {
	return Status{
		Online:       c.online.Load(),
		PendingCount: int(c.pendingCount.Load()),
	}
}

// reconnect drains the queues once and reloads the cache once. Failures
// are logged, not surfaced: the next transition or manual sync retries.
func (c *Controller) reconnect(ctx context.Context) {
	c.logger.Info("connection restored, syncing")

	result, err := c.syncService.SyncPendingOperations(ctx)
	if err != nil {
		c.logger.Warn("reconnect sync failed", "error", err)
	} else if !result.Skipped {
		c.logger.Info("reconnect sync finished",
			"synced", result.Synced(),
			"failed", result.Failed())
	}

	if err := c.dataService.RefreshCache(ctx); err != nil {
		c.logger.Warn("reconnect cache reload failed", "error", err)
	}

	c.refreshPendingCount(ctx)
}

func (c *Controller) refreshPendingCount(ctx context.Context) {
	status, err := c.syncService.GetSyncStatus(ctx)
	if err != nil {
		c.logger.Warn("failed to refresh pending count", "error", err)
		return
	}
	c.pendingCount.Store(int64(status.PendingCount))
}
