package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()
	c.io.Println("Replaying queued operations...")

	result, err := c.syncService.SyncPendingOperations(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if result.Skipped {
		c.io.Println()
		c.io.Println("Sync skipped: server unreachable or another sync is already running.")
		c.io.Println("Queued operations stay queued.")
		return nil
	}

	c.io.Println()
	c.io.Println("Synchronization completed!")
	c.io.Println()
	c.io.Printf("Creates pushed: %d\n", result.SyncedCreates)
	c.io.Printf("Updates pushed: %d\n", result.SyncedUpdates)
	c.io.Printf("Deletes pushed: %d\n", result.SyncedDeletes)
	if result.Failed() > 0 {
		c.io.Println()
		c.io.Printf("%d operation(s) failed and stay queued for the next sync.\n", result.Failed())
	}

	return nil
}
