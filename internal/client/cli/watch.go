package cli

import (
	"context"
	"time"

	"github.com/iudanet/dailywins/internal/client/connectivity"
)

// watchPollInterval is how often watch re-samples the controller state
// for display.
const watchPollInterval = time.Second

func (c *Cli) runWatch(ctx context.Context) error {
	c.io.Println("=== Watch ===")
	c.io.Println()
	c.io.Println("Watching for connectivity changes. Press Ctrl+C to stop.")
	c.io.Println()

	go func() {
		_ = c.probe.Run(ctx)
	}()
	go func() {
		_ = c.controller.Run(ctx)
	}()

	ticker := time.NewTicker(watchPollInterval)
	defer ticker.Stop()

	last := c.controller.Status()
	c.printWatchStatus(last)

	for {
		select {
		case <-ctx.Done():
			c.io.Println()
			c.io.Println("Watch stopped.")
			return nil
		case <-ticker.C:
			status := c.controller.Status()
			if status != last {
				c.printWatchStatus(status)
				last = status
			}
		}
	}
}

func (c *Cli) printWatchStatus(status connectivity.Status) {
	state := "offline"
	if status.Online {
		state = "online"
	}
	c.io.Printf("[%s] %s, %d operation(s) pending\n",
		time.Now().Format("15:04:05"), state, status.PendingCount)
}
