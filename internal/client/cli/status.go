package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/dailywins/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	session, err := c.authService.Session(ctx)
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.io.Println("Session: not authenticated")
		c.io.Println()
		c.io.Println("Run 'dailywins login' to authenticate.")
		return nil
	case err != nil:
		return fmt.Errorf("failed to check session: %w", err)
	}

	expiresAt := time.Unix(session.ExpiresAt, 0)
	c.io.Println("Session: authenticated")
	c.io.Printf("Email: %s\n", session.Email)
	c.io.Printf("Token expires: %s (in %s)\n",
		expiresAt.Format(time.RFC3339), time.Until(expiresAt).Round(time.Second))
	c.io.Println()

	if c.probe.IsOnline() {
		c.io.Println("Server: reachable")
	} else {
		c.io.Println("Server: unreachable, working offline")
	}

	status, err := c.syncService.GetSyncStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync status: %w", err)
	}

	c.io.Println()
	if status.PendingCount > 0 {
		c.io.Printf("Pending sync: %d operation(s) queued\n", status.PendingCount)
		c.io.Println("Run 'dailywins sync' to push them to the server.")
	} else {
		c.io.Println("All changes synchronized with server.")
	}
	if !status.LastSyncAt.IsZero() {
		c.io.Printf("Last sync: %s\n", status.LastSyncAt.Format(time.RFC3339))
	}

	return nil
}
