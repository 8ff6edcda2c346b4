package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing accomplishment ID. Usage: dailywins delete <id>")
	}
	id := args[0]

	c.io.Println("=== Delete Accomplishment ===")
	c.io.Println()

	confirm, err := c.io.ReadInput("Are you sure you want to delete this accomplishment? (yes/no): ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if confirm != "yes" && confirm != "y" {
		c.io.Println()
		c.io.Println("Deletion cancelled.")
		return nil
	}

	if err := c.dataService.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete accomplishment: %w", err)
	}

	c.io.Println()
	c.io.Println("Accomplishment deleted!")

	if !c.probe.IsOnline() {
		c.io.Println("You are offline. The deletion is queued and will sync when the server is reachable.")
	}

	return nil
}
