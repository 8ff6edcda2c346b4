package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing accomplishment ID. Usage: dailywins edit <id>")
	}
	id := args[0]

	c.io.Println("=== Edit Accomplishment ===")
	c.io.Println()

	text, err := c.io.ReadInput("New text: ")
	if err != nil {
		return fmt.Errorf("failed to read text: %w", err)
	}

	dateInput, err := c.io.ReadInput("New date (YYYY-MM-DD, empty to keep): ")
	if err != nil {
		return fmt.Errorf("failed to read date: %w", err)
	}

	var createdAt *time.Time
	if dateInput != "" {
		parsed, err := time.Parse("2006-01-02", dateInput)
		if err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateInput)
		}
		createdAt = &parsed
	}

	if err := c.dataService.Update(ctx, id, text, createdAt); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Accomplishment updated!")

	if !c.probe.IsOnline() {
		c.io.Println("You are offline. The change is queued and will sync when the server is reachable.")
	}

	return nil
}
