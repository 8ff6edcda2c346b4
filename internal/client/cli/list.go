package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 1 {
			return fmt.Errorf("invalid page number: %s", args[0])
		}
		page = parsed
	}

	c.io.Println("=== Accomplishments ===")
	c.io.Println()

	accomplishments, total, err := c.dataService.GetCached(ctx, page, c.pageSize)
	if err != nil {
		return fmt.Errorf("failed to list accomplishments: %w", err)
	}

	if total == 0 {
		c.io.Println("No accomplishments yet.")
		c.io.Println()
		c.io.Println("Use 'dailywins add' to record your first win.")
		return nil
	}

	if len(accomplishments) == 0 {
		c.io.Printf("Page %d is empty (%d total).\n", page, total)
		return nil
	}

	for _, a := range accomplishments {
		c.io.Printf("%s  [%s]  %s\n", a.CreatedAt.Format("2006-01-02"), a.Category, a.Text)
		c.io.Printf("            ID: %s\n", a.ID)
	}

	c.io.Println()
	totalPages := (total + c.pageSize - 1) / c.pageSize
	c.io.Printf("Page %d of %d (%d total)\n", page, totalPages, total)

	return nil
}
