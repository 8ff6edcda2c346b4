package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/dailywins/internal/models"
)

func (c *Cli) runAdd(ctx context.Context) error {
	c.io.Println("=== Add Accomplishment ===")
	c.io.Println()

	text, err := c.io.ReadInput("What did you accomplish? ")
	if err != nil {
		return fmt.Errorf("failed to read text: %w", err)
	}

	categories := make([]string, 0, len(models.Categories))
	for _, cat := range models.Categories {
		categories = append(categories, string(cat))
	}
	prompt := fmt.Sprintf("Category (%s) [%s]: ", strings.Join(categories, "/"), models.CategoryWork)

	categoryInput, err := c.io.ReadInput(prompt)
	if err != nil {
		return fmt.Errorf("failed to read category: %w", err)
	}
	if categoryInput == "" {
		categoryInput = string(models.CategoryWork)
	}

	accomplishment, err := c.dataService.Add(ctx, text, models.Category(categoryInput))
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Accomplishment saved!")
	c.io.Printf("ID: %s\n", accomplishment.ID)

	if !c.probe.IsOnline() {
		c.io.Println()
		c.io.Println("You are offline. The entry is queued and will sync when the server is reachable.")
	}

	return nil
}
