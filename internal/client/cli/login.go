package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	authData, err := c.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Login successful!")
	c.io.Printf("Email: %s\n", authData.Email)
	c.io.Printf("Token expires: %s\n", time.Unix(authData.ExpiresAt, 0).Format(time.RFC3339))

	// A fresh session means the cache may be stale. Not fatal when the
	// reload fails, the next sync refills it.
	if err := c.dataService.RefreshCache(ctx); err != nil {
		c.io.Printf("Warning: failed to reload local cache: %v\n", err)
	} else {
		c.io.Println("Local cache reloaded from server.")
	}

	return nil
}
