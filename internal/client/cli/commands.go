package cli

import (
	"context"
	"fmt"
)

func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "add":
		return c.runAdd(ctx)
	case "list":
		return c.runList(ctx, args)
	case "edit":
		return c.runEdit(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "watch":
		return c.runWatch(ctx)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
