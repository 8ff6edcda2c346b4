package cli

import (
	"github.com/iudanet/dailywins/internal/client/auth"
	"github.com/iudanet/dailywins/internal/client/connectivity"
	"github.com/iudanet/dailywins/internal/client/data"
	"github.com/iudanet/dailywins/internal/client/iocli"
	syncSvc "github.com/iudanet/dailywins/internal/client/sync"
)

// Cli dispatches terminal commands to the client services.
type Cli struct {
	io          iocli.IO
	authService auth.Service
	dataService data.Service
	syncService syncSvc.Service
	probe       *connectivity.HTTPProbe
	controller  *connectivity.Controller
	pageSize    int
}

func New(
	io iocli.IO,
	authService auth.Service,
	dataService data.Service,
	syncService syncSvc.Service,
	probe *connectivity.HTTPProbe,
	controller *connectivity.Controller,
	pageSize int,
) *Cli {
	if pageSize < 1 {
		pageSize = 10
	}
	return &Cli{
		io:          io,
		authService: authService,
		dataService: dataService,
		syncService: syncService,
		probe:       probe,
		controller:  controller,
		pageSize:    pageSize,
	}
}

func (c *Cli) PrintUsage() {
	c.io.Println("Daily Wins Client")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  dailywins [OPTIONS] COMMAND")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  --version            Show version information")
	c.io.Println("  --server URL         Server URL (default: http://localhost:8080)")
	c.io.Println("  --db PATH            Path to local database (default: ~/.dailywins/dailywins.db)")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  login                Login to server")
	c.io.Println("  logout               Delete the local session")
	c.io.Println("  status               Show session, connectivity and pending-sync state")
	c.io.Println("  add                  Record a new accomplishment")
	c.io.Println("  list [page]          List cached accomplishments, newest first")
	c.io.Println("  edit <id>            Edit an accomplishment's text or date")
	c.io.Println("  delete <id>          Delete an accomplishment")
	c.io.Println("  sync                 Replay queued operations against the server")
	c.io.Println("  watch                Keep syncing in the foreground until interrupted")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  dailywins login")
	c.io.Println("  dailywins add")
	c.io.Println("  dailywins list 2")
	c.io.Println("  dailywins edit b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	c.io.Println("  dailywins --server https://wins.example.com sync")
}
