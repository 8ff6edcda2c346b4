package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/iudanet/dailywins/internal/client/api"
	"github.com/iudanet/dailywins/internal/client/auth"
	"github.com/iudanet/dailywins/internal/client/cli"
	"github.com/iudanet/dailywins/internal/client/config"
	"github.com/iudanet/dailywins/internal/client/connectivity"
	"github.com/iudanet/dailywins/internal/client/data"
	"github.com/iudanet/dailywins/internal/client/iocli"
	"github.com/iudanet/dailywins/internal/client/storage/boltdb"
	syncSvc "github.com/iudanet/dailywins/internal/client/sync"
	"github.com/iudanet/dailywins/internal/logging"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "Server URL (overrides DAILYWINS_SERVER_URL)")
	dbPath := flag.String("db", "", "Path to local database (overrides DAILYWINS_DB_PATH)")

	flag.Parse()

	if *showVersion {
		printVersion()
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	logger := logging.NewLogger(cfg.Environment)
	stdio := iocli.NewStdio()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o700); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.ServerURL)
	authService := auth.NewService(apiClient, boltStorage, logger)
	probe := connectivity.NewHTTPProbe(apiClient, cfg.ProbeInterval, logger)
	syncService := syncSvc.NewService(
		apiClient, boltStorage, boltStorage, boltStorage, authService, probe, logger)
	dataService := data.NewService(
		apiClient, boltStorage, boltStorage, authService, probe, logger)
	controller := connectivity.NewController(
		probe, syncService, dataService, cfg.StatusInterval, logger)

	app := cli.New(stdio, authService, dataService, syncService, probe, controller, cfg.PageSize)

	args := flag.Args()
	if len(args) == 0 {
		app.PrintUsage()
		return fmt.Errorf("missing command")
	}

	// One probe up front so one-shot commands report accurate
	// connectivity; watch keeps probing on its own.
	probe.Probe(ctx)

	return app.Run(ctx, args[0], args[1:])
}

func printVersion() {
	fmt.Printf("Daily Wins Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
