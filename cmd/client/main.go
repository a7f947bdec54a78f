package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/iudanet/gophbook/internal/client/api"
	"github.com/iudanet/gophbook/internal/client/auth"
	"github.com/iudanet/gophbook/internal/client/book"
	"github.com/iudanet/gophbook/internal/client/cli"
	"github.com/iudanet/gophbook/internal/client/iocli"
	"github.com/iudanet/gophbook/internal/client/storage/boltdb"
	"github.com/iudanet/gophbook/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Directory server URL")
	dbPath := flag.String("db", "gophbook.db", "Path to local address book")
	verbose := flag.Bool("verbose", false, "Log every synchronization decision")
	readOnly := flag.Bool("read-only", false, "Never modify the directory during sync")
	fakeEmails := flag.Bool("fake-emails", false, "Generate placeholder emails for contacts without one")

	flag.Parse()

	if *showVersion {
		printVersion()
		return 0
	}

	stdio := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		return 1
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// bbolt держит эксклюзивную блокировку файла, поэтому синхронизации одной книги не пересекаются
	store, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open address book: %v\n", err)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close address book", "error", err)
		}
	}()

	settings, err := store.GetSettings(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read settings: %v\n", err)
		return 1
	}
	syncOptions := sync.Options{
		ReadOnly:              *readOnly || settings.ReadOnly,
		UseFakeEmailAddresses: *fakeEmails || settings.UseFakeEmailAddresses,
		Verbose:               *verbose,
	}

	apiClient := api.NewClient(*serverURL)
	syncService, err := sync.NewService(apiClient, store, syncOptions, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create sync service: %v\n", err)
		return 1
	}

	c := cli.New(stdio, cli.Deps{
		Session:     apiClient,
		AuthService: auth.NewService(apiClient, store, *serverURL, logger),
		BookService: book.NewService(store),
		SyncService: syncService,
		Settings:    store,
		SyncOptions: syncOptions,
	})

	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUnknownCommand) {
			cli.PrintUsage(stdio)
		}
		return 1
	}

	return 0
}

func printVersion() {
	fmt.Printf("GophBook Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
