package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/iudanet/gophbook/internal/config"
	"github.com/iudanet/gophbook/internal/server/handlers"
	"github.com/iudanet/gophbook/internal/server/jwt"
	"github.com/iudanet/gophbook/internal/server/middleware"
	"github.com/iudanet/gophbook/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	showVersion := flag.Bool("version", false, "Show version information")
	envFile := flag.String("env", ".env", "Path to env file")
	flag.Parse()

	if *showVersion {
		printVersion()
		return 0
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	var logOutput io.Writer = os.Stdout
	if cfg.Logging.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.Logging.File,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		defer func() { _ = rotating.Close() }()
		logOutput = rotating
	}
	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{Level: cfg.Logging.Level}))
	slog.SetDefault(logger)

	if cfg.JWT.Secret == config.DefaultJWTSecret {
		logger.Warn("JWT_SECRET is not set, using development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.Database.Path, "error", err)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, time.Minute)
	defer limiter.Stop()

	router := handlers.NewRouter(handlers.RouterConfig{
		Logger:    logger,
		Users:     store,
		Directory: store,
		DB:        store,
		Tokens:    jwt.NewService(cfg.JWT.Secret, cfg.JWT.Expiration),
		Limiter:   limiter,
		Version:   Version,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("directory server listening", "addr", cfg.Server.Addr, "version", Version)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		return 1
	}

	return 0
}

func printVersion() {
	fmt.Printf("GophBook Directory Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
