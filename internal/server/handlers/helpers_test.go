package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophbook/internal/server/jwt"
	"github.com/iudanet/gophbook/internal/server/middleware"
	"github.com/iudanet/gophbook/internal/server/storage/sqlite"
)

const testSecret = "test-secret"

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestStorage(t *testing.T) *sqlite.Storage {
	t.Helper()

	s, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// setupTestServer поднимает полный роутер поверх in-memory SQLite
func setupTestServer(t *testing.T) (*httptest.Server, *sqlite.Storage) {
	t.Helper()

	s := setupTestStorage(t)
	limiter := middleware.NewRateLimiter(1000, time.Minute)
	t.Cleanup(limiter.Stop)

	router := NewRouter(RouterConfig{
		Logger:    setupTestLogger(),
		Users:     s,
		Directory: s,
		DB:        s,
		Tokens:    jwt.NewService(testSecret, 15*time.Minute),
		Limiter:   limiter,
		Version:   "test",
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv, s
}
