package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv сбрасывает переменные, которые читает Load
func clearEnv(t *testing.T) {
	for _, key := range []string{"SERVER_ADDR", "DB_PATH", "JWT_SECRET", "JWT_TTL", "RATE_LIMIT", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "gophbook-server.db", cfg.Database.Path)
	assert.Equal(t, DefaultJWTSecret, cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, slog.LevelInfo, cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("RATE_LIMIT", "30")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "/var/log/gophbook.log")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 15*time.Minute, cfg.JWT.Expiration)
	assert.Equal(t, 30, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, slog.LevelDebug, cfg.Logging.Level)
	assert.Equal(t, "/var/log/gophbook.log", cfg.Logging.File)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// пустая переменная считается заданной, поэтому DB_PATH снимаем совсем;
	// t.Setenv в clearEnv восстановит окружение после теста
	require.NoError(t, os.Unsetenv("DB_PATH"))

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_PATH=/data/directory.db\nJWT_SECRET=from-file\n"), 0o600))

	// godotenv не перекрывает уже заданные непустые переменные
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "/data/directory.db", cfg.Database.Path)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad duration", key: "JWT_TTL", value: "soon"},
		{name: "negative duration", key: "JWT_TTL", value: "-1m"},
		{name: "bad rate limit", key: "RATE_LIMIT", value: "many"},
		{name: "zero rate limit", key: "RATE_LIMIT", value: "0"},
		{name: "bad log level", key: "LOG_LEVEL", value: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.ErrorContains(t, err, tt.key)
		})
	}
}
