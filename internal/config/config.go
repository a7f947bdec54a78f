// Package config загружает настройки сервера каталога из окружения и .env файла
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret используется, если JWT_SECRET не задан; годится только для разработки
const DefaultJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Addr string
}

type DatabaseConfig struct {
	Path string
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

type RateLimitConfig struct {
	RequestsPerMinute int
}

type LoggingConfig struct {
	File  string // пустой путь означает stdout
	Level slog.Level
}

// Load читает переменные окружения. Значения из envFiles (по умолчанию .env)
// не перекрывают уже установленные переменные; отсутствующий файл не ошибка.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	jwtTTL, err := time.ParseDuration(getEnv("JWT_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	if jwtTTL <= 0 {
		return nil, fmt.Errorf("invalid JWT_TTL: must be positive")
	}

	rateLimit, err := getEnvAsInt("RATE_LIMIT", 120)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT: %w", err)
	}
	if rateLimit <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT: must be positive")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Addr: getEnv("SERVER_ADDR", ":8080"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "gophbook-server.db"),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", DefaultJWTSecret),
			Expiration: jwtTTL,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: rateLimit,
		},
		Logging: LoggingConfig{
			Level: level,
			File:  getEnv("LOG_FILE", ""),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(valueStr)
}
