package auth

import (
	"context"
	"errors"

	"github.com/iudanet/gophbook/internal/client/storage"
	"github.com/iudanet/gophbook/pkg/api"
)

var (
	// ErrNotAuthenticated возвращается, когда локальная сессия отсутствует
	ErrNotAuthenticated = errors.New("not authenticated, run 'login' first")
	// ErrSessionExpired возвращается, когда access token истек
	ErrSessionExpired = errors.New("session expired, run 'login' again")
)

//go:generate moq -out service_mock.go . Service

// Service управляет регистрацией, входом и локальной сессией клиента
type Service interface {
	// Register регистрирует нового пользователя каталога
	Register(ctx context.Context, username, password string) (*RegisterResult, error)

	// Login выполняет аутентификацию и сохраняет сессию локально
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Logout удаляет локальную сессию
	Logout(ctx context.Context) error

	// GetAuth возвращает действующую сессию.
	// ErrNotAuthenticated если сессии нет, ErrSessionExpired если токен истек.
	GetAuth(ctx context.Context) (*storage.AuthData, error)

	// IsAuthenticated checks if valid authentication exists
	IsAuthenticated(ctx context.Context) (bool, error)
}

//go:generate moq -out authapi_mock.go . AuthAPI

// AuthAPI endpoints of the directory used by the service
type AuthAPI interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
}
