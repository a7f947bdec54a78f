package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/gophbook/internal/client/storage"
	"github.com/iudanet/gophbook/internal/validation"
	"github.com/iudanet/gophbook/pkg/api"
)

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID   string
	Username string
}

// LoginResult содержит результат авторизации
type LoginResult struct {
	ExpiresAt time.Time
	UserID    string
	Username  string
}

type service struct {
	apiClient AuthAPI
	store     storage.AuthStorage
	logger    *slog.Logger
	now       func() time.Time
	serverURL string
}

// NewService создает новый сервис авторизации.
// serverURL сохраняется вместе с сессией, чтобы status мог показать, к какому каталогу выполнен вход.
func NewService(apiClient AuthAPI, store storage.AuthStorage, serverURL string, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		apiClient: apiClient,
		store:     store,
		serverURL: serverURL,
		logger:    logger,
		now:       time.Now,
	}
}

func validateCredentials(username, password string) error {
	if err := validation.ValidateUsername(username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}
	return nil
}

// Register регистрирует нового пользователя. Сессия не создается, нужен отдельный Login.
func (s *service) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Register(ctx, api.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("user registered", "username", username, "user_id", resp.UserID)

	return &RegisterResult{
		UserID:   resp.UserID,
		Username: username,
	}, nil
}

// Login выполняет аутентификацию и сохраняет токен в локальном хранилище
func (s *service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	expiresAt := s.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	authData := &storage.AuthData{
		Username:    username,
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
		ServerURL:   s.serverURL,
		ExpiresAt:   expiresAt.Unix(),
	}
	if err := s.store.SaveAuth(ctx, authData); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	s.logger.Info("logged in", "username", username, "expires_at", expiresAt.Format(time.RFC3339))

	return &LoginResult{
		UserID:    resp.UserID,
		Username:  username,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout удаляет локальную сессию. Повторный logout не является ошибкой.
func (s *service) Logout(ctx context.Context) error {
	if err := s.store.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			s.logger.Debug("no auth data found during logout")
			return nil
		}
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}
	return nil
}

func (s *service) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	authData, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}
	if s.now().Unix() >= authData.ExpiresAt {
		return nil, ErrSessionExpired
	}
	return authData, nil
}

func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.GetAuth(ctx)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotAuthenticated), errors.Is(err, ErrSessionExpired):
		return false, nil
	default:
		return false, err
	}
}
