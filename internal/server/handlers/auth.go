package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/gophbook/internal/crypto"
	"github.com/iudanet/gophbook/internal/models"
	"github.com/iudanet/gophbook/internal/server/jwt"
	"github.com/iudanet/gophbook/internal/server/respond"
	"github.com/iudanet/gophbook/internal/server/storage"
	"github.com/iudanet/gophbook/pkg/api"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	tokens      *jwt.Service
	now         func() time.Time
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, tokens *jwt.Service) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		userStorage: userStorage,
		tokens:      tokens,
		now:         time.Now,
	}
}

// Register обрабатывает POST /v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "invalid register request", slog.Any("error", err))
		respond.Error(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		respond.Error(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		CreatedAt:    h.now(),
	}

	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("username", req.Username))
			respond.Error(w, h.logger, http.StatusConflict, "username already taken")
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		respond.Error(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("username", user.Username),
		slog.String("user_id", user.ID))

	respond.JSON(w, h.logger, http.StatusCreated, api.RegisterResponse{
		UserID:  user.ID,
		Message: "User registered successfully",
	})
}

// Login обрабатывает POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "invalid login request", slog.Any("error", err))
		respond.Error(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userStorage.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("username", req.Username))
			respond.Error(w, h.logger, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		respond.Error(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := crypto.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("username", req.Username))
			respond.Error(w, h.logger, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.ErrorContext(ctx, "failed to verify password", slog.Any("error", err))
		respond.Error(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	accessToken, expiresIn, err := h.tokens.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		respond.Error(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := h.userStorage.UpdateLastLogin(ctx, user.ID, h.now()); err != nil {
		// Не критичная ошибка, логируем но не прерываем
		h.logger.WarnContext(ctx, "failed to update last login", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("username", user.Username),
		slog.String("user_id", user.ID))

	respond.JSON(w, h.logger, http.StatusOK, api.TokenResponse{
		UserID:      user.ID,
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
	})
}
