package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophbook/internal/crypto"
	"github.com/iudanet/gophbook/internal/models"
	"github.com/iudanet/gophbook/internal/server/jwt"
	"github.com/iudanet/gophbook/internal/server/storage"
	"github.com/iudanet/gophbook/pkg/api"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAuthHandler_Register(t *testing.T) {
	s := setupTestStorage(t)
	handler := NewAuthHandler(setupTestLogger(), s, jwt.NewService(testSecret, time.Minute))

	w := postJSON(t, handler.Register, "/v1/auth/register", api.RegisterRequest{
		Username: "alice",
		Password: "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp api.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.UserID)

	user, err := s.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, user.ID)
	assert.NotContains(t, user.PasswordHash, "correct horse")
	assert.NoError(t, crypto.VerifyPassword("correct horse battery", user.PasswordHash))
}

func TestAuthHandler_Register_Rejects(t *testing.T) {
	s := setupTestStorage(t)
	handler := NewAuthHandler(setupTestLogger(), s, jwt.NewService(testSecret, time.Minute))

	w := postJSON(t, handler.Register, "/v1/auth/register", api.RegisterRequest{Username: "taken", Password: "long enough password"})
	require.Equal(t, http.StatusCreated, w.Code)

	tests := []struct {
		body        any
		name        string
		wantMessage string
		wantStatus  int
	}{
		{name: "invalid JSON", body: "{not json", wantStatus: http.StatusBadRequest, wantMessage: "invalid request body"},
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest, wantMessage: "request body is empty"},
		{
			name:        "invalid username",
			body:        api.RegisterRequest{Username: "bad name!", Password: "long enough password"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "username: must satisfy username",
		},
		{
			name:        "short password",
			body:        api.RegisterRequest{Username: "bob", Password: "short"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "password: must satisfy min=12",
		},
		{
			name:        "duplicate username",
			body:        api.RegisterRequest{Username: "taken", Password: "long enough password"},
			wantStatus:  http.StatusConflict,
			wantMessage: "username already taken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, handler.Register, "/v1/auth/register", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, decodeError(t, w).Message, tt.wantMessage)
		})
	}
}

func TestAuthHandler_Register_StorageError(t *testing.T) {
	users := &storage.UserStorageMock{
		CreateUserFunc: func(ctx context.Context, user *models.User) error {
			return errors.New("disk full")
		},
	}
	handler := NewAuthHandler(setupTestLogger(), users, jwt.NewService(testSecret, time.Minute))

	w := postJSON(t, handler.Register, "/v1/auth/register", api.RegisterRequest{Username: "alice", Password: "long enough password"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk full")
}

func TestAuthHandler_Login(t *testing.T) {
	s := setupTestStorage(t)
	tokens := jwt.NewService(testSecret, 15*time.Minute)
	handler := NewAuthHandler(setupTestLogger(), s, tokens)

	loginAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	handler.now = func() time.Time { return loginAt }

	w := postJSON(t, handler.Register, "/v1/auth/register", api.RegisterRequest{Username: "alice", Password: "correct horse battery"})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("success", func(t *testing.T) {
		w := postJSON(t, handler.Login, "/v1/auth/login", api.LoginRequest{Username: "alice", Password: "correct horse battery"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp api.TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(900), resp.ExpiresIn)

		claims, err := tokens.ValidateAccessToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, resp.UserID, claims.UserID)
		assert.Equal(t, "alice", claims.Username)

		user, err := s.GetUserByID(context.Background(), resp.UserID)
		require.NoError(t, err)
		require.NotNil(t, user.LastLogin)
		assert.WithinDuration(t, loginAt, *user.LastLogin, time.Second)
	})

	tests := []struct {
		name       string
		req        api.LoginRequest
		wantStatus int
	}{
		{name: "wrong password", req: api.LoginRequest{Username: "alice", Password: "wrong password!"}, wantStatus: http.StatusUnauthorized},
		{name: "unknown user", req: api.LoginRequest{Username: "mallory", Password: "correct horse battery"}, wantStatus: http.StatusUnauthorized},
		{name: "missing password", req: api.LoginRequest{Username: "alice"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, handler.Login, "/v1/auth/login", tt.req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuthHandler_Login_LastLoginFailureIgnored(t *testing.T) {
	hash, err := crypto.HashPassword("correct horse battery")
	require.NoError(t, err)

	users := &storage.UserStorageMock{
		GetUserByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{ID: "user-1", Username: username, PasswordHash: hash}, nil
		},
		UpdateLastLoginFunc: func(ctx context.Context, userID string, lastLogin time.Time) error {
			return errors.New("database is locked")
		},
	}
	handler := NewAuthHandler(setupTestLogger(), users, jwt.NewService(testSecret, time.Minute))

	w := postJSON(t, handler.Login, "/v1/auth/login", api.LoginRequest{Username: "alice", Password: "correct horse battery"})

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, users.UpdateLastLoginCalls(), 1)
	assert.Equal(t, "user-1", users.UpdateLastLoginCalls()[0].UserID)
}
