package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophbook/internal/client/auth"
)

func TestCli_runRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockAuth := &auth.ServiceMock{
			RegisterFunc: func(ctx context.Context, username, password string) (*auth.RegisterResult, error) {
				return &auth.RegisterResult{UserID: "user-1", Username: username}, nil
			},
		}
		mockIO, out := newTestIO("alice", "correct-horse-battery", "correct-horse-battery")
		c := &Cli{io: mockIO, authService: mockAuth}

		require.NoError(t, c.runRegister(context.Background()))

		require.Len(t, mockAuth.RegisterCalls(), 1)
		assert.Equal(t, "alice", mockAuth.RegisterCalls()[0].Username)
		assert.Equal(t, "correct-horse-battery", mockAuth.RegisterCalls()[0].Password)
		assert.Contains(t, out.String(), "User ID: user-1")
	})

	t.Run("passwords do not match", func(t *testing.T) {
		mockAuth := &auth.ServiceMock{}
		mockIO, _ := newTestIO("alice", "correct-horse-battery", "wrong-horse-battery")
		c := &Cli{io: mockIO, authService: mockAuth}

		err := c.runRegister(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "passwords do not match")
		assert.Empty(t, mockAuth.RegisterCalls())
	})
}

func TestCli_runLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockAuth := &auth.ServiceMock{
			LoginFunc: func(ctx context.Context, username, password string) (*auth.LoginResult, error) {
				return &auth.LoginResult{Username: username, ExpiresAt: fixedNow.Add(time.Hour)}, nil
			},
		}
		mockIO, out := newTestIO("alice", "correct-horse-battery")
		c := &Cli{io: mockIO, authService: mockAuth}

		require.NoError(t, c.runLogin(context.Background()))
		assert.Contains(t, out.String(), "Login successful")
		assert.Contains(t, out.String(), "2024-03-01T13:00:00Z")
	})

	t.Run("login rejected", func(t *testing.T) {
		mockAuth := &auth.ServiceMock{
			LoginFunc: func(ctx context.Context, username, password string) (*auth.LoginResult, error) {
				return nil, errors.New("login failed: unauthorized")
			},
		}
		mockIO, _ := newTestIO("alice", "correct-horse-battery")
		c := &Cli{io: mockIO, authService: mockAuth}

		err := c.runLogin(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unauthorized")
	})

	t.Run("input closed", func(t *testing.T) {
		mockIO, _ := newTestIO()
		c := &Cli{io: mockIO, authService: &auth.ServiceMock{}}

		err := c.runLogin(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read username")
	})
}

func TestCli_runLogout(t *testing.T) {
	mockAuth := &auth.ServiceMock{
		LogoutFunc: func(ctx context.Context) error {
			return nil
		},
	}
	mockIO, out := newTestIO()
	c := &Cli{io: mockIO, authService: mockAuth}

	require.NoError(t, c.runLogout(context.Background()))
	assert.Len(t, mockAuth.LogoutCalls(), 1)
	assert.Contains(t, out.String(), "Logged out")
}
