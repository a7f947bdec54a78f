package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophbook/internal/models"
	"github.com/iudanet/gophbook/internal/server/storage"
	"github.com/iudanet/gophbook/pkg/api"
)

// systemGroups создаются вместе с каждым пользователем
var systemGroups = []struct {
	resourceName string
	name         string
}{
	{resourceName: storage.GroupMyContacts, name: "My Contacts"},
	{resourceName: storage.GroupStarred, name: "Starred"},
}

// CreateUser creates a new user together with its system contact groups
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO users (id, username, password_hash, created_at, last_login)
			VALUES (?, ?, ?, ?, ?)
		`,
			user.ID,
			user.Username,
			user.PasswordHash,
			user.CreatedAt,
			user.LastLogin,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return storage.ErrUserAlreadyExists
			}
			return fmt.Errorf("failed to insert user: %w", err)
		}

		// etag системных групп пустой: клиенты их не изменяют
		for _, g := range systemGroups {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO contact_groups (user_id, resource_name, name, group_type, etag, seq)
				VALUES (?, ?, ?, ?, '', 0)
			`, user.ID, g.resourceName, g.name, api.GroupTypeSystem)
			if err != nil {
				return fmt.Errorf("failed to insert system group %s: %w", g.resourceName, err)
			}
		}

		return nil
	})
}

// GetUserByUsername retrieves user by username
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getUser(ctx, `
		SELECT id, username, password_hash, created_at, last_login
		FROM users
		WHERE username = ?
	`, username)
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return s.getUser(ctx, `
		SELECT id, username, password_hash, created_at, last_login
		FROM users
		WHERE id = ?
	`, userID)
}

func (s *Storage) getUser(ctx context.Context, query string, arg string) (*models.User, error) {
	user := &models.User{}
	var lastLogin sql.NullTime

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
		&lastLogin,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}

	return user, nil
}

// UpdateLastLogin updates the last login timestamp
func (s *Storage) UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error {
	query := `UPDATE users SET last_login = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, lastLogin, userID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}
