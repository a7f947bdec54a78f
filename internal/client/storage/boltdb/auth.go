package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophbook/internal/client/storage"
)

// в книге хранится одна сессия на аккаунт
var keySession = []byte("session")

// SaveAuth replaces the directory session
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	data, err := json.Marshal(auth)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	return s.update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketAuth).Put(keySession, data)
	})
}

// GetAuth returns the directory session or storage.ErrAuthNotFound
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	var data []byte
	err := s.view(func(tx *bbolt.Tx) error {
		// bbolt отдает срез, валидный только внутри транзакции
		if raw := tx.Bucket(bucketAuth).Get(keySession); raw != nil {
			data = append([]byte(nil), raw...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, storage.ErrAuthNotFound
	}

	session := new(storage.AuthData)
	if err := json.Unmarshal(data, session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return session, nil
}

// DeleteAuth forgets the session. Logging out twice yields storage.ErrAuthNotFound
func (s *Storage) DeleteAuth(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket.Get(keySession) == nil {
			return storage.ErrAuthNotFound
		}
		return bucket.Delete(keySession)
	})
}

// IsAuthenticated reports whether a session exists and its token has not expired yet
func (s *Storage) IsAuthenticated(ctx context.Context) (bool, error) {
	session, err := s.GetAuth(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		return false, nil
	case err != nil:
		return false, err
	}
	return s.now().Unix() < session.ExpiresAt, nil
}
