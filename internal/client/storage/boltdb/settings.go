package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophbook/internal/client/storage"
)

var (
	keyAccountSettings   = []byte("account")
	keyLastSyncTimestamp = []byte("last_sync_timestamp")
)

// SaveSettings replaces the account settings
func (s *Storage) SaveSettings(ctx context.Context, settings *storage.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	return s.update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketSettings).Put(keyAccountSettings, data); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		return nil
	})
}

// GetSettings returns the account settings, zero value if none were saved
func (s *Storage) GetSettings(ctx context.Context) (*storage.Settings, error) {
	settings := &storage.Settings{}

	err := s.view(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSettings).Get(keyAccountSettings)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, settings)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

// SaveLastSyncTimestamp saves the timestamp of the last successful sync
func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	return s.update(func(tx *bbolt.Tx) error {
		// Конвертируем int64 в bytes
		timestampBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(timestampBytes, uint64(timestamp))

		if err := tx.Bucket(bucketSettings).Put(keyLastSyncTimestamp, timestampBytes); err != nil {
			return fmt.Errorf("failed to save last sync timestamp: %w", err)
		}

		return nil
	})
}

// GetLastSyncTimestamp retrieves the timestamp of the last successful sync
// Returns 0 if no sync has been performed yet
func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	var timestamp int64

	err := s.view(func(tx *bbolt.Tx) error {
		timestampBytes := tx.Bucket(bucketSettings).Get(keyLastSyncTimestamp)
		if timestampBytes == nil {
			// Первая синхронизация
			return nil
		}

		timestamp = int64(binary.BigEndian.Uint64(timestampBytes))
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get last sync timestamp: %w", err)
	}

	return timestamp, nil
}
