package storage

import "context"

//go:generate moq -out settings_mock.go . SettingsStorage

// Settings are the persisted account options of the local address book
type Settings struct {
	IncludeSystemGroups   bool `json:"include_system_groups"`
	ReadOnly              bool `json:"read_only"`
	UseFakeEmailAddresses bool `json:"fake_emails"`
}

// SettingsStorage defines interface for storing account settings and sync metadata
type SettingsStorage interface {
	// SaveSettings replaces the account settings
	SaveSettings(ctx context.Context, settings *Settings) error

	// GetSettings returns the account settings, zero value if none were saved
	GetSettings(ctx context.Context) (*Settings, error)

	// SaveLastSyncTimestamp saves the timestamp of the last successful sync
	SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error

	// GetLastSyncTimestamp retrieves the timestamp of the last successful sync
	// Returns 0 if no sync has been performed yet
	GetLastSyncTimestamp(ctx context.Context) (int64, error)
}
