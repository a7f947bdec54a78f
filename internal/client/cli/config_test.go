package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophbook/internal/client/storage"
)

func TestCli_runConfig(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantErr   string
		wantText  []string
		wantSaved *storage.Settings
	}{
		{
			name:     "show all",
			wantText: []string{"include_system_groups = false", "read_only = true", "fake_emails = false"},
		},
		{
			name:     "show one",
			args:     []string{"read_only"},
			wantText: []string{"read_only = true"},
		},
		{
			name:      "invalid value",
			args:      []string{"fake_emails", "on"},
			wantErr:   "invalid value for fake_emails",
			wantSaved: nil,
		},
		{
			name:      "set bool",
			args:      []string{"include_system_groups", "true"},
			wantText:  []string{"✓ include_system_groups = true"},
			wantSaved: &storage.Settings{IncludeSystemGroups: true, ReadOnly: true},
		},
		{
			name:    "unknown key",
			args:    []string{"color"},
			wantErr: "unknown setting: color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := settingsMock(storage.Settings{ReadOnly: true})
			mockIO, out := newTestIO()
			c := &Cli{io: mockIO, settings: settings}

			err := c.runConfig(context.Background(), tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, settings.SaveSettingsCalls())
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantText {
				assert.Contains(t, out.String(), want)
			}
			if tt.wantSaved == nil {
				assert.Empty(t, settings.SaveSettingsCalls())
				return
			}
			require.Len(t, settings.SaveSettingsCalls(), 1)
			assert.Equal(t, tt.wantSaved, settings.SaveSettingsCalls()[0].Settings)
		})
	}
}
