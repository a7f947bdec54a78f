package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophbook/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	authData, err := c.authService.GetAuth(ctx)
	switch {
	case err == nil:
		c.io.Println("Session:   Authenticated")
		c.io.Printf("Username:  %s\n", authData.Username)
		c.io.Printf("Server:    %s\n", authData.ServerURL)
		expiresAt := time.Unix(authData.ExpiresAt, 0)
		c.io.Printf("Expires:   %s (%s remaining)\n",
			expiresAt.Format(time.RFC3339), expiresAt.Sub(c.now()).Round(time.Second))
	case errors.Is(err, auth.ErrSessionExpired):
		c.io.Println("Session:   Expired")
		c.io.Println("Run 'gophbook login' to authenticate again.")
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.io.Println("Session:   Not authenticated")
		c.io.Println("Run 'gophbook login' to authenticate.")
	default:
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	settings, err := c.settings.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	c.io.Println()
	c.io.Printf("Read-only:        %s\n", onOff(settings.ReadOnly || c.syncOptions.ReadOnly))
	c.io.Printf("System groups:    %s\n", onOff(settings.IncludeSystemGroups))
	c.io.Printf("Fake emails:      %s\n", onOff(settings.UseFakeEmailAddresses || c.syncOptions.UseFakeEmailAddresses))

	lastSync, err := c.settings.GetLastSyncTimestamp(ctx)
	if err != nil {
		return fmt.Errorf("failed to get last sync time: %w", err)
	}
	c.io.Printf("Last sync:        %s\n", formatTimestamp(lastSync))

	pendingCount, err := c.syncService.GetPendingSyncCount(ctx)
	if err != nil {
		c.io.Printf("\nWarning: Failed to get pending sync count: %v\n", err)
		return nil
	}
	c.io.Println()
	if pendingCount > 0 {
		c.io.Printf("Pending sync: %d change(s) waiting to be synchronized\n", pendingCount)
		c.io.Println("Run 'gophbook sync' to synchronize with the directory.")
	} else {
		c.io.Println("✓ No local changes pending")
	}

	return nil
}
