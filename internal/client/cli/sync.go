package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/gophbook/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")

	authData, err := c.authService.GetAuth(ctx)
	if err != nil {
		return err
	}

	settings, err := c.settings.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	c.session.SetAccessToken(authData.AccessToken)
	c.session.SetIncludeSystemContactGroups(settings.IncludeSystemGroups)

	c.io.Println()
	if c.syncOptions.ReadOnly {
		c.io.Println("Starting read-only synchronization, the directory will not be modified...")
		c.io.Println("Local additions that were never synchronized will be discarded, local edits and deletions overwritten.")
	} else {
		c.io.Println("Starting synchronization with the directory...")
	}

	startedAt := c.now()
	result, err := c.syncService.Sync(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if err := c.settings.SaveLastSyncTimestamp(ctx, startedAt.Unix()); err != nil {
		return fmt.Errorf("failed to save last sync time: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Synchronization completed successfully!")
	c.io.Println()
	c.printCounters("Groups", result.Groups)
	c.printCounters("Contacts", result.Contacts)
	c.io.Printf("Groups with updated members: %d\n", result.Memberships)
	if result.RepairedEntries > 0 {
		c.io.Printf("Stale change log entries dropped: %d\n", result.RepairedEntries)
	}

	return nil
}

func (c *Cli) printCounters(title string, counters sync.Counters) {
	c.io.Printf("%s:\n", title)
	c.io.Printf("  Pulled:  %d added, %d updated, %d deleted\n",
		counters.AddedLocally, counters.UpdatedLocally, counters.DeletedLocally)
	c.io.Printf("  Pushed:  %d added, %d updated, %d deleted\n",
		counters.AddedRemotely, counters.UpdatedRemotely, counters.DeletedRemotely)
	if counters.Skipped > 0 {
		c.io.Printf("  Skipped: %d\n", counters.Skipped)
	}
}
