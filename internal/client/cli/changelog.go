package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runChangeLog(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if args[0] != "clear" {
			return fmt.Errorf("unknown changelog action: %s. Usage: gophbook changelog [clear]", args[0])
		}
		return c.runChangeLogClear(ctx)
	}

	entries, err := c.bookService.PendingChanges(ctx)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		c.io.Println("No local changes pending.")
		return nil
	}

	c.io.Printf("%d local change(s) pending:\n", len(entries))
	for _, e := range entries {
		c.io.Printf("  %-9s %s\n", e.Kind, e.ResourceName)
	}
	return nil
}

func (c *Cli) runChangeLogClear(ctx context.Context) error {
	c.io.Println("Local changes will not be uploaded. New unsynchronized items will be removed")
	c.io.Println("and deleted items restored by the next sync.")
	answer, err := c.io.ReadInput("Continue? [y/N]: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		c.io.Println("Aborted.")
		return nil
	}

	if err := c.bookService.DiscardChanges(ctx); err != nil {
		return err
	}
	c.io.Println("✓ Change log cleared")
	return nil
}
