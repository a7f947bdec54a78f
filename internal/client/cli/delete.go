package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing resource name. Usage: gophbook delete <resource>")
	}

	if err := c.bookService.DeleteItem(ctx, args[0]); err != nil {
		return err
	}

	c.io.Printf("✓ %s deleted locally\n", args[0])
	return nil
}
