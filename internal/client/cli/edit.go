package cli

import (
	"context"
	"fmt"
	"strings"
)

// clearValue введенный вместо значения очищает поле
const clearValue = "-"

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing contact. Usage: gophbook edit <contact>")
	}

	item, err := c.bookService.Get(ctx, args[0])
	if err != nil {
		return err
	}
	if item.IsMailList {
		return fmt.Errorf("%s is a group, use 'gophbook rename' instead", args[0])
	}

	c.io.Printf("=== Edit %s ===\n", item.Name())
	c.io.Printf("Press Enter to keep the current value, enter %q to clear it.\n", clearValue)
	c.io.Println()

	card := item.Card
	for _, p := range cardPrompts(&card) {
		prompt := p.label + ": "
		if *p.value != "" {
			prompt = fmt.Sprintf("%s [%s]: ", p.label, *p.value)
		}
		value, err := c.io.ReadInput(prompt)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", strings.ToLower(p.label), err)
		}
		switch value {
		case "":
		case clearValue:
			*p.value = ""
		default:
			*p.value = value
		}
	}

	if card == item.Card {
		c.io.Println("No changes.")
		return nil
	}

	updated, err := c.bookService.UpdateContact(ctx, item.ResourceName, card)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Contact %s updated\n", updated.Name())
	return nil
}

func (c *Cli) runRename(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: gophbook rename <group> <name>")
	}

	item, err := c.bookService.RenameGroup(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	c.io.Printf("✓ Group %s renamed to %s\n", item.ResourceName, item.Name())
	return nil
}
