package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/gophbook/internal/models"
)

// cardPrompt одно поле карточки, запрашиваемое при добавлении и редактировании
type cardPrompt struct {
	value *string
	label string
}

func cardPrompts(card *models.Card) []cardPrompt {
	return []cardPrompt{
		{&card.FirstName, "First name"},
		{&card.LastName, "Last name"},
		{&card.DisplayName, "Display name"},
		{&card.NickName, "Nickname"},
		{&card.PrimaryEmail, "Email"},
		{&card.SecondEmail, "Second email"},
		{&card.CellularNumber, "Mobile"},
		{&card.WorkPhone, "Work phone"},
		{&card.HomePhone, "Home phone"},
		{&card.Company, "Company"},
		{&card.JobTitle, "Job title"},
		{&card.Birthday, "Birthday (YYYY-MM-DD)"},
		{&card.Notes, "Notes"},
	}
}

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing item type. Usage: gophbook add <contact|group>")
	}

	switch args[0] {
	case "contact":
		return c.runAddContact(ctx)
	case "group":
		return c.runAddGroup(ctx, args[1:])
	default:
		return fmt.Errorf("unknown item type: %s. Use: contact or group", args[0])
	}
}

func (c *Cli) runAddContact(ctx context.Context) error {
	c.io.Println("=== Add Contact ===")
	c.io.Println("Leave a field empty to skip it.")
	c.io.Println()

	var card models.Card
	for _, p := range cardPrompts(&card) {
		value, err := c.io.ReadInput(p.label + ": ")
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", strings.ToLower(p.label), err)
		}
		*p.value = value
	}

	item, err := c.bookService.AddContact(ctx, card)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ Contact %s added as %s\n", item.Name(), item.ResourceName)
	c.io.Println("Run 'gophbook sync' to upload it to the directory.")
	return nil
}

func (c *Cli) runAddGroup(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if name == "" {
		var err error
		name, err = c.io.ReadInput("Group name: ")
		if err != nil {
			return fmt.Errorf("failed to read group name: %w", err)
		}
	}

	item, err := c.bookService.AddGroup(ctx, name)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Group %s added as %s\n", item.Name(), item.ResourceName)
	return nil
}
