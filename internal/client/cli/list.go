package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing item type. Usage: gophbook list <contacts|groups>")
	}

	switch args[0] {
	case "contacts", "contact":
		contacts, err := c.bookService.ListContacts(ctx)
		if err != nil {
			return err
		}
		return render(c.io, contactsListTemplate, contacts)
	case "groups", "group":
		groups, err := c.bookService.ListGroups(ctx)
		if err != nil {
			return err
		}
		return render(c.io, groupsListTemplate, groups)
	default:
		return fmt.Errorf("unknown item type: %s. Use: contacts or groups", args[0])
	}
}

func (c *Cli) runMembers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing group. Usage: gophbook members <group>")
	}

	group, err := c.bookService.Get(ctx, args[0])
	if err != nil {
		return err
	}
	members, err := c.bookService.Members(ctx, args[0])
	if err != nil {
		return err
	}

	return render(c.io, membersListTemplate, map[string]any{
		"Group":   group,
		"Members": members,
	})
}
