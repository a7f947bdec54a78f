package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/gophbook/internal/client/storage"
	"github.com/iudanet/gophbook/internal/models"
)

type contactView struct {
	Item   *models.Item
	Fields []field
	Groups []string
}

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing resource name. Usage: gophbook get <resource>")
	}

	item, err := c.bookService.Get(ctx, args[0])
	if err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			return fmt.Errorf("nothing found with resource name: %s", args[0])
		}
		return err
	}

	if item.IsMailList {
		return render(c.io, groupTemplate, contactView{Item: item})
	}

	groups, err := c.bookService.ListGroups(ctx)
	if err != nil {
		return err
	}
	view := contactView{Item: item, Fields: cardFields(item.Card)}
	for _, g := range groups {
		if g.HasMember(item.ID) {
			view.Groups = append(view.Groups, g.Name())
		}
	}

	return render(c.io, contactTemplate, view)
}
