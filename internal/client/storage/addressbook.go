package storage

import (
	"context"

	"github.com/iudanet/gophbook/internal/models"
)

//go:generate moq -out addressbook_mock.go . AddressBook

// AddressBook is the local store of cards and lists together with the change log
// of local mutations since the last synchronization.
//
// Mutations take a silent flag: silent mutations are applied without touching the change log
// and are used by synchronization; tracked ones record the change for the next run.
type AddressBook interface {
	// NewCard returns an unsaved contact with a fresh local ID
	NewCard() *models.Item

	// NewList returns an unsaved group with a fresh local ID
	NewList() *models.Item

	// AddItem stores a new item. Items without a resource name get a provisional one.
	// Returns ErrDuplicateResource if the resource name is already taken
	AddItem(ctx context.Context, item *models.Item, silent bool) error

	// ModifyItem replaces a stored item, re-binding its resource name if it changed
	// Returns ErrItemNotFound if the item doesn't exist
	ModifyItem(ctx context.Context, item *models.Item, silent bool) error

	// DeleteItem removes an item; a deleted card is also dropped from every list
	// Returns ErrItemNotFound if the item doesn't exist
	DeleteItem(ctx context.Context, item *models.Item, silent bool) error

	// ItemByResourceName resolves an item by its resource name
	// Returns ErrItemNotFound if nothing is bound to the name
	ItemByResourceName(ctx context.Context, resourceName string) (*models.Item, error)

	// ItemByID resolves an item by its local ID
	// Returns ErrItemNotFound if the item doesn't exist
	ItemByID(ctx context.Context, id string) (*models.Item, error)

	// AllItems returns every card and list
	AllItems(ctx context.Context) ([]*models.Item, error)

	// AddedItems returns resource names recorded as added
	AddedItems(ctx context.Context) ([]string, error)

	// ModifiedItems returns resource names recorded as modified
	ModifiedItems(ctx context.Context) ([]string, error)

	// DeletedItems returns resource names recorded as deleted
	DeletedItems(ctx context.Context) ([]string, error)

	// ChangeLog returns every entry ordered by resource name
	ChangeLog(ctx context.Context) ([]models.ChangeLogEntry, error)

	// RemoveFromChangeLog drops the entry of the resource name; missing entries are ignored
	RemoveFromChangeLog(ctx context.Context, resourceName string) error

	// ClearChangeLog drops every entry
	ClearChangeLog(ctx context.Context) error
}
