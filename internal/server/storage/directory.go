package storage

import (
	"context"

	"github.com/iudanet/gophbook/pkg/api"
)

// System contact groups created for every user
const (
	GroupMyContacts = "contactGroups/myContacts"
	GroupStarred    = "contactGroups/starred"
)

//go:generate moq -out directory_mock.go . DirectoryStorage

// DirectoryStorage хранит контакты и группы пользователей.
// Все операции изолированы по userID; чужие записи выглядят как несуществующие.
type DirectoryStorage interface {
	// ListContacts returns every contact of the user with memberships
	ListContacts(ctx context.Context, userID string) ([]*api.Person, error)

	// GetContact returns ErrContactNotFound if the contact doesn't exist
	GetContact(ctx context.Context, userID, resourceName string) (*api.Person, error)

	// CreateContact assigns a resource name and an etag.
	// A contact without memberships joins GroupMyContacts.
	// Returns ErrGroupNotFound if a membership references an unknown group
	CreateContact(ctx context.Context, userID string, person *api.Person) (*api.Person, error)

	// UpdateContact replaces the contact fields when person.ETag matches.
	// nil Memberships keep the current ones.
	// Returns ErrContactNotFound, ErrETagMismatch or ErrGroupNotFound
	UpdateContact(ctx context.Context, userID string, person *api.Person) (*api.Person, error)

	// DeleteContact returns ErrContactNotFound if the contact doesn't exist
	DeleteContact(ctx context.Context, userID, resourceName string) error

	// ListGroups returns every group of the user with member counts
	ListGroups(ctx context.Context, userID string) ([]*api.ContactGroup, error)

	// CreateGroup returns ErrGroupNameTaken if the name is in use
	CreateGroup(ctx context.Context, userID string, group *api.ContactGroup) (*api.ContactGroup, error)

	// UpdateGroup renames a user group when group.ETag matches.
	// Returns ErrGroupNotFound, ErrSystemGroup, ErrETagMismatch or ErrGroupNameTaken
	UpdateGroup(ctx context.Context, userID string, group *api.ContactGroup) (*api.ContactGroup, error)

	// DeleteGroup removes a user group and its memberships; contacts are kept.
	// Returns ErrGroupNotFound or ErrSystemGroup
	DeleteGroup(ctx context.Context, userID, resourceName string) error
}
