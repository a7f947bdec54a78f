package api

import (
	"context"
	"errors"

	"github.com/iudanet/gophbook/pkg/api"
)

// Ошибки, которые клиент различает по HTTP статусу
var (
	// ErrNotFound indicates that the remote resource no longer exists (404)
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates a missing or expired access token (401)
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPreconditionFailed indicates a stale etag on update (412)
	ErrPreconditionFailed = errors.New("etag mismatch")
)

//go:generate moq -out clientapi_mock.go . ClientAPI

// ClientAPI is the directory collaborator of the synchronization engine
type ClientAPI interface {
	// ListContacts returns every contact with its group memberships
	ListContacts(ctx context.Context) ([]*api.Person, error)

	// CreateContact creates a contact and returns it with the assigned resource name and etag
	CreateContact(ctx context.Context, person *api.Person) (*api.Person, error)

	// UpdateContact replaces a contact; person.ETag must be the last seen etag.
	// Returns ErrNotFound if the contact no longer exists
	UpdateContact(ctx context.Context, person *api.Person) (*api.Person, error)

	// DeleteContact removes a contact
	DeleteContact(ctx context.Context, resourceName string) error

	// ListContactGroups returns every group including system ones
	ListContactGroups(ctx context.Context) ([]*api.ContactGroup, error)

	// CreateContactGroup creates a user group
	CreateContactGroup(ctx context.Context, group *api.ContactGroup) (*api.ContactGroup, error)

	// UpdateContactGroup renames a user group.
	// Returns ErrNotFound if the group no longer exists
	UpdateContactGroup(ctx context.Context, group *api.ContactGroup) (*api.ContactGroup, error)

	// DeleteContactGroup removes a user group
	DeleteContactGroup(ctx context.Context, resourceName string) error

	// IncludeSystemContactGroups reports whether system groups take part in synchronization
	IncludeSystemContactGroups() bool
}
