package sync

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/gophbook/internal/client/api"
	"github.com/iudanet/gophbook/internal/client/storage/boltdb"
	"github.com/iudanet/gophbook/internal/models"
	"github.com/iudanet/gophbook/pkg/api"
)

// fakeDirectory держит состояние каталога в памяти и отдает его через ClientAPIMock
type fakeDirectory struct {
	people        []*api.Person
	groups        []*api.ContactGroup
	nextID        int
	includeSystem bool
}

func (f *fakeDirectory) person(resourceName string) *api.Person {
	for _, p := range f.people {
		if p.ResourceName == resourceName {
			return p
		}
	}
	return nil
}

func (f *fakeDirectory) group(resourceName string) *api.ContactGroup {
	for _, g := range f.groups {
		if g.ResourceName == resourceName {
			return g
		}
	}
	return nil
}

func bumpETag(etag string) string {
	n, _ := strconv.Atoi(etag)
	return strconv.Itoa(n + 1)
}

func (f *fakeDirectory) mock() *httpClient.ClientAPIMock {
	return &httpClient.ClientAPIMock{
		IncludeSystemContactGroupsFunc: func() bool {
			return f.includeSystem
		},
		ListContactsFunc: func(ctx context.Context) ([]*api.Person, error) {
			out := make([]*api.Person, 0, len(f.people))
			for _, p := range f.people {
				cp := *p
				out = append(out, &cp)
			}
			return out, nil
		},
		CreateContactFunc: func(ctx context.Context, person *api.Person) (*api.Person, error) {
			f.nextID++
			created := *person
			created.ResourceName = fmt.Sprintf("people/n%d", f.nextID)
			created.ETag = "1"
			f.people = append(f.people, &created)
			cp := created
			return &cp, nil
		},
		UpdateContactFunc: func(ctx context.Context, person *api.Person) (*api.Person, error) {
			existing := f.person(person.ResourceName)
			if existing == nil {
				return nil, fmt.Errorf("%w: %s", httpClient.ErrNotFound, person.ResourceName)
			}
			updated := *person
			updated.ETag = bumpETag(existing.ETag)
			if updated.Memberships == nil {
				updated.Memberships = existing.Memberships
			}
			*existing = updated
			cp := updated
			return &cp, nil
		},
		DeleteContactFunc: func(ctx context.Context, resourceName string) error {
			for i, p := range f.people {
				if p.ResourceName == resourceName {
					f.people = append(f.people[:i], f.people[i+1:]...)
					return nil
				}
			}
			return fmt.Errorf("%w: %s", httpClient.ErrNotFound, resourceName)
		},
		ListContactGroupsFunc: func(ctx context.Context) ([]*api.ContactGroup, error) {
			out := make([]*api.ContactGroup, 0, len(f.groups))
			for _, g := range f.groups {
				cp := *g
				out = append(out, &cp)
			}
			return out, nil
		},
		CreateContactGroupFunc: func(ctx context.Context, group *api.ContactGroup) (*api.ContactGroup, error) {
			f.nextID++
			created := *group
			created.ResourceName = fmt.Sprintf("contactGroups/n%d", f.nextID)
			created.ETag = "1"
			created.GroupType = api.GroupTypeUser
			f.groups = append(f.groups, &created)
			cp := created
			return &cp, nil
		},
		UpdateContactGroupFunc: func(ctx context.Context, group *api.ContactGroup) (*api.ContactGroup, error) {
			existing := f.group(group.ResourceName)
			if existing == nil {
				return nil, fmt.Errorf("%w: %s", httpClient.ErrNotFound, group.ResourceName)
			}
			existing.Name = group.Name
			existing.ETag = bumpETag(existing.ETag)
			cp := *existing
			return &cp, nil
		},
		DeleteContactGroupFunc: func(ctx context.Context, resourceName string) error {
			for i, g := range f.groups {
				if g.ResourceName == resourceName {
					f.groups = append(f.groups[:i], f.groups[i+1:]...)
					return nil
				}
			}
			return fmt.Errorf("%w: %s", httpClient.ErrNotFound, resourceName)
		},
	}
}

// mutatingCalls считает все вызовы, изменяющие каталог
func mutatingCalls(m *httpClient.ClientAPIMock) int {
	return len(m.CreateContactCalls()) + len(m.UpdateContactCalls()) + len(m.DeleteContactCalls()) +
		len(m.CreateContactGroupCalls()) + len(m.UpdateContactGroupCalls()) + len(m.DeleteContactGroupCalls())
}

func memberOf(groups ...string) []api.Membership {
	out := make([]api.Membership, 0, len(groups))
	for _, g := range groups {
		out = append(out, api.Membership{ContactGroupMembership: &api.ContactGroupMembership{ContactGroupResourceName: g}})
	}
	return out
}

func newTestBook(t *testing.T) *boltdb.Storage {
	t.Helper()

	book, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "book.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, book.Close())
	})
	return book
}

func newTestService(t *testing.T, client httpClient.ClientAPI, book *boltdb.Storage, opts Options) Service {
	t.Helper()

	svc, err := NewService(client, book, opts, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return svc
}

// seedCard добавляет уже синхронизированную карточку
func seedCard(t *testing.T, book *boltdb.Storage, resourceName, etag, firstName string) *models.Item {
	t.Helper()

	card := book.NewCard()
	card.ResourceName = resourceName
	card.ETag = etag
	card.Card.FirstName = firstName
	require.NoError(t, book.AddItem(context.Background(), card, true))
	return card
}

// seedList добавляет уже синхронизированный список
func seedList(t *testing.T, book *boltdb.Storage, resourceName, etag, name string) *models.Item {
	t.Helper()

	list := book.NewList()
	list.ResourceName = resourceName
	list.ETag = etag
	list.List.Name = name
	require.NoError(t, book.AddItem(context.Background(), list, true))
	return list
}

func itemByName(t *testing.T, book *boltdb.Storage, resourceName string) *models.Item {
	t.Helper()

	item, err := book.ItemByResourceName(context.Background(), resourceName)
	require.NoError(t, err)
	return item
}
