package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophbook/internal/etag"
	"github.com/iudanet/gophbook/internal/server/storage"
	"github.com/iudanet/gophbook/pkg/api"
)

func membership(group string) api.Membership {
	return api.Membership{ContactGroupMembership: &api.ContactGroupMembership{ContactGroupResourceName: group}}
}

func testPerson(given, family string) *api.Person {
	return &api.Person{
		Names:          []api.Name{{GivenName: given, FamilyName: family}},
		EmailAddresses: []api.EmailAddress{{Value: given + "@example.com", Type: "home"}},
	}
}

func TestDirectoryStorage_CreateContact(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	group, err := s.CreateGroup(ctx, userID, &api.ContactGroup{Name: "Friends"})
	require.NoError(t, err)

	tests := []struct {
		wantError  error
		person     *api.Person
		name       string
		wantGroups []string
	}{
		{
			name:       "no memberships joins my contacts",
			person:     testPerson("Ada", "Lovelace"),
			wantGroups: []string{storage.GroupMyContacts},
		},
		{
			name: "explicit memberships are kept in order",
			person: func() *api.Person {
				p := testPerson("Alan", "Turing")
				p.Memberships = []api.Membership{membership(group.ResourceName), membership(storage.GroupStarred), membership(group.ResourceName)}
				return p
			}(),
			wantGroups: []string{group.ResourceName, storage.GroupStarred},
		},
		{
			name: "unknown group",
			person: func() *api.Person {
				p := testPerson("Grace", "Hopper")
				p.Memberships = []api.Membership{membership("contactGroups/missing")}
				return p
			}(),
			wantError: storage.ErrGroupNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := s.CreateContact(ctx, userID, tt.person)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Regexp(t, `^people/c[0-9a-f]{16}$`, created.ResourceName)
			assert.NotEmpty(t, created.ETag)
			assert.Equal(t, tt.wantGroups, created.GroupResourceNames())
			require.Len(t, created.Names, 1)
			assert.Equal(t, tt.person.Names[0].GivenName+" "+tt.person.Names[0].FamilyName, created.Names[0].DisplayName)

			got, err := s.GetContact(ctx, userID, created.ResourceName)
			require.NoError(t, err)
			assert.Equal(t, created, got)
		})
	}

	people, err := s.ListContacts(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, people, 2)
}

func TestDirectoryStorage_UpdateContact(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	created, err := s.CreateContact(ctx, userID, testPerson("Ada", "Lovelace"))
	require.NoError(t, err)

	t.Run("stale etag", func(t *testing.T) {
		update := testPerson("Ada", "King")
		update.ResourceName = created.ResourceName
		update.ETag = "stale"
		_, err := s.UpdateContact(ctx, userID, update)
		assert.ErrorIs(t, err, storage.ErrETagMismatch)
	})

	t.Run("unknown contact", func(t *testing.T) {
		update := testPerson("Nobody", "")
		update.ResourceName = "people/cmissing"
		_, err := s.UpdateContact(ctx, userID, update)
		assert.ErrorIs(t, err, storage.ErrContactNotFound)
	})

	t.Run("nil memberships keep current", func(t *testing.T) {
		update := testPerson("Ada", "King")
		update.ResourceName = created.ResourceName
		update.ETag = created.ETag

		updated, err := s.UpdateContact(ctx, userID, update)
		require.NoError(t, err)
		assert.NotEqual(t, created.ETag, updated.ETag)
		assert.Equal(t, "King", updated.Names[0].FamilyName)
		assert.Equal(t, []string{storage.GroupMyContacts}, updated.GroupResourceNames())
		created = updated
	})

	t.Run("memberships replaced", func(t *testing.T) {
		update := testPerson("Ada", "King")
		update.ResourceName = created.ResourceName
		update.ETag = created.ETag
		update.Memberships = []api.Membership{membership(storage.GroupStarred)}

		updated, err := s.UpdateContact(ctx, userID, update)
		require.NoError(t, err)
		assert.Equal(t, []string{storage.GroupStarred}, updated.GroupResourceNames())
	})
}

func TestDirectoryStorage_DeleteContact(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	created, err := s.CreateContact(ctx, userID, testPerson("Ada", "Lovelace"))
	require.NoError(t, err)

	require.NoError(t, s.DeleteContact(ctx, userID, created.ResourceName))

	_, err = s.GetContact(ctx, userID, created.ResourceName)
	assert.ErrorIs(t, err, storage.ErrContactNotFound)

	err = s.DeleteContact(ctx, userID, created.ResourceName)
	assert.ErrorIs(t, err, storage.ErrContactNotFound)

	groups, err := s.ListGroups(ctx, userID)
	require.NoError(t, err)
	for _, g := range groups {
		assert.Zero(t, g.MemberCount, g.ResourceName)
	}
}

func TestDirectoryStorage_UserIsolation(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	owner := createTestUser(t, ctx, s)
	other := createTestUser(t, ctx, s)

	created, err := s.CreateContact(ctx, owner, testPerson("Ada", "Lovelace"))
	require.NoError(t, err)

	_, err = s.GetContact(ctx, other, created.ResourceName)
	assert.ErrorIs(t, err, storage.ErrContactNotFound)

	err = s.DeleteContact(ctx, other, created.ResourceName)
	assert.ErrorIs(t, err, storage.ErrContactNotFound)

	people, err := s.ListContacts(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, people)
}

func TestDirectoryStorage_Groups(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	friends, err := s.CreateGroup(ctx, userID, &api.ContactGroup{Name: "Friends"})
	require.NoError(t, err)
	assert.Regexp(t, `^contactGroups/[0-9a-f]{16}$`, friends.ResourceName)
	assert.Equal(t, api.GroupTypeUser, friends.GroupType)
	assert.NotEmpty(t, friends.ETag)

	_, err = s.CreateGroup(ctx, userID, &api.ContactGroup{Name: "Friends"})
	assert.ErrorIs(t, err, storage.ErrGroupNameTaken)

	_, err = s.CreateGroup(ctx, userID, &api.ContactGroup{Name: "Work"})
	require.NoError(t, err)

	person := testPerson("Ada", "Lovelace")
	person.Memberships = []api.Membership{membership(friends.ResourceName)}
	_, err = s.CreateContact(ctx, userID, person)
	require.NoError(t, err)

	groups, err := s.ListGroups(ctx, userID)
	require.NoError(t, err)
	require.Len(t, groups, 4)
	// системные группы идут первыми
	assert.True(t, groups[0].IsSystem())
	assert.True(t, groups[1].IsSystem())
	assert.Equal(t, "Friends", groups[2].Name)
	assert.Equal(t, 1, groups[2].MemberCount)
	assert.Equal(t, "Work", groups[3].Name)

	t.Run("rename", func(t *testing.T) {
		renamed, err := s.UpdateGroup(ctx, userID, &api.ContactGroup{
			ResourceName: friends.ResourceName,
			ETag:         friends.ETag,
			Name:         "Close friends",
		})
		require.NoError(t, err)
		assert.Equal(t, "Close friends", renamed.Name)
		assert.NotEqual(t, friends.ETag, renamed.ETag)
		assert.Equal(t, 1, renamed.MemberCount)
		friends = renamed
	})

	t.Run("rename with stale etag", func(t *testing.T) {
		_, err := s.UpdateGroup(ctx, userID, &api.ContactGroup{
			ResourceName: friends.ResourceName,
			ETag:         "stale",
			Name:         "Other",
		})
		assert.ErrorIs(t, err, storage.ErrETagMismatch)
	})

	t.Run("rename to taken name", func(t *testing.T) {
		_, err := s.UpdateGroup(ctx, userID, &api.ContactGroup{
			ResourceName: friends.ResourceName,
			ETag:         friends.ETag,
			Name:         "Work",
		})
		assert.ErrorIs(t, err, storage.ErrGroupNameTaken)
	})

	t.Run("system group is read-only", func(t *testing.T) {
		_, err := s.UpdateGroup(ctx, userID, &api.ContactGroup{ResourceName: storage.GroupStarred, Name: "Fav"})
		assert.ErrorIs(t, err, storage.ErrSystemGroup)

		err = s.DeleteGroup(ctx, userID, storage.GroupMyContacts)
		assert.ErrorIs(t, err, storage.ErrSystemGroup)
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := s.UpdateGroup(ctx, userID, &api.ContactGroup{ResourceName: "contactGroups/missing", Name: "X"})
		assert.ErrorIs(t, err, storage.ErrGroupNotFound)

		err = s.DeleteGroup(ctx, userID, "contactGroups/missing")
		assert.ErrorIs(t, err, storage.ErrGroupNotFound)
	})

	t.Run("delete drops memberships but keeps contacts", func(t *testing.T) {
		require.NoError(t, s.DeleteGroup(ctx, userID, friends.ResourceName))

		people, err := s.ListContacts(ctx, userID)
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Empty(t, people[0].GroupResourceNames())
	})
}

func TestStorage_ClockRestoredAfterReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "directory.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)

	userID := createTestUser(t, ctx, s)
	var last string
	for range 3 {
		p, err := s.CreateContact(ctx, userID, testPerson("Ada", "Lovelace"))
		require.NoError(t, err)
		last = p.ETag
	}
	require.NoError(t, s.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	lastSeq, err := etag.Parse(last)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, reopened.clock.Timestamp(), lastSeq)

	p, err := reopened.CreateContact(ctx, userID, testPerson("Alan", "Turing"))
	require.NoError(t, err)
	seq, err := etag.Parse(p.ETag)
	require.NoError(t, err)
	assert.Greater(t, seq, lastSeq)
}
