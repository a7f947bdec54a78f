package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/gophbook/internal/client/api"
	"github.com/iudanet/gophbook/internal/server/middleware"
	"github.com/iudanet/gophbook/internal/server/storage"
	"github.com/iudanet/gophbook/pkg/api"
)

// loginTestClient регистрирует пользователя и возвращает клиент с токеном
func loginTestClient(t *testing.T, baseURL, username string) *clientapi.Client {
	t.Helper()
	ctx := context.Background()

	client := clientapi.NewClient(baseURL)
	_, err := client.Register(ctx, api.RegisterRequest{Username: username, Password: "correct horse battery"})
	require.NoError(t, err)

	token, err := client.Login(ctx, api.LoginRequest{Username: username, Password: "correct horse battery"})
	require.NoError(t, err)
	client.SetAccessToken(token.AccessToken)

	return client
}

func membershipOf(group string) api.Membership {
	return api.Membership{ContactGroupMembership: &api.ContactGroupMembership{ContactGroupResourceName: group}}
}

func TestDirectory_ContactLifecycle(t *testing.T) {
	srv, _ := setupTestServer(t)
	client := loginTestClient(t, srv.URL, "alice")
	ctx := context.Background()

	friends, err := client.CreateContactGroup(ctx, &api.ContactGroup{Name: "  Friends "})
	require.NoError(t, err)
	assert.Equal(t, "Friends", friends.Name)
	assert.Equal(t, api.GroupTypeUser, friends.GroupType)

	created, err := client.CreateContact(ctx, &api.Person{
		Names:       []api.Name{{GivenName: "Ada", FamilyName: "Lovelace"}},
		Birthdays:   []api.Birthday{{Date: &api.Date{Month: 12, Day: 10}}},
		Memberships: []api.Membership{membershipOf(friends.ResourceName)},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", created.DisplayName())
	assert.Equal(t, []string{friends.ResourceName}, created.GroupResourceNames())

	people, err := client.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, created.ETag, people[0].ETag)

	groups, err := client.ListContactGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "Friends", groups[2].Name)
	assert.Equal(t, 1, groups[2].MemberCount)

	t.Run("stale etag is rejected", func(t *testing.T) {
		stale := *created
		stale.ETag = "stale"
		_, err := client.UpdateContact(ctx, &stale)
		assert.ErrorIs(t, err, clientapi.ErrPreconditionFailed)
	})

	t.Run("update keeps memberships", func(t *testing.T) {
		update := &api.Person{
			ResourceName: created.ResourceName,
			ETag:         created.ETag,
			Names:        []api.Name{{GivenName: "Ada", FamilyName: "King"}},
		}
		updated, err := client.UpdateContact(ctx, update)
		require.NoError(t, err)
		assert.NotEqual(t, created.ETag, updated.ETag)
		assert.Equal(t, "Ada King", updated.DisplayName())
		assert.Equal(t, []string{friends.ResourceName}, updated.GroupResourceNames())
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, client.DeleteContact(ctx, created.ResourceName))

		err := client.DeleteContact(ctx, created.ResourceName)
		assert.ErrorIs(t, err, clientapi.ErrNotFound)
	})
}

func TestDirectory_GroupRules(t *testing.T) {
	srv, _ := setupTestServer(t)
	client := loginTestClient(t, srv.URL, "alice")
	ctx := context.Background()

	work, err := client.CreateContactGroup(ctx, &api.ContactGroup{Name: "Work"})
	require.NoError(t, err)

	t.Run("duplicate name", func(t *testing.T) {
		_, err := client.CreateContactGroup(ctx, &api.ContactGroup{Name: "Work"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "409")
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := client.CreateContactGroup(ctx, &api.ContactGroup{Name: "   "})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "400")
	})

	t.Run("system group cannot be deleted", func(t *testing.T) {
		err := client.DeleteContactGroup(ctx, storage.GroupStarred)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "400")
	})

	t.Run("rename", func(t *testing.T) {
		renamed, err := client.UpdateContactGroup(ctx, &api.ContactGroup{
			ResourceName: work.ResourceName,
			ETag:         work.ETag,
			Name:         "Office",
		})
		require.NoError(t, err)
		assert.Equal(t, "Office", renamed.Name)

		_, err = client.UpdateContactGroup(ctx, &api.ContactGroup{
			ResourceName: work.ResourceName,
			ETag:         work.ETag,
			Name:         "Again",
		})
		assert.ErrorIs(t, err, clientapi.ErrPreconditionFailed)
	})

	t.Run("contact with unknown group", func(t *testing.T) {
		_, err := client.CreateContact(ctx, &api.Person{
			Names:       []api.Name{{GivenName: "Grace"}},
			Memberships: []api.Membership{membershipOf("contactGroups/missing")},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "400")
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, client.DeleteContactGroup(ctx, work.ResourceName))

		err := client.DeleteContactGroup(ctx, work.ResourceName)
		assert.ErrorIs(t, err, clientapi.ErrNotFound)
	})
}

func TestDirectory_UsersAreIsolated(t *testing.T) {
	srv, _ := setupTestServer(t)
	alice := loginTestClient(t, srv.URL, "alice")
	bob := loginTestClient(t, srv.URL, "bob")
	ctx := context.Background()

	created, err := alice.CreateContact(ctx, &api.Person{Names: []api.Name{{GivenName: "Ada"}}})
	require.NoError(t, err)

	people, err := bob.ListContacts(ctx)
	require.NoError(t, err)
	assert.Empty(t, people)

	err = bob.DeleteContact(ctx, created.ResourceName)
	assert.ErrorIs(t, err, clientapi.ErrNotFound)
}

func TestDirectory_RequiresToken(t *testing.T) {
	srv, _ := setupTestServer(t)

	client := clientapi.NewClient(srv.URL)
	_, err := client.ListContacts(context.Background())
	assert.ErrorIs(t, err, clientapi.ErrUnauthorized)

	client.SetAccessToken("garbage")
	_, err = client.ListContactGroups(context.Background())
	assert.ErrorIs(t, err, clientapi.ErrUnauthorized)
}

func TestDirectory_InvalidDate(t *testing.T) {
	srv, _ := setupTestServer(t)
	client := loginTestClient(t, srv.URL, "alice")

	_, err := client.CreateContact(context.Background(), &api.Person{
		Names:     []api.Name{{GivenName: "Ada"}},
		Birthdays: []api.Birthday{{Date: &api.Date{Month: 13, Day: 1}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "month")
}

func TestDirectoryHandler_UpdatePerson_PathMismatch(t *testing.T) {
	handler := NewDirectoryHandler(setupTestLogger(), &storage.DirectoryStorageMock{})

	body, err := json.Marshal(api.Person{ResourceName: "people/cother", ETag: "x"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/v1/people/c1", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "c1"})
	req = req.WithContext(middleware.WithUser(req.Context(), "user-1", "alice"))
	w := httptest.NewRecorder()

	handler.UpdatePerson(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "resourceName does not match path", decodeError(t, w).Message)
}

func TestDirectoryHandler_StorageFailure(t *testing.T) {
	directory := &storage.DirectoryStorageMock{
		ListContactsFunc: func(ctx context.Context, userID string) ([]*api.Person, error) {
			return nil, errors.New("database is locked")
		},
	}
	handler := NewDirectoryHandler(setupTestLogger(), directory)

	req := httptest.NewRequest(http.MethodGet, "/v1/people", nil)
	req = req.WithContext(middleware.WithUser(req.Context(), "user-1", "alice"))
	w := httptest.NewRecorder()

	handler.ListPeople(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeError(t, w).Message)
	require.Len(t, directory.ListContactsCalls(), 1)
	assert.Equal(t, "user-1", directory.ListContactsCalls()[0].UserID)
}

func TestDirectoryHandler_MissingUser(t *testing.T) {
	handler := NewDirectoryHandler(setupTestLogger(), &storage.DirectoryStorageMock{})

	req := httptest.NewRequest(http.MethodGet, "/v1/contactGroups", nil)
	w := httptest.NewRecorder()

	handler.ListGroups(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
