package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophbook/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/")

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	assert.False(t, client.IncludeSystemContactGroups())

	client.SetIncludeSystemContactGroups(true)
	assert.True(t, client.IncludeSystemContactGroups())
}

func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "testuser", req.Username)
		assert.Equal(t, "correct-horse-battery", req.Password)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.RegisterResponse{UserID: "user-123", Message: "Registration successful"})
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).Register(context.Background(), api.RegisterRequest{
		Username: "testuser",
		Password: "correct-horse-battery",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-123", resp.UserID)
	assert.Equal(t, "Registration successful", resp.Message)
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(api.TokenResponse{UserID: "user-1", AccessToken: "token", ExpiresIn: 900})
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).Login(context.Background(), api.LoginRequest{Username: "u", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "token", resp.AccessToken)
	assert.Equal(t, int64(900), resp.ExpiresIn)
}

func TestClient_ErrorStatuses(t *testing.T) {
	tests := []struct {
		responseBody   interface{}
		wantErr        error
		name           string
		expectedErrMsg string
		statusCode     int
	}{
		{
			name:           "not found",
			statusCode:     http.StatusNotFound,
			responseBody:   api.ErrorResponse{Error: "not_found", Message: "contact not found"},
			wantErr:        ErrNotFound,
			expectedErrMsg: "contact not found",
		},
		{
			name:           "unauthorized",
			statusCode:     http.StatusUnauthorized,
			responseBody:   api.ErrorResponse{Message: "token expired"},
			wantErr:        ErrUnauthorized,
			expectedErrMsg: "token expired",
		},
		{
			name:           "stale etag",
			statusCode:     http.StatusPreconditionFailed,
			responseBody:   api.ErrorResponse{Message: "etag mismatch"},
			wantErr:        ErrPreconditionFailed,
			expectedErrMsg: "etag mismatch",
		},
		{
			name:           "conflict",
			statusCode:     http.StatusConflict,
			responseBody:   api.ErrorResponse{Message: "user already exists"},
			expectedErrMsg: "server error (409): user already exists",
		},
		{
			name:           "plain text failure",
			statusCode:     http.StatusInternalServerError,
			responseBody:   "Internal Server Error",
			expectedErrMsg: "request failed with status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if errResp, ok := tt.responseBody.(api.ErrorResponse); ok {
					_ = json.NewEncoder(w).Encode(errResp)
				} else {
					_, _ = w.Write([]byte(tt.responseBody.(string)))
				}
			}))
			defer server.Close()

			_, err := NewClient(server.URL).UpdateContact(context.Background(), &api.Person{ResourceName: "people/c1"})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
		})
	}
}

func TestClient_Contacts(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))

		switch r.Method + " " + r.URL.Path {
		case "GET /v1/people":
			_ = json.NewEncoder(w).Encode(api.ListConnectionsResponse{
				Connections: []*api.Person{{ResourceName: "people/c1", ETag: "1"}},
				TotalPeople: 1,
			})
		case "POST /v1/people":
			var p api.Person
			require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
			p.ResourceName, p.ETag = "people/c2", "2"
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(p)
		case "PUT /v1/people/c1":
			var p api.Person
			require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
			assert.Equal(t, "1", p.ETag)
			p.ETag = "3"
			_ = json.NewEncoder(w).Encode(p)
		case "DELETE /v1/people/c1":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	ctx := context.Background()
	client := NewClient(server.URL)
	client.SetAccessToken("access")

	people, err := client.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "people/c1", people[0].ResourceName)

	created, err := client.CreateContact(ctx, &api.Person{Nicknames: []api.Nickname{{Value: "n"}}})
	require.NoError(t, err)
	assert.Equal(t, "people/c2", created.ResourceName)
	assert.Equal(t, "n", created.Nicknames[0].Value)

	updated, err := client.UpdateContact(ctx, &api.Person{ResourceName: "people/c1", ETag: "1"})
	require.NoError(t, err)
	assert.Equal(t, "3", updated.ETag)

	require.NoError(t, client.DeleteContact(ctx, "people/c1"))

	assert.Equal(t, []string{
		"GET /v1/people",
		"POST /v1/people",
		"PUT /v1/people/c1",
		"DELETE /v1/people/c1",
	}, seen)
}

func TestClient_ContactGroups(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /v1/contactGroups":
			_ = json.NewEncoder(w).Encode(api.ListContactGroupsResponse{
				ContactGroups: []*api.ContactGroup{
					{ResourceName: "contactGroups/myContacts", GroupType: api.GroupTypeSystem},
					{ResourceName: "contactGroups/7", ETag: "1", Name: "Friends", GroupType: api.GroupTypeUser},
				},
			})
		case "POST /v1/contactGroups":
			var g api.ContactGroup
			require.NoError(t, json.NewDecoder(r.Body).Decode(&g))
			g.ResourceName, g.ETag, g.GroupType = "contactGroups/8", "1", api.GroupTypeUser
			_ = json.NewEncoder(w).Encode(g)
		case "PUT /v1/contactGroups/7":
			var g api.ContactGroup
			require.NoError(t, json.NewDecoder(r.Body).Decode(&g))
			g.ETag = "2"
			_ = json.NewEncoder(w).Encode(g)
		case "DELETE /v1/contactGroups/7":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	ctx := context.Background()
	client := NewClient(server.URL)

	groups, err := client.ListContactGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.True(t, groups[0].IsSystem())

	created, err := client.CreateContactGroup(ctx, &api.ContactGroup{Name: "Work"})
	require.NoError(t, err)
	assert.Equal(t, "contactGroups/8", created.ResourceName)

	updated, err := client.UpdateContactGroup(ctx, &api.ContactGroup{ResourceName: "contactGroups/7", ETag: "1", Name: "Pals"})
	require.NoError(t, err)
	assert.Equal(t, "2", updated.ETag)
	assert.Equal(t, "Pals", updated.Name)

	require.NoError(t, client.DeleteContactGroup(ctx, "contactGroups/7"))

	err = client.DeleteContactGroup(ctx, "contactGroups/404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(url).ListContacts(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "request failed")
}
