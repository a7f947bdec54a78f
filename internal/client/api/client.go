package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/gophbook/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с каталогом
type Client struct {
	httpClient          *http.Client
	baseURL             string
	accessToken         string
	includeSystemGroups bool
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetAccessToken задает bearer токен для запросов к данным
func (c *Client) SetAccessToken(token string) {
	c.accessToken = token
}

// SetIncludeSystemContactGroups задает, участвуют ли системные группы в синхронизации
func (c *Client) SetIncludeSystemContactGroups(include bool) {
	c.includeSystemGroups = include
}

// IncludeSystemContactGroups reports whether system groups take part in synchronization
func (c *Client) IncludeSystemContactGroups() bool {
	return c.includeSystemGroups
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/v1/auth/register", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/v1/auth/login", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// ListContacts returns every contact with its group memberships
func (c *Client) ListContacts(ctx context.Context) ([]*api.Person, error) {
	var resp api.ListConnectionsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/v1/people", nil, &resp); err != nil {
		return nil, fmt.Errorf("list contacts failed: %w", err)
	}
	return resp.Connections, nil
}

// CreateContact creates a contact
func (c *Client) CreateContact(ctx context.Context, person *api.Person) (*api.Person, error) {
	var resp api.Person
	if err := c.doRequest(ctx, http.MethodPost, "/v1/people", person, &resp); err != nil {
		return nil, fmt.Errorf("create contact failed: %w", err)
	}
	return &resp, nil
}

// UpdateContact replaces a contact
func (c *Client) UpdateContact(ctx context.Context, person *api.Person) (*api.Person, error) {
	var resp api.Person
	if err := c.doRequest(ctx, http.MethodPut, resourcePath(person.ResourceName), person, &resp); err != nil {
		return nil, fmt.Errorf("update contact %s failed: %w", person.ResourceName, err)
	}
	return &resp, nil
}

// DeleteContact removes a contact
func (c *Client) DeleteContact(ctx context.Context, resourceName string) error {
	if err := c.doRequest(ctx, http.MethodDelete, resourcePath(resourceName), nil, nil); err != nil {
		return fmt.Errorf("delete contact %s failed: %w", resourceName, err)
	}
	return nil
}

// ListContactGroups returns every group including system ones
func (c *Client) ListContactGroups(ctx context.Context) ([]*api.ContactGroup, error) {
	var resp api.ListContactGroupsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/v1/contactGroups", nil, &resp); err != nil {
		return nil, fmt.Errorf("list contact groups failed: %w", err)
	}
	return resp.ContactGroups, nil
}

// CreateContactGroup creates a user group
func (c *Client) CreateContactGroup(ctx context.Context, group *api.ContactGroup) (*api.ContactGroup, error) {
	var resp api.ContactGroup
	if err := c.doRequest(ctx, http.MethodPost, "/v1/contactGroups", group, &resp); err != nil {
		return nil, fmt.Errorf("create contact group failed: %w", err)
	}
	return &resp, nil
}

// UpdateContactGroup renames a user group
func (c *Client) UpdateContactGroup(ctx context.Context, group *api.ContactGroup) (*api.ContactGroup, error) {
	var resp api.ContactGroup
	if err := c.doRequest(ctx, http.MethodPut, resourcePath(group.ResourceName), group, &resp); err != nil {
		return nil, fmt.Errorf("update contact group %s failed: %w", group.ResourceName, err)
	}
	return &resp, nil
}

// DeleteContactGroup removes a user group
func (c *Client) DeleteContactGroup(ctx context.Context, resourceName string) error {
	if err := c.doRequest(ctx, http.MethodDelete, resourcePath(resourceName), nil, nil); err != nil {
		return fmt.Errorf("delete contact group %s failed: %w", resourceName, err)
	}
	return nil
}

func resourcePath(resourceName string) string {
	return "/v1/" + strings.TrimLeft(resourceName, "/")
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// statusError переводит код ответа в ошибку, сохраняя сообщение сервера
func statusError(status int, body []byte) error {
	message := strings.TrimSpace(string(body))
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		message = errResp.Message
	}

	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusPreconditionFailed:
		return fmt.Errorf("%w: %s", ErrPreconditionFailed, message)
	}

	if errResp.Message != "" {
		return fmt.Errorf("server error (%d): %s", status, message)
	}
	return fmt.Errorf("request failed with status %d: %s", status, message)
}
