package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// DefaultBaseURL points at a local development server.
const DefaultBaseURL = "http://localhost:8080/api"

// Client is a typed HTTP client for the portfolio API. When a credential
// store is attached, its token is sent on every request and refreshed by
// Login/Register.
type Client struct {
	baseURL string
	http    *http.Client
	creds   *CredentialStore
}

// New creates a client. baseURL falls back to DefaultBaseURL; creds may be
// nil for anonymous use.
func New(baseURL string, creds *CredentialStore) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		creds:   creds,
	}
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.creds != nil && c.creds.Token() != "" {
		req.Header.Set("Authorization", "Bearer "+c.creds.Token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("api error (status %d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("api error: status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Projects returns the public listing.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var out []Project
	err := c.do(ctx, http.MethodGet, "/projects", nil, &out)
	return out, err
}

// Project returns a single visible project.
func (c *Client) Project(ctx context.Context, id int64) (*Project, error) {
	var out Project
	err := c.do(ctx, http.MethodGet, "/projects/"+strconv.FormatInt(id, 10), nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminProjects returns every project, hidden ones included.
func (c *Client) AdminProjects(ctx context.Context) ([]Project, error) {
	var out []Project
	err := c.do(ctx, http.MethodGet, "/projects/admin/all", nil, &out)
	return out, err
}

// CreateProject creates a new project.
func (c *Client) CreateProject(ctx context.Context, draft ProjectDraft) (*Project, error) {
	var out Project
	err := c.do(ctx, http.MethodPost, "/projects", draft, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProject applies a partial update.
func (c *Client) UpdateProject(ctx context.Context, id int64, draft ProjectDraft) (*Project, error) {
	var out Project
	err := c.do(ctx, http.MethodPut, "/projects/"+strconv.FormatInt(id, 10), draft, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+strconv.FormatInt(id, 10), nil, nil)
}

// SubmitContact sends a contact-form submission and returns its id.
func (c *Client) SubmitContact(ctx context.Context, name, email, message string) (int64, error) {
	var out struct {
		ID int64 `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, "/contact", map[string]string{
		"name":    name,
		"email":   email,
		"message": message,
	}, &out)
	return out.ID, err
}

// Contacts lists stored submissions (admin only).
func (c *Client) Contacts(ctx context.Context) ([]Contact, error) {
	var out []Contact
	err := c.do(ctx, http.MethodGet, "/contact", nil, &out)
	return out, err
}

// Login authenticates and, when a store is attached, persists the session.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	if c.creds != nil {
		if err := c.creds.Save(out.Token, &out.User); err != nil {
			return nil, fmt.Errorf("persist credentials: %w", err)
		}
	}
	return &out, nil
}

// Register creates an account and persists the session like Login.
func (c *Client) Register(ctx context.Context, email, password string, name *string) (*AuthResponse, error) {
	body := map[string]interface{}{"email": email, "password": password}
	if name != nil {
		body["name"] = *name
	}

	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &out); err != nil {
		return nil, err
	}
	if c.creds != nil {
		if err := c.creds.Save(out.Token, &out.User); err != nil {
			return nil, fmt.Errorf("persist credentials: %w", err)
		}
	}
	return &out, nil
}

// Logout clears the persisted session.
func (c *Client) Logout() error {
	if c.creds == nil {
		return nil
	}
	return c.creds.Clear()
}
