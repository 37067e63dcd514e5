// Package api is a thin HTTP client for the auth service endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/JoshuaSkootsky/roll-own-auth/internal/common"
)

// AuthResult mirrors the server's register/login response body.
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// Identity mirrors the server's /api/me response body.
type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Client talks to a running auth server over HTTP.
type Client struct {
	base string
	http *http.Client
}

func NewClient(base string) *Client {
	return &Client{base: base, http: &http.Client{Timeout: 30 * time.Second}}
}

// Register creates a new account. A failed registration (duplicate username)
// is a normal AuthResult, not an error.
func (c *Client) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	return c.postCredentials(ctx, "/api/register", username, password)
}

// Login verifies credentials and returns the issued bearer token on success.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	return c.postCredentials(ctx, "/api/login", username, password)
}

// Me fetches the identity behind a bearer token. An invalid or expired token
// yields common.ErrorUnauthorized.
func (c *Client) Me(ctx context.Context, token string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, common.ErrorUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	identity := &Identity{}
	if err := json.NewDecoder(resp.Body).Decode(identity); err != nil {
		return nil, err
	}
	return identity, nil
}

func (c *Client) postCredentials(ctx context.Context, path, username, password string) (*AuthResult, error) {
	body, err := json.Marshal(credentials{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("server error: %s", resp.Status)
	}

	result := &AuthResult{}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, err
	}
	return result, nil
}
