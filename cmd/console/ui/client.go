package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"edurev/backend/app/dto"
)

// APIError carries the message the backend put in its JSON envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed (%d)", e.Status)
	}
	return e.Message
}

// DefaultTimeout covers the slowest call, a chapter summary, which the backend
// allows two minutes by default.
const DefaultTimeout = 5 * time.Minute

// Client talks to the edurev HTTP API and remembers the session token issued at login.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	mu    sync.Mutex
	token string
	user  dto.Identity
}

func NewClient(baseURL string) *Client {
	return NewClientWithTimeout(baseURL, DefaultTimeout)
}

func NewClientWithTimeout(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) User() dto.Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var env dto.Response
		_ = json.NewDecoder(resp.Body).Decode(&env)
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) Signup(ctx context.Context, req dto.SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/api/signup", req, nil)
}

func (c *Client) Login(ctx context.Context, email, password string) (dto.Identity, error) {
	var resp dto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", dto.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return dto.Identity{}, err
	}
	c.mu.Lock()
	c.token, c.user = resp.Token, resp.User
	c.mu.Unlock()
	return resp.User, nil
}

func (c *Client) GetUser(ctx context.Context, id uint) (dto.Identity, error) {
	var resp dto.UserResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, &resp); err != nil {
		return dto.Identity{}, err
	}
	return resp.User, nil
}

func (c *Client) UpdateProfile(ctx context.Context, id uint, req dto.UpdateUserRequest) (string, error) {
	var resp dto.Response
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) Chapters(ctx context.Context) ([]dto.ChapterRef, error) {
	var resp dto.ChaptersResponse
	if err := c.do(ctx, http.MethodGet, "/api/summarize/chapters", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Chapters, nil
}

func (c *Client) Summarize(ctx context.Context, chapter string) (string, error) {
	var resp dto.SummarizeResponse
	if err := c.do(ctx, http.MethodPost, "/api/summarize", dto.SummarizeRequest{Chapter: dto.ChapterID(chapter)}, &resp); err != nil {
		return "", err
	}
	return resp.Summary, nil
}

// Logout revokes the session server side and forgets it locally.
func (c *Client) Logout(ctx context.Context) error {
	if c.Token() == "" {
		return nil
	}
	err := c.do(ctx, http.MethodPost, "/api/logout", nil, nil)
	c.mu.Lock()
	c.token, c.user = "", dto.Identity{}
	c.mu.Unlock()
	return err
}
