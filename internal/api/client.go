// Package api is the HTTP client for the tournament server's admin surface.
// Responses use the server's standard envelope; error envelopes carry the
// server message verbatim, which the console shows without interpretation.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/courtsidehq/courtside/internal/models"
)

// requestTimeout bounds every admin API call.
const requestTimeout = 15 * time.Second

// Client talks to the admin API with bearer-token auth.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client for the given base URL. token may be empty before
// login.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// SetToken replaces the bearer token after login or refresh.
func (c *Client) SetToken(token string) {
	c.token = token
}

// envelope is the server's standard response wrapper.
type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error *errorPayload   `json:"error,omitempty"`
}

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIError is a server-reported failure. Message is the server's text,
// passed through untouched for display.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// do performs a request and decodes the envelope data into out (when
// non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	slog.Debug("admin api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}

	if !env.OK || resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s %s: decode data: %w", method, path, err)
		}
	}
	return nil
}

// LoginResult is the payload of a successful login.
type LoginResult struct {
	Access  string   `json:"access"`
	Refresh string   `json:"refresh"`
	Email   string   `json:"email"`
	Name    string   `json:"name"`
	Groups  []string `json:"groups"`
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/admin/login", map[string]string{
		"username": email,
		"password": password,
	}, &result)
	if err != nil {
		return nil, err
	}
	c.token = result.Access
	return &result, nil
}

// Refresh exchanges a refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/admin/refresh", map[string]string{
		"refresh": refreshToken,
	}, &result)
	if err != nil {
		return nil, err
	}
	c.token = result.Access
	return &result, nil
}

// ListTournaments returns all tournaments visible to the admin.
func (c *Client) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	var out []models.Tournament
	if err := c.do(ctx, http.MethodGet, "/admin/tournaments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteTournament removes a tournament.
func (c *Client) DeleteTournament(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/tournaments/"+id, nil, nil)
}

// ListPlayers returns the players of a tournament.
func (c *Client) ListPlayers(ctx context.Context, tournamentID string) ([]models.Player, error) {
	var out []models.Player
	if err := c.do(ctx, http.MethodGet, "/admin/tournaments/"+tournamentID+"/players", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListUsers returns the admin accounts.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser creates an admin account from raw form values.
func (c *Client) CreateUser(ctx context.Context, fields map[string]string) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPost, "/admin/users", fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser updates an admin account from raw form values.
func (c *Client) UpdateUser(ctx context.Context, id string, fields map[string]string) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPut, "/admin/users/"+id, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes an admin account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+id, nil, nil)
}

// Dashboard aggregates the landing-screen data in one call site. The three
// lists are fetched concurrently; the first failure wins.
type Dashboard struct {
	Tournaments []models.Tournament
	Users       []models.User
	Active      int
}

// FetchDashboard loads the dashboard lists in parallel.
func (c *Client) FetchDashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ts, err := c.ListTournaments(ctx)
		if err != nil {
			return err
		}
		d.Tournaments = ts
		for _, t := range ts {
			if t.Status == models.TournamentActive {
				d.Active++
			}
		}
		return nil
	})
	g.Go(func() error {
		us, err := c.ListUsers(ctx)
		if err != nil {
			return err
		}
		d.Users = us
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}
