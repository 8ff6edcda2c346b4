package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/dailywins/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the remote backend surface consumed by the client.
type ClientAPI interface {
	// Login exchanges credentials for an access token.
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// Insert creates an accomplishment with the client-assigned ID and
	// returns the canonical server-side record.
	Insert(ctx context.Context, token string, req api.InsertRequest) (*api.Accomplishment, error)

	// Update applies a partial update and returns the canonical record.
	Update(ctx context.Context, token, id string, req api.UpdateRequest) (*api.Accomplishment, error)

	// Delete removes an accomplishment. Deleting an already-deleted ID
	// succeeds, so queued deletes can be replayed safely.
	Delete(ctx context.Context, token, id string) error

	// QueryPage fetches one page of the user's accomplishments, newest
	// first, with a pagination-independent total count.
	QueryPage(ctx context.Context, token string, page, pageSize int) (*api.QueryPageResponse, error)

	// Health probes server reachability.
	Health(ctx context.Context) error
}

// Client is the HTTP client for the accomplishments backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects.
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Insert creates a new accomplishment on the server.
func (c *Client) Insert(ctx context.Context, token string, req api.InsertRequest) (*api.Accomplishment, error) {
	var resp api.Accomplishment
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/accomplishments", token, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("insert request failed: %w", err)
	}
	return &resp, nil
}

// Update applies a partial update to an existing accomplishment.
func (c *Client) Update(ctx context.Context, token, id string, req api.UpdateRequest) (*api.Accomplishment, error) {
	var resp api.Accomplishment
	path := "/api/v1/accomplishments/" + url.PathEscape(id)
	err := c.doRequest(ctx, http.MethodPatch, path, token, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("update request failed: %w", err)
	}
	return &resp, nil
}

// Delete removes an accomplishment. A 404 from the server is treated as
// success: the record is gone either way, and queued deletes may replay.
func (c *Client) Delete(ctx context.Context, token, id string) error {
	path := "/api/v1/accomplishments/" + url.PathEscape(id)
	err := c.doRequest(ctx, http.MethodDelete, path, token, nil, nil)
	if err != nil {
		if statusCodeOf(err) == http.StatusNotFound {
			return nil
		}
		return fmt.Errorf("delete request failed: %w", err)
	}
	return nil
}

// QueryPage fetches one page of accomplishments for the authenticated user.
func (c *Client) QueryPage(ctx context.Context, token string, page, pageSize int) (*api.QueryPageResponse, error) {
	var resp api.QueryPageResponse
	path := fmt.Sprintf("/api/v1/accomplishments?page=%d&page_size=%d", page, pageSize)
	err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("query page request failed: %w", err)
	}
	return &resp, nil
}

// Health probes server reachability via the unauthenticated health endpoint.
func (c *Client) Health(ctx context.Context) error {
	err := c.doRequest(ctx, http.MethodGet, "/health", "", nil, nil)
	if err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	return nil
}

// statusError carries the HTTP status of a non-2xx response.
type statusError struct {
	message    string
	statusCode int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.statusCode, e.message)
}

// statusCodeOf unwraps err looking for a statusError, returning 0 when
// the error did not originate from an HTTP status.
func statusCodeOf(err error) int {
	for err != nil {
		if se, ok := err.(*statusError); ok {
			return se.statusCode
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return 0
		}
		err = u.Unwrap()
	}
	return 0
}

// doRequest performs the HTTP request, setting the bearer token when one
// is given and decoding either the success payload or the error body.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
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
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return &statusError{statusCode: resp.StatusCode, message: errResp.Message}
		}
		return &statusError{statusCode: resp.StatusCode, message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
