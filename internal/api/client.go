// Package api is the typed HTTP client for the Tara REST backend.
//
// The client wraps every endpoint the application uses behind a method with
// request and response structs from the models package. It attaches the
// bearer credential from its TokenSource to every request that has one, and
// decodes non-2xx responses into *Error. It performs no retries and no
// caching; both belong to the layers above.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 15 * time.Second

// TokenSource yields the current bearer credential, or "" when no session
// is established. The session store is the only writer.
type TokenSource interface {
	Token() string
}

// Client issues requests against a single Tara backend.
type Client struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a client for the backend at baseURL (without the /api
// suffix). tokens may be nil for a client that only calls the auth
// endpoints.
func NewClient(baseURL string, tokens TokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logger,
	}
}

// SetHTTPClient replaces the underlying HTTP client, mainly so tests and
// callers with custom timeout policy can inject their own.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.http = hc
}

// do issues one JSON request and decodes the response into out (ignored when
// out is nil). Non-2xx responses become *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	requestID := uuid.New().String()
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"error", err,
		)
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response for %s %s: %w", method, path, err)
	}
	return nil
}

// decodeError reads a non-2xx body of the form {message, errors:{field:[..]}}.
// A body that is not JSON still yields an *Error carrying the status.
func decodeError(resp *http.Response) error {
	var payload struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	// Best effort: malformed bodies leave the fields empty.
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&payload)

	return &Error{
		Status:  resp.StatusCode,
		Message: payload.Message,
		Fields:  payload.Errors,
	}
}
