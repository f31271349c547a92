// Package api implements the outbound HTTP layer over the AgriProxy
// backend: a thin client wrapper (base URL, timeout, bearer injection,
// 401-triggered session invalidation) and the gateway implementations
// built on top of it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"agriproxy/config"

	"github.com/pkg/errors"
)

// TokenStore holds the cached bearer token. The session store is the only
// writer; the client reads it on every request. Safe for concurrent use.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Set replaces the cached token.
func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear removes the cached token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Token returns the cached token, empty while anonymous.
func (s *TokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// envelope is the backend's uniform response body.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error,omitempty"`
	Token   string          `json:"token,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// reason returns the most specific human-readable failure text in the body.
func (e *envelope) reason() string {
	if e.Message != "" {
		return e.Message
	}

	return e.Error
}

// response pairs the HTTP status with the decoded envelope so gateways can
// map status codes to the domain error taxonomy per call site.
type response struct {
	Status   int
	Envelope envelope
}

// Client wraps outbound requests to the backend with the base URL, the
// configured timeout, bearer-token injection, and the 401 hook.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *TokenStore
	logger     *slog.Logger

	mu             sync.Mutex
	onUnauthorized func()
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, tokens *TokenStore, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
		tokens: tokens,
		logger: logger,
	}
}

// SetUnauthorizedHook registers the callback invoked whenever the backend
// rejects the cached token with 401. The session store uses it to tear
// down the local session.
func (c *Client) SetUnauthorizedHook(hook func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = hook
}

// BaseURL returns the configured API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// getJSON issues a GET request against the API path.
func (c *Client) getJSON(ctx context.Context, path string) (*response, error) {
	return c.do(ctx, http.MethodGet, path, nil, "")
}

// doJSON issues a request with a JSON body against the API path.
func (c *Client) doJSON(ctx context.Context, method, path string, body any) (*response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	return c.do(ctx, method, path, reader, "application/json")
}

// doMultipart issues a POST request with an already-assembled multipart body.
func (c *Client) doMultipart(ctx context.Context, path string, body io.Reader, contentType string) (*response, error) {
	return c.do(ctx, http.MethodPost, path, body, contentType)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and connection failures all surface as the network
		// being unavailable; no local state change may follow.
		c.logger.Warn("Request failed", slog.String("method", method), slog.String("path", path), slog.Any("error", err))

		return nil, errors.Wrap(err, "request failed")
	}
	defer res.Body.Close()

	out := &response{Status: res.StatusCode}
	if err := json.NewDecoder(res.Body).Decode(&out.Envelope); err != nil && !errors.Is(err, io.EOF) {
		// Non-JSON bodies (proxies, crashes) keep the status but carry
		// no message.
		c.logger.Debug("Undecodable response body", slog.String("path", path), slog.Any("error", err))
	}

	if res.StatusCode == http.StatusUnauthorized {
		c.notifyUnauthorized()
	}

	return out, nil
}

func (c *Client) notifyUnauthorized() {
	c.mu.Lock()
	hook := c.onUnauthorized
	c.mu.Unlock()

	if hook != nil {
		hook()
	}
}
