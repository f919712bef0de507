// Package upstream is the authenticated client for the event REST API.
// Every outbound request carries the bearer token and locale header; every
// inbound 401 forces a logout before the error reaches the caller. That is
// the only mechanism by which a revoked or expired token is detected.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"festadmin/internal/apierr"
)

// SessionInfo is what the client needs from the session store.
type SessionInfo interface {
	Token() string
	Locale() string
}

// Client calls the upstream API.
type Client struct {
	base    string
	httpc   *http.Client
	session SessionInfo
	logger  *zap.Logger

	// onUnauthorized runs before a 401 is returned to the caller, so any
	// subsequent render sees the logged-out state.
	onUnauthorized func(ctx context.Context)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the transport, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithUnauthorizedHook sets the forced-logout callback.
func WithUnauthorizedHook(fn func(ctx context.Context)) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New builds a client against base (e.g. "http://localhost:8000/api/v1").
func New(base string, session SessionInfo, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		base:    strings.TrimRight(base, "/"),
		httpc:   http.DefaultClient,
		session: session,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorBody is the subset of the upstream error shape the dashboard uses.
// FastAPI-style endpoints answer {"detail": ...}, the auth endpoint
// {"message": ...}.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func (b errorBody) text() string {
	if b.Detail != "" {
		return b.Detail
	}
	return b.Message
}

// do performs one request and decodes a 2xx JSON body into out (out may be
// nil). Non-2xx responses come back as *apierr.Error; no retries.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return apierr.Transport(err)
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if locale := c.session.Locale(); locale != "" {
		req.Header.Set("Accept-Language", locale)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("upstream request failed",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return apierr.Transport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Forced logout happens before the caller sees the error.
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return apierr.New(resp.StatusCode, readErrorText(resp.Body))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apierr.New(resp.StatusCode, readErrorText(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apierr.Transport(fmt.Errorf("decode %s %s: %w", method, path, err))
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return apierr.Transport(err)
		}
		body = bytes.NewReader(raw)
	}
	return c.do(ctx, method, path, nil, body, "application/json", out)
}

func readErrorText(r io.Reader) string {
	var body errorBody
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	return body.text()
}
