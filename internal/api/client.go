package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// DefaultTimeout bounds a call when neither the config nor the call options
// override it.
const DefaultTimeout = 15 * time.Second

// TokenSource supplies a bearer token for outbound calls. Returning an empty
// token (with a nil error) means "no credential available"; the client then
// falls back to a token carried in the request context.
type TokenSource func(ctx context.Context) (string, error)

// Config holds the explicit configuration for a Client. There is no package
// level default client; callers construct one and pass it where needed.
type Config struct {
	// BaseURL is the backend root, e.g. "https://hometrack.mlhr.org/api".
	// Trailing slashes are trimmed.
	BaseURL string

	// Timeout is the default per-call deadline. Zero means DefaultTimeout.
	Timeout time.Duration

	// DefaultHeaders are merged over the built-in defaults
	// (Accept/Content-Type: application/json).
	DefaultHeaders map[string]string

	// TokenSource supplies bearer tokens when no static token is set.
	TokenSource TokenSource

	// HTTPClient overrides the underlying transport. The client never relies
	// on its Timeout field; deadlines are enforced per call via context.
	HTTPClient *http.Client

	Logger *slog.Logger
}

// Client issues requests against the HomeTrack backend. It is safe for
// concurrent use; the only mutable state is the static token cache the
// session store keeps in sync.
type Client struct {
	baseURL  string
	timeout  time.Duration
	defaults map[string]string
	tokens   TokenSource
	httpc    *http.Client
	logger   *slog.Logger

	mu          sync.RWMutex
	staticToken string
}

// NewClient constructs a Client from Config.
func NewClient(cfg Config) *Client {
	defaults := map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
	}
	for k, v := range cfg.DefaultHeaders {
		defaults[k] = v
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpc := cfg.HTTPClient
	if httpc == nil {
		httpc = &http.Client{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		timeout:  timeout,
		defaults: defaults,
		tokens:   cfg.TokenSource,
		httpc:    httpc,
		logger:   logger,
	}
}

// SetStaticToken caches a credential that takes precedence over the
// configured TokenSource. An empty token clears the cache, re-enabling the
// TokenSource and context fallbacks. The session store calls this on every
// sign-in/sign-out transition.
func (c *Client) SetStaticToken(token string) {
	c.mu.Lock()
	c.staticToken = token
	c.mu.Unlock()
}

// CallOptions customize a single call. The zero value (or nil) is valid.
type CallOptions struct {
	// Query parameters; entries with nil values are omitted, everything else
	// is stringified.
	Query map[string]any

	// Headers override the client defaults for this call. A caller-supplied
	// Authorization header is never overwritten by the token pipeline.
	Headers map[string]string

	// Body is sent for non-GET calls. When the effective Content-Type is
	// JSON, plain values are marshaled; []byte, string, and io.Reader pass
	// through unmodified.
	Body any

	// Timeout overrides the client default for this call.
	Timeout time.Duration
}

// Get issues a GET request. The parsed response body is returned as decoded
// JSON (any), a raw string for non-JSON bodies, or nil for empty/204 bodies.
func (c *Client) Get(ctx context.Context, path string, opts *CallOptions) (any, error) {
	return c.do(ctx, http.MethodGet, path, opts)
}

// Post issues a POST request.
func (c *Client) Post(ctx context.Context, path string, opts *CallOptions) (any, error) {
	return c.do(ctx, http.MethodPost, path, opts)
}

// Put issues a PUT request.
func (c *Client) Put(ctx context.Context, path string, opts *CallOptions) (any, error) {
	return c.do(ctx, http.MethodPut, path, opts)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts *CallOptions) (any, error) {
	return c.do(ctx, http.MethodDelete, path, opts)
}

func (c *Client) do(ctx context.Context, method, path string, opts *CallOptions) (any, error) {
	if opts == nil {
		opts = &CallOptions{}
	}

	target, err := c.buildURL(path, opts.Query)
	if err != nil {
		return nil, NewError(0, err.Error(), nil)
	}

	headers := c.mergeHeaders(opts.Headers)
	c.attachAuth(ctx, headers)

	body, err := encodeBody(method, headers.Get("Content-Type"), opts.Body)
	if err != nil {
		return nil, NewError(0, err.Error(), nil)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, method, target, body)
	if err != nil {
		return nil, NewError(0, err.Error(), nil)
	}
	req.Header = headers

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, transportError(callCtx, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read side only

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(callCtx, err)
	}

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")
	parsed := parseBody(string(text), isJSON)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		payload := parsed
		if !isJSON {
			payload = map[string]any{"raw": string(text)}
		}
		return nil, NewError(resp.StatusCode, errorMessageFromPayload(parsed, resp.StatusCode), payload)
	}

	if resp.StatusCode == http.StatusNoContent || len(text) == 0 {
		return nil, nil
	}
	return parsed, nil
}

// buildURL joins the base URL with the endpoint path (leading slash optional)
// and serializes the query map, skipping nil values.
func (c *Client) buildURL(path string, query map[string]any) (string, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", path, err)
	}
	if len(query) > 0 {
		q := u.Query()
		for k, v := range query {
			if v == nil {
				continue
			}
			q.Set(k, fmt.Sprint(v))
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func (c *Client) mergeHeaders(extra map[string]string) http.Header {
	h := make(http.Header, len(c.defaults)+len(extra))
	for k, v := range c.defaults {
		h.Set(k, v)
	}
	for k, v := range extra {
		if v == "" {
			continue
		}
		h.Set(k, v)
	}
	return h
}

// attachAuth adds "Authorization: Bearer <token>" unless the caller already
// supplied one. Resolution order: static token, configured TokenSource, token
// carried in the request context (the request-scoped analog of the browser
// cookie fallback).
func (c *Client) attachAuth(ctx context.Context, h http.Header) {
	if h.Get("Authorization") != "" {
		return
	}

	c.mu.RLock()
	token := c.staticToken
	c.mu.RUnlock()

	if token == "" && c.tokens != nil {
		t, err := c.tokens(ctx)
		if err != nil {
			c.logger.Warn("token source failed", "error", err)
		} else {
			token = t
		}
	}
	if token == "" {
		token = TokenFromContext(ctx)
	}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
}

// encodeBody prepares the request body. GET requests never carry one. When
// the effective Content-Type is JSON and the body is a plain value it is
// marshaled; raw []byte, string, and io.Reader payloads pass through.
func encodeBody(method, contentType string, body any) (io.Reader, error) {
	if method == http.MethodGet || body == nil {
		return nil, nil
	}

	switch b := body.(type) {
	case io.Reader:
		return b, nil
	case []byte:
		return bytes.NewReader(b), nil
	case string:
		return strings.NewReader(b), nil
	}

	if strings.Contains(strings.ToLower(contentType), "application/json") {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		return bytes.NewReader(data), nil
	}

	return nil, fmt.Errorf("unsupported body type %T for content type %q", body, contentType)
}

// parseBody converts the response text into the value handed to callers:
// nil for empty bodies, decoded JSON for JSON responses (falling back to a
// {"raw": text} wrapper when the body does not actually parse), and the raw
// string otherwise.
func parseBody(text string, isJSON bool) any {
	if text == "" {
		return nil
	}
	if !isJSON {
		return text
	}
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return map[string]any{"raw": text}
	}
	return v
}

// transportError normalizes transport-level failures to the typed error.
// Timeouts and cancellation, ours or the caller's, collapse into one
// status-0 shape; callers cannot distinguish the two.
func transportError(ctx context.Context, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return NewError(0, "Request timeout/aborted", nil)
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if msg := err.Error(); msg != "" {
		return NewError(0, msg, nil)
	}
	return NewError(0, "Network error", nil)
}

// tokenKey carries a request-scoped bearer token through context.
type tokenKey struct{}

// ContextWithToken returns a child context carrying the given bearer token.
// The gateway's auth middleware uses this to scope each operator's backend
// credential to their own request.
func ContextWithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the bearer token carried by ctx, if any.
func TokenFromContext(ctx context.Context) string {
	if t, ok := ctx.Value(tokenKey{}).(string); ok {
		return t
	}
	return ""
}
