package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

// newTestClient spins up a backend double that records the last request and
// replies with the given status and body.
func newTestClient(t *testing.T, status int, contentType, body string, cfg Config) (*Client, *recordedRequest) {
	t.Helper()

	last := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		*last = recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   string(data),
		}
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	cfg.BaseURL = srv.URL + "/api/"
	return NewClient(cfg), last
}

func TestGetJoinsPathAndSerializesQuery(t *testing.T) {
	c, last := newTestClient(t, http.StatusOK, "application/json", `{"ok":true}`, Config{})

	// Leading slash optional; nil query values omitted.
	res, err := c.Get(context.Background(), "plans", &CallOptions{
		Query: map[string]any{"page": 2, "q": "basic", "skip": nil},
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/plans", last.Path)
	assert.Contains(t, last.Query, "page=2")
	assert.Contains(t, last.Query, "q=basic")
	assert.NotContains(t, last.Query, "skip")

	body, ok := res.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, body["ok"])
}

func TestDefaultHeadersAndOverrides(t *testing.T) {
	c, last := newTestClient(t, http.StatusOK, "application/json", `{}`, Config{
		DefaultHeaders: map[string]string{"X-Client": "hometrack-admin"},
	})

	_, err := c.Get(context.Background(), "/plans", &CallOptions{
		Headers: map[string]string{"Accept": "text/plain"},
	})
	require.NoError(t, err)

	assert.Equal(t, "text/plain", last.Header.Get("Accept"))
	assert.Equal(t, "application/json", last.Header.Get("Content-Type"))
	assert.Equal(t, "hometrack-admin", last.Header.Get("X-Client"))
}

func TestAuthPrecedence(t *testing.T) {
	source := func(ctx context.Context) (string, error) { return "from-source", nil }

	t.Run("static token wins", func(t *testing.T) {
		c, last := newTestClient(t, http.StatusOK, "application/json", `{}`, Config{TokenSource: source})
		c.SetStaticToken("static-1")

		_, err := c.Get(ContextWithToken(context.Background(), "from-ctx"), "/orders", nil)
		require.NoError(t, err)
		assert.Equal(t, "Bearer static-1", last.Header.Get("Authorization"))
	})

	t.Run("token source next", func(t *testing.T) {
		c, last := newTestClient(t, http.StatusOK, "application/json", `{}`, Config{TokenSource: source})

		_, err := c.Get(ContextWithToken(context.Background(), "from-ctx"), "/orders", nil)
		require.NoError(t, err)
		assert.Equal(t, "Bearer from-source", last.Header.Get("Authorization"))
	})

	t.Run("context fallback", func(t *testing.T) {
		c, last := newTestClient(t, http.StatusOK, "application/json", `{}`, Config{})

		_, err := c.Get(ContextWithToken(context.Background(), "from-ctx"), "/orders", nil)
		require.NoError(t, err)
		assert.Equal(t, "Bearer from-ctx", last.Header.Get("Authorization"))
	})

	t.Run("caller Authorization untouched", func(t *testing.T) {
		c, last := newTestClient(t, http.StatusOK, "application/json", `{}`, Config{TokenSource: source})
		c.SetStaticToken("static-1")

		_, err := c.Get(context.Background(), "/orders", &CallOptions{
			Headers: map[string]string{"Authorization": "Basic abc"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Basic abc", last.Header.Get("Authorization"))
	})

	t.Run("clearing static re-enables fallbacks", func(t *testing.T) {
		c, last := newTestClient(t, http.StatusOK, "application/json", `{}`, Config{})
		c.SetStaticToken("static-1")
		c.SetStaticToken("")

		_, err := c.Get(ContextWithToken(context.Background(), "from-ctx"), "/orders", nil)
		require.NoError(t, err)
		assert.Equal(t, "Bearer from-ctx", last.Header.Get("Authorization"))
	})
}

func TestPostMarshalsJSONBody(t *testing.T) {
	c, last := newTestClient(t, http.StatusOK, "application/json", `{}`, Config{})

	_, err := c.Post(context.Background(), "/plans", &CallOptions{
		Body: map[string]any{"code": "basic"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"basic"}`, last.Body)
}

func TestPostRawBodiesPassThrough(t *testing.T) {
	c, last := newTestClient(t, http.StatusOK, "application/json", `{}`, Config{})

	_, err := c.Post(context.Background(), "/plans", &CallOptions{Body: []byte("raw-bytes")})
	require.NoError(t, err)
	assert.Equal(t, "raw-bytes", last.Body)

	_, err = c.Post(context.Background(), "/plans", &CallOptions{Body: "raw-string"})
	require.NoError(t, err)
	assert.Equal(t, "raw-string", last.Body)
}

func TestNoContentReturnsNil(t *testing.T) {
	c, _ := newTestClient(t, http.StatusNoContent, "", "", Config{})

	res, err := c.Delete(context.Background(), "/plans/p-1", nil)
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestNonJSONBodyReturnsRawString(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, "text/plain", "pong", Config{})

	res, err := c.Get(context.Background(), "/ping", nil)
	require.NoError(t, err)
	assert.Equal(t, "pong", res)
}

func TestErrorMessageResolution(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantMsg     string
	}{
		{"error field wins", "application/json", `{"error":"Bad creds","message":"nope"}`, "Bad creds"},
		{"message field next", "application/json", `{"message":"nope"}`, "nope"},
		{"generic fallback", "application/json", `{"detail":"x"}`, "Request failed with status 422"},
		{"non-json body", "text/plain", "boom", "Request failed with status 422"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.StatusUnprocessableEntity, tt.contentType, tt.body, Config{})

			_, err := c.Post(context.Background(), "/auth/login", nil)
			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestNonJSONErrorPayloadWrapped(t *testing.T) {
	c, _ := newTestClient(t, http.StatusBadGateway, "text/html", "<html>down</html>", Config{})

	_, err := c.Get(context.Background(), "/orders", nil)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	payload, ok := apiErr.Payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "<html>down</html>", payload["raw"])
}

func TestTimeoutCollapsesToStatusZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{BaseURL: srv.URL})

	_, err := c.Get(context.Background(), "/slow", &CallOptions{Timeout: 20 * time.Millisecond})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, "Request timeout/aborted", apiErr.Message)
}

func TestCallerCancelLooksLikeTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{BaseURL: srv.URL})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := c.Get(ctx, "/slow", nil)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, "Request timeout/aborted", apiErr.Message)
}

func TestNetworkFailureIsStatusZero(t *testing.T) {
	// Point at a closed server.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})

	_, err := c.Get(context.Background(), "/orders", nil)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.NotEmpty(t, apiErr.Message)
}

func TestIsStatus(t *testing.T) {
	err := NewError(http.StatusNotFound, "missing", nil)
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.False(t, IsStatus(err, http.StatusUnauthorized))
	assert.False(t, IsStatus(errors.New("plain"), http.StatusNotFound))
}
