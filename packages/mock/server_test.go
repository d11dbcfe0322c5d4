package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getJSON(t *testing.T, url string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]any
	if len(body) > 0 && json.Valid(body) {
		require.NoError(t, json.Unmarshal(body, &payload))
	}
	return resp.StatusCode, payload
}

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	server, err := NewServer(opts...)
	require.NoError(t, err)

	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)
	return ts
}

func TestServer_Root(t *testing.T) {
	ts := newTestServer(t)

	status, payload := getJSON(t, ts.URL+"/")
	assert.Equal(t, 200, status)
	assert.Equal(t, "Hello World", payload["message"])
	assert.Equal(t, "ok", payload["status"])

	data := payload["data"].(map[string]any)
	assert.Equal(t, float64(42), data["value"])
}

func TestServer_Echo(t *testing.T) {
	ts := newTestServer(t)

	status, payload := getJSON(t, ts.URL+"/get?x=1")
	assert.Equal(t, 200, status)
	assert.Equal(t, "GET", payload["method"])

	args := payload["args"].(map[string]any)
	assert.Equal(t, "1", args["x"])
}

func TestServer_StatusRoute(t *testing.T) {
	ts := newTestServer(t)

	status, _ := getJSON(t, ts.URL+"/status/418")
	assert.Equal(t, 418, status)

	status, _ = getJSON(t, ts.URL+"/status/999")
	assert.Equal(t, 400, status)
}

func TestServer_UUIDRoute(t *testing.T) {
	ts := newTestServer(t)

	_, first := getJSON(t, ts.URL+"/uuid")
	_, second := getJSON(t, ts.URL+"/uuid")
	assert.NotEmpty(t, first["uuid"])
	assert.NotEqual(t, first["uuid"], second["uuid"])
}

func TestServer_NotFound(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/definitely/not/here")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 404, resp.StatusCode)
}

func TestServer_RequestIDHeader(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestServer_RoutesFile(t *testing.T) {
	routesYAML := `
- method: GET
  path: /users/{{id}}
  status: 200
  headers:
    X-Source: file
  body: '{"id": "{{id}}"}'
- method: GET
  path: /teapot
  status: 418
  body: '{"short": "stout"}'
`
	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(routesYAML), 0o644))

	ts := newTestServer(t, WithRoutesFile(path))

	resp, err := http.Get(ts.URL + "/users/42")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "file", resp.Header.Get("X-Source"))
	assert.JSONEq(t, `{"id": "42"}`, string(body))

	status, _ := getJSON(t, ts.URL+"/teapot")
	assert.Equal(t, 418, status)

	// Built-in routes are still there.
	status, _ = getJSON(t, ts.URL+"/")
	assert.Equal(t, 200, status)
}

func TestServer_RoutesFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":not yaml:["), 0o644))

	_, err := NewServer(WithRoutesFile(path))
	assert.Error(t, err)
}

func TestServer_RateLimit(t *testing.T) {
	ts := newTestServer(t, WithRateLimit(1))

	var limited bool
	for i := 0; i < 5; i++ {
		resp, err := http.Get(ts.URL + "/")
		require.NoError(t, err)
		resp.Body.Close()
		if resp.StatusCode == http.StatusTooManyRequests {
			limited = true
		}
	}
	assert.True(t, limited, "expected at least one rate limited response")
}

func TestLoadRoutesFile_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- path: /ping\n  body: pong\n"), 0o644))

	routes, err := LoadRoutesFile(path)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "GET", routes[0].Method)
}

func TestLoadRoutesFile_MissingPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- method: GET\n"), 0o644))

	_, err := LoadRoutesFile(path)
	assert.Error(t, err)
}
