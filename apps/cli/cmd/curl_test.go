package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abdul-hamid-achik/reqtools/packages/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool {
	return &b
}

func withConfig(t *testing.T, c *config.Config) {
	t.Helper()
	old := cfg
	cfg = c
	t.Cleanup(func() { cfg = old })
}

func runCurl(t *testing.T, args []string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetContext(context.Background())

	err := curlCommand(cmd, append([]string{"--no-color"}, args...))
	return buf.String(), err
}

func redirectServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/start":
			http.Redirect(w, r, "/middle", http.StatusFound)
		case "/middle":
			http.Redirect(w, r, "/final", http.StatusFound)
		default:
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("landed"))
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCurlCommand_NoFollowByDefault(t *testing.T) {
	withConfig(t, &config.Config{})
	server := redirectServer(t)

	out, err := runCurl(t, []string{server.URL + "/start"})

	require.NoError(t, err)
	assert.Contains(t, out, "Status: 302")
	assert.NotContains(t, out, "landed")
}

func TestCurlCommand_ConfigFollowRedirects(t *testing.T) {
	withConfig(t, &config.Config{FollowRedirects: boolPtr(true)})
	server := redirectServer(t)

	out, err := runCurl(t, []string{server.URL + "/start"})

	require.NoError(t, err)
	assert.Contains(t, out, "Status: 200")
	assert.Contains(t, out, "landed")
}

func TestCurlCommand_ConfigMaxRedirects(t *testing.T) {
	withConfig(t, &config.Config{
		FollowRedirects: boolPtr(true),
		MaxRedirects:    1,
	})
	server := redirectServer(t)

	out, err := runCurl(t, []string{server.URL + "/start"})

	// The single allowed hop is used up before /middle, so the chain stops
	// on a redirect instead of reaching /final.
	require.NoError(t, err)
	assert.Contains(t, out, "Status: 302")
	assert.NotContains(t, out, "landed")
}

func TestCurlCommand_LocationFlagOverridesConfig(t *testing.T) {
	withConfig(t, &config.Config{FollowRedirects: boolPtr(false)})
	server := redirectServer(t)

	out, err := runCurl(t, []string{"-L", server.URL + "/start"})

	require.NoError(t, err)
	assert.Contains(t, out, "Status: 200")
}

func TestCurlCommand_RepeatAllFailed(t *testing.T) {
	withConfig(t, &config.Config{})

	// Port 1 is never listening, so every repeat fails.
	_, err := runCurl(t, []string{"--repeat", "3", "http://127.0.0.1:1/"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 3 requests failed")
}
