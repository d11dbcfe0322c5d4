package http

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRawResponse(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\n" +
		"Content-Type: application/json\r\n" +
		"Set-Cookie: a=1\r\n" +
		"Set-Cookie: b=2\r\n" +
		"\r\n" +
		`{"a":1}`

	resp, err := ParseRawResponse([]byte(raw))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "OK", resp.Reason)
	assert.Equal(t, Headers{
		{Name: "Content-Type", Value: "application/json"},
		{Name: "Set-Cookie", Value: "a=1"},
		{Name: "Set-Cookie", Value: "b=2"},
	}, resp.Headers)
	assert.Equal(t, `{"a":1}`, resp.BodyString())
}

func TestParseRawResponse_NoReason(t *testing.T) {
	resp, err := ParseRawResponse([]byte("HTTP/1.1 204\n\n"))

	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
	assert.Equal(t, "", resp.Reason)
	assert.Empty(t, resp.Body)
}

func TestParseRawResponse_NoBody(t *testing.T) {
	resp, err := ParseRawResponse([]byte("HTTP/1.1 404 Not Found\nContent-Length: 0\n"))

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "Not Found", resp.Reason)
	assert.Empty(t, resp.Body)
}

func TestParseRawResponse_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":            "",
		"not a status":     "hello world\n\n",
		"bad code":         "HTTP/1.1 abc OK\n\n",
		"bad header line":  "HTTP/1.1 200 OK\nNoColonHere\n\n",
		"missing protocol": "200 OK\n\n",
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRawResponse([]byte(raw))
			require.Error(t, err)

			var malformed *MalformedMessageError
			assert.True(t, errors.As(err, &malformed))
		})
	}
}

func TestParseRawRequest(t *testing.T) {
	raw := "POST /api/users HTTP/1.1\n" +
		"Host: example.com\n" +
		"Content-Type: application/json\n" +
		"\n" +
		`{"name":"ok"}`

	req, err := ParseRawRequest([]byte(raw))

	require.NoError(t, err)
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "http://example.com/api/users", req.URL)
	assert.Equal(t, "application/json", req.Header("Content-Type"))
	assert.Equal(t, `{"name":"ok"}`, req.BodyString())
}

func TestParseRawRequest_AbsoluteTarget(t *testing.T) {
	req, err := ParseRawRequest([]byte("GET https://example.com/x HTTP/1.1\n\n"))

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/x", req.URL)
}

func TestParseRawRequest_MissingHost(t *testing.T) {
	_, err := ParseRawRequest([]byte("GET /x HTTP/1.1\nAccept: */*\n\n"))

	require.Error(t, err)
	var malformed *MalformedMessageError
	assert.True(t, errors.As(err, &malformed))
	assert.Contains(t, err.Error(), "Host")
}
