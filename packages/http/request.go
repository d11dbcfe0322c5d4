package http

import (
	"encoding/base64"
	"unicode/utf8"
)

// Request is an outgoing HTTP request, or an incoming one parsed from a saved
// raw message.
type Request struct {
	Method  string
	URL     string
	Headers Headers
	Body    []byte
}

func NewRequest(method, requestURL string) *Request {
	return &Request{
		Method: method,
		URL:    requestURL,
	}
}

// SetHeader replaces any existing header with the same name.
func (r *Request) SetHeader(key, value string) *Request {
	r.Headers.Set(key, value)
	return r
}

// AddHeader appends a header without touching existing entries.
func (r *Request) AddHeader(key, value string) *Request {
	r.Headers.Add(key, value)
	return r
}

func (r *Request) SetBody(body string) *Request {
	r.Body = []byte(body)
	return r
}

// SetBasicAuth sets the Authorization header from a username and password.
func (r *Request) SetBasicAuth(username, password string) *Request {
	creds := username + ":" + password
	encoded := base64.StdEncoding.EncodeToString([]byte(creds))
	r.Headers.Set("Authorization", "Basic "+encoded)
	return r
}

func (r *Request) Header(key string) string {
	return r.Headers.Get(key)
}

func (r *Request) BodyString() string {
	return string(r.Body)
}

// HasTextBody reports whether the body is valid UTF-8 and safe to print as-is.
func (r *Request) HasTextBody() bool {
	return utf8.Valid(r.Body)
}
