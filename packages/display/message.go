package display

import (
	"fmt"
	"unicode/utf8"

	"github.com/abdul-hamid-achik/reqtools/packages/http"
)

// HTTPMessage is the narrow view of a request or response that the formatter
// needs: exactly the fields that appear in the printed block. Adapters below
// build one at the boundary where the real client objects are received.
type HTTPMessage struct {
	Method     string
	URL        string
	Headers    http.Headers
	Body       []byte
	StatusCode int
	Reason     string
}

// IsResponse reports whether the message carries a status line. Requests
// leave StatusCode at zero.
func (m *HTTPMessage) IsResponse() bool {
	return m.StatusCode != 0
}

// FromResponse adapts a client response into a printable message.
func FromResponse(resp *http.Response) *HTTPMessage {
	return &HTTPMessage{
		Method:     "",
		URL:        resp.URL,
		Headers:    resp.Headers,
		Body:       resp.Body,
		StatusCode: resp.StatusCode,
		Reason:     resp.Reason,
	}
}

// FromRequest adapts a client request into a printable message. Bodies that
// are not valid UTF-8 are summarized rather than dumped raw.
func FromRequest(req *http.Request) *HTTPMessage {
	body := req.Body
	if len(body) > 0 && !utf8.Valid(body) {
		body = []byte(fmt.Sprintf("<binary data, %d bytes>", len(body)))
	}
	return &HTTPMessage{
		Method:  req.Method,
		URL:     req.URL,
		Headers: req.Headers,
		Body:    body,
	}
}
