package http

import (
	"fmt"
	"strconv"
	"strings"
)

// MalformedMessageError indicates a saved raw HTTP message is missing a
// mandatory part (status line, request line, or a parsable header).
type MalformedMessageError struct {
	Reason string
}

func (e *MalformedMessageError) Error() string {
	return fmt.Sprintf("malformed HTTP message: %s", e.Reason)
}

// ParseRawResponse parses a saved raw HTTP response, such as the output of
// `curl -i` or a proxy dump. Header order and duplicate names are preserved
// exactly as they appear in the input. The raw format carries no request URL,
// so Response.URL is left empty for the caller to fill in.
func ParseRawResponse(data []byte) (*Response, error) {
	statusLine, headers, body, err := splitRawMessage(data)
	if err != nil {
		return nil, err
	}

	// Status line: HTTP/1.1 200 OK
	parts := strings.SplitN(statusLine, " ", 3)
	if len(parts) < 2 || !strings.HasPrefix(parts[0], "HTTP/") {
		return nil, &MalformedMessageError{Reason: fmt.Sprintf("invalid status line %q", statusLine)}
	}

	code, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, &MalformedMessageError{Reason: fmt.Sprintf("invalid status code %q", parts[1])}
	}

	reason := ""
	if len(parts) == 3 {
		reason = strings.TrimSpace(parts[2])
	}

	return &Response{
		StatusCode: code,
		Reason:     reason,
		Headers:    headers,
		Body:       body,
	}, nil
}

// ParseRawRequest parses a saved raw HTTP request. A request line with a
// relative path is joined with the Host header to form a full URL.
func ParseRawRequest(data []byte) (*Request, error) {
	requestLine, headers, body, err := splitRawMessage(data)
	if err != nil {
		return nil, err
	}

	// Request line: GET /path HTTP/1.1
	parts := strings.Fields(requestLine)
	if len(parts) < 2 {
		return nil, &MalformedMessageError{Reason: fmt.Sprintf("invalid request line %q", requestLine)}
	}

	method := strings.ToUpper(parts[0])
	target := parts[1]

	url := target
	if strings.HasPrefix(target, "/") {
		host := headers.Get("Host")
		if host == "" {
			return nil, &MalformedMessageError{Reason: "relative request target without a Host header"}
		}
		url = "http://" + host + target
	}

	return &Request{
		Method:  method,
		URL:     url,
		Headers: headers,
		Body:    body,
	}, nil
}

// splitRawMessage separates the start line, ordered header block, and body.
// Only the head is normalized; body bytes pass through untouched.
func splitRawMessage(data []byte) (string, Headers, []byte, error) {
	text := string(data)

	head := text
	var body []byte
	if idx := strings.Index(text, "\r\n\r\n"); idx != -1 {
		head = text[:idx]
		body = []byte(text[idx+4:])
	} else if idx := strings.Index(text, "\n\n"); idx != -1 {
		head = text[:idx]
		body = []byte(text[idx+2:])
	}

	head = strings.ReplaceAll(head, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(head, "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return "", nil, nil, &MalformedMessageError{Reason: "missing start line"}
	}

	startLine := strings.TrimSpace(lines[0])

	var headers Headers
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kv := strings.SplitN(line, ":", 2)
		if len(kv) != 2 {
			return "", nil, nil, &MalformedMessageError{Reason: fmt.Sprintf("invalid header line %q", line)}
		}
		headers.Add(strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1]))
	}

	return startLine, headers, body, nil
}
