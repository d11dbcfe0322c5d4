package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/abdul-hamid-achik/reqtools/packages/http"
	"github.com/fatih/color"
)

const (
	// DefaultMaxBodyLength is where non-JSON bodies get truncated.
	DefaultMaxBodyLength = 2000

	// EmptyBodyPlaceholder is printed when a message has no body.
	EmptyBodyPlaceholder = "  <empty>"

	lineWidth = 80
)

type Formatter struct {
	writer        io.Writer
	noColor       bool
	maxBodyLength int
}

type Option func(*Formatter)

func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		writer:        os.Stdout,
		maxBodyLength: DefaultMaxBodyLength,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) Option {
	return func(f *Formatter) {
		f.writer = w
	}
}

func WithNoColor(nc bool) Option {
	return func(f *Formatter) {
		f.noColor = nc
	}
}

// WithMaxBodyLength overrides where non-JSON bodies are truncated. Zero or
// negative keeps the default.
func WithMaxBodyLength(n int) Option {
	return func(f *Formatter) {
		if n > 0 {
			f.maxBodyLength = n
		}
	}
}

// PrintResponse writes the formatted block for a response and returns the
// response untouched, so callers can keep chaining off the same value.
func (f *Formatter) PrintResponse(resp *http.Response) *http.Response {
	f.Print(FromResponse(resp))
	return resp
}

// PrintRequest writes the formatted block for a request and returns the
// request untouched.
func (f *Formatter) PrintRequest(req *http.Request) *http.Request {
	f.Print(FromRequest(req))
	return req
}

// Print writes the fixed-layout block for a message and returns the same
// message value.
func (f *Formatter) Print(msg *HTTPMessage) *HTTPMessage {
	delim := strings.Repeat("=", lineWidth)
	sep := strings.Repeat("-", lineWidth)

	fmt.Fprintln(f.writer, delim)

	if msg.IsResponse() {
		fmt.Fprintf(f.writer, "Status: %s\n", f.statusText(msg.StatusCode, msg.Reason))
	} else {
		fmt.Fprintf(f.writer, "Method: %s\n", msg.Method)
	}

	fmt.Fprintf(f.writer, "URL:    %s\n", msg.URL)
	fmt.Fprintln(f.writer, sep)

	fmt.Fprintln(f.writer, "Headers:")
	for _, h := range msg.Headers {
		fmt.Fprintf(f.writer, "  %s: %s\n", h.Name, h.Value)
	}
	fmt.Fprintln(f.writer, sep)

	fmt.Fprintln(f.writer, "Body:")
	f.printBody(msg)

	fmt.Fprintln(f.writer, delim)

	return msg
}

func (f *Formatter) statusText(code int, reason string) string {
	text := fmt.Sprintf("%d %s", code, reason)
	switch {
	case code >= 500:
		return color.New(color.FgRed).Sprint(text)
	case code >= 400:
		return color.New(color.FgYellow).Sprint(text)
	case code >= 200 && code < 300:
		return color.New(color.FgGreen).Sprint(text)
	default:
		return text
	}
}

func (f *Formatter) printBody(msg *HTTPMessage) {
	if len(msg.Body) == 0 {
		fmt.Fprintln(f.writer, EmptyBodyPlaceholder)
		return
	}

	if !utf8.Valid(msg.Body) {
		fmt.Fprintf(f.writer, "<binary data, %d bytes>\n", len(msg.Body))
		return
	}

	contentType := msg.Headers.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, msg.Body, "", "  "); err == nil {
			fmt.Fprintln(f.writer, pretty.String())
			return
		}
		// Fall through for bodies that claim JSON but aren't.
	}

	f.printTruncated(string(msg.Body))
}

func (f *Formatter) printTruncated(body string) {
	if f.maxBodyLength > 0 && len(body) > f.maxBodyLength {
		// Back up to a rune boundary so the cut never splits a
		// multi-byte character.
		cut := f.maxBodyLength
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		fmt.Fprintln(f.writer, body[:cut]+"\n... [truncated]")
		return
	}
	fmt.Fprintln(f.writer, body)
}
