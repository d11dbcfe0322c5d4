package http

import "strings"

// Header is a single header name/value pair.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered list of headers. Unlike net/http's map-based Header,
// it keeps headers in the order they were added and never deduplicates, so a
// message renders exactly as it arrived on the wire.
type Headers []Header

// Get returns the value of the first header matching name (case-insensitive),
// or "" if absent.
func (h Headers) Get(name string) string {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Name, name) {
			return hdr.Value
		}
	}
	return ""
}

// Values returns every value for name in order.
func (h Headers) Values(name string) []string {
	var values []string
	for _, hdr := range h {
		if strings.EqualFold(hdr.Name, name) {
			values = append(values, hdr.Value)
		}
	}
	return values
}

// Has reports whether a header with the given name exists.
func (h Headers) Has(name string) bool {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Name, name) {
			return true
		}
	}
	return false
}

// Add appends a header, keeping any existing entries with the same name.
func (h *Headers) Add(name, value string) {
	*h = append(*h, Header{Name: name, Value: value})
}

// Set replaces the first header matching name and drops the rest. If no
// header matches, the pair is appended.
func (h *Headers) Set(name, value string) {
	out := (*h)[:0]
	replaced := false
	for _, hdr := range *h {
		if strings.EqualFold(hdr.Name, name) {
			if !replaced {
				out = append(out, Header{Name: hdr.Name, Value: value})
				replaced = true
			}
			continue
		}
		out = append(out, hdr)
	}
	if !replaced {
		out = append(out, Header{Name: name, Value: value})
	}
	*h = out
}

// Clone returns a copy that can be mutated independently.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	out := make(Headers, len(h))
	copy(out, h)
	return out
}
