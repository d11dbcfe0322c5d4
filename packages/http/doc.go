// Package http provides the HTTP client and message types used by reqtools.
//
// It wraps the standard library's http package with additional features:
//   - Configurable timeouts, redirects, TLS validation and proxies
//   - Header order preservation, including duplicate header names
//   - Parsing of saved raw HTTP messages (e.g. `curl -i` output)
//   - Response helpers for content-type and status classification
package http
