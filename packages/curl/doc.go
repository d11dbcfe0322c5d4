// Package curl parses curl-style argument lists into reqtools requests, so
// the curl subcommand accepts the flags people already know: -X, -H, -d, -u,
// -A, -e, -b, -k, -L and -m. A handful of reqtools extensions (--repeat,
// --schema, --include-request) ride along in the same syntax.
package curl
