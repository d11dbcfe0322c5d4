// Package cmd implements the reqtools CLI commands using Cobra.
//
// Available commands:
//   - curl: Perform an HTTP request with curl-style arguments and pretty
//     print the response
//   - res: Pretty print a saved raw HTTP response
//   - req: Pretty print a saved raw HTTP request
//   - jq: Pipe a JSON value through a query expression
//   - mock: Start a local mock server for trying the other commands
//   - version: Show reqtools version information
package cmd
