// Package display renders HTTP requests and responses as fixed-layout text
// blocks for terminal inspection.
//
// The block layout is stable: a delimiter rule, the status or method line,
// the URL, the ordered header list, and the body. JSON bodies are re-indented
// and other bodies are truncated past a configurable length. Formatting never
// mutates the message and always hands back the value it was given.
package display
