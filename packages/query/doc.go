// Package query filters JSON values through a query expression.
//
// The default engine shells out to an already-installed jq binary with an
// explicit argument list and the serialized value on stdin. A built-in engine
// backed by gjson path syntax is available for environments without jq.
package query
