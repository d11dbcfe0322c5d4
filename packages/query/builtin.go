package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// RunBuiltin evaluates expr against value with the in-process gjson engine
// instead of the external evaluator. It accepts simple jq-style paths like
// .a.b or .users[0].name; anything fancier belongs to the real jq. Printing
// and quiet semantics match Run.
func (r *Runner) RunBuiltin(value any, expr string) (string, error) {
	input, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("failed to serialize value: %w", err)
	}

	path := builtinPath(expr)

	var result string
	if path == "" {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, input, "", "  "); err != nil {
			return "", fmt.Errorf("failed to format value: %w", err)
		}
		result = pretty.String()
	} else {
		res := gjson.GetBytes(input, path)
		if !res.Exists() {
			return "", &QueryError{Expr: expr, Stderr: fmt.Sprintf("no value at path %q", expr)}
		}
		result = res.Raw
	}

	if !r.quiet {
		fmt.Fprintln(r.writer, result)
	}
	return result, nil
}

// builtinPath converts a jq-style path to gjson syntax: the leading dot is
// dropped and [n] indexing becomes .n, so .users[0].name -> users.0.name.
// "." alone addresses the whole value and maps to the empty path.
func builtinPath(expr string) string {
	path := strings.TrimSpace(expr)
	path = strings.TrimPrefix(path, ".")
	path = strings.ReplaceAll(path, "[", ".")
	path = strings.ReplaceAll(path, "]", "")
	path = strings.Trim(path, ".")
	return path
}
