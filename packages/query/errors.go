package query

import (
	"fmt"
	"strings"
)

// ToolNotFoundError indicates the external query evaluator is not on PATH.
type ToolNotFoundError struct {
	Tool string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("%s not found on PATH: install it or use the built-in engine", e.Tool)
}

// QueryError indicates the evaluator rejected the expression or otherwise
// exited non-zero. Stderr carries the evaluator's own diagnostic.
type QueryError struct {
	Expr   string
	Stderr string
}

func (e *QueryError) Error() string {
	msg := fmt.Sprintf("query %q failed", e.Expr)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}
