package query

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// DefaultBinary is the external evaluator invoked by Run.
const DefaultBinary = "jq"

type Runner struct {
	binary string
	writer io.Writer
	quiet  bool
}

type Option func(*Runner)

func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		binary: DefaultBinary,
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func WithBinary(binary string) Option {
	return func(r *Runner) {
		if binary != "" {
			r.binary = binary
		}
	}
}

func WithWriter(w io.Writer) Option {
	return func(r *Runner) {
		r.writer = w
	}
}

// WithQuiet suppresses printing; Run still returns the result.
func WithQuiet(quiet bool) Option {
	return func(r *Runner) {
		r.quiet = quiet
	}
}

// Run serializes value to JSON, pipes it through the evaluator with expr as
// its single argument, and returns the evaluator's stdout. The result is also
// printed to the runner's writer unless quiet is set; quiet and non-quiet
// runs return identical values. The call blocks until the subprocess exits or
// ctx is cancelled.
func (r *Runner) Run(ctx context.Context, value any, expr string) (string, error) {
	input, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("failed to serialize value: %w", err)
	}

	path, err := exec.LookPath(r.binary)
	if err != nil {
		return "", &ToolNotFoundError{Tool: r.binary}
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, expr)
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &QueryError{Expr: expr, Stderr: stderr.String()}
	}

	result := strings.TrimRight(stdout.String(), "\n")
	if !r.quiet {
		fmt.Fprintln(r.writer, result)
	}
	return result, nil
}
