package query

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireJQ(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath(DefaultBinary); err != nil {
		t.Skip("jq not installed")
	}
}

func TestRunner_Run(t *testing.T) {
	requireJQ(t)

	var buf bytes.Buffer
	r := NewRunner(WithWriter(&buf))

	value := map[string]any{"a": map[string]any{"b": 5}}
	result, err := r.Run(context.Background(), value, ".a.b")

	require.NoError(t, err)
	assert.Equal(t, "5", result)
	assert.Equal(t, "5\n", buf.String())
}

func TestRunner_QuietReturnsSameValue(t *testing.T) {
	requireJQ(t)

	value := map[string]any{"a": map[string]any{"b": 5}}

	var loud bytes.Buffer
	loudResult, err := NewRunner(WithWriter(&loud)).Run(context.Background(), value, ".a.b")
	require.NoError(t, err)

	var quietBuf bytes.Buffer
	quietResult, err := NewRunner(WithWriter(&quietBuf), WithQuiet(true)).Run(context.Background(), value, ".a.b")
	require.NoError(t, err)

	assert.Equal(t, loudResult, quietResult)
	assert.Empty(t, quietBuf.String())
}

func TestRunner_InvalidExpression(t *testing.T) {
	requireJQ(t)

	var buf bytes.Buffer
	r := NewRunner(WithWriter(&buf))

	_, err := r.Run(context.Background(), map[string]any{"a": 1}, ".a[")

	require.Error(t, err)
	var queryErr *QueryError
	require.True(t, errors.As(err, &queryErr))
	assert.Equal(t, ".a[", queryErr.Expr)
	assert.NotEmpty(t, queryErr.Stderr)
	assert.Empty(t, buf.String(), "nothing should be printed on error")
}

func TestRunner_ToolNotFound(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(WithWriter(&buf), WithBinary("reqtools-no-such-evaluator"))

	_, err := r.Run(context.Background(), map[string]any{"a": 1}, ".a")

	require.Error(t, err)
	var toolErr *ToolNotFoundError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, "reqtools-no-such-evaluator", toolErr.Tool)
	assert.Empty(t, buf.String())
}

func TestRunner_UnserializableValue(t *testing.T) {
	r := NewRunner(WithQuiet(true))

	_, err := r.Run(context.Background(), func() {}, ".")

	assert.Error(t, err)
}
