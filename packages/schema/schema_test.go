package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userSchema = `{
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": {"type": "string"},
    "age": {"type": "integer"}
  }
}`

func writeSchema(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(userSchema), 0o644))
	return path
}

func TestValidate_Valid(t *testing.T) {
	path := writeSchema(t)

	err := Validate([]byte(`{"name": "ada", "age": 36}`), path)
	assert.NoError(t, err)
}

func TestValidate_Invalid(t *testing.T) {
	path := writeSchema(t)

	err := Validate([]byte(`{"age": "not a number"}`), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match schema")
}

func TestValidate_MissingSchemaFile(t *testing.T) {
	err := Validate([]byte(`{}`), filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestValidate_BodyNotJSON(t *testing.T) {
	path := writeSchema(t)

	err := Validate([]byte("not json at all"), path)
	assert.Error(t, err)
}
