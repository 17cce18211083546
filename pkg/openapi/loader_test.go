package openapi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSchemaRegistry_OpenAPI3(t *testing.T) {
	doc := []byte(`
openapi: 3.0.0
components:
  schemas:
    User:
      type: object
      properties:
        name:
          type: string
    Role:
      type: string
      enum: [admin, member]
`)

	reg, err := ExtractSchemaRegistry(doc)
	require.NoError(t, err)

	require.Len(t, reg, 2)
	user, ok := reg["User"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "object", user["type"])
	assert.Contains(t, reg, "Role")
}

func TestExtractSchemaRegistry_Swagger2Definitions(t *testing.T) {
	doc := []byte(`
swagger: "2.0"
definitions:
  Pet:
    type: object
`)

	reg, err := ExtractSchemaRegistry(doc)
	require.NoError(t, err)
	assert.Contains(t, reg, "Pet")
}

func TestExtractSchemaRegistry_JSON(t *testing.T) {
	doc := []byte(`{"components":{"schemas":{"Thing":{"type":"integer"}}}}`)

	reg, err := ExtractSchemaRegistry(doc)
	require.NoError(t, err)
	assert.Contains(t, reg, "Thing")
}

func TestExtractSchemaRegistry_NoSchemas(t *testing.T) {
	reg, err := ExtractSchemaRegistry([]byte("openapi: 3.0.0\ninfo:\n  title: empty\n"))
	require.NoError(t, err)
	assert.Empty(t, reg)
	assert.NotNil(t, reg)
}

func TestExtractSchemaRegistry_Malformed(t *testing.T) {
	_, err := ExtractSchemaRegistry([]byte("components: [a, b"))
	assert.Error(t, err)
}

func TestLoadSchemaRegistry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
components:
  schemas:
    Item:
      type: object
      properties:
        id:
          type: string
`), 0o644))

	reg, err := LoadSchemaRegistry(path)
	require.NoError(t, err)
	assert.Contains(t, reg, "Item")

	_, err = LoadSchemaRegistry(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
