package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindhiveoy/pyopenapi-gen/pkg/ir"
)

func TestPromoteInline_ObjectProperty(t *testing.T) {
	reg := map[string]any{
		"Parent": obj(map[string]any{
			"address": obj(map[string]any{
				"street": map[string]any{"type": "string"},
			}),
		}),
	}

	result, err := ParseRegistry(reg, Options{})
	require.NoError(t, err)

	require.Contains(t, result.Schemas, "ParentAddress")
	assert.Equal(t, ir.KindObject, result.Schemas["ParentAddress"].Kind)

	addr, ok := result.Schemas["Parent"].Property("address")
	require.True(t, ok)
	assert.Equal(t, ir.KindRef, addr.Schema.Kind)
	assert.Equal(t, "ParentAddress", addr.Schema.Ref)
}

func TestPromoteInline_EnumProperty(t *testing.T) {
	reg := map[string]any{
		"Order": obj(map[string]any{
			"status": map[string]any{
				"type": "string",
				"enum": []any{"open", "closed"},
			},
		}),
	}

	result, err := ParseRegistry(reg, Options{})
	require.NoError(t, err)

	require.Contains(t, result.Schemas, "OrderStatusEnum")
	status := result.Schemas["OrderStatusEnum"]
	assert.Equal(t, ir.KindEnum, status.Kind)
	assert.Equal(t, []any{"open", "closed"}, status.EnumValues)
	assert.Equal(t, ir.KindString, status.EnumBase)
}

func TestPromoteInline_ArrayItems(t *testing.T) {
	reg := map[string]any{
		"Batch": obj(map[string]any{
			"entries": map[string]any{
				"type": "array",
				"items": obj(map[string]any{
					"id": map[string]any{"type": "integer"},
				}),
			},
		}),
	}

	result, err := ParseRegistry(reg, Options{})
	require.NoError(t, err)

	require.Contains(t, result.Schemas, "BatchEntriesItem")

	entries, ok := result.Schemas["Batch"].Property("entries")
	require.True(t, ok)
	require.NotNil(t, entries.Schema.Items)
	assert.Equal(t, "BatchEntriesItem", entries.Schema.Items.Ref)
}

func TestPromoteInline_CollisionSuffix(t *testing.T) {
	// "Tag" and "tag" sanitize to the same base; the second promotion in
	// key order gets a numeric suffix.
	reg := map[string]any{
		"Parent": obj(map[string]any{
			"Tag": map[string]any{"type": "string", "enum": []any{"a"}},
			"tag": map[string]any{"type": "string", "enum": []any{"b"}},
		}),
	}

	result, err := ParseRegistry(reg, Options{})
	require.NoError(t, err)

	require.Contains(t, result.Schemas, "ParentTagEnum")
	require.Contains(t, result.Schemas, "ParentTagEnum_2")
	assert.Equal(t, []any{"a"}, result.Schemas["ParentTagEnum"].EnumValues)
	assert.Equal(t, []any{"b"}, result.Schemas["ParentTagEnum_2"].EnumValues)
}

func TestPromoteInline_InputNotMutated(t *testing.T) {
	inner := map[string]any{
		"type": "string",
		"enum": []any{"x"},
	}
	reg := map[string]any{
		"Parent": obj(map[string]any{"mode": inner}),
	}

	_, err := ParseRegistry(reg, Options{})
	require.NoError(t, err)

	props := reg["Parent"].(map[string]any)["properties"].(map[string]any)
	assert.Equal(t, inner, props["mode"], "caller's registry must stay untouched")
	assert.NotContains(t, reg, "ParentModeEnum")
}

func TestPromoteInline_RefSitesUntouched(t *testing.T) {
	reg := map[string]any{
		"Target": map[string]any{"type": "string"},
		"Parent": obj(map[string]any{"t": ref("Target")}),
	}

	result, err := ParseRegistry(reg, Options{})
	require.NoError(t, err)

	prop, ok := result.Schemas["Parent"].Property("t")
	require.True(t, ok)
	assert.Equal(t, "Target", prop.Schema.Ref)
	assert.Len(t, result.Schemas, 2)
}
