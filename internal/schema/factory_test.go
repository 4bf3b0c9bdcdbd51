package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfxpipe/scaffold/api"
)

func TestNewNode_Dispatch(t *testing.T) {
	tests := []struct {
		tag  string
		kind api.Kind
	}{
		{"static", api.KindStatic},
		{"shotgun_list_field", api.KindListField},
		{"user_workspace", api.KindUserWorkspace},
		{"shotgun_step", api.KindStep},
		{"shotgun_task", api.KindTask},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			meta := api.Metadata{"type": tt.tag, "extra": "kept"}
			n, err := newNode("Film/dir", "/schema/Film/dir", "Film", meta)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, n.Kind)
			assert.Equal(t, "Film", n.Parent)
			// Declared metadata is recorded verbatim.
			assert.Equal(t, meta, n.Meta)
		})
	}
}

func TestNewNode_Entity(t *testing.T) {
	n, err := newNode("Film/Shots", "/schema/Film/Shots", "Film",
		api.Metadata{"type": "shotgun_entity", "entity_type": "Shot"})
	require.NoError(t, err)
	assert.Equal(t, api.KindEntity, n.Kind)
	assert.Equal(t, "Shot", n.EntityType)
}

func TestNewNode_EntityMissingEntityType(t *testing.T) {
	_, err := newNode("Film/Shots", "/schema/Film/Shots", "Film",
		api.Metadata{"type": "shotgun_entity"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/schema/Film/Shots")
}

func TestNewNode_UnknownType(t *testing.T) {
	_, err := newNode("Film/odd", "/schema/Film/odd", "Film",
		api.Metadata{"type": "bogus"})
	require.Error(t, err)

	var unknownErr *UnknownTypeError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "bogus", unknownErr.Type)
	assert.Contains(t, err.Error(), "/schema/Film/odd")
}

func TestNewNode_MissingTypeIsUndefined(t *testing.T) {
	_, err := newNode("Film/odd", "/schema/Film/odd", "Film",
		api.Metadata{"color": "blue"})

	var unknownErr *UnknownTypeError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "undefined", unknownErr.Type)
}

func TestNewNode_NestedProjectRejected(t *testing.T) {
	// Projects are only valid at the schema root; the recursive factory
	// treats the tag as unknown.
	_, err := newNode("Film/sub", "/schema/Film/sub", "Film",
		api.Metadata{"type": "project"})

	var unknownErr *UnknownTypeError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "project", unknownErr.Type)
}
