package schema

import (
	"fmt"

	"github.com/vfxpipe/scaffold/api"
)

// Metadata type tags recognized below project level. "project" is handled
// separately by the root scan and is deliberately absent from this set: a
// nested project declaration is an unknown type.
const (
	typeProject       = "project"
	typeStatic        = "static"
	typeEntity        = "shotgun_entity"
	typeListField     = "shotgun_list_field"
	typeUserWorkspace = "user_workspace"
	typeStep          = "shotgun_step"
	typeTask          = "shotgun_task"
)

// newNode dispatches on the metadata "type" tag and constructs the node
// variant. The metadata is recorded verbatim; beyond the type tag (and
// entity_type for entity folders) it is opaque here and consumed later by
// the folder-creation hooks.
func newNode(id, path, parent string, meta api.Metadata) (*api.Node, error) {
	n := &api.Node{
		ID:     id,
		Path:   path,
		Parent: parent,
		Meta:   meta,
	}

	// A missing or non-string tag is "undefined", which no arm accepts.
	tag := "undefined"
	if v, ok := meta["type"].(string); ok && v != "" {
		tag = v
	}

	switch tag {
	case typeEntity:
		n.Kind = api.KindEntity
		et, ok := meta["entity_type"].(string)
		if !ok || et == "" {
			return nil, fmt.Errorf("shotgun_entity folder %s: missing or empty entity_type", path)
		}
		n.EntityType = et
	case typeListField:
		n.Kind = api.KindListField
	case typeStatic:
		n.Kind = api.KindStatic
	case typeUserWorkspace:
		n.Kind = api.KindUserWorkspace
	case typeStep:
		n.Kind = api.KindStep
	case typeTask:
		n.Kind = api.KindTask
	default:
		return nil, &UnknownTypeError{Path: path, Type: tag}
	}
	return n, nil
}
