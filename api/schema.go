// Package api defines the public data model produced by the folder schema
// loader. Downstream folder-creation tooling consumes these types; it never
// constructs them.
package api

// Kind identifies the semantic type of a folder node.
type Kind int

const (
	// KindStatic is a plain folder with no dynamic behavior. It is also the
	// implicit kind for directories that carry no sidecar metadata at all.
	KindStatic Kind = iota
	// KindProject is a top-level production project. Only project folders
	// may appear directly under the schema root.
	KindProject
	// KindEntity is a folder bound to a trackable production entity type
	// (Shot, Asset, Sequence, ...).
	KindEntity
	// KindListField is a folder driven by the values of a list field.
	KindListField
	// KindUserWorkspace is a per-user sandbox folder.
	KindUserWorkspace
	// KindStep is a pipeline step folder.
	KindStep
	// KindTask is a task folder.
	KindTask
)

// String returns the metadata type tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindProject:
		return "project"
	case KindEntity:
		return "shotgun_entity"
	case KindListField:
		return "shotgun_list_field"
	case KindUserWorkspace:
		return "user_workspace"
	case KindStep:
		return "shotgun_step"
	case KindTask:
		return "shotgun_task"
	}
	return "undefined"
}

// Metadata is the parsed contents of a sidecar .yml file. The loader only
// interprets the "type" key (and "entity_type" for entity folders); every
// other key is carried verbatim for the folder-creation hooks.
type Metadata map[string]any

// Node is one directory of the interpreted folder schema.
//
// Nodes live in a Tree arena and refer to each other by ID — the
// slash-separated path of the directory relative to the schema root. A node
// never outlives the tree that owns it.
type Node struct {
	// ID is the arena key: the node's path relative to the schema root.
	ID string
	// Kind is the variant selected by the sidecar's "type" tag.
	Kind Kind
	// Path is the directory's path on the schema filesystem.
	Path string
	// Parent is the parent node's ID. Empty for project roots.
	Parent string
	// EntityType is the tracked entity type (entity nodes only).
	EntityType string
	// Meta is the declared sidecar metadata, verbatim. Implicit static
	// folders carry {"type": "static"} so hooks see a uniform shape.
	Meta Metadata
	// Children holds child node IDs in scan order.
	Children []string
	// Files holds the payload file paths attached to this directory, in
	// scan order. Sidecar .yml files and ignore-matched files are excluded.
	Files []string
}
