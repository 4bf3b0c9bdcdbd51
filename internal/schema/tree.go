package schema

import (
	"errors"

	"github.com/vfxpipe/scaffold/api"
)

var ErrNotFound = errors.New("node not found")

// ProjectKey is the reserved entity-index key under which project roots are
// registered.
const ProjectKey = "Project"

// Tree is the arena holding every node of one schema load, keyed by the
// node's path relative to the schema root. Parent/child relations are node
// IDs rather than pointers, so the structure carries no reference cycles.
//
// A Tree is written only by the builder during a single Load call. After
// Load returns it is read-only; there is exactly one writer and readers only
// begin once it has finished, so no locking is needed.
type Tree struct {
	nodes  map[string]*api.Node
	roots  []string            // project node IDs, scan order
	byType map[string][]string // entity type -> node IDs, discovery order
}

func newTree() *Tree {
	return &Tree{
		nodes:  make(map[string]*api.Node),
		byType: make(map[string][]string),
	}
}

// addRoot registers a project node as a top-level root.
func (t *Tree) addRoot(n *api.Node) {
	t.nodes[n.ID] = n
	t.roots = append(t.roots, n.ID)
}

// addNode adds a non-root node to the arena.
func (t *Tree) addNode(n *api.Node) {
	t.nodes[n.ID] = n
}

// index records a node in the entity index under the given type key.
func (t *Tree) index(key string, n *api.Node) {
	t.byType[key] = append(t.byType[key], n.ID)
}

// Node returns the node with the given ID.
func (t *Tree) Node(id string) (*api.Node, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return n, nil
}

// Roots returns the project nodes in scan order.
func (t *Tree) Roots() []*api.Node {
	return t.resolve(t.roots)
}

// Children returns the child nodes of id in scan order.
func (t *Tree) Children(id string) ([]*api.Node, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return t.resolve(n.Children), nil
}

// NodesForType returns every node registered under the given entity type.
// Project roots live under the reserved key "Project". A type that was never
// observed yields an empty slice, never an error.
func (t *Tree) NodesForType(entityType string) []*api.Node {
	return t.resolve(t.byType[entityType])
}

// Len reports the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) resolve(ids []string) []*api.Node {
	nodes := make([]*api.Node, 0, len(ids))
	for _, id := range ids {
		if n, ok := t.nodes[id]; ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
