// Package schema interprets a declarative on-disk folder schema into a tree
// of typed folder nodes plus an index by entity type.
//
// The schema is a directory tree where each directory may carry a sidecar
// "<name>.yml" declaring its semantic type. Load walks the whole tree in one
// synchronous pass: it either produces a fully populated, internally
// consistent Tree, or it fails with the first authoring error it hits and no
// partial result escapes. A schema change on disk requires a fresh Load.
package schema

import (
	"path"
	"strings"

	billy "github.com/go-git/go-billy/v5"

	"github.com/vfxpipe/scaffold/api"
)

// Config owns one loaded folder schema: the ignore set read at construction
// and the node tree plus entity index produced by the load pass.
type Config struct {
	fsys   billy.Filesystem
	root   string
	ignore *IgnoreSet
	tree   *Tree
}

// Load reads the ignore patterns at root and interprets the schema beneath
// it. The filesystem is only ever read.
func Load(fsys billy.Filesystem, root string) (*Config, error) {
	ignore, err := loadIgnoreSet(fsys, root)
	if err != nil {
		return nil, err
	}

	c := &Config{
		fsys:   fsys,
		root:   root,
		ignore: ignore,
		tree:   newTree(),
	}
	if err := c.loadSchema(); err != nil {
		return nil, err
	}
	return c, nil
}

// Tree returns the loaded node tree.
func (c *Config) Tree() *Tree { return c.tree }

// Root returns the schema root path the configuration was loaded from.
func (c *Config) Root() string { return c.root }

// IgnorePatterns returns the patterns read from the root ignore_files.
func (c *Config) IgnorePatterns() []string { return c.ignore.Patterns() }

// NodesForType returns every schema location registered for the given entity
// type. See Tree.NodesForType.
func (c *Config) NodesForType(entityType string) []*api.Node {
	return c.tree.NodesForType(entityType)
}

// loadSchema scans the top level of the schema root. Every immediate
// subdirectory must carry sidecar metadata declaring type "project"; each
// becomes a root node, is registered in the entity index under ProjectKey,
// and is then processed recursively.
func (c *Config) loadSchema() error {
	dirs, err := c.subDirectories(c.root)
	if err != nil {
		return err
	}

	for _, name := range dirs {
		full := c.fsys.Join(c.root, name)

		meta, err := readMetadata(c.fsys, full)
		if err != nil {
			return err
		}
		if meta == nil {
			return &MissingRootMetadataError{Path: full}
		}
		tag, _ := meta["type"].(string)
		if tag != typeProject {
			return &InvalidRootTypeError{Path: full, Type: tag}
		}

		project := &api.Node{
			ID:   name,
			Kind: api.KindProject,
			Path: full,
			Meta: meta,
		}
		c.tree.addRoot(project)
		c.tree.index(ProjectKey, project)

		if err := c.process(project, full); err != nil {
			return err
		}
	}
	return nil
}

// process recursively interprets the subtree under parent: subdirectories
// first (pre-order, depth-first), then the payload files of the current
// directory are attached.
func (c *Config) process(parent *api.Node, parentPath string) error {
	dirs, err := c.subDirectories(parentPath)
	if err != nil {
		return err
	}

	for _, name := range dirs {
		full := c.fsys.Join(parentPath, name)
		id := path.Join(parent.ID, name)

		meta, err := readMetadata(c.fsys, full)
		if err != nil {
			return err
		}

		var node *api.Node
		if len(meta) == 0 {
			// No sidecar (or one that parses to nothing): a plain static
			// folder. The implicit type tag is recorded so downstream hooks
			// see the same shape as an explicit static declaration.
			node = &api.Node{
				ID:     id,
				Kind:   api.KindStatic,
				Path:   full,
				Parent: parent.ID,
				Meta:   api.Metadata{"type": "static"},
			}
		} else {
			node, err = newNode(id, full, parent.ID, meta)
			if err != nil {
				return err
			}
			if node.Kind == api.KindEntity {
				c.tree.index(node.EntityType, node)
			}
		}

		c.tree.addNode(node)
		parent.Children = append(parent.Children, id)

		if err := c.process(node, full); err != nil {
			return err
		}
	}

	files, err := c.filesInFolder(parentPath)
	if err != nil {
		return err
	}
	parent.Files = append(parent.Files, files...)
	return nil
}

// subDirectories lists the subdirectories of parentPath in filesystem
// enumeration order. Hidden directories never become schema nodes; the
// ignore set does not apply to directories.
func (c *Config) subDirectories(parentPath string) ([]string, error) {
	infos, err := c.fsys.ReadDir(parentPath)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, info := range infos {
		if info.IsDir() && !strings.HasPrefix(info.Name(), ".") {
			names = append(names, info.Name())
		}
	}
	return names, nil
}

// filesInFolder lists the payload files of parentPath: everything that is
// not a directory, not a .yml sidecar, and not matched by an ignore pattern.
func (c *Config) filesInFolder(parentPath string) ([]string, error) {
	infos, err := c.fsys.ReadDir(parentPath)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		name := info.Name()
		if strings.HasSuffix(name, ".yml") || c.ignore.Match(name) {
			continue
		}
		files = append(files, c.fsys.Join(parentPath, name))
	}
	return files, nil
}
