package schema

import "fmt"

// All schema errors are authoring mistakes in the on-disk schema. None are
// recoverable: the first one aborts the whole load and no partial tree is
// returned.

// ParseError reports a sidecar .yml file that exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot load config file %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingRootMetadataError reports a top-level schema directory that has no
// sidecar metadata file.
type MissingRootMetadataError struct {
	Path string
}

func (e *MissingRootMetadataError) Error() string {
	return fmt.Sprintf("project directory missing required metadata file: %s", e.Path)
}

// InvalidRootTypeError reports a top-level sidecar whose type tag is not
// "project".
type InvalidRootTypeError struct {
	Path string
	Type string
}

func (e *InvalidRootTypeError) Error() string {
	return fmt.Sprintf("only items of type 'project' are allowed at the root level: %s (declared type %q)", e.Path, e.Type)
}

// UnknownTypeError reports a sidecar whose type tag is not in the recognized
// set. A missing or non-string tag surfaces here as "undefined".
type UnknownTypeError struct {
	Path string
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("error in %s: unknown metadata type %q", e.Path, e.Type)
}
