package schema

import (
	"errors"
	"io"
	"os"

	billy "github.com/go-git/go-billy/v5"
	"gopkg.in/yaml.v3"

	"github.com/vfxpipe/scaffold/api"
)

// readMetadata checks for a sidecar "<pathNoExt>.yml" and parses it into a
// mapping. A missing sidecar returns (nil, nil): absence of metadata is a
// valid state, the directory is a plain static folder. A sidecar that exists
// but cannot be read or parsed is a fatal ParseError carrying the offending
// path.
func readMetadata(fsys billy.Filesystem, pathNoExt string) (api.Metadata, error) {
	ymlPath := pathNoExt + ".yml"

	f, err := fsys.Open(ymlPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &ParseError{Path: ymlPath, Err: err}
	}
	defer func() { _ = f.Close() }()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, &ParseError{Path: ymlPath, Err: err}
	}

	var meta api.Metadata
	if err := yaml.Unmarshal(raw, &meta); err != nil {
		return nil, &ParseError{Path: ymlPath, Err: err}
	}
	return meta, nil
}
