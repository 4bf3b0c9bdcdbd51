package schema

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMetadata_AbsentSidecar(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("/schema/Film", 0o755))

	meta, err := readMetadata(fsys, "/schema/Film")
	require.NoError(t, err)
	assert.Nil(t, meta)
}

func TestReadMetadata_ValidSidecar(t *testing.T) {
	fsys := memfs.New()
	content := "type: shotgun_entity\nentity_type: Shot\nfilters: [status, ip]\n"
	require.NoError(t, util.WriteFile(fsys, "/schema/Film/Shots.yml", []byte(content), 0o644))

	meta, err := readMetadata(fsys, "/schema/Film/Shots")
	require.NoError(t, err)
	assert.Equal(t, "shotgun_entity", meta["type"])
	assert.Equal(t, "Shot", meta["entity_type"])
	// Unrelated keys pass through verbatim.
	assert.Equal(t, []any{"status", "ip"}, meta["filters"])
}

func TestReadMetadata_EmptySidecar(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "/schema/Film/work.yml", nil, 0o644))

	meta, err := readMetadata(fsys, "/schema/Film/work")
	require.NoError(t, err)
	assert.Empty(t, meta)
}

func TestReadMetadata_UnparsableSidecar(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "/schema/Film/Shots.yml", []byte("type: [unclosed\n"), 0o644))

	_, err := readMetadata(fsys, "/schema/Film/Shots")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "/schema/Film/Shots.yml", parseErr.Path)
	assert.Contains(t, err.Error(), "/schema/Film/Shots.yml")
}
