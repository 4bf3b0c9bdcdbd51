package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSchemaFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Film", "Shots"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Film.yml"), []byte("type: project\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Film", "Shots.yml"),
		[]byte("type: shotgun_entity\nentity_type: Shot\n"), 0o644))
	return root
}

func TestLoadConfig(t *testing.T) {
	root := writeSchemaFixture(t)

	cfg, err := loadConfig(root)
	require.NoError(t, err)

	shots := cfg.NodesForType("Shot")
	require.Len(t, shots, 1)
	assert.Equal(t, filepath.Join(root, "Film", "Shots"), shots[0].Path)
}

func TestLoadConfig_MissingRoot(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestLoadConfig_RootIsFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "schema")
	require.NoError(t, os.WriteFile(file, []byte("not a dir"), 0o644))

	_, err := loadConfig(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
