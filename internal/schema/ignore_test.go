package schema

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadIgnoreSet_MissingFile(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("/schema", 0o755))

	set, err := loadIgnoreSet(fsys, "/schema")
	require.NoError(t, err)
	assert.Empty(t, set.Patterns())
	assert.False(t, set.Match("anything"))
}

func TestLoadIgnoreSet_CommentsAndBlanks(t *testing.T) {
	fsys := memfs.New()
	content := "*.bak  # backup files\n\n# a full-line comment\n  *.tmp  \n"
	require.NoError(t, util.WriteFile(fsys, "/schema/ignore_files", []byte(content), 0o644))

	set, err := loadIgnoreSet(fsys, "/schema")
	require.NoError(t, err)
	assert.Equal(t, []string{"*.bak", "*.tmp"}, set.Patterns())
}

func TestIgnoreSet_Match(t *testing.T) {
	set := &IgnoreSet{patterns: []string{"*.bak", "Thumbs.db"}}

	assert.True(t, set.Match("notes.bak"))
	assert.True(t, set.Match("Thumbs.db"))
	assert.False(t, set.Match("notes.txt"))
}

func TestIgnoreSet_MalformedPatternPassesThrough(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "/schema/ignore_files", []byte("[\n"), 0o644))

	set, err := loadIgnoreSet(fsys, "/schema")
	require.NoError(t, err)

	// The broken pattern is kept verbatim but can never match.
	assert.Equal(t, []string{"["}, set.Patterns())
	assert.False(t, set.Match("["))
	assert.False(t, set.Match("file.txt"))
}
