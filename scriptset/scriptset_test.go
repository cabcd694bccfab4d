/*
File    : mql-go/scriptset/scriptset_test.go
*/
package scriptset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad_FindsMqlFilesSortedIgnoringOthers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "damage.mql", "q.health - 1")
	writeFile(t, dir, "heal.mql", "q.health + 1")
	writeFile(t, dir, "README.md", "not a script")

	set, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"damage", "heal"}, set.Names())

	sc, ok := set.Get("damage")
	require.True(t, ok)
	assert.Equal(t, "q.health - 1", sc.Source)

	_, ok = set.Get("nonexistent")
	assert.False(t, ok)
}

func TestLoad_ParsesManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "damage.mql", "q.health - 1")
	writeFile(t, dir, "manifest.yaml", "roles:\n  damage: entity\n")

	set, err := Load(dir)
	require.NoError(t, err)

	role, ok := set.Role("damage")
	require.True(t, ok)
	assert.Equal(t, "entity", role)

	_, ok = set.Role("heal")
	assert.False(t, ok)
}

func TestLoad_MissingManifestIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "damage.mql", "q.health - 1")

	set, err := Load(dir)
	require.NoError(t, err)
	_, ok := set.Role("damage")
	assert.False(t, ok)
}

func TestLoad_MissingDirIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}
