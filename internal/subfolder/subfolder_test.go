package subfolder

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(root, n), []byte(n), 0o644))
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	slices.Sort(names)
	return names
}

func TestMovePattern(t *testing.T) {
	root := t.TempDir()
	makeFiles(t, root, "a.jpg", "b.jpg", "c.txt")

	n, err := (&Mover{}).Move(context.Background(), "photos", filepath.Join(root, "*.jpg"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"c.txt", "photos"}, listDir(t, root))
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, listDir(t, filepath.Join(root, "photos")))
}

func TestMoveSkipsTargetFolder(t *testing.T) {
	root := t.TempDir()
	makeFiles(t, root, "a", "b")
	require.NoError(t, os.Mkdir(filepath.Join(root, "old"), 0o755))
	makeFiles(t, filepath.Join(root, "old"), "z")

	n, err := (&Mover{}).Move(context.Background(), "old", filepath.Join(root, "*"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"old"}, listDir(t, root))
	assert.Equal(t, []string{"a", "b", "z"}, listDir(t, filepath.Join(root, "old")))
}

func TestMoveInvalidName(t *testing.T) {
	for _, name := range []string{"", "..", "a/b"} {
		_, err := (&Mover{}).Move(context.Background(), name, "*")
		require.ErrorIs(t, err, ErrInvalidName, name)
	}
}

func TestCommandDefaultsToStar(t *testing.T) {
	root := t.TempDir()
	makeFiles(t, root, "a", "b")
	t.Chdir(root)

	cmd, err := NewCommand(&Mover{})
	require.NoError(t, err)
	require.NoError(t, cmd.Run(context.Background(), []string{"all"}))

	assert.Equal(t, []string{"all"}, listDir(t, root))
	assert.Equal(t, []string{"a", "b"}, listDir(t, filepath.Join(root, "all")))
}
