package maintain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nicontent/nicontent/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.MkdirAll(filepath.Join(root, n), 0o755))
	}
}

func TestOSFS_ListEntries(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "Piano", "Piano Library")
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.txt"), []byte("x"), 0o644))

	listing, err := OSFS{}.ListEntries(root)
	require.NoError(t, err)

	require.Len(t, listing, 3)
	assert.Equal(t, content.Listing{Name: "Piano", Path: filepath.Join(root, "Piano"), IsDir: true}, listing[0])
	assert.True(t, listing[1].IsDir)
	assert.False(t, listing[2].IsDir)
}

func TestOSFS_ListEntriesNotDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := OSFS{}.ListEntries(file)
	assert.ErrorIs(t, err, content.ErrNotDirectory)

	_, err = OSFS{}.ListEntries(filepath.Join(file, "missing"))
	assert.Error(t, err)
}

func TestOSFS_MoveEndToEnd(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "NI_Contents")
	backup := filepath.Join(base, "NI_Contents.bak")
	mkdirs(t, root, "Piano Library/Samples", "Piano", "Drums")
	require.NoError(t, os.WriteFile(filepath.Join(root, "Piano Library", "Samples", "c4.wav"), []byte("wav"), 0o644))

	lib, err := content.Load(OSFS{}, root)
	require.NoError(t, err)

	done, err := Move(OSFS{}, lib, backup, Options{})
	require.NoError(t, err)
	require.Len(t, done, 1)

	data, err := os.ReadFile(filepath.Join(backup, "Piano Library", "Samples", "c4.wav"))
	require.NoError(t, err)
	assert.Equal(t, "wav", string(data))
	assert.NoDirExists(t, filepath.Join(root, "Piano Library"))
	assert.DirExists(t, filepath.Join(root, "Piano"))
}

func TestOSFS_MoveRefusesExistingDestination(t *testing.T) {
	base := t.TempDir()
	mkdirs(t, base, "src/X Library", "dst/X Library")

	err := OSFS{}.Move(filepath.Join(base, "src", "X Library"), filepath.Join(base, "dst", "X Library"))
	assert.ErrorIs(t, err, ErrDestinationExists)
	assert.DirExists(t, filepath.Join(base, "src", "X Library"))
}

func TestOSFS_RenameEndToEnd(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "Drums", "Bass Library")
	require.NoError(t, os.WriteFile(filepath.Join(root, "file"), nil, 0o644))

	paths := []string{
		filepath.Join(root, "Drums"),
		filepath.Join(root, "Bass Library"),
		filepath.Join(root, "file"),
		filepath.Join(root, "missing"),
	}
	done, err := Rename(OSFS{}, paths, Options{})
	require.NoError(t, err)

	require.Len(t, done, 1)
	assert.DirExists(t, filepath.Join(root, "Drums Library"))
	assert.DirExists(t, filepath.Join(root, "Bass Library"))
	assert.FileExists(t, filepath.Join(root, "file"))
}

func TestCopyTree(t *testing.T) {
	base := t.TempDir()
	src := filepath.Join(base, "src")
	dst := filepath.Join(base, "dst")
	mkdirs(t, src, "a/b")
	require.NoError(t, os.WriteFile(filepath.Join(src, "a", "b", "f.txt"), []byte("hello"), 0o600))

	require.NoError(t, copyTree(src, dst))

	data, err := os.ReadFile(filepath.Join(dst, "a", "b", "f.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.FileExists(t, filepath.Join(src, "a", "b", "f.txt"))
}
