package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicontent/nicontent/config"
	"github.com/nicontent/nicontent/maintain"
)

type fixture struct {
	root, backup, lock, config string
}

// newFixture lays out a library root with the given folders and a config
// file pointing at it.
func newFixture(t *testing.T, dirs ...string) fixture {
	t.Helper()
	base := t.TempDir()
	f := fixture{
		root:   filepath.Join(base, "content"),
		backup: filepath.Join(base, "content.bak"),
		lock:   filepath.Join(base, "nicontent.lock"),
		config: filepath.Join(base, "config.toml"),
	}
	require.NoError(t, os.MkdirAll(f.root, 0o755))
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(f.root, d), 0o755))
	}

	body := fmt.Sprintf("[library]\nroot = %q\nbackup = %q\nlock_file = %q\n\n[logging]\nlevel = \"debug\"\n",
		f.root, f.backup, f.lock)
	require.NoError(t, os.WriteFile(f.config, []byte(body), 0o644))
	return f
}

func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommandLayout(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"move", "rename", "pairs", "mount", "seed", "config", "version"} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
		assert.NotEmpty(t, sub.GroupID, name)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestMoveDryRun(t *testing.T) {
	f := newFixture(t, "Piano", "Piano Library", "Drums")

	out, _, err := execute(NewRootCmd(), "move", "--dry-run", "--config", f.config)
	require.NoError(t, err)

	assert.Contains(t, out, "[DRY-RUN] move")
	assert.Contains(t, out, filepath.Join(f.backup, "Piano Library"))
	assert.DirExists(t, filepath.Join(f.root, "Piano Library"))
	assert.NoDirExists(t, f.backup)
}

func TestMove(t *testing.T) {
	f := newFixture(t, "Piano", "Piano Library", "Drums")

	out, logs, err := execute(NewRootCmd(), "move", "--config", f.config)
	require.NoError(t, err)

	assert.NotContains(t, out, "DRY-RUN")
	assert.Contains(t, logs, "moved")
	assert.DirExists(t, filepath.Join(f.backup, "Piano Library"))
	assert.NoDirExists(t, filepath.Join(f.root, "Piano Library"))
	assert.DirExists(t, filepath.Join(f.root, "Piano"))
	assert.DirExists(t, filepath.Join(f.root, "Drums"))
}

func TestMoveRefusesWhileLocked(t *testing.T) {
	f := newFixture(t, "Piano Library")

	held, err := maintain.AcquireLock(f.lock)
	require.NoError(t, err)
	defer held.Release()

	_, _, err = execute(NewRootCmd(), "move", "--config", f.config)
	require.ErrorIs(t, err, maintain.ErrLocked)
	assert.DirExists(t, filepath.Join(f.root, "Piano Library"))

	// previews do not need the lock
	_, _, err = execute(NewRootCmd(), "move", "-n", "--config", f.config)
	assert.NoError(t, err)
}

func TestMoveMissingRoot(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.RemoveAll(f.root))

	_, _, err := execute(NewRootCmd(), "move", "--config", f.config)
	assert.Error(t, err)
}

func TestRename(t *testing.T) {
	f := newFixture(t, "Drums", "Bass Library")
	drums := filepath.Join(f.root, "Drums")
	bass := filepath.Join(f.root, "Bass Library")

	out, _, err := execute(NewRootCmd(), "rename", "--config", f.config, drums, bass, filepath.Join(f.root, "Missing"))
	require.NoError(t, err)
	assert.Contains(t, out, "Drums Library")
	assert.DirExists(t, filepath.Join(f.root, "Drums Library"))
	assert.NoDirExists(t, drums)
	assert.DirExists(t, bass)

	out, _, err = execute(NewRootCmd(), "rename", "--config", f.config, filepath.Join(f.root, "Drums Library"))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRenameRequiresPath(t *testing.T) {
	f := newFixture(t)
	_, _, err := execute(NewRootCmd(), "rename", "--config", f.config)
	assert.Error(t, err)
}

func TestPairs(t *testing.T) {
	f := newFixture(t, "Piano", "Piano Library", "Drums")

	out, _, err := execute(NewRootCmd(), "pairs", "--config", f.config)
	require.NoError(t, err)
	assert.Contains(t, out, "Piano Library")
	assert.NotContains(t, out, "Drums")
	assert.Contains(t, out, "3 entries, 2 groups, 1 paired")

	out, _, err = execute(NewRootCmd(), "pairs", "--all", "--config", f.config)
	require.NoError(t, err)
	assert.Contains(t, out, "Drums")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, _, err := execute(NewRootCmd(), "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	_, _, exists, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, exists)

	_, _, err = execute(NewRootCmd(), "config", "init", path)
	assert.Error(t, err)

	_, _, err = execute(NewRootCmd(), "config", "init", "--force", path)
	assert.NoError(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(NewRootCmd(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "nicontent version")

	out, _, err = execute(NewContentDirCmd(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "contentdir version")
}

func TestInvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644))

	_, _, err := execute(NewRootCmd(), "pairs", "--config", path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
