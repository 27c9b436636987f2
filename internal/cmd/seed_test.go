package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicontent/nicontent/content"
	"github.com/nicontent/nicontent/maintain"
)

func TestSeedLibrary(t *testing.T) {
	out := filepath.Join(t.TempDir(), "library")

	stats, err := seedLibrary(out, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, stats.plain+stats.library+stats.paired)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, stats.plain+stats.library+2*stats.paired)

	lib, err := content.Load(maintain.OSFS{}, out)
	require.NoError(t, err)
	paired := 0
	for _, g := range lib.FindPairs() {
		if len(g.Members) == 2 {
			paired++
		}
	}
	assert.Equal(t, stats.paired, paired)
}

func TestSeedCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "library")

	stdout, _, err := execute(NewRootCmd(), "seed", "--output", out, "--count", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created 3 products")

	_, _, err = execute(NewRootCmd(), "seed")
	assert.Error(t, err, "output is required")
}
