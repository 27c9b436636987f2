//go:build windows

package registry

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows/registry"
)

// scratchBase creates a throwaway key tree under HKCU and removes it when
// the test ends.
func scratchBase(t *testing.T, products map[string]string) string {
	t.Helper()
	base := `Software\nicontent-test-` + uuid.NewString()

	k, _, err := registry.CreateKey(registry.CURRENT_USER, base, registry.ALL_ACCESS)
	require.NoError(t, err)
	k.Close()

	for name, value := range products {
		pk, _, err := registry.CreateKey(registry.CURRENT_USER, KeyPath(base, name), registry.ALL_ACCESS)
		require.NoError(t, err)
		if value != "" {
			require.NoError(t, pk.SetStringValue("ContentDir", value))
		}
		pk.Close()
	}

	t.Cleanup(func() {
		for name := range products {
			_ = registry.DeleteKey(registry.CURRENT_USER, KeyPath(base, name))
		}
		_ = registry.DeleteKey(registry.CURRENT_USER, base)
	})
	return base
}

func TestWindowsStoreRewrite(t *testing.T) {
	base := scratchBase(t, map[string]string{
		"Kontakt": `C:\Content\`,
		"Other":   `D:\Elsewhere`,
		"Empty":   "",
	})
	store, err := OpenSystemStore(HiveCurrentUser)
	require.NoError(t, err)

	var names []string
	for name, err := range store.Names(base) {
		require.NoError(t, err)
		names = append(names, name)
	}
	assert.ElementsMatch(t, []string{"Kontakt", "Other", "Empty"}, names)

	_, ok, err := store.ReadField(base, "Empty", "ContentDir")
	require.NoError(t, err)
	assert.False(t, ok)

	rw := &Rewriter{Store: store, BasePath: base, Field: "ContentDir"}
	changes, err := rw.Run([]string{`C:\Content`})
	require.NoError(t, err)
	require.Len(t, changes, 1)

	got, ok, err := store.ReadField(base, "Kontakt", "ContentDir")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `C:\Content Library\`, got)
}

func TestWindowsStoreWriteMissingKey(t *testing.T) {
	base := scratchBase(t, nil)
	store, err := OpenSystemStore(HiveCurrentUser)
	require.NoError(t, err)

	err = store.WriteField(base, "missing", "ContentDir", `C:\x\`)
	assert.ErrorIs(t, err, ErrKeyNotWritable)
}
