package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrary_Link(t *testing.T) {
	lib := newTestLibrary("a", "b", "c")

	require.NoError(t, lib.Link(0, 1))
	require.NoError(t, lib.Link(1, 0))
	require.NoError(t, lib.Link(0, 1))

	assert.Equal(t, []int{1}, lib.Related(0))
	assert.Equal(t, []int{0}, lib.Related(1))
}

func TestLibrary_LinkSelfIsNoop(t *testing.T) {
	lib := newTestLibrary("a")

	require.NoError(t, lib.Link(0, 0))
	assert.Empty(t, lib.Related(0))
}

func TestLibrary_LinkOutOfRange(t *testing.T) {
	lib := newTestLibrary("a")

	err := lib.Link(0, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	err = lib.Link(-1, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Empty(t, lib.Related(0))
}

func TestLibrary_EntryReturnsCopy(t *testing.T) {
	lib := newTestLibrary("a", "b")
	require.NoError(t, lib.Link(0, 1))

	e := lib.Entry(0)
	e.related[0] = 42

	assert.Equal(t, []int{1}, lib.Related(0))
	assert.Equal(t, Entry{}, lib.Entry(7))
	assert.Nil(t, lib.Related(7))
}

func TestLibrary_All(t *testing.T) {
	lib := newTestLibrary("a", "b Library", "c")

	var names []string
	for i, e := range lib.All {
		assert.Equal(t, lib.Entry(i).Path, e.Path)
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"a", "b Library", "c"}, names)

	count := 0
	for range lib.All {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestLibrary_WithLibrarySuffix(t *testing.T) {
	lib := newTestLibrary("Piano Library", "Drums", "Bass Library")
	assert.Equal(t, []int{0, 2}, lib.WithLibrarySuffix())
	assert.Nil(t, newTestLibrary("Drums").WithLibrarySuffix())
}
