package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmptyRoot(t *testing.T) {
	st := newTestStore(t)

	paths, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestListAbsentRoot(t *testing.T) {
	st := NewAt("testproj", filepath.Join(t.TempDir(), "never-created"))

	paths, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestListBreadthFirstOrder(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.Write("b.txt", "root level"))
	require.NoError(t, st.Write("a/x.txt", "depth one"))
	require.NoError(t, st.Write("c/y.txt", "depth one"))
	require.NoError(t, st.Write("a/deep/z.txt", "depth two"))

	paths, err := st.List()
	require.NoError(t, err)

	// Directory entries are iterated in name order, so discovery order is
	// deterministic: all root files before any deeper file.
	assert.Equal(t, []string{"b.txt", "a/x.txt", "c/y.txt", "a/deep/z.txt"}, paths)
}

func TestListVisitsEachFileOnce(t *testing.T) {
	st := newTestStore(t)

	want := []string{"one.bin", "d/two.bin", "d/e/three.bin", "d/e/f/four.bin"}
	for _, p := range want {
		require.NoError(t, st.Write(p, "x"))
	}

	paths, err := st.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, want, paths)
}

func TestListSkipsSpecialEntries(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Write("real.bin", "x"))

	if err := os.Symlink(
		filepath.Join(st.Root(), "real.bin"),
		filepath.Join(st.Root(), "link.bin"),
	); err != nil {
		t.Skipf("symlinks not supported here: %v", err)
	}

	paths, err := st.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"real.bin"}, paths, "symlink silently skipped")
}
