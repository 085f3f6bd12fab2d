package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavePathWindows(t *testing.T) {
	t.Setenv("APPDATA", filepath.Join("C:", "Users", "p", "AppData", "Roaming"))

	got, err := SavePath("windows", "mygame")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("C:", "Users", "p", "AppData", "Roaming", "mygame"), got)
}

func TestSavePathDarwin(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := SavePath("darwin", "mygame")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Library", "Application Support", "mygame"), got)
}

func TestSavePathXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", filepath.Join("/", "data"))

	got, err := SavePath("linux", "mygame")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/", "data", "mygame"), got)
}

func TestSavePathLinuxDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := SavePath("linux", "mygame")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "mygame"), got)
}

func TestSavePathEmptyProject(t *testing.T) {
	_, err := SavePath("linux", "")
	assert.Error(t, err)
}
