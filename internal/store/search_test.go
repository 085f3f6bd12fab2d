package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindGlob(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.Write("saves/slot1.json", map[string]interface{}{"v": true}))
	require.NoError(t, st.Write("saves/slot2.bin", "x"))
	require.NoError(t, st.Write("config/video.json", map[string]interface{}{"v": true}))

	matches, err := st.Find("**/*.json")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"saves/slot1.json", "config/video.json"}, matches)

	matches, err = st.Find("saves/*")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"saves/slot1.json", "saves/slot2.bin"}, matches)
}

func TestFindNoMatches(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Write("slot.bin", "x"))

	matches, err := st.Find("*.json")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindBadPattern(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Find("[unterminated")
	assert.Error(t, err)
}
