package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-3))
	assert.Equal(t, 7, NormalizeLimit(7))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+1))
}

func TestCursorRoundTrip(t *testing.T) {
	token := EncodeCursor(Cursor{After: "app-b"})
	got, err := ParseCursor(token)
	require.NoError(t, err)
	assert.Equal(t, "app-b", got.After)

	got, err = ParseCursor("  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseCursor("not base64!")
	assert.Error(t, err)
	_, err = ParseCursor(EncodeCursor(Cursor{}))
	assert.Error(t, err)
}

func TestPageWalksAllKeys(t *testing.T) {
	keys := []string{"a", "b", "c", "d", "e"}

	var seen []string
	token := ""
	for i := 0; ; i++ {
		require.Less(t, i, 5)
		page, next, err := Page(keys, token, 2)
		require.NoError(t, err)
		seen = append(seen, page...)
		if next == "" {
			break
		}
		token = next
	}
	assert.Equal(t, keys, seen)
}

func TestPageSurvivesRemovedCursorKey(t *testing.T) {
	_, next, err := Page([]string{"a", "b", "c"}, "", 1)
	require.NoError(t, err)

	page, _, err := Page([]string{"c", "d"}, next, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, page)
}

func TestPageRejectsGarbage(t *testing.T) {
	_, _, err := Page([]string{"a"}, "%%%", 1)
	assert.Error(t, err)
}
