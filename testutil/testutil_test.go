package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dartdict/trie"
)

func TestBuildLinks_WalkRoundtrip(t *testing.T) {
	specs := []KeySpec{
		{Key: "a", First: 0, Count: 1},
		{Key: "ab", First: 1, Count: 1},
		{Key: "b", First: 2, Count: 3},
	}

	entries, err := trie.Walk(BuildLinks(specs), 1024)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Depth-first, ascending-byte discovery order.
	assert.Equal(t, "a", entries[0].Key)
	assert.Equal(t, "ab", entries[1].Key)
	assert.Equal(t, "b", entries[2].Key)

	assert.Equal(t, trie.TokenRange{First: 1, Count: 1}, entries[1].Range)
	assert.Equal(t, trie.TokenRange{First: 2, Count: 3}, entries[2].Range)
}

func TestImage_Bytes_Layout(t *testing.T) {
	img := Image{
		Magic:    0xBEEF,
		Links:    BuildLinks([]KeySpec{{Key: "a", First: 0, Count: 1}}),
		Tokens:   MakeTokens(1),
		Features: []byte{'x', 0},
	}

	raw := img.Bytes()
	require.Equal(t, 0x48+len(img.Links)*8+16+2, len(raw))

	// Encoding field defaults to "UTF-8" padded with NULs.
	assert.Equal(t, byte('U'), raw[0x28])
	assert.Equal(t, byte(0), raw[0x2D])
}
