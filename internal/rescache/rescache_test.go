package rescache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_PutGet(t *testing.T) {
	dir := t.TempDir()
	cache, err := Open(dir)
	require.NoError(t, err)
	defer cache.Close()

	_, ok := cache.Get("http://example.org/ns.belns")
	assert.False(t, ok)

	require.NoError(t, cache.Put("http://example.org/ns.belns", []byte("[Values]\nAKT1|GRP\n")))

	body, ok := cache.Get("http://example.org/ns.belns")
	require.True(t, ok)
	assert.Equal(t, "[Values]\nAKT1|GRP\n", string(body))
}

func TestCache_PutOverwrites(t *testing.T) {
	dir := t.TempDir()
	cache, err := Open(dir)
	require.NoError(t, err)
	defer cache.Close()

	require.NoError(t, cache.Put("u", []byte("first")))
	require.NoError(t, cache.Put("u", []byte("second")))

	body, ok := cache.Get("u")
	require.True(t, ok)
	assert.Equal(t, "second", string(body))
}
