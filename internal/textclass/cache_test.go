package textclass

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c, err := OpenCache("hale-test")
	require.NoError(t, err)
	return c
}

func TestCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	corpus := feverCorpus()
	key := DigestOf(corpus)
	trained := Train(corpus)

	require.NoError(t, c.Save(key, trained))

	loaded, ok, err := c.Load(key)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, trained.Labels(), loaded.Labels())
	assert.Equal(t,
		trained.Predict("chills and high temperature"),
		loaded.Predict("chills and high temperature"))
}

func TestCacheMissOnUnknownKey(t *testing.T) {
	c := newTestCache(t)

	m, ok, err := c.Load(DigestOf(feverCorpus()))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, m)
}

func TestCacheCorruptBlobReportsError(t *testing.T) {
	c := newTestCache(t)
	key := DigestOf(feverCorpus())

	require.NoError(t, os.WriteFile(c.pathFor(key), []byte("not msgpack"), 0o644))

	m, ok, err := c.Load(key)
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Nil(t, m)
}

func TestCacheSchemaMismatchIsMiss(t *testing.T) {
	c := newTestCache(t)
	key := DigestOf(feverCorpus())

	stale, err := msgpack.Marshal(&modelPayload{Schema: cacheSchemaVersion + 1})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(c.pathFor(key), stale, 0o644))

	m, ok, err := c.Load(key)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, m)
}

func TestDigestChangesWithCorpus(t *testing.T) {
	base := feverCorpus()
	edited := feverCorpus()
	edited[0].Text = "very high temperature"

	assert.NotEqual(t, DigestOf(base), DigestOf(edited))
	assert.Equal(t, DigestOf(base), DigestOf(feverCorpus()))
}

func TestCacheDirUnderXDG(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", root)

	c, err := OpenCache("hale-test")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(c.Dir(), filepath.Join(root, "hale-test")))
	info, err := os.Stat(c.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDropAllRemovesBlobs(t *testing.T) {
	c := newTestCache(t)
	key := DigestOf(feverCorpus())
	require.NoError(t, c.Save(key, Train(feverCorpus())))

	require.NoError(t, c.DropAll())

	_, ok, err := c.Load(key)
	require.NoError(t, err)
	assert.False(t, ok)
}
