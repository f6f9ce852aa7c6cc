package locator

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-kuro/fsprobe/internal/pathutil"
)

func TestCachedLocatorHit(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/b/target.txt")

	fsys := newTestFS()
	c := NewCached(New(fsys, nil), time.Minute, time.Minute)

	first := NewQuery("target.txt")
	require.NoError(t, c.Locate(context.Background(), first, root))
	require.True(t, first.Found)
	assert.Equal(t, 1, c.Len())

	reads := fsys.reads.Load()
	second := NewQuery("target.txt")
	require.NoError(t, c.Locate(context.Background(), second, root))

	assert.True(t, second.Found)
	assert.Equal(t, first.Path, second.Path)
	assert.True(t, first.Modified.Equal(second.Modified))
	assert.Equal(t, reads, fsys.reads.Load(), "a cache hit must not list directories")
}

func TestCachedLocatorRevalidates(t *testing.T) {
	root := t.TempDir()
	old := writeFile(t, root, "a/target.txt")

	c := NewCached(New(nil, nil), time.Minute, time.Minute)
	q := NewQuery("target.txt")
	require.NoError(t, c.Locate(context.Background(), q, root))
	require.True(t, q.Found)

	require.NoError(t, os.Remove(old))
	moved := writeFile(t, root, "z/target.txt")

	q = NewQuery("target.txt")
	require.NoError(t, c.Locate(context.Background(), q, root))
	require.True(t, q.Found)
	assert.Equal(t, pathutil.Format(moved), q.Path)

	require.NoError(t, os.Remove(moved))
	q = NewQuery("target.txt")
	require.NoError(t, c.Locate(context.Background(), q, root))
	assert.False(t, q.Found)
	assert.Equal(t, 0, c.Len(), "stale entries are evicted and misses are not cached")
}

func TestCachedLocatorKeysByRoot(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	writeFile(t, rootA, "target.txt")
	writeFile(t, rootB, "nested/target.txt")

	c := NewCached(New(nil, nil), time.Minute, time.Minute)

	qa := NewQuery("target.txt")
	require.NoError(t, c.Locate(context.Background(), qa, rootA))
	qb := NewQuery("target.txt")
	require.NoError(t, c.Locate(context.Background(), qb, rootB))

	assert.Equal(t, pathutil.Join(rootA, "target.txt"), qa.Path)
	assert.Equal(t, pathutil.Join(filepath.Join(rootB, "nested"), "target.txt"), qb.Path)
	assert.Equal(t, 2, c.Len())

	c.Flush()
	assert.Equal(t, 0, c.Len())
}

func TestCachedLocatorFoundQueryIsNoop(t *testing.T) {
	c := NewCached(New(nil, nil), time.Minute, time.Minute)
	q := &Query{Found: true, Path: "kept", Target: "kept"}
	require.NoError(t, c.Locate(context.Background(), q, t.TempDir()))
	assert.Equal(t, "kept", q.Path)
	assert.Equal(t, 0, c.Len())
}

func TestCachedLocatorRefiltersHits(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/target.txt")

	allow := true
	c := NewCached(New(nil, nil).WithPathFilter(func(string) bool { return allow }), time.Minute, time.Minute)

	q := NewQuery("target.txt")
	require.NoError(t, c.Locate(context.Background(), q, root))
	require.True(t, q.Found)

	allow = false
	q = NewQuery("target.txt")
	require.NoError(t, c.Locate(context.Background(), q, root))
	assert.False(t, q.Found)
	assert.Equal(t, 0, c.Len())
}
