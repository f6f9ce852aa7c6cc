package locator

import (
	"context"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/d-kuro/fsprobe/internal/logging"
	"github.com/d-kuro/fsprobe/internal/pathutil"
)

// CachedLocator remembers where targets were found under each root.
// Cached hits are re-checked against the filesystem before use, and misses
// are never cached. It is safe for concurrent use.
type CachedLocator struct {
	locator *Locator
	cache   *cache.Cache
	logger  *logging.Logger
}

// NewCached wraps l with an in-memory cache whose entries live for ttl.
func NewCached(l *Locator, ttl, cleanup time.Duration) *CachedLocator {
	return &CachedLocator{
		locator: l,
		cache:   cache.New(ttl, cleanup),
		logger:  l.logger,
	}
}

// Locate answers from the cache when the remembered file still exists and
// falls back to a full search otherwise.
func (c *CachedLocator) Locate(ctx context.Context, q *Query, root string) error {
	if q.Found {
		return nil
	}
	if q.Target == "" {
		q.Target = pathutil.FileName(q.Path)
	}

	key := cacheKey(root, q.Target)
	if v, ok := c.cache.Get(key); ok {
		path := v.(string)
		if c.locator.permits(path) && c.locator.probe.IsFile(path) {
			if mod, err := c.locator.probe.LastModified(path); err == nil {
				q.Found = true
				q.Path = path
				q.Modified = mod
				c.logger.Debug("Location cache hit", slog.String("target", q.Target), slog.String("path", path))
				return nil
			}
		}
		c.logger.Debug("Evicting stale location", slog.String("target", q.Target), slog.String("path", path))
		c.cache.Delete(key)
	}

	if err := c.locator.Locate(ctx, q, root); err != nil {
		return err
	}
	if q.Found {
		c.cache.Set(key, q.Path, cache.DefaultExpiration)
	}
	return nil
}

// Len returns the number of cached locations, expired ones included until
// the next cleanup.
func (c *CachedLocator) Len() int {
	return c.cache.ItemCount()
}

// Flush drops every cached location.
func (c *CachedLocator) Flush() {
	c.cache.Flush()
}

func cacheKey(root, target string) string {
	return pathutil.Format(root) + "\x00" + target
}
