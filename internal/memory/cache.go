package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL bounds how stale a served index may be when no append
// invalidates it earlier.
const DefaultCacheTTL = 30 * time.Minute

// Index is an immutable, point-in-time materialization of the store's
// parsed entries. It is rebuilt wholesale on every reload; there is no
// partial update.
type Index struct {
	Entries  []Entry
	LoadedAt time.Time
	Success  bool
	Source   string
}

// Len returns the number of indexed entries. Safe on a nil index.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.Entries)
}

// Cache amortizes repeated retrieval by holding the parsed index with a
// time-to-live. It is owned by its constructor's caller — no package-level
// state — so TTL and single-flight behavior are testable in isolation.
type Cache struct {
	store  Store
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger

	mu  sync.RWMutex
	idx *Index

	group singleflight.Group
}

// CacheOption customizes a Cache.
type CacheOption func(*Cache)

// WithTTL overrides the default 30-minute TTL.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock injects the time source. Tests use this to advance past the
// TTL without sleeping.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithCacheLogger sets the logger used for reload diagnostics.
func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCache creates a cache over the given store.
func NewCache(store Store, opts ...CacheOption) *Cache {
	c := &Cache{
		store:  store,
		ttl:    DefaultCacheTTL,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached index when it is within the TTL, otherwise
// reloads from the store. Concurrent callers during a miss share a single
// in-flight reload instead of each hitting disk.
func (c *Cache) Get(ctx context.Context) *Index {
	if idx := c.fresh(); idx != nil {
		return idx
	}

	v, _, _ := c.group.Do("reload", func() (any, error) {
		// A previous flight may have refreshed the cache while this
		// caller was queued behind the flight key.
		if idx := c.fresh(); idx != nil {
			return idx, nil
		}
		return c.reload(ctx), nil
	})
	return v.(*Index)
}

// Invalidate discards the cached index so the next Get reloads from disk.
// Called by the store owner immediately after a successful append.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.idx = nil
	c.mu.Unlock()
}

// fresh returns the cached index if it is still within the TTL.
func (c *Cache) fresh() *Index {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.idx != nil && c.now().Sub(c.idx.LoadedAt) < c.ttl {
		return c.idx
	}
	return nil
}

func (c *Cache) reload(ctx context.Context) *Index {
	result := c.store.Load(ctx)
	idx := &Index{
		Entries:  result.Entries,
		LoadedAt: c.now(),
		Success:  result.Success,
		Source:   result.Source,
	}
	if result.Err != nil {
		c.logger.Warn("memory: index rebuilt with degraded source",
			"source", result.Source, "entries", len(result.Entries), "reason", result.Err)
	}

	c.mu.Lock()
	c.idx = idx
	c.mu.Unlock()
	return idx
}
