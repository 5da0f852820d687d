// Package cache provides the time-bounded response caches that sit in
// front of the aggregation views: a simple TTL cache and a
// dual-threshold variant that distinguishes fresh entries from stale
// but still usable ones.
//
// Caches are constructor-injected values, not package singletons; every
// service instance owns its own. Keys are normalized so that spacing
// and casing differences in request parameters hit the same entry.
package cache

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/okian/gridiron/pkg/metrics"
)

// Defaults for the response cache.
const (
	DefaultTTL           = 5 * time.Minute
	DefaultMaxEntries    = 1000
	DefaultEvictionBatch = 100
)

// entry is one cached value. Entries are immutable once written; Set
// replaces them wholesale.
type entry struct {
	value     any
	writtenAt time.Time
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Size      int    `json:"size"`
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Evictions uint64 `json:"evictions"`
}

// Cache is a TTL response cache with size-bounded batch eviction. One
// mutex serializes all access; reads can delete expired entries, so
// there is no read/write lock split.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry

	ttl   time.Duration
	max   int
	batch int
	clock func() time.Time
	name  string

	hits      uint64
	misses    uint64
	evictions uint64
}

// New creates a Cache with configuration options.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		ttl:     DefaultTTL,
		max:     DefaultMaxEntries,
		batch:   DefaultEvictionBatch,
		clock:   time.Now,
		name:    "response",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value for key if present and not expired.
// Expired entries are deleted on the spot and reported as misses.
func (c *Cache) Get(ctx context.Context, key string) (any, bool) {
	k := normalizeKey(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[k]
	if !ok {
		c.misses++
		metrics.RecordCacheMiss(c.name)
		return nil, false
	}
	if c.clock().Sub(e.writtenAt) > c.ttl {
		delete(c.entries, k)
		c.misses++
		metrics.RecordCacheMiss(c.name)
		return nil, false
	}
	c.hits++
	metrics.RecordCacheHit(c.name)
	return e.value, true
}

// Set stores value under key, overwriting any previous entry. When the
// insert pushes the cache past its ceiling, the oldest entries by write
// time are evicted in one batch.
func (c *Cache) Set(ctx context.Context, key string, value any) {
	k := normalizeKey(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[k] = entry{value: value, writtenAt: c.clock()}
	if len(c.entries) > c.max {
		n := evictOldest(c.entries, c.batch)
		c.evictions += uint64(n)
		metrics.RecordCacheEvictions(c.name, n)
	}
}

// Clear drops every entry. Counters survive; they are lifetime totals.
func (c *Cache) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats(ctx context.Context) Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Size:      len(c.entries),
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}

// normalizeKey canonicalizes a cache key: trimmed, lowercased, inner
// whitespace runs collapsed to single spaces.
func normalizeKey(key string) string {
	return strings.Join(strings.Fields(strings.ToLower(key)), " ")
}

// evictOldest removes up to batch entries with the oldest write times
// and returns how many were removed. Caller holds the cache lock.
func evictOldest(entries map[string]entry, batch int) int {
	if batch <= 0 || len(entries) == 0 {
		return 0
	}

	type aged struct {
		key       string
		writtenAt time.Time
	}
	all := make([]aged, 0, len(entries))
	for k, e := range entries {
		all = append(all, aged{key: k, writtenAt: e.writtenAt})
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].writtenAt.Equal(all[j].writtenAt) {
			return all[i].writtenAt.Before(all[j].writtenAt)
		}
		return all[i].key < all[j].key
	})

	if batch > len(all) {
		batch = len(all)
	}
	for _, a := range all[:batch] {
		delete(entries, a.key)
	}
	return batch
}
