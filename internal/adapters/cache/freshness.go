package cache

import (
	"context"
	"sync"
	"time"

	"github.com/okian/gridiron/pkg/metrics"
)

// Defaults for the dual-threshold cache.
const (
	DefaultFreshFor               = 1 * time.Minute
	DefaultUsableFor              = 5 * time.Minute
	DefaultFreshnessMaxEntries    = 500
	DefaultFreshnessEvictionBatch = 50
)

// Freshness classifies a FreshnessCache lookup.
type Freshness int

const (
	// Miss means the key is absent or past its usable window.
	Miss Freshness = iota
	// Stale means the value is usable but a refresh is advisable.
	Stale
	// Fresh means the value is inside its fresh window.
	Fresh
)

// String returns the lowercase name of the freshness state.
func (f Freshness) String() string {
	switch f {
	case Fresh:
		return "fresh"
	case Stale:
		return "stale"
	default:
		return "miss"
	}
}

// FreshnessCache is a TTL cache with two age thresholds: entries
// younger than the fresh window are authoritative, entries inside the
// usable window can still be served while a refresh happens, and older
// entries are gone. Sizing and eviction behave like Cache.
type FreshnessCache struct {
	mu      sync.Mutex
	entries map[string]entry

	freshFor  time.Duration
	usableFor time.Duration
	max       int
	batch     int
	clock     func() time.Time
	name      string

	hits      uint64
	misses    uint64
	evictions uint64
}

// NewFreshness creates a FreshnessCache with configuration options.
func NewFreshness(opts ...FreshnessOption) *FreshnessCache {
	c := &FreshnessCache{
		entries:   make(map[string]entry),
		freshFor:  DefaultFreshFor,
		usableFor: DefaultUsableFor,
		max:       DefaultFreshnessMaxEntries,
		batch:     DefaultFreshnessEvictionBatch,
		clock:     time.Now,
		name:      "freshness",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value and its freshness. Entries past the
// usable window are deleted on the spot and reported as Miss. Both
// Fresh and Stale lookups count as hits.
func (c *FreshnessCache) Get(ctx context.Context, key string) (any, Freshness) {
	k := normalizeKey(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[k]
	if !ok {
		c.misses++
		metrics.RecordCacheMiss(c.name)
		return nil, Miss
	}

	age := c.clock().Sub(e.writtenAt)
	switch {
	case age <= c.freshFor:
		c.hits++
		metrics.RecordCacheHit(c.name)
		return e.value, Fresh
	case age <= c.usableFor:
		c.hits++
		metrics.RecordCacheHit(c.name)
		return e.value, Stale
	default:
		delete(c.entries, k)
		c.misses++
		metrics.RecordCacheMiss(c.name)
		return nil, Miss
	}
}

// Set stores value under key, evicting the oldest batch when the insert
// pushes the cache past its ceiling.
func (c *FreshnessCache) Set(ctx context.Context, key string, value any) {
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

// Clear drops every entry.
func (c *FreshnessCache) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Stats returns a snapshot of the cache counters.
func (c *FreshnessCache) Stats(ctx context.Context) Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Size:      len(c.entries),
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}
