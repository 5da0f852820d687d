package cache

import "time"

// Option applies a configuration option to the Cache.
type Option func(*Cache)

// WithTTL sets the entry lifetime. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithMaxEntries sets the size ceiling. Non-positive values are ignored.
func WithMaxEntries(max int) Option {
	return func(c *Cache) {
		if max > 0 {
			c.max = max
		}
	}
}

// WithEvictionBatch sets how many of the oldest entries one overflow
// evicts. Non-positive values are ignored.
func WithEvictionBatch(batch int) Option {
	return func(c *Cache) {
		if batch > 0 {
			c.batch = batch
		}
	}
}

// WithClock overrides the time source. Test hook.
func WithClock(clock func() time.Time) Option {
	return func(c *Cache) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithName sets the instance name used as the metrics label.
func WithName(name string) Option {
	return func(c *Cache) {
		if name != "" {
			c.name = name
		}
	}
}

// FreshnessOption applies a configuration option to the FreshnessCache.
type FreshnessOption func(*FreshnessCache)

// WithFreshFor sets the fresh window. Non-positive values are ignored.
func WithFreshFor(d time.Duration) FreshnessOption {
	return func(c *FreshnessCache) {
		if d > 0 {
			c.freshFor = d
		}
	}
}

// WithUsableFor sets the usable window. Non-positive values are ignored.
func WithUsableFor(d time.Duration) FreshnessOption {
	return func(c *FreshnessCache) {
		if d > 0 {
			c.usableFor = d
		}
	}
}

// WithFreshnessMaxEntries sets the size ceiling.
func WithFreshnessMaxEntries(max int) FreshnessOption {
	return func(c *FreshnessCache) {
		if max > 0 {
			c.max = max
		}
	}
}

// WithFreshnessEvictionBatch sets the overflow eviction batch size.
func WithFreshnessEvictionBatch(batch int) FreshnessOption {
	return func(c *FreshnessCache) {
		if batch > 0 {
			c.batch = batch
		}
	}
}

// WithFreshnessClock overrides the time source. Test hook.
func WithFreshnessClock(clock func() time.Time) FreshnessOption {
	return func(c *FreshnessCache) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithFreshnessName sets the instance name used as the metrics label.
func WithFreshnessName(name string) FreshnessOption {
	return func(c *FreshnessCache) {
		if name != "" {
			c.name = name
		}
	}
}
