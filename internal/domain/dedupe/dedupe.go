// Package dedupe provides the fixture-level idempotency guard used by
// the ingest pipeline. The aggregation engine assumes each game appears
// once; this package is what makes that assumption hold when feeds
// replay or overlap.
package dedupe

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/okian/gridiron/internal/domain/model"
)

// FixtureKey derives the idempotency key for a game: season, week and
// both team names, case-folded. Two records of the same fixture always
// collide regardless of score or odds differences.
func FixtureKey(g model.GameRecord) string {
	return strings.ToLower(fmt.Sprintf("%d|%s|%s|%s", g.Season, g.Week, g.Home, g.Away))
}

// Deduper records seen fixture keys to ensure at-most-once ingestion.
type Deduper interface {
	// SeenAndRecord atomically checks whether key was seen and records
	// it if not. Returns true when key was already seen.
	SeenAndRecord(ctx context.Context, key string) bool

	// Unrecord forgets a key so the fixture can be retried. Used when a
	// record was marked seen but failed downstream (queue backpressure,
	// store rejection).
	Unrecord(ctx context.Context, key string)

	Size() int64
}

// node is one entry in the recency list.
type node struct {
	key  string
	next *node
}

func (n *node) reset() {
	n.key = ""
	n.next = nil
}

// inMemoryDeduper keeps seen keys in a map. Bounded mode (maxSize > 0)
// threads entries through a linked list so the oldest key can be
// evicted when the cap is reached; unbounded mode is just the map.
type inMemoryDeduper struct {
	mu       sync.RWMutex
	seen     map[string]*node // key -> node in bounded mode, nil otherwise
	head     *node            // most recently recorded key
	maxSize  int              // 0 or negative = unbounded
	size     atomic.Int64
	nodePool sync.Pool
}

// NewInMemoryDeduper creates an in-memory deduper. The default cap of
// 50000 keys covers decades of seasons with room to spare.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		maxSize: 50000,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.seen = make(map[string]*node)
	if d.maxSize > 0 {
		d.nodePool = sync.Pool{
			New: func() interface{} {
				return &node{}
			},
		}
	}
	return d
}

func (d *inMemoryDeduper) SeenAndRecord(ctx context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.seen[key]; exists {
		return true
	}

	if d.maxSize > 0 {
		if len(d.seen) >= d.maxSize {
			d.evictOldest()
		}
		n := d.nodePool.Get().(*node)
		n.key = key
		n.next = d.head
		d.head = n
		d.seen[key] = n
	} else {
		d.seen[key] = nil
	}
	d.size.Add(1)
	return false
}

func (d *inMemoryDeduper) Unrecord(ctx context.Context, key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, exists := d.seen[key]
	if !exists {
		return
	}
	delete(d.seen, key)
	d.size.Add(-1)

	if d.maxSize <= 0 {
		return
	}

	// Unlink from the recency list.
	if d.head == n {
		d.head = n.next
	} else {
		current := d.head
		for current != nil && current.next != n {
			current = current.next
		}
		if current != nil {
			current.next = n.next
		}
	}
	n.reset()
	d.nodePool.Put(n)
}

// evictOldest drops the tail of the recency list. Caller holds d.mu.
func (d *inMemoryDeduper) evictOldest() {
	if d.head == nil {
		return
	}

	var prev *node
	current := d.head
	for current.next != nil {
		prev = current
		current = current.next
	}

	delete(d.seen, current.key)
	current.reset()
	d.nodePool.Put(current)
	if prev == nil {
		d.head = nil
	} else {
		prev.next = nil
	}
	d.size.Add(-1)
}

// Size returns the current number of recorded keys.
func (d *inMemoryDeduper) Size() int64 {
	return d.size.Load()
}
