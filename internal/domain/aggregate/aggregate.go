// Package aggregate provides the generic group/fold/rank/truncate
// primitive behind every derived statistical view.
//
// A view is: a key extractor mapping each game to the accumulators it
// touches, a fold updating one accumulator with one game, a finish step
// deriving the output row per key, and a total-order comparator. The
// package guarantees reproducible output: rows enter the sort in sorted
// key order, the sort is stable, and the comparator supplied by the
// caller must be a total order.
package aggregate

import (
	"cmp"
	"slices"

	"github.com/okian/gridiron/internal/domain/model"
)

// KeyFunc maps a game to zero or more accumulator keys, one per
// perspective that the game contributes to (commonly both teams).
type KeyFunc[K cmp.Ordered] func(g model.GameRecord) []K

// FoldFunc updates the accumulator for key with one game and returns it.
// The accumulator starts as the zero value of A on first reference.
type FoldFunc[K cmp.Ordered, A any] func(key K, acc A, g model.GameRecord) A

// FinishFunc derives the output row for one key after the fold pass.
type FinishFunc[K cmp.Ordered, A, R any] func(key K, acc A) R

// LessFunc orders output rows. It must be a total order: no two distinct
// rows may compare equal in both directions, or output ordering would
// depend on map iteration.
type LessFunc[R any] func(a, b R) bool

// Aggregate runs one view end to end: fold records into per-key
// accumulators, finish each key into a row, sort, and truncate to topN
// rows (topN <= 0 keeps everything). Empty input yields an empty,
// non-nil slice.
func Aggregate[K cmp.Ordered, A, R any](
	records []model.GameRecord,
	keys KeyFunc[K],
	fold FoldFunc[K, A],
	finish FinishFunc[K, A, R],
	less LessFunc[R],
	topN int,
) []R {
	accs := make(map[K]A)
	order := make([]K, 0)

	for _, g := range records {
		for _, k := range keys(g) {
			acc, ok := accs[k]
			if !ok {
				order = append(order, k)
			}
			accs[k] = fold(k, acc, g)
		}
	}

	// Sorted key order makes row order deterministic before the stable
	// sort, so equal rows cannot flip with input ordering.
	slices.Sort(order)

	rows := make([]R, 0, len(order))
	for _, k := range order {
		rows = append(rows, finish(k, accs[k]))
	}
	slices.SortStableFunc(rows, func(a, b R) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})

	if topN > 0 && len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}

// Head returns a copy of the first n rows (all rows when n <= 0 or the
// slice is shorter).
func Head[R any](rows []R, n int) []R {
	if n <= 0 || n > len(rows) {
		n = len(rows)
	}
	out := make([]R, n)
	copy(out, rows[:n])
	return out
}

// Tail returns a copy of the last n rows in reverse order, so the worst
// row comes first. Used for bottom-N leaderboards.
func Tail[R any](rows []R, n int) []R {
	if n <= 0 || n > len(rows) {
		n = len(rows)
	}
	out := make([]R, 0, n)
	for i := len(rows) - 1; i >= len(rows)-n; i-- {
		out = append(out, rows[i])
	}
	return out
}
