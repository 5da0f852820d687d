package worker_test

import (
	"context"
	"sync"
	"testing"
	"time"

	worker "github.com/okian/gridiron/internal/adapters/mq/worker"
	repository "github.com/okian/gridiron/internal/adapters/repository"
	dedupe "github.com/okian/gridiron/internal/domain/dedupe"
	model "github.com/okian/gridiron/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// chanQueue adapts a plain channel to the worker's Queue interface.
type chanQueue struct {
	ch chan worker.Record
}

func newChanQueue(buf int) *chanQueue {
	return &chanQueue{ch: make(chan worker.Record, buf)}
}

func (q *chanQueue) Dequeue(ctx context.Context) <-chan worker.Record {
	return q.ch
}

// countingFlusher records Clear calls.
type countingFlusher struct {
	mu    sync.Mutex
	count int
}

func (f *countingFlusher) Clear(ctx context.Context) {
	f.mu.Lock()
	f.count++
	f.mu.Unlock()
}

func (f *countingFlusher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count
}

func validGame(week string) model.GameRecord {
	return model.GameRecord{
		Season: 2023, Week: week,
		Home: "Buffalo Bills", Away: "New York Jets",
		HomeScore: 24, AwayScore: 17,
	}
}

func drainAndStop(w *worker.InMemoryWorker, q *chanQueue) {
	close(q.ch)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = w.Shutdown(ctx)
}

func TestWorkerIngestsRecords(t *testing.T) {
	Convey("Given a worker over a store and deduper", t, func() {
		q := newChanQueue(10)
		store := repository.NewMemoryStore()
		d := dedupe.NewInMemoryDeduper()
		flusher := &countingFlusher{}
		w := worker.NewInMemoryWorker(q, d, store, worker.WithFlushers(flusher))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go w.Run(ctx)

		Convey("When a fresh record arrives", func() {
			q.ch <- validGame("1")
			drainAndStop(w, q)

			Convey("Then it lands in the store and flushes caches", func() {
				So(store.Len(context.Background()), ShouldEqual, 1)
				So(flusher.calls(), ShouldEqual, 1)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When the same fixture is replayed", func() {
			q.ch <- validGame("1")
			q.ch <- validGame("1")
			drainAndStop(w, q)

			Convey("Then only one copy is stored", func() {
				So(store.Len(context.Background()), ShouldEqual, 1)
				So(flusher.calls(), ShouldEqual, 1)
			})
		})

		Convey("When the store rejects a malformed record", func() {
			bad := validGame("2")
			bad.HomeScore = -1
			q.ch <- bad
			drainAndStop(w, q)

			Convey("Then nothing is stored and the fixture can be retried", func() {
				So(store.Len(context.Background()), ShouldEqual, 0)
				So(flusher.calls(), ShouldEqual, 0)
				So(d.Size(), ShouldEqual, 0)
			})
		})
	})
}

func TestPoolIngestsConcurrently(t *testing.T) {
	Convey("Given a pool of workers sharing one deduper", t, func() {
		q := newChanQueue(100)
		store := repository.NewMemoryStore()
		d := dedupe.NewInMemoryDeduper()
		pool := worker.NewPool(4, q, d, store)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		pool.Start(ctx)

		Convey("When distinct and duplicate fixtures arrive together", func() {
			weeks := []string{"1", "2", "3", "4", "5"}
			for i := 0; i < 3; i++ {
				for _, wk := range weeks {
					q.ch <- validGame(wk)
				}
			}
			close(q.ch)

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer shutdownCancel()
			So(pool.Shutdown(shutdownCtx), ShouldBeNil)

			Convey("Then each fixture is stored exactly once", func() {
				So(store.Len(context.Background()), ShouldEqual, len(weeks))
			})
		})
	})
}
