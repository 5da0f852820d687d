// Package worker defines the ingest workers that drain the record
// queue into the store: dedupe, validate-by-store, invalidate caches.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/okian/gridiron/internal/domain/dedupe"
	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/pkg/logger"
	"github.com/okian/gridiron/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerMultiplier = 4 // multiplier for runtime.NumCPU()
	workerShutdownTimeout   = 5 * time.Second
	poolShutdownTimeout     = 30 * time.Second
)

// Record abstracts what workers read off the queue.
type Record = model.GameRecord

// Storer persists validated game records.
type Storer interface {
	PutGame(ctx context.Context, g model.GameRecord) error
}

// Deduper guards against replayed fixtures.
type Deduper interface {
	SeenAndRecord(ctx context.Context, key string) bool
	Unrecord(ctx context.Context, key string)
}

// Flusher invalidates a derived-view cache after new data lands.
type Flusher interface {
	Clear(ctx context.Context)
}

// Queue defines how workers receive records.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Record
}

// Worker processes queued records until stopped.
type Worker interface {
	// Run starts the worker loop until ctx is canceled.
	Run(ctx context.Context)

	// Shutdown gracefully stops the worker. It will process any
	// in-flight record before stopping.
	Shutdown(ctx context.Context) error
}

// InMemoryWorker implements Worker for ingesting game records.
type InMemoryWorker struct {
	queue    Queue
	deduper  Deduper
	store    Storer
	flushers []Flusher
	name     string

	// Shutdown control
	shutdown chan struct{}
	done     chan struct{}

	// Logging
	logger logger.Logger
}

// NewInMemoryWorker creates a new worker with configuration options.
func NewInMemoryWorker(q Queue, d Deduper, s Storer, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:    q,
		deduper:  d,
		store:    s,
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("worker"),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}

	return w
}

// Run starts the worker loop.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer func() {
		close(w.done)
	}()

	recordChan := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case r, ok := <-recordChan:
			if !ok {
				// Channel closed, worker should stop
				return
			}

			if err := w.processRecord(ctx, r); err != nil {
				w.logger.Error(ctx, "error processing record", logger.Error(err))
			}
		}
	}
}

// Shutdown gracefully stops the worker.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// processRecord handles a single game record: dedupe first, then store,
// then invalidate the response caches so the next read recomputes.
func (w *InMemoryWorker) processRecord(ctx context.Context, r Record) error {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Milliseconds()))
	}()

	key := dedupe.FixtureKey(r)
	if w.deduper.SeenAndRecord(ctx, key) {
		metrics.RecordGameDuplicate()
		w.logger.Debug(ctx, "duplicate fixture dropped", logger.String("fixture", key))
		return nil
	}

	if err := w.store.PutGame(ctx, r); err != nil {
		// Forget the fixture so a corrected record can be retried.
		w.deduper.Unrecord(ctx, key)
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "store_rejected")
		w.logger.Error(ctx, "store rejected record",
			logger.String("fixture", key),
			logger.Error(err),
		)
		return fmt.Errorf("store game %s: %w", key, err)
	}

	metrics.RecordGameIngested()
	for _, f := range w.flushers {
		f.Clear(ctx)
	}
	return nil
}

// Pool manages multiple workers.
type Pool struct {
	workers []*InMemoryWorker
	queue   Queue

	// Logging
	logger logger.Logger
}

// NewPool creates a new worker pool. workerCount < 1 sizes the pool
// from the CPU count.
func NewPool(workerCount int, q Queue, d Deduper, s Storer, opts ...Option) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}

	pool := &Pool{
		workers: make([]*InMemoryWorker, workerCount),
		queue:   q,
		logger:  logger.Get().Named("worker-pool"),
	}

	for i := 0; i < workerCount; i++ {
		pool.workers[i] = NewInMemoryWorker(
			q, d, s,
			append([]Option{WithName("worker-" + strconv.Itoa(i))}, opts...)...,
		)
	}

	metrics.UpdateWorkerActiveCount(workerCount)
	metrics.UpdateWorkerIdleCount(0)

	return pool
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Stop signals every worker and waits for them to wind down. Use
// Shutdown instead when queued records should drain first.
func (p *Pool) Stop() {
	for _, w := range p.workers {
		close(w.shutdown)
	}
	for _, w := range p.workers {
		select {
		case <-w.done:
		case <-time.After(workerShutdownTimeout):
		}
	}
}

// Shutdown closes the queue and waits for the workers to drain.
func (p *Pool) Shutdown(ctx context.Context) error {
	if closer, ok := p.queue.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "error closing queue", logger.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	for i, w := range p.workers {
		select {
		case <-w.done:
		case <-shutdownCtx.Done():
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
		}
	}

	metrics.UpdateWorkerActiveCount(0)
	return nil
}
