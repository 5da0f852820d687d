// Package service wires the ingest pipeline and the aggregation views
// into one lifecycle-managed component. It owns the store, the dedupe
// index, the queue, the worker pool, and the response caches, and it is
// the only layer the HTTP adapter talks to.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/gridiron/internal/adapters/cache"
	"github.com/okian/gridiron/internal/adapters/mq/queue"
	"github.com/okian/gridiron/internal/adapters/mq/worker"
	"github.com/okian/gridiron/internal/adapters/repository"
	"github.com/okian/gridiron/internal/domain/dedupe"
	"github.com/okian/gridiron/internal/domain/impact"
	"github.com/okian/gridiron/internal/domain/leaderboard"
	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/internal/domain/rating"
	"github.com/okian/gridiron/internal/domain/standings"
	"github.com/okian/gridiron/pkg/logger"
	"github.com/okian/gridiron/pkg/metrics"
)

// Defaults used when no option overrides them.
const (
	defaultQueueSize  = 100000
	defaultDedupeSize = 50000
)

// allSeasons selects every stored season in view methods that accept a
// season filter.
const allSeasons = 0

// Service coordinates ingestion and serves the aggregation views.
type Service struct {
	mu sync.Mutex

	store     repository.Store
	deduper   dedupe.Deduper
	queue     queue.Queue
	pool      *worker.Pool
	views     *cache.Cache
	freshness *cache.FreshnessCache
	rater     *rating.Rater

	workerCount  int
	queueSize    int
	dedupeSize   int
	viewTTL      time.Duration
	powerWeights map[string]float64

	started bool
	logger  logger.Logger
}

// New creates a Service with configuration options. Start must be
// called before the service accepts games or serves views.
func New(opts ...Option) *Service {
	s := &Service{
		queueSize:  defaultQueueSize,
		dedupeSize: defaultDedupeSize,
		logger:     logger.Named("service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start builds and connects the pipeline components: store, dedupe
// index, queue, caches, and the worker pool draining the queue into the
// store. Safe to call once; subsequent calls return ErrAlreadyStarted.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}

	s.store = repository.NewMemoryStore(
		repository.WithTeams(repository.DefaultTeams()),
	)
	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	s.queue = queue.NewInMemoryQueue(
		queue.WithCapacity(s.queueSize),
		queue.WithBufferSize(s.queueSize),
	)

	viewOpts := []cache.Option{cache.WithName("views")}
	if s.viewTTL > 0 {
		viewOpts = append(viewOpts, cache.WithTTL(s.viewTTL))
	}
	s.views = cache.New(viewOpts...)
	s.freshness = cache.NewFreshness(cache.WithFreshnessName("reports"))

	s.rater = rating.New(rating.WithWeightsFromConfig(s.powerWeights))

	s.pool = worker.NewPool(s.workerCount, s.queue, s.deduper, s.store,
		worker.WithLogger(s.logger),
		worker.WithFlushers(s.views, s.freshness),
	)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "service started",
		logger.Int("queue_size", s.queueSize),
		logger.Int("dedupe_size", s.dedupeSize),
	)
	return nil
}

// Stop drains the pipeline and releases the components. The queue is
// closed first so workers finish the backlog before the pool shuts
// down.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	s.started = false

	if err := s.pool.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down worker pool: %w", err)
	}
	s.views.Clear(ctx)
	s.freshness.Clear(ctx)
	s.logger.Info(ctx, "service stopped")
	return nil
}

// Enqueue submits a game for asynchronous ingestion. It reports false
// when the service is not running or the queue rejects the record.
func (s *Service) Enqueue(ctx context.Context, g model.GameRecord) bool {
	s.mu.Lock()
	q := s.queue
	running := s.started
	s.mu.Unlock()

	if !running || q == nil {
		return false
	}
	return q.Enqueue(ctx, g)
}

// Standings returns the division tables for one season, or for all
// stored seasons combined when season is 0.
func (s *Service) Standings(ctx context.Context, season int) ([]standings.DivisionTable, error) {
	key := fmt.Sprintf("standings %d", season)
	v, err := s.cachedView(ctx, key, "standings", func(games []model.GameRecord) any {
		return standings.Compute(games, s.store.Teams(ctx))
	}, season)
	if err != nil {
		return nil, err
	}
	return v.([]standings.DivisionTable), nil
}

// ATS returns the against-the-spread leaderboard for one season, or
// across all seasons when season is 0.
func (s *Service) ATS(ctx context.Context, season, n int) (leaderboard.ATSBoard, error) {
	key := fmt.Sprintf("ats %d %d", season, n)
	v, err := s.cachedView(ctx, key, "ats", func(games []model.GameRecord) any {
		return leaderboard.ATS(games, n)
	}, season)
	if err != nil {
		return leaderboard.ATSBoard{}, err
	}
	return v.(leaderboard.ATSBoard), nil
}

// ATSSeasons returns the best and worst single-season ATS runs across
// all stored seasons.
func (s *Service) ATSSeasons(ctx context.Context, n int) (leaderboard.ATSBoard, error) {
	key := fmt.Sprintf("ats-seasons %d", n)
	v, err := s.cachedView(ctx, key, "ats_seasons", func(games []model.GameRecord) any {
		return leaderboard.ATSSeasons(games, n)
	}, allSeasons)
	if err != nil {
		return leaderboard.ATSBoard{}, err
	}
	return v.(leaderboard.ATSBoard), nil
}

// Power returns the composite power rankings for one season, or across
// all seasons when season is 0.
func (s *Service) Power(ctx context.Context, season, n int) ([]leaderboard.PowerRow, error) {
	key := fmt.Sprintf("power %d %d", season, n)
	v, err := s.cachedView(ctx, key, "power", func(games []model.GameRecord) any {
		return leaderboard.Power(games, s.rater, n)
	}, season)
	if err != nil {
		return nil, err
	}
	return v.([]leaderboard.PowerRow), nil
}

// Strength returns strength-of-victory and strength-of-schedule rows
// for one season, or across all seasons when season is 0.
func (s *Service) Strength(ctx context.Context, season int) ([]leaderboard.StrengthRow, error) {
	key := fmt.Sprintf("strength %d", season)
	v, err := s.cachedView(ctx, key, "strength", func(games []model.GameRecord) any {
		return leaderboard.Strength(games)
	}, season)
	if err != nil {
		return nil, err
	}
	return v.([]leaderboard.StrengthRow), nil
}

// DraftValue correlates draft capital with subsequent wins across all
// stored seasons. The view walks every game and pick, so it is served
// through the freshness cache: a stale copy is returned immediately
// while a background refresh recomputes it.
func (s *Service) DraftValue(ctx context.Context, n int) (leaderboard.DraftValue, error) {
	key := fmt.Sprintf("draft-value %d", n)
	v, err := s.reportView(ctx, key, "draft_value", func() any {
		return leaderboard.ComputeDraftValue(s.store.AllGames(ctx), s.store.DraftPicks(ctx), n)
	})
	if err != nil {
		return leaderboard.DraftValue{}, err
	}
	return v.(leaderboard.DraftValue), nil
}

// LeagueSplits returns the league-wide situational records (favorites
// ATS, home ATS, upsets, totals). Served through the freshness cache
// like DraftValue.
func (s *Service) LeagueSplits(ctx context.Context) (leaderboard.LeagueSplits, error) {
	v, err := s.reportView(ctx, "league-splits", "league_splits", func() any {
		return leaderboard.ComputeLeagueSplits(s.store.AllGames(ctx))
	})
	if err != nil {
		return leaderboard.LeagueSplits{}, err
	}
	return v.(leaderboard.LeagueSplits), nil
}

// Impact bundles the play-detail derived reports. The upstream feed
// does not carry per-side detail yet, so the profiles run over
// zero-valued details until it does.
type Impact struct {
	Quarters  impact.QuarterProfile `json:"quarters"`
	Penalties impact.PenaltyImpact  `json:"penalties"`
	RedZone   []impact.RedZoneRow   `json:"red_zone"`
}

// SituationalImpact returns the quarter, penalty, and red-zone reports
// over all stored games.
func (s *Service) SituationalImpact(ctx context.Context) (Impact, error) {
	v, err := s.reportView(ctx, "impact", "impact", func() any {
		details := make([]model.GameDetail, 0, s.store.Len(ctx))
		for _, g := range s.store.AllGames(ctx) {
			details = append(details, model.GameDetail{Game: g})
		}
		return Impact{
			Quarters:  impact.Quarters(details),
			Penalties: impact.Penalties(details),
			RedZone:   impact.RedZone(details),
		}
	})
	if err != nil {
		return Impact{}, err
	}
	return v.(Impact), nil
}

// Seasons returns the distinct stored seasons in ascending order.
func (s *Service) Seasons(ctx context.Context) ([]int, error) {
	if !s.running() {
		return nil, ErrNotStarted
	}
	return s.store.Seasons(ctx), nil
}

// Teams returns the league team directory.
func (s *Service) Teams(ctx context.Context) ([]model.TeamInfo, error) {
	if !s.running() {
		return nil, ErrNotStarted
	}
	return s.store.Teams(ctx), nil
}

// PutDraftPicks replaces the stored first-round picks and invalidates
// the cached draft-value report.
func (s *Service) PutDraftPicks(ctx context.Context, picks []model.DraftPick) error {
	if !s.running() {
		return ErrNotStarted
	}
	s.store.PutDraftPicks(ctx, picks)
	s.views.Clear(ctx)
	s.freshness.Clear(ctx)
	return nil
}

// GetStats returns operational counters for the stats endpoint.
func (s *Service) GetStats(ctx context.Context) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := map[string]any{
		"running": s.started,
	}
	if !s.started {
		return stats
	}
	viewStats := s.views.Stats(ctx)
	reportStats := s.freshness.Stats(ctx)
	stats["games_stored"] = s.store.Len(ctx)
	stats["seasons_stored"] = len(s.store.Seasons(ctx))
	stats["queue_depth"] = s.queue.Len(ctx)
	stats["dedupe_size"] = s.deduper.Size()
	stats["view_cache"] = map[string]any{
		"size":      viewStats.Size,
		"hits":      viewStats.Hits,
		"misses":    viewStats.Misses,
		"evictions": viewStats.Evictions,
	}
	stats["report_cache"] = map[string]any{
		"size":      reportStats.Size,
		"hits":      reportStats.Hits,
		"misses":    reportStats.Misses,
		"evictions": reportStats.Evictions,
	}
	return stats
}

func (s *Service) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// cachedView serves one aggregation through the TTL response cache,
// computing it from the stored games on a miss.
func (s *Service) cachedView(ctx context.Context, key, view string, compute func([]model.GameRecord) any, season int) (any, error) {
	if !s.running() {
		return nil, ErrNotStarted
	}
	if v, ok := s.views.Get(ctx, key); ok {
		return v, nil
	}

	start := time.Now()
	games := s.gamesFor(ctx, season)
	v := compute(games)
	metrics.RecordComputeDuration(view, float64(time.Since(start).Milliseconds()))

	s.views.Set(ctx, key, v)
	return v, nil
}

// reportView serves one heavy report through the freshness cache. A
// fresh copy is returned as-is; a stale copy is returned immediately
// while a goroutine recomputes it; a miss computes synchronously.
func (s *Service) reportView(ctx context.Context, key, view string, compute func() any) (any, error) {
	if !s.running() {
		return nil, ErrNotStarted
	}
	v, state := s.freshness.Get(ctx, key)
	switch state {
	case cache.Fresh:
		return v, nil
	case cache.Stale:
		go s.refreshReport(key, view, compute)
		return v, nil
	}

	v = s.timedCompute(view, compute)
	s.freshness.Set(ctx, key, v)
	return v, nil
}

func (s *Service) refreshReport(key, view string, compute func() any) {
	ctx := context.Background()
	if !s.running() {
		return
	}
	s.freshness.Set(ctx, key, s.timedCompute(view, compute))
}

func (s *Service) timedCompute(view string, compute func() any) any {
	start := time.Now()
	v := compute()
	metrics.RecordComputeDuration(view, float64(time.Since(start).Milliseconds()))
	return v
}

func (s *Service) gamesFor(ctx context.Context, season int) []model.GameRecord {
	if season == allSeasons {
		return s.store.AllGames(ctx)
	}
	return s.store.GamesBySeason(ctx, season)
}
