package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/pkg/metrics"
)

// MemoryStore is the in-memory Store implementation: a season index
// over append-only game slices plus the team directory and draft picks.
// Reads return non-nil copies so callers can never alias internal state
// and empty results marshal as [] rather than null.
type MemoryStore struct {
	mu       sync.RWMutex
	bySeason map[int][]model.GameRecord
	seasons  []int // sorted ascending, mirrors bySeason keys
	count    int
	teams    []model.TeamInfo
	picks    []model.DraftPick
}

// NewMemoryStore creates an empty MemoryStore with configuration
// options.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		bySeason: make(map[int][]model.GameRecord),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PutGame validates and stores one game.
func (s *MemoryStore) PutGame(ctx context.Context, g model.GameRecord) error {
	if err := validate(g); err != nil {
		metrics.RecordGameRejected()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bySeason[g.Season]; !ok {
		i, _ := slices.BinarySearch(s.seasons, g.Season)
		s.seasons = slices.Insert(s.seasons, i, g.Season)
	}
	s.bySeason[g.Season] = append(s.bySeason[g.Season], g)
	s.count++

	metrics.UpdateGamesStored(s.count)
	metrics.UpdateSeasonsStored(len(s.seasons))
	return nil
}

func validate(g model.GameRecord) error {
	home := strings.TrimSpace(g.Home)
	away := strings.TrimSpace(g.Away)
	switch {
	case home == "" || away == "":
		return fmt.Errorf("%w: %q vs %q", ErrMissingTeam, g.Home, g.Away)
	case strings.EqualFold(home, away):
		return fmt.Errorf("%w: %q", ErrSameTeam, g.Home)
	case g.HomeScore < 0 || g.AwayScore < 0:
		return fmt.Errorf("%w: %d-%d", ErrInvalidScore, g.HomeScore, g.AwayScore)
	case g.Season <= 0:
		return fmt.Errorf("%w: %d", ErrInvalidSeason, g.Season)
	}
	return nil
}

// GamesBySeason returns every stored game for one season. Unknown
// seasons yield an empty slice.
func (s *MemoryStore) GamesBySeason(ctx context.Context, season int) []model.GameRecord {
	defer timeQuery(time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := s.bySeason[season]
	return append(make([]model.GameRecord, 0, len(games)), games...)
}

// AllGames returns every stored game, season by season in ascending
// order.
func (s *MemoryStore) AllGames(ctx context.Context) []model.GameRecord {
	defer timeQuery(time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.GameRecord, 0, s.count)
	for _, season := range s.seasons {
		out = append(out, s.bySeason[season]...)
	}
	return out
}

func timeQuery(start time.Time) {
	metrics.RecordStoreQueryLatency(float64(time.Since(start).Microseconds()) / 1000.0)
}

// Seasons returns the distinct stored seasons in ascending order.
func (s *MemoryStore) Seasons(ctx context.Context) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]int, 0, len(s.seasons)), s.seasons...)
}

// PutTeams replaces the league team directory.
func (s *MemoryStore) PutTeams(ctx context.Context, teams []model.TeamInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = slices.Clone(teams)
}

// Teams returns the league team directory.
func (s *MemoryStore) Teams(ctx context.Context) []model.TeamInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]model.TeamInfo, 0, len(s.teams)), s.teams...)
}

// PutDraftPicks replaces the stored draft picks.
func (s *MemoryStore) PutDraftPicks(ctx context.Context, picks []model.DraftPick) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.picks = slices.Clone(picks)
}

// DraftPicks returns the stored draft picks.
func (s *MemoryStore) DraftPicks(ctx context.Context) []model.DraftPick {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]model.DraftPick, 0, len(s.picks)), s.picks...)
}

// Len returns the number of stored games.
func (s *MemoryStore) Len(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}
