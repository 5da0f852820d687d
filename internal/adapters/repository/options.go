package repository

import "github.com/okian/gridiron/internal/domain/model"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithTeams preloads the league team directory.
func WithTeams(teams []model.TeamInfo) Option {
	return func(s *MemoryStore) {
		s.teams = append([]model.TeamInfo(nil), teams...)
	}
}

// WithDraftPicks preloads the stored draft picks.
func WithDraftPicks(picks []model.DraftPick) Option {
	return func(s *MemoryStore) {
		s.picks = append([]model.DraftPick(nil), picks...)
	}
}
