// Package repository defines the game store interface and errors.
package repository

import (
	"context"

	"github.com/okian/gridiron/internal/domain/model"
)

// Store provides read/write access to the historical game data the
// aggregation views are computed over. Validation of incoming records
// lives here, upstream of the engine: a game that makes it into the
// store is safe to aggregate.
type Store interface {
	// PutGame stores one completed game. Malformed records (blank
	// teams, a team playing itself, negative scores, missing season)
	// are rejected with a sentinel error.
	PutGame(ctx context.Context, g model.GameRecord) error

	// GamesBySeason returns every stored game for one season.
	GamesBySeason(ctx context.Context, season int) []model.GameRecord

	// AllGames returns every stored game across all seasons, ordered by
	// season ascending.
	AllGames(ctx context.Context) []model.GameRecord

	// Seasons returns the distinct stored seasons in ascending order.
	Seasons(ctx context.Context) []int

	// PutTeams replaces the league team directory.
	PutTeams(ctx context.Context, teams []model.TeamInfo)

	// Teams returns the league team directory.
	Teams(ctx context.Context) []model.TeamInfo

	// PutDraftPicks replaces the stored first-round draft picks.
	PutDraftPicks(ctx context.Context, picks []model.DraftPick)

	// DraftPicks returns the stored draft picks.
	DraftPicks(ctx context.Context) []model.DraftPick

	// Len returns the number of stored games.
	Len(ctx context.Context) int
}
