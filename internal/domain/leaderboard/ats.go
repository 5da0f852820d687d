package leaderboard

import (
	"fmt"
	"strings"

	"github.com/okian/gridiron/internal/domain/aggregate"
	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/internal/domain/types"
)

// ATSRow is one team's against-the-spread line. Season is 0 when the
// view was computed over a single pre-scoped season.
type ATSRow struct {
	Team   string       `json:"team"`
	Season int          `json:"season,omitempty"`
	Record types.Record `json:"record"`
	// CoverPct is covers over decisions; pushes do not count against a
	// team. Rendered like "56.1%".
	CoverPct string `json:"cover_pct"`
}

// ATSBoard carries both ends of the leaderboard.
type ATSBoard struct {
	Top    []ATSRow `json:"top"`
	Bottom []ATSRow `json:"bottom"`
}

type atsAcc struct {
	covers, losses, pushes int
}

// ATS computes the against-the-spread leaderboard over games. Games
// without betting lines and playoff games are skipped. n <= 0 uses
// DefaultLimit for both ends of the board.
func ATS(games []model.GameRecord, n int) ATSBoard {
	if n <= 0 {
		n = DefaultLimit
	}
	rows := atsRows(games, func(g model.GameRecord, team string) string { return team })
	return ATSBoard{Top: aggregate.Head(rows, n), Bottom: aggregate.Tail(rows, n)}
}

// ATSSeasons is the all-time variant: one row per team+season, so a
// single outlier year stands on its own.
func ATSSeasons(games []model.GameRecord, n int) ATSBoard {
	if n <= 0 {
		n = DefaultLimit
	}
	rows := atsRows(games, func(g model.GameRecord, team string) string {
		return fmt.Sprintf("%s|%d", team, g.Season)
	})
	return ATSBoard{Top: aggregate.Head(rows, n), Bottom: aggregate.Tail(rows, n)}
}

func atsRows(games []model.GameRecord, keyOf func(model.GameRecord, string) string) []ATSRow {
	keys := func(g model.GameRecord) []string {
		if g.Playoff || !g.HasOdds {
			return nil
		}
		return []string{keyOf(g, g.Home), keyOf(g, g.Away)}
	}

	fold := func(key string, acc atsAcc, g model.GameRecord) atsAcc {
		home := key == keyOf(g, g.Home)
		switch g.SpreadOutcome() {
		case model.SpreadPush:
			acc.pushes++
		case model.HomeCovered:
			if home {
				acc.covers++
			} else {
				acc.losses++
			}
		case model.AwayCovered:
			if home {
				acc.losses++
			} else {
				acc.covers++
			}
		}
		return acc
	}

	finish := func(key string, acc atsAcc) ATSRow {
		team, season := splitSeasonKey(key)
		total := acc.covers + acc.losses + acc.pushes
		return ATSRow{
			Team:   team,
			Season: season,
			Record: types.Record{
				Wins:   acc.covers,
				Losses: acc.losses,
				Pushes: acc.pushes,
				Total:  total,
				Pct:    aggregate.Percent1(acc.covers, acc.covers+acc.losses),
			},
			CoverPct: aggregate.Percent1(acc.covers, acc.covers+acc.losses),
		}
	}

	less := func(a, b ATSRow) bool {
		pa, pb := coverRate(a.Record), coverRate(b.Record)
		if pa != pb {
			return pa > pb
		}
		if a.Record.Wins != b.Record.Wins {
			return a.Record.Wins > b.Record.Wins
		}
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		return a.Season < b.Season
	}

	return aggregate.Aggregate(games, keys, fold, finish, less, 0)
}

func coverRate(r types.Record) float64 {
	if r.Decisions() == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Decisions())
}

// splitSeasonKey splits "team|season" keys; plain team keys come back
// with season 0.
func splitSeasonKey(key string) (string, int) {
	i := strings.LastIndexByte(key, '|')
	if i < 0 {
		return key, 0
	}
	var season int
	if _, err := fmt.Sscanf(key[i+1:], "%d", &season); err != nil {
		return key, 0
	}
	return key[:i], season
}
