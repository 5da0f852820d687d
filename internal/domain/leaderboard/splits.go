package leaderboard

import (
	"github.com/okian/gridiron/internal/domain/aggregate"
	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/internal/domain/types"
)

// League-split thresholds.
const (
	bigSpread = 5.0  // |spread| >= this marks a heavy favorite
	highTotal = 50.0 // lines at or above this count as extreme overs
	lowTotal  = 40.0 // lines at or below this count as extreme unders
)

// LeagueSplits is the league-wide betting summary: how favorites, home
// teams, and totals behaved across every lined game.
type LeagueSplits struct {
	FavoredATS   types.Record `json:"favored_ats"`
	HomeATS      types.Record `json:"home_ats"`
	FavoredSU    types.Record `json:"favored_su"`
	UpsetSU      types.Record `json:"upset_su"`
	OverUnder    types.Record `json:"over_under"`
	ExtremeOver  types.Record `json:"extreme_over"`
	ExtremeUnder types.Record `json:"extreme_under"`
	Games        int          `json:"games"`
}

// ComputeLeagueSplits folds every lined, non-playoff game into the
// seven league records. Empty input returns all-zero records with
// "0.0%" rates, never nil.
func ComputeLeagueSplits(games []model.GameRecord) LeagueSplits {
	var s LeagueSplits
	for _, g := range games {
		if g.Playoff || !g.HasOdds {
			continue
		}
		s.Games++

		outcome := g.SpreadOutcome()
		homeFavored := g.Spread < 0
		awayFavored := g.Spread > 0
		total := float64(g.TotalPoints())

		// Favorites against the spread. Pick-em games have no favorite.
		if homeFavored || awayFavored {
			switch {
			case outcome == model.SpreadPush:
				s.FavoredATS.Pushes++
			case (homeFavored && outcome == model.HomeCovered) || (awayFavored && outcome == model.AwayCovered):
				s.FavoredATS.Wins++
			default:
				s.FavoredATS.Losses++
			}
			s.FavoredATS.Total++
		}

		// Home teams against the spread.
		switch outcome {
		case model.HomeCovered:
			s.HomeATS.Wins++
		case model.AwayCovered:
			s.HomeATS.Losses++
		case model.SpreadPush:
			s.HomeATS.Pushes++
		}
		s.HomeATS.Total++

		// Favorites straight up.
		if homeFavored || awayFavored {
			switch {
			case g.Tie():
				s.FavoredSU.Pushes++
			case (homeFavored && g.Winner() == g.Home) || (awayFavored && g.Winner() == g.Away):
				s.FavoredSU.Wins++
			default:
				s.FavoredSU.Losses++
			}
			s.FavoredSU.Total++
		}

		// Upset frequency among heavy favorites. A "win" here is the
		// underdog winning outright.
		if g.Spread <= -bigSpread || g.Spread >= bigSpread {
			switch {
			case g.Tie():
				s.UpsetSU.Pushes++
			case (g.Spread <= -bigSpread && g.Winner() == g.Away) || (g.Spread >= bigSpread && g.Winner() == g.Home):
				s.UpsetSU.Wins++
			default:
				s.UpsetSU.Losses++
			}
			s.UpsetSU.Total++
		}

		// Totals. A "win" is the over hitting.
		switch {
		case total > g.OverUnder:
			s.OverUnder.Wins++
		case total < g.OverUnder:
			s.OverUnder.Losses++
		default:
			s.OverUnder.Pushes++
		}
		s.OverUnder.Total++

		if g.OverUnder >= highTotal {
			switch {
			case total > g.OverUnder:
				s.ExtremeOver.Wins++
			case total < g.OverUnder:
				s.ExtremeOver.Losses++
			default:
				s.ExtremeOver.Pushes++
			}
			s.ExtremeOver.Total++
		}
		if g.OverUnder <= lowTotal {
			// For low-total games the "win" is the under hitting.
			switch {
			case total < g.OverUnder:
				s.ExtremeUnder.Wins++
			case total > g.OverUnder:
				s.ExtremeUnder.Losses++
			default:
				s.ExtremeUnder.Pushes++
			}
			s.ExtremeUnder.Total++
		}
	}

	for _, r := range []*types.Record{
		&s.FavoredATS, &s.HomeATS, &s.FavoredSU, &s.UpsetSU,
		&s.OverUnder, &s.ExtremeOver, &s.ExtremeUnder,
	} {
		r.Pct = aggregate.Percent1(r.Wins, r.Total)
	}
	return s
}
